package gateway

import (
	"context"
	"net/http"
)

type worldpayGateway struct {
	endpoint string
	apiKey   string
}

func (g *worldpayGateway) Name() string { return "worldpay" }

func (g *worldpayGateway) Validate(req *Request) error { return validateCard(req) }

type worldpayInstrument struct {
	Type           string `json:"type"`
	CardNumber     string `json:"cardNumber"`
	CardExpiryDate struct {
		Month int `json:"month"`
		Year  int `json:"year"`
	} `json:"cardExpiryDate"`
	CVC            string `json:"cvc"`
	CardHolderName string `json:"cardHolderName"`
}

type worldpayCharge struct {
	TransactionReference string `json:"transactionReference"`
	Instruction          struct {
		Narrative struct {
			Line1 string `json:"line1"`
		} `json:"narrative"`
		Value struct {
			Currency string `json:"currency"`
			Amount   int64  `json:"amount"`
		} `json:"value"`
		PaymentInstrument worldpayInstrument `json:"paymentInstrument"`
	} `json:"instruction"`
}

type worldpayResponse struct {
	Outcome              string `json:"outcome"`
	TransactionReference string `json:"transactionReference"`
	RefusalDescription   string `json:"refusalDescription"`
}

func (g *worldpayGateway) BuildRequest(req *Request) (any, error) {
	m, y, err := expiryParts(req.Card.Expiry)
	if err != nil {
		return nil, err
	}
	charge := &worldpayCharge{TransactionReference: req.Reference}
	charge.Instruction.Narrative.Line1 = req.CustomerName
	charge.Instruction.Value.Currency = req.Currency
	charge.Instruction.Value.Amount = req.Amount
	inst := worldpayInstrument{
		Type:           "card/plain",
		CardNumber:     req.Card.Number,
		CVC:            req.Card.CVV,
		CardHolderName: req.Card.HolderName,
	}
	inst.CardExpiryDate.Month = m
	inst.CardExpiryDate.Year = y
	charge.Instruction.PaymentInstrument = inst
	return charge, nil
}

func (g *worldpayGateway) Send(ctx context.Context, client *http.Client, req *Request) (*Result, error) {
	body, err := g.BuildRequest(req)
	if err != nil {
		return nil, err
	}
	var out worldpayResponse
	status, err := postJSON(ctx, client, g.endpoint, g.apiKey, body, &out)
	if err != nil {
		return nil, err
	}

	if (status == http.StatusOK || status == http.StatusCreated) && out.Outcome == "authorized" {
		return &Result{Success: true, TransactionID: out.TransactionReference}, nil
	}
	msg := out.RefusalDescription
	if msg == "" {
		msg = "payment refused"
	}
	return &Result{Success: false, TransactionID: out.TransactionReference, Message: msg}, nil
}
