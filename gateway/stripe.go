package gateway

import (
	"context"
	"fmt"
	"net/http"
)

type stripeGateway struct {
	endpoint string
	apiKey   string
}

func (g *stripeGateway) Name() string { return "stripe" }

func (g *stripeGateway) Validate(req *Request) error { return validateCard(req) }

type stripeSource struct {
	Number   string `json:"number"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
	CVC      string `json:"cvc"`
	Name     string `json:"name"`
}

type stripeCharge struct {
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Source      stripeSource      `json:"source"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}

type stripeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *stripeGateway) BuildRequest(req *Request) (any, error) {
	m, y, err := expiryParts(req.Card.Expiry)
	if err != nil {
		return nil, err
	}
	return &stripeCharge{
		Amount:   req.Amount,
		Currency: req.Currency,
		Source: stripeSource{
			Number: req.Card.Number, ExpMonth: m, ExpYear: y,
			CVC: req.Card.CVV, Name: req.Card.HolderName,
		},
		Description: fmt.Sprintf("Order %s for %s", req.Reference, req.CustomerName),
		Metadata:    map[string]string{"reference": req.Reference},
	}, nil
}

func (g *stripeGateway) Send(ctx context.Context, client *http.Client, req *Request) (*Result, error) {
	body, err := g.BuildRequest(req)
	if err != nil {
		return nil, err
	}
	var out stripeResponse
	status, err := postJSON(ctx, client, g.endpoint, g.apiKey, body, &out)
	if err != nil {
		return nil, err
	}

	if status == http.StatusOK && out.Status == "succeeded" {
		return &Result{Success: true, TransactionID: out.ID}, nil
	}
	msg := "card declined"
	if out.Error != nil && out.Error.Message != "" {
		msg = out.Error.Message
	}
	return &Result{Success: false, TransactionID: out.ID, Message: msg}, nil
}
