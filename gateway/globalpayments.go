package gateway

import (
	"context"
	"fmt"
	"net/http"
)

type globalPaymentsGateway struct {
	endpoint string
	apiKey   string
}

func (g *globalPaymentsGateway) Name() string { return "globalpayments" }

func (g *globalPaymentsGateway) Validate(req *Request) error { return validateCard(req) }

type globalPaymentsCard struct {
	Number         string `json:"number"`
	ExpiryMonth    string `json:"expiry_month"` // "MM"
	ExpiryYear     string `json:"expiry_year"`  // "YY"
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholder_name"`
}

type globalPaymentsCharge struct {
	Channel       string `json:"channel"`
	Amount        string `json:"amount"` // minor units as string, per their API
	Currency      string `json:"currency"`
	Reference     string `json:"reference"`
	PaymentMethod struct {
		Card globalPaymentsCard `json:"card"`
	} `json:"payment_method"`
}

type globalPaymentsResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

func (g *globalPaymentsGateway) BuildRequest(req *Request) (any, error) {
	m, y, err := expiryParts(req.Card.Expiry)
	if err != nil {
		return nil, err
	}
	charge := &globalPaymentsCharge{
		Channel:   "CNP",
		Amount:    fmt.Sprintf("%d", req.Amount),
		Currency:  req.Currency,
		Reference: req.Reference,
	}
	charge.PaymentMethod.Card = globalPaymentsCard{
		Number:         req.Card.Number,
		ExpiryMonth:    fmt.Sprintf("%02d", m),
		ExpiryYear:     fmt.Sprintf("%02d", y%100),
		CVV:            req.Card.CVV,
		CardholderName: req.Card.HolderName,
	}
	return charge, nil
}

func (g *globalPaymentsGateway) Send(ctx context.Context, client *http.Client, req *Request) (*Result, error) {
	body, err := g.BuildRequest(req)
	if err != nil {
		return nil, err
	}
	var out globalPaymentsResponse
	status, err := postJSON(ctx, client, g.endpoint, g.apiKey, body, &out)
	if err != nil {
		return nil, err
	}

	if status == http.StatusOK && out.Status == "CAPTURED" {
		return &Result{Success: true, TransactionID: out.ID}, nil
	}
	msg := out.ErrorMessage
	if msg == "" {
		msg = "payment declined"
	}
	return &Result{Success: false, TransactionID: out.ID, Message: msg}, nil
}
