package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrNoGateway is a tenant configuration error: dispatch is attempted with
// no gateway enabled. It is returned before any network call.
var ErrNoGateway = errors.New("no payment gateway enabled for tenant")

type Card struct {
	Number     string `json:"number"`
	Expiry     string `json:"expiry"` // "MM/YY"
	CVV        string `json:"cvv"`
	HolderName string `json:"holderName"`
}

// Request is the normalized payment request handed to a gateway.
type Request struct {
	Reference    string // server-generated order reference
	Amount       int64  // minor units
	Currency     string
	CustomerName string
	Card         Card
}

type Result struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Gateway is one card processor. Validate never touches the network;
// Send performs exactly one HTTP call, no retries.
type Gateway interface {
	Name() string
	Validate(req *Request) error
	BuildRequest(req *Request) (any, error)
	Send(ctx context.Context, client *http.Client, req *Request) (*Result, error)
}

func validateCard(req *Request) error {
	if req.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	c := req.Card
	if c.Number == "" || c.Expiry == "" || c.CVV == "" || c.HolderName == "" {
		return errors.New("all card fields are required")
	}
	m, y, err := expiryParts(c.Expiry)
	if err != nil {
		return err
	}
	// card is valid through the end of its expiry month
	endOfMonth := time.Date(y, time.Month(m)+1, 1, 0, 0, 0, 0, time.UTC)
	if !endOfMonth.After(time.Now().UTC()) {
		return errors.New("card has expired")
	}
	return nil
}

func expiryParts(expiry string) (month, year int, err error) {
	parts := strings.Split(strings.TrimSpace(expiry), "/")
	if len(parts) != 2 {
		return 0, 0, errors.New("expiry must be MM/YY")
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || m < 1 || m > 12 {
		return 0, 0, errors.New("expiry must be MM/YY")
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || y < 0 || y > 99 {
		return 0, 0, errors.New("expiry must be MM/YY")
	}
	return m, 2000 + y, nil
}

func postJSON(ctx context.Context, client *http.Client, url, apiKey string, body any, out any) (int, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buf))
	if err != nil {
		return 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	}

	res, err := client.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("gateway request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, err
	}
	if len(raw) > 0 && out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return res.StatusCode, fmt.Errorf("gateway returned invalid JSON: %w", err)
		}
	}
	return res.StatusCode, nil
}
