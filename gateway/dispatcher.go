package gateway

import (
	"context"
	"net/http"
	"time"

	"orderweb/entity"
)

// Dispatcher selects the tenant's gateway and forwards one payment request.
type Dispatcher struct {
	client *http.Client
}

func NewDispatcher(timeout time.Duration) *Dispatcher {
	return &Dispatcher{client: &http.Client{Timeout: timeout}}
}

// selectGateway walks the fixed priority order and returns the first
// enabled gateway.
func selectGateway(cfg *entity.GatewaySetting) (Gateway, error) {
	if cfg == nil {
		return nil, ErrNoGateway
	}
	switch {
	case cfg.StripeEnabled:
		return &stripeGateway{endpoint: cfg.StripeEndpoint, apiKey: cfg.StripeKey}, nil
	case cfg.GlobalPaymentsEnabled:
		return &globalPaymentsGateway{endpoint: cfg.GlobalPaymentsEndpoint, apiKey: cfg.GlobalPaymentsKey}, nil
	case cfg.WorldpayEnabled:
		return &worldpayGateway{endpoint: cfg.WorldpayEndpoint, apiKey: cfg.WorldpayKey}, nil
	default:
		return nil, ErrNoGateway
	}
}

// Dispatch validates the request, then sends it to the selected gateway.
// Validation and gateway selection never touch the network, so a
// misconfigured tenant or a bad card fails before any charge attempt.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg *entity.GatewaySetting, req *Request) (*Result, error) {
	gw, err := selectGateway(cfg)
	if err != nil {
		return nil, err
	}
	if err := gw.Validate(req); err != nil {
		return nil, err
	}
	res, err := gw.Send(ctx, d.client, req)
	if err != nil {
		return nil, err
	}
	if res != nil && res.Message == "" && !res.Success {
		res.Message = "payment declined"
	}
	return res, nil
}
