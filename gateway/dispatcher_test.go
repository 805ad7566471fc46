package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"orderweb/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *Request {
	return &Request{
		Reference:    "OW-TEST1234",
		Amount:       2760,
		Currency:     "gbp",
		CustomerName: "Ada Lovelace",
		Card: Card{
			Number:     "4242424242424242",
			Expiry:     "12/39",
			CVV:        "123",
			HolderName: "Ada Lovelace",
		},
	}
}

func TestDispatchNoGatewayEnabled(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	d := NewDispatcher(2 * time.Second)

	_, err := d.Dispatch(context.Background(), nil, validRequest())
	assert.ErrorIs(t, err, ErrNoGateway)

	cfg := &entity.GatewaySetting{StripeEndpoint: srv.URL} // configured but not enabled
	_, err = d.Dispatch(context.Background(), cfg, validRequest())
	assert.ErrorIs(t, err, ErrNoGateway)

	assert.Zero(t, atomic.LoadInt32(&hits), "no network call may happen without an enabled gateway")
}

func TestDispatchValidatesBeforeSending(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	d := NewDispatcher(2 * time.Second)
	cfg := &entity.GatewaySetting{StripeEnabled: true, StripeEndpoint: srv.URL}

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"expired card", func(r *Request) { r.Card.Expiry = "01/20" }},
		{"bad expiry format", func(r *Request) { r.Card.Expiry = "13/39" }},
		{"missing cvv", func(r *Request) { r.Card.CVV = "" }},
		{"zero amount", func(r *Request) { r.Amount = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := d.Dispatch(context.Background(), cfg, req)
			assert.Error(t, err)
		})
	}
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestCardValidThroughEndOfExpiryMonth(t *testing.T) {
	now := time.Now().UTC()
	req := validRequest()
	// current month should still be accepted
	req.Card.Expiry = now.Format("01/06")
	assert.NoError(t, validateCard(req))
}

func TestStripeCharge(t *testing.T) {
	var got stripeCharge
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"id": "ch_123", "status": "succeeded"})
	}))
	defer srv.Close()

	d := NewDispatcher(2 * time.Second)
	cfg := &entity.GatewaySetting{StripeEnabled: true, StripeEndpoint: srv.URL, StripeKey: "sk_test_123"}

	res, err := d.Dispatch(context.Background(), cfg, validRequest())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "ch_123", res.TransactionID)

	assert.Equal(t, int64(2760), got.Amount)
	assert.Equal(t, "gbp", got.Currency)
	assert.Equal(t, "4242424242424242", got.Source.Number)
	assert.Equal(t, 12, got.Source.ExpMonth)
	assert.Equal(t, 2039, got.Source.ExpYear)
	assert.Equal(t, "OW-TEST1234", got.Metadata["reference"])
}

func TestStripeDecline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "ch_456",
			"error": map[string]string{"message": "insufficient funds"},
		})
	}))
	defer srv.Close()

	d := NewDispatcher(2 * time.Second)
	cfg := &entity.GatewaySetting{StripeEnabled: true, StripeEndpoint: srv.URL}

	res, err := d.Dispatch(context.Background(), cfg, validRequest())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "insufficient funds", res.Message)
}

func TestGlobalPaymentsCharge(t *testing.T) {
	var got globalPaymentsCharge
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"id": "TRN_1", "status": "CAPTURED"})
	}))
	defer srv.Close()

	d := NewDispatcher(2 * time.Second)
	cfg := &entity.GatewaySetting{GlobalPaymentsEnabled: true, GlobalPaymentsEndpoint: srv.URL}

	res, err := d.Dispatch(context.Background(), cfg, validRequest())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "TRN_1", res.TransactionID)

	assert.Equal(t, "CNP", got.Channel)
	assert.Equal(t, "2760", got.Amount, "amount travels as a string")
	assert.Equal(t, "12", got.PaymentMethod.Card.ExpiryMonth)
	assert.Equal(t, "39", got.PaymentMethod.Card.ExpiryYear)
	assert.Equal(t, "OW-TEST1234", got.Reference)
}

func TestWorldpayCharge(t *testing.T) {
	var got worldpayCharge
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"outcome":              "authorized",
			"transactionReference": "OW-TEST1234",
		})
	}))
	defer srv.Close()

	d := NewDispatcher(2 * time.Second)
	cfg := &entity.GatewaySetting{WorldpayEnabled: true, WorldpayEndpoint: srv.URL}

	res, err := d.Dispatch(context.Background(), cfg, validRequest())
	require.NoError(t, err)
	assert.True(t, res.Success)

	assert.Equal(t, "OW-TEST1234", got.TransactionReference)
	assert.Equal(t, "card/plain", got.Instruction.PaymentInstrument.Type)
	assert.Equal(t, int64(2760), got.Instruction.Value.Amount)
	assert.Equal(t, 2039, got.Instruction.PaymentInstrument.CardExpiryDate.Year)
}

func TestGatewayPriorityOrder(t *testing.T) {
	// stripe wins whenever it is enabled, regardless of the others
	cfg := &entity.GatewaySetting{
		StripeEnabled:         true,
		GlobalPaymentsEnabled: true,
		WorldpayEnabled:       true,
	}
	gw, err := selectGateway(cfg)
	require.NoError(t, err)
	assert.Equal(t, "stripe", gw.Name())

	cfg.StripeEnabled = false
	gw, err = selectGateway(cfg)
	require.NoError(t, err)
	assert.Equal(t, "globalpayments", gw.Name())

	cfg.GlobalPaymentsEnabled = false
	gw, err = selectGateway(cfg)
	require.NoError(t, err)
	assert.Equal(t, "worldpay", gw.Name())
}
