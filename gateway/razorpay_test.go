package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		rupees float64
		paise  int64
	}{
		{2120, 212000},
		{60, 6000},
		{0, 0},
		{10.5, 1050},
		{99.99, 9999},
		{0.01, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.paise, ToMinorUnits(tc.rupees), "rupees=%v", tc.rupees)
	}
}

func TestCreateOrder_SendsMinorUnits(t *testing.T) {
	var got createOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_abc123",
			"amount":   got.Amount,
			"currency": "INR",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "rzp_test_key", "secret")
	order, err := c.CreateOrder(context.Background(), 2120)

	require.NoError(t, err)
	// The 100x boundary: rupees in, paise on the wire and in the token.
	assert.Equal(t, int64(212000), got.Amount)
	assert.Equal(t, "order_abc123", order.OrderID)
	assert.Equal(t, int64(212000), order.AmountMinor)
	assert.Equal(t, "INR", order.Currency)
}

func TestCreateOrder_GatewayErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"code": "BAD_REQUEST_ERROR", "description": "amount too small"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "k", "s")
	_, err := c.CreateOrder(context.Background(), 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount too small")
}

func TestCreateOrder_EmptyOrderID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"amount": 100, "currency": "INR"})
	}))
	defer srv.Close()

	c := New(srv.URL, "k", "s")
	_, err := c.CreateOrder(context.Background(), 1)
	assert.Error(t, err)
}

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	c := New("http://unused", "key", "topsecret")

	good := Confirmation{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: sign("topsecret", "order_1", "pay_1"),
	}
	assert.True(t, c.VerifySignature(good))

	tampered := good
	tampered.PaymentID = "pay_2"
	assert.False(t, c.VerifySignature(tampered))

	wrongSecret := good
	wrongSecret.Signature = sign("othersecret", "order_1", "pay_1")
	assert.False(t, c.VerifySignature(wrongSecret))

	garbage := good
	garbage.Signature = "not-hex!"
	assert.False(t, c.VerifySignature(garbage))
}
