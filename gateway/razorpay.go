package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// Client talks to the Razorpay REST API and verifies payment signatures.
// The key secret never leaves this process; the storefront only ever sees
// the key id and the order token.
type Client struct {
	BaseURL   string
	KeyID     string
	keySecret string
	http      *http.Client
}

// Order is the gateway-side order token handed to the hosted payment UI.
// Amount is in the gateway's minor unit (paise).
type Order struct {
	OrderID     string `json:"order_id"`
	AmountMinor int64  `json:"amount"`
	Currency    string `json:"currency"`
}

// Confirmation is the raw completion payload posted back by the hosted UI.
// It is never trusted on its own; only VerifySignature decides.
type Confirmation struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

const currency = "INR"

func New(baseURL, keyID, keySecret string) *Client {
	return &Client{
		BaseURL:   baseURL,
		KeyID:     keyID,
		keySecret: keySecret,
		// Order creation is not idempotent, so it gets a bounded timeout
		// and is never retried automatically.
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// ToMinorUnits converts rupees to paise. All checkout math upstream is in
// major units; the conversion happens exactly once, here.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Error    *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// CreateOrder registers an order with the gateway for the given amount in
// rupees and returns the order token the hosted UI needs.
func (c *Client) CreateOrder(ctx context.Context, amountRupees float64) (Order, error) {
	payload := createOrderRequest{
		Amount:   ToMinorUnits(amountRupees),
		Currency: currency,
		Receipt:  fmt.Sprintf("receipt_%d", time.Now().UnixNano()),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Order{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return Order{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.KeyID, c.keySecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return Order{}, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var parsed createOrderResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Order{}, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	if parsed.Error != nil {
		return Order{}, fmt.Errorf("gateway error: %s", parsed.Error.Description)
	}
	if resp.StatusCode != http.StatusOK {
		return Order{}, fmt.Errorf("gateway API error (%d): %s", resp.StatusCode, string(raw))
	}
	if parsed.ID == "" {
		return Order{}, fmt.Errorf("gateway returned empty order id")
	}

	return Order{OrderID: parsed.ID, AmountMinor: parsed.Amount, Currency: parsed.Currency}, nil
}

// VerifySignature checks the HMAC-SHA256 the gateway computes over
// "<order_id>|<payment_id>". A raw completion callback without a matching
// signature is worthless.
func (c *Client) VerifySignature(conf Confirmation) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(conf.OrderID + "|" + conf.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	provided, err := hex.DecodeString(conf.Signature)
	if err != nil {
		return false
	}
	expectedRaw, _ := hex.DecodeString(expected)
	return hmac.Equal(expectedRaw, provided)
}
