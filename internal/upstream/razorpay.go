// Package upstream holds thin HTTP clients for the third-party services the
// marketplace relays to: the Razorpay payment gateway, the data.gov.in mandi
// price resource, OpenWeatherMap, and the Gemini generative API.
package upstream

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

	"krishisanjivni-backend/internal/logger"
)

// RazorpayClient talks to the Razorpay Orders REST API and verifies checkout
// signatures.
type RazorpayClient struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

func NewRazorpayClient(keyID, keySecret, baseURL string) *RazorpayClient {
	return &RazorpayClient{
		keyID:      keyID,
		keySecret:  keySecret,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// RazorpayOrder is the subset of the gateway's order object the frontend
// checkout needs.
type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder creates a gateway order for the given rupee amount. Razorpay
// amounts are integer paise.
func (c *RazorpayClient) CreateOrder(ctx context.Context, amountRupees float64, receipt string) (*RazorpayOrder, error) {
	payload := map[string]interface{}{
		"amount":   int64(math.Round(amountRupees * 100)),
		"currency": "INR",
		"receipt":  receipt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	logger.ExternalServiceCall("razorpay", "CreateOrder", "receipt", receipt)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("razorpay", "CreateOrder", err)
		return nil, fmt.Errorf("razorpay order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("razorpay returned status %d: %s", resp.StatusCode, raw)
		logger.ExternalServiceResult("razorpay", "CreateOrder", err)
		return nil, err
	}

	var order RazorpayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode razorpay order: %w", err)
	}
	logger.ExternalServiceResult("razorpay", "CreateOrder", nil, "order_id", order.ID)
	return &order, nil
}

// VerifySignature checks the checkout signature Razorpay hands to the client
// after a successful payment: HMAC-SHA256 over "order_id|payment_id" keyed
// with the API secret, hex encoded.
func (c *RazorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
