// Package stripe is a minimal client for the Stripe payment-intent API,
// covering only the create-and-confirm charge flow this service needs.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.stripe.com"

// StatusSucceeded is the intent status for a completed charge; anything else
// is treated as a decline by the caller.
const StatusSucceeded = "succeeded"

type PaymentIntentParams struct {
	Amount          int64 // minor currency units
	Currency        string
	PaymentMethodID string
	Metadata        map[string]string
}

type PaymentIntent struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type Client struct {
	hc        *http.Client
	secretKey string
	baseURL   string
}

func New(secretKey string) *Client {
	return &Client{
		hc:        &http.Client{Timeout: 15 * time.Second},
		secretKey: secretKey,
		baseURL:   defaultBaseURL,
	}
}

// CreatePaymentIntent creates a charge and confirms it in the same call.
func (c *Client) CreatePaymentIntent(ctx context.Context, params PaymentIntentParams) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.Amount, 10))
	form.Set("currency", params.Currency)
	form.Set("payment_method", params.PaymentMethodID)
	form.Set("confirm", "true")
	form.Set("confirmation_method", "manual")
	for k, v := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("stripe read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var ae apiError
		_ = json.Unmarshal(body, &ae)
		if ae.Error.Message != "" {
			return nil, fmt.Errorf("stripe: %s (status=%d)", ae.Error.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("stripe: request failed (status=%d)", resp.StatusCode)
	}

	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("stripe decode response: %w", err)
	}
	return &intent, nil
}
