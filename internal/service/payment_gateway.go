package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dental-clinic-service/config"
)

// ErrPaymentProvider is returned when the payment provider rejects or fails
// a call; handlers surface it as an upstream failure.
var ErrPaymentProvider = errors.New("payment provider request failed")

// PaymentGateway is the contract the billing usecase depends on. The
// provider's webhook/billing state machine is out of scope; only checkout
// creation and the cancel-at-period-end toggle are orchestrated here.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, customerEmail, priceID string) (string, error)
	UpdateSubscription(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) error
}

type paymentGateway struct {
	config config.PaymentConfig
	client *http.Client
}

func NewPaymentGateway(cfg config.PaymentConfig) PaymentGateway {
	return &paymentGateway{
		config: cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type checkoutSessionRequest struct {
	CustomerEmail string `json:"customer_email"`
	PriceID       string `json:"price_id"`
	SuccessURL    string `json:"success_url"`
	CancelURL     string `json:"cancel_url"`
}

type checkoutSessionResponse struct {
	URL string `json:"url"`
}

func (g *paymentGateway) CreateCheckoutSession(ctx context.Context, customerEmail, priceID string) (string, error) {
	body, err := json.Marshal(checkoutSessionRequest{
		CustomerEmail: customerEmail,
		PriceID:       priceID,
		SuccessURL:    g.config.SuccessURL,
		CancelURL:     g.config.CancelURL,
	})
	if err != nil {
		return "", err
	}

	resp, err := g.post(ctx, "/v1/checkout/sessions", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: status %d", ErrPaymentProvider, resp.StatusCode)
	}

	var session checkoutSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	return session.URL, nil
}

func (g *paymentGateway) UpdateSubscription(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) error {
	body, err := json.Marshal(map[string]bool{"cancel_at_period_end": cancelAtPeriodEnd})
	if err != nil {
		return err
	}

	resp, err := g.post(ctx, "/v1/subscriptions/"+subscriptionID, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrPaymentProvider, resp.StatusCode)
	}
	return nil
}

func (g *paymentGateway) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.config.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	return resp, nil
}
