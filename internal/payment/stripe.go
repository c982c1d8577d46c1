// Package payment wraps the external payment provider. Handlers consume it
// only through the IntentCreator interface so tests can stand in a fake.
package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// IntentCreator creates a payment intent for an amount in minor units and
// returns the client secret the browser uses to confirm the charge.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (clientSecret string, err error)
}

// StripeClient implements IntentCreator against the Stripe API.
type StripeClient struct {
	api *client.API
}

// NewStripeClient builds a client around the account's secret key.
func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api}
}

// CreateIntent charges are card-only and denominated in USD, matching what
// the storefront confirms on its side.
func (s *StripeClient) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
