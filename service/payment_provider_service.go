package service

import (
	"context"

	"github.com/photonow/orders.api.photonow.io/models"
)

// PaymentProviderService is an interface for all the requests to the
// external payment processor
type PaymentProviderService interface {
	// CreatePaymentIntent creates a payment intent for the given amount in
	// pence. Outside development a platform fee and a payout destination
	// accompany the intent
	CreatePaymentIntent(ctx context.Context, amount int64, fee int64, destination string) (*models.PaymentIntentResourceRest, error)

	// CancelPaymentIntent cancels a previously created payment intent,
	// used when order persistence fails after the intent was issued
	CancelPaymentIntent(ctx context.Context, id string) error

	// ExchangeAuthorizationCode exchanges an Express onboarding
	// authorization code for connect credentials
	ExchangeAuthorizationCode(ctx context.Context, code string) (*models.StripeConnectRest, error)
}
