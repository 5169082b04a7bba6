package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/photonow/orders.api.photonow.io/config"
	"github.com/photonow/orders.api.photonow.io/models"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// orderCurrency is the fixed currency orders are charged in
const orderCurrency = string(stripe.CurrencyGBP)

// StripeService makes the calls to Stripe for payment intents and Express
// onboarding
type StripeService struct {
	Client *client.API
	Config config.Config
}

// NewStripeService constructs a StripeService with its own Stripe API
// client, authenticated with the configured secret key
func NewStripeService(cfg config.Config) *StripeService {
	sc := &client.API{}
	sc.Init(cfg.StripeSecretKey, nil)

	return &StripeService{
		Client: sc,
		Config: cfg,
	}
}

// CreatePaymentIntent creates a payment intent for the given amount in
// pence. A zero fee omits the platform fee and payout destination, which is
// how development mode runs without a connected account
func (s *StripeService) CreatePaymentIntent(ctx context.Context, amount int64, fee int64, destination string) (*models.PaymentIntentResourceRest, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(orderCurrency),
	}
	params.Context = ctx

	if fee > 0 {
		params.ApplicationFeeAmount = stripe.Int64(fee)
		params.TransferData = &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(destination),
		}
	}

	paymentIntent, err := s.Client.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("error creating payment intent with Stripe: [%v]", err)
	}

	return &models.PaymentIntentResourceRest{
		ID:           paymentIntent.ID,
		ClientSecret: paymentIntent.ClientSecret,
		Amount:       paymentIntent.Amount,
		Currency:     string(paymentIntent.Currency),
	}, nil
}

// CancelPaymentIntent cancels a previously created payment intent
func (s *StripeService) CancelPaymentIntent(ctx context.Context, id string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx

	_, err := s.Client.PaymentIntents.Cancel(id, params)
	if err != nil {
		return fmt.Errorf("error cancelling payment intent [%s] with Stripe: [%v]", id, err)
	}

	return nil
}

// ExchangeAuthorizationCode exchanges an Express onboarding authorization
// code for connect credentials. The exchange URL is environment driven, so
// the call is made directly rather than through the SDK's fixed connect
// backend.
func (s *StripeService) ExchangeAuthorizationCode(ctx context.Context, code string) (*models.StripeConnectRest, error) {
	form := url.Values{}
	form.Set("client_secret", s.Config.StripeSecretKey)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)

	request, err := http.NewRequestWithContext(ctx, "POST", s.Config.ExpressTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error generating token exchange request for Stripe: [%v]", err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("content-type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending token exchange request to Stripe: [%v]", err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading token exchange response from Stripe: [%v]", err)
	}

	tokenResponse := &models.ConnectTokenResponse{}
	err = json.Unmarshal(body, tokenResponse)
	if err != nil {
		return nil, fmt.Errorf("error reading token exchange response from Stripe: [%v]", err)
	}

	if resp.StatusCode != http.StatusOK || tokenResponse.Error != "" {
		return nil, fmt.Errorf("error status [%v] back from Stripe token exchange: [%s]", resp.StatusCode, tokenResponse.ErrorDescription)
	}

	return &models.StripeConnectRest{
		AccessToken:    tokenResponse.AccessToken,
		RefreshToken:   tokenResponse.RefreshToken,
		TokenType:      tokenResponse.TokenType,
		PublishableKey: tokenResponse.PublishableKey,
		UserID:         tokenResponse.UserID,
		Scope:          tokenResponse.Scope,
	}, nil
}
