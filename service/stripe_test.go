package service

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/photonow/orders.api.photonow.io/config"

	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"
)

func createStripeService() *StripeService {
	cfg, _ := config.Get()
	cfg.StripeSecretKey = "sk_test_123"
	cfg.ExpressTokenURL = "https://connect.stripe.com/oauth/token"
	return NewStripeService(*cfg)
}

func TestUnitStripeCreatePaymentIntent(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	ctx := context.Background()

	Convey("Payment intent carries the fee and payout destination", t, func() {
		stripeService := createStripeService()

		var sentForm url.Values
		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/payment_intents",
			func(req *http.Request) (*http.Response, error) {
				if err := req.ParseForm(); err != nil {
					return nil, err
				}
				sentForm = req.PostForm
				return httpmock.NewStringResponse(200, `{"id": "pi_123", "client_secret": "secret", "amount": 2000, "currency": "gbp"}`), nil
			})

		paymentIntent, err := stripeService.CreatePaymentIntent(ctx, 2000, 200, "acct_123")
		So(err, ShouldBeNil)
		So(paymentIntent.ID, ShouldEqual, "pi_123")
		So(paymentIntent.ClientSecret, ShouldEqual, "secret")
		So(paymentIntent.Amount, ShouldEqual, 2000)
		So(paymentIntent.Currency, ShouldEqual, "gbp")
		So(sentForm.Get("amount"), ShouldEqual, "2000")
		So(sentForm.Get("currency"), ShouldEqual, "gbp")
		So(sentForm.Get("application_fee_amount"), ShouldEqual, "200")
		So(sentForm.Get("transfer_data[destination]"), ShouldEqual, "acct_123")
	})

	Convey("A zero fee omits the fee and payout destination", t, func() {
		stripeService := createStripeService()

		var sentForm url.Values
		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/payment_intents",
			func(req *http.Request) (*http.Response, error) {
				if err := req.ParseForm(); err != nil {
					return nil, err
				}
				sentForm = req.PostForm
				return httpmock.NewStringResponse(200, `{"id": "pi_123", "client_secret": "secret", "amount": 2000, "currency": "gbp"}`), nil
			})

		_, err := stripeService.CreatePaymentIntent(ctx, 2000, 0, "")
		So(err, ShouldBeNil)
		So(sentForm.Get("application_fee_amount"), ShouldBeEmpty)
		So(sentForm.Get("transfer_data[destination]"), ShouldBeEmpty)
	})

	Convey("Error response back from Stripe", t, func() {
		stripeService := createStripeService()

		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/payment_intents",
			httpmock.NewStringResponder(402, `{"error": {"type": "card_error", "message": "declined"}}`))

		paymentIntent, err := stripeService.CreatePaymentIntent(ctx, 2000, 0, "")
		So(paymentIntent, ShouldBeNil)
		So(err, ShouldNotBeNil)
	})
}

func TestUnitStripeCancelPaymentIntent(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	ctx := context.Background()

	Convey("Successful cancellation", t, func() {
		stripeService := createStripeService()

		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/payment_intents/pi_123/cancel",
			httpmock.NewStringResponder(200, `{"id": "pi_123", "status": "canceled"}`))

		err := stripeService.CancelPaymentIntent(ctx, "pi_123")
		So(err, ShouldBeNil)
	})

	Convey("Error response back from Stripe", t, func() {
		stripeService := createStripeService()

		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/payment_intents/pi_123/cancel",
			httpmock.NewStringResponder(402, `{"error": {"type": "invalid_request_error", "message": "already captured"}}`))

		err := stripeService.CancelPaymentIntent(ctx, "pi_123")
		So(err, ShouldNotBeNil)
	})
}

func TestUnitExchangeAuthorizationCode(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	ctx := context.Background()

	Convey("Successful exchange returns the connect credentials", t, func() {
		stripeService := createStripeService()

		var sentForm url.Values
		httpmock.RegisterResponder("POST", "https://connect.stripe.com/oauth/token",
			func(req *http.Request) (*http.Response, error) {
				if err := req.ParseForm(); err != nil {
					return nil, err
				}
				sentForm = req.PostForm
				return httpmock.NewStringResponse(200, `{
					"access_token": "access",
					"refresh_token": "refresh",
					"token_type": "bearer",
					"stripe_publishable_key": "pk_123",
					"stripe_user_id": "acct_123",
					"scope": "read_write"
				}`), nil
			})

		credentials, err := stripeService.ExchangeAuthorizationCode(ctx, "ac_code")
		So(err, ShouldBeNil)
		So(credentials.AccessToken, ShouldEqual, "access")
		So(credentials.RefreshToken, ShouldEqual, "refresh")
		So(credentials.TokenType, ShouldEqual, "bearer")
		So(credentials.PublishableKey, ShouldEqual, "pk_123")
		So(credentials.UserID, ShouldEqual, "acct_123")
		So(credentials.Scope, ShouldEqual, "read_write")
		So(sentForm.Get("grant_type"), ShouldEqual, "authorization_code")
		So(sentForm.Get("code"), ShouldEqual, "ac_code")
		So(sentForm.Get("client_secret"), ShouldEqual, "sk_test_123")
	})

	Convey("Error payload back from the exchange", t, func() {
		stripeService := createStripeService()

		httpmock.RegisterResponder("POST", "https://connect.stripe.com/oauth/token",
			httpmock.NewStringResponder(400, `{"error": "invalid_grant", "error_description": "code expired"}`))

		credentials, err := stripeService.ExchangeAuthorizationCode(ctx, "ac_code")
		So(credentials, ShouldBeNil)
		So(err.Error(), ShouldEqual, "error status [400] back from Stripe token exchange: [code expired]")
	})

	Convey("Unparseable body back from the exchange", t, func() {
		stripeService := createStripeService()

		httpmock.RegisterResponder("POST", "https://connect.stripe.com/oauth/token",
			httpmock.NewStringResponder(200, `not json`))

		credentials, err := stripeService.ExchangeAuthorizationCode(ctx, "ac_code")
		So(credentials, ShouldBeNil)
		So(err, ShouldNotBeNil)
	})
}
