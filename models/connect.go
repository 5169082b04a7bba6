package models

import "time"

// ConnectStateDB is a single-use state token created before redirecting a
// photographer to the Stripe Express onboarding flow. The token value is the
// document id so that consuming it is a single delete.
type ConnectStateDB struct {
	State     string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	CreatedAt time.Time `bson:"created_at,omitempty"`
}

// ConnectTokenResponse is the body returned by Stripe when exchanging an
// authorization code for Express credentials
type ConnectTokenResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	TokenType        string `json:"token_type"`
	PublishableKey   string `json:"stripe_publishable_key"`
	UserID           string `json:"stripe_user_id"`
	Scope            string `json:"scope"`
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// StripeConnectRest is the decoded form of the token exchange response
// carried between the provider service and the connect flow
type StripeConnectRest struct {
	AccessToken    string `json:"access_token"`
	RefreshToken   string `json:"refresh_token"`
	TokenType      string `json:"token_type"`
	PublishableKey string `json:"publishable_key"`
	UserID         string `json:"user_id"`
	Scope          string `json:"scope"`
}
