package models

// UserResourceDB is the subset of the user record this service reads and
// updates
type UserResourceDB struct {
	ID            string           `bson:"_id"`
	Email         string           `bson:"email"`
	Role          string           `bson:"role"`
	StripeConnect *StripeConnectDB `bson:"stripe_connect,omitempty"`
}

// StripeConnectDB holds the credentials granted when a photographer links
// their account to Stripe Express, merged into the user record
type StripeConnectDB struct {
	AccessToken    string `bson:"access_token"`
	RefreshToken   string `bson:"refresh_token"`
	TokenType      string `bson:"token_type"`
	PublishableKey string `bson:"publishable_key"`
	UserID         string `bson:"user_id"`
	Scope          string `bson:"scope"`
}

// AuthUserDetails holds the details of the authenticated user passed in by
// the authentication interceptor
type AuthUserDetails struct {
	ID    string
	Email string
	Role  string
}

// Roles recognised when choosing a post-onboarding redirect
const (
	RolePhotographer = "photographer"
	RoleAdmin        = "admin"
	RoleCustomer     = "customer"
)
