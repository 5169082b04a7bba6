package models

import "time"

// IncomingBasketRequest is the data received in the body of the incoming
// payment intent request
type IncomingBasketRequest struct {
	Pictures []BasketItemRest `json:"pictures" validate:"required,min=1,dive"`
}

// BasketItemRest is a single basket line supplied by the client. Only the
// moment reference and the basket flag are trusted; pricing is re-derived
// server side.
type BasketItemRest struct {
	MomentID      string `json:"momentId" validate:"required"`
	AddedToBasket bool   `json:"addedToBasket"`
}

// CheckOrderStatusRequest is the data received in the body of the incoming
// order status request
type CheckOrderStatusRequest struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
}

// OrderResourceRest is public facing order details to be returned in the
// response
type OrderResourceRest struct {
	ID              string         `json:"id"`
	PaymentIntentID string         `json:"payment_intent_id"`
	Moments         []string       `json:"moments"`
	Amount          string         `json:"amount"`
	Currency        string         `json:"currency"`
	Fulfilled       bool           `json:"fulfilled"`
	CreatedAt       time.Time      `json:"created_at,omitempty"`
	FulfilledAt     time.Time      `json:"fulfilled_at,omitempty"`
	Links           OrderLinksRest `json:"links"`
}

// OrderLinksRest is a set of URLs related to the resource, including self
type OrderLinksRest struct {
	Self         string `json:"self" validate:"required"`
	Confirmation string `json:"confirmation"`
}

// PaymentIntentResourceRest holds the subset of the processor's payment
// intent needed by this service
type PaymentIntentResourceRest struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}
