package models

import "time"

// OrderResourceDB contains all order details to be stored in the DB
type OrderResourceDB struct {
	ID              string    `bson:"_id"`
	PaymentIntentID string    `bson:"payment_intent_id"`
	Moments         []string  `bson:"moments"`
	Amount          int64     `bson:"amount"`
	Currency        string    `bson:"currency"`
	Fulfilled       bool      `bson:"fulfilled"`
	CreatedAt       time.Time `bson:"created_at,omitempty"`
	FulfilledAt     time.Time `bson:"fulfilled_at,omitempty"`
	ReceiptEmail    string    `bson:"receipt_email,omitempty"`
}
