package dao

import "github.com/photonow/orders.api.photonow.io/models"

// DAO is an interface for accessing data from a backend store
type DAO interface {
	// CreateOrderResource writes a new order to the DB
	CreateOrderResource(order *models.OrderResourceDB) error

	// GetOrderResource gets an order from the DB. If no order is found, nil
	// is returned
	GetOrderResource(id string) (*models.OrderResourceDB, error)

	// GetOrderResourceByPaymentIntentID gets the order referencing the given
	// payment intent. If no order is found, nil is returned
	GetOrderResourceByPaymentIntentID(paymentIntentID string) (*models.OrderResourceDB, error)

	// FulfillOrderResource marks the order referencing the given payment
	// intent as fulfilled. The returned bool reports whether this call
	// performed the false to true transition, which happens at most once per
	// order
	FulfillOrderResource(paymentIntentID string, receiptEmail string) (*models.OrderResourceDB, bool, error)

	// GetMomentResources gets the moments with the given ids
	GetMomentResources(ids []string) ([]models.MomentResourceDB, error)

	// GetCollectionResource gets a photo collection from the DB. If no
	// collection is found, nil is returned
	GetCollectionResource(id string) (*models.CollectionResourceDB, error)

	// GetUserResource gets a user from the DB. If no user is found, nil is
	// returned
	GetUserResource(id string) (*models.UserResourceDB, error)

	// UpdateUserStripeConnect merges Stripe Express credentials into the
	// user record
	UpdateUserStripeConnect(userID string, connect *models.StripeConnectDB) error

	// CreateConnectStateResource writes a new single-use onboarding state
	// token to the DB
	CreateConnectStateResource(state *models.ConnectStateDB) error

	// ConsumeConnectStateResource deletes the state token and returns the
	// deleted document so the caller can check who it was issued to. If the
	// token does not exist, or was already consumed, nil is returned
	ConsumeConnectStateResource(state string) (*models.ConnectStateDB, error)
}
