package service

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/photonow/orders.api.photonow.io/config"
	"github.com/photonow/orders.api.photonow.io/dao"
	"github.com/photonow/orders.api.photonow.io/models"
	"github.com/photonow/orders.api.photonow.io/transformers"
	"golang.org/x/sync/errgroup"
)

// OrderService contains the DAO and payment provider for the order flows
type OrderService struct {
	DAO      dao.DAO
	Provider PaymentProviderService
	Config   config.Config
}

// Platform fee rule: orders at or below the threshold pay the minimum fee,
// larger orders pay a tenth of the amount
const (
	feeThreshold = 500
	minimumFee   = 50
)

// CreatePaymentIntent prices the basket, creates a payment intent with the
// processor and persists a pending order referencing it. The returned
// resource carries the client secret used to confirm payment client side.
func (service *OrderService) CreatePaymentIntent(req *http.Request, basket models.IncomingBasketRequest) (*models.PaymentIntentResourceRest, ResponseType, error) {
	// Only the lines flagged as in the basket are chargeable. Pricing is
	// re-derived from the stored collection, never from the client.
	var momentIDs []string
	for _, picture := range basket.Pictures {
		if picture.AddedToBasket {
			momentIDs = append(momentIDs, picture.MomentID)
		}
	}

	if len(momentIDs) == 0 {
		return nil, InvalidData, fmt.Errorf("no pictures in basket")
	}

	moments, err := service.DAO.GetMomentResources(momentIDs)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting moments from db: [%v]", err)
	}
	if len(moments) != len(momentIDs) {
		return nil, InvalidData, fmt.Errorf("basket references unknown or duplicate moments")
	}

	// An order is priced against one collection and paid out to one
	// photographer. Mixed baskets are rejected rather than silently priced
	// from the first moment.
	collectionID := moments[0].CollectionID
	photographerID := moments[0].PhotographerID
	for _, moment := range moments {
		if moment.CollectionID != collectionID || moment.PhotographerID != photographerID {
			return nil, InvalidData, fmt.Errorf("basket spans multiple collections or photographers")
		}
	}

	var collection *models.CollectionResourceDB
	var photographer *models.UserResourceDB

	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		collection, err = service.DAO.GetCollectionResource(collectionID)
		if err != nil {
			return fmt.Errorf("error getting collection from db: [%v]", err)
		}
		if collection == nil {
			return fmt.Errorf("collection not found. id: %s", collectionID)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		photographer, err = service.DAO.GetUserResource(photographerID)
		if err != nil {
			return fmt.Errorf("error getting photographer from db: [%v]", err)
		}
		if photographer == nil {
			return fmt.Errorf("photographer not found. id: %s", photographerID)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, Error, err
	}

	amount := int64(len(moments)) * collection.Price

	var fee int64
	var destination string
	if !service.Config.IsDevelopment() {
		fee = platformFee(amount)

		if photographer.StripeConnect == nil || photographer.StripeConnect.UserID == "" {
			return nil, InvalidData, fmt.Errorf("photographer [%s] has no connected payout account", photographerID)
		}
		destination = photographer.StripeConnect.UserID
	}

	paymentIntent, err := service.Provider.CreatePaymentIntent(req.Context(), amount, fee, destination)
	if err != nil {
		return nil, Error, fmt.Errorf("error creating payment intent: [%v]", err)
	}

	orderResource := models.OrderResourceDB{
		ID:              generateID(),
		PaymentIntentID: paymentIntent.ID,
		Moments:         momentIDs,
		Amount:          amount,
		Currency:        paymentIntent.Currency,
		Fulfilled:       false,
		// To match the format time is saved to mongo, e.g. "2018-11-22T08:39:16.782Z", truncate the time
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	err = service.DAO.CreateOrderResource(&orderResource)
	if err != nil {
		// The intent exists but the order does not. Cancel the intent so no
		// orphaned chargeable intent is left behind.
		if cancelErr := service.Provider.CancelPaymentIntent(req.Context(), paymentIntent.ID); cancelErr != nil {
			log.ErrorR(req, fmt.Errorf("error cancelling orphaned payment intent: [%v]", cancelErr), log.Data{"payment_intent_id": paymentIntent.ID})
		}
		return nil, Error, fmt.Errorf("error writing order to db: [%v]", err)
	}

	log.InfoR(req, "Created payment intent and pending order", log.Data{"order_id": orderResource.ID, "payment_intent_id": paymentIntent.ID, "amount": amount})

	return paymentIntent, Success, nil
}

// GetOrder fetches an order and decorates it as the public rest resource
// shown on the confirmation page
func (service *OrderService) GetOrder(orderID string) (*models.OrderResourceRest, ResponseType, error) {
	order, err := service.DAO.GetOrderResource(orderID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting order from db: [%v]", err)
	}
	if order == nil {
		return nil, NotFound, fmt.Errorf("order not found. id: %s", orderID)
	}

	orderResource := transformers.OrderTransformer{}.TransformToRest(*order, service.Config.PaymentsWebURL)

	return &orderResource, Success, nil
}

// FulfillOrder marks the order referencing the payment intent as fulfilled.
// The transition happens exactly once. The returned bool reports whether
// this call performed it, so callers can avoid duplicate confirmation
// emails.
func (service *OrderService) FulfillOrder(paymentIntentID string, receiptEmail string) (*models.OrderResourceDB, bool, ResponseType, error) {
	order, transitioned, err := service.DAO.FulfillOrderResource(paymentIntentID, receiptEmail)
	if err != nil {
		return nil, false, Error, fmt.Errorf("error fulfilling order on db: [%v]", err)
	}
	if order == nil {
		return nil, false, NotFound, fmt.Errorf("order not found for payment intent [%s]", paymentIntentID)
	}

	return order, transitioned, Success, nil
}

// CheckOrderStatus polls for the order referencing the payment intent to
// become fulfilled, at the configured fixed interval and attempt ceiling.
// In development the predicate is relaxed to accept an unfulfilled order.
func (service *OrderService) CheckOrderStatus(req *http.Request, paymentIntentID string) (*models.OrderResourceDB, ResponseType, error) {
	delayMillis, err := strconv.Atoi(service.Config.RetryDelayMillis)
	if err != nil {
		return nil, Error, fmt.Errorf("error parsing order status retry delay: [%v]", err)
	}
	attempts, err := strconv.Atoi(service.Config.RetryAttempts)
	if err != nil {
		return nil, Error, fmt.Errorf("error parsing order status retry attempts: [%v]", err)
	}

	getFulfilledOrder := func() (*models.OrderResourceDB, error) {
		order, err := service.DAO.GetOrderResourceByPaymentIntentID(paymentIntentID)
		if err != nil {
			return nil, fmt.Errorf("error getting order from db: [%v]", err)
		}
		if order == nil {
			return nil, fmt.Errorf("order not found for payment intent [%s]", paymentIntentID)
		}
		if !order.Fulfilled && !service.Config.IsDevelopment() {
			return nil, fmt.Errorf("order [%s] is not fulfilled", order.ID)
		}
		return order, nil
	}

	order, err := RetryOperation(req.Context(), getFulfilledOrder, time.Duration(delayMillis)*time.Millisecond, attempts)
	if err != nil {
		return nil, Error, fmt.Errorf("error waiting for order fulfilment: [%v]", err)
	}

	return order, Success, nil
}

func platformFee(amount int64) int64 {
	if amount <= feeThreshold {
		return minimumFee
	}
	return amount / 10
}

// Generates a string of 20 numbers made up of 7 random numbers, followed by 13 numbers derived from the current time
func generateID() (i string) {
	ranNumber := fmt.Sprintf("%07d", rand.Intn(9999999))
	millis := strconv.FormatInt(time.Now().UnixNano()/int64(time.Millisecond), 10)
	return ranNumber + millis
}
