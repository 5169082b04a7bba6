package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/photonow/orders.api.photonow.io/service"

	"github.com/companieshouse/chs.go/log"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
)

// handleEmailMessage allows us to mock the call to produceEmailMessage for unit tests
var handleEmailMessage = produceEmailMessage

// maxWebhookBytes caps the webhook body read, per Stripe's guidance
const maxWebhookBytes = int64(65536)

// HandleStripeWebhook verifies and processes event notifications from
// Stripe. A payment_intent.succeeded event fulfils the order behind the
// intent and queues the confirmation email.
func HandleStripeWebhook(w http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(w, req.Body, maxWebhookBytes)
	payload, err := io.ReadAll(req.Body)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading webhook request body: [%v]", err))
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	event, err := webhook.ConstructEvent(payload, req.Header.Get("Stripe-Signature"), orderService.Config.StripeWebhookSecret)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error verifying webhook signature: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if event.Type != "payment_intent.succeeded" {
		log.InfoR(req, "Ignoring webhook event", log.Data{"event_type": event.Type})
		w.WriteHeader(http.StatusOK)
		return
	}

	var paymentIntent stripe.PaymentIntent
	err = json.Unmarshal(event.Data.Raw, &paymentIntent)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error parsing payment intent from webhook event: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, transitioned, responseType, err := orderService.FulfillOrder(paymentIntent.ID, paymentIntent.ReceiptEmail)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error fulfilling order: [%v]", err), log.Data{"payment_intent_id": paymentIntent.ID})
		switch responseType {
		case service.NotFound:
			w.WriteHeader(http.StatusNotFound)
			return
		default:
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	// A replayed event finds the order already fulfilled. Acknowledge it
	// without sending another confirmation email.
	if transitioned && order.ReceiptEmail != "" {
		err = handleEmailMessage(order)
		if err != nil {
			log.ErrorR(req, fmt.Errorf("error producing confirmation email message: [%v]", err), log.Data{"order_id": order.ID})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	log.InfoR(req, "Successfully processed webhook event", log.Data{"order_id": order.ID, "payment_intent_id": paymentIntent.ID, "fulfilled_now": transitioned})
	w.WriteHeader(http.StatusOK)
}
