package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/photonow/orders.api.photonow.io/models"
	"github.com/photonow/orders.api.photonow.io/service"
	"github.com/photonow/orders.api.photonow.io/utils"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// HandleCreatePaymentIntent derives the price of the pictures in the basket
// and creates a payment intent for the client to confirm
func HandleCreatePaymentIntent(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		writeFailure(w, req, http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingBasketRequest models.IncomingBasketRequest
	err := requestDecoder.Decode(&incomingBasketRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		writeFailure(w, req, http.StatusBadRequest)
		return
	}

	if err = validateRequest(incomingBasketRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create payment intent: [%v]", err))
		writeFailure(w, req, http.StatusBadRequest)
		return
	}

	// once we've read and decoded request body call the order service to handle internal business logic
	paymentIntent, responseType, err := orderService.CreatePaymentIntent(req, incomingBasketRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating payment intent: [%v]", err))
		writeFailure(w, req, statusFor(responseType))
		return
	}

	// The client only needs the secret to confirm the intent; the rest of
	// the resource stays server side
	utils.WriteJSONWithStatus(w, req, models.ClientResponse{Success: true, Data: paymentIntent.ClientSecret}, http.StatusOK)

	log.InfoR(req, "Successful POST request for new payment intent", log.Data{"payment_intent_id": paymentIntent.ID, "status": http.StatusOK})
}

// HandleCheckOrderStatus waits for the order behind a payment intent to be
// fulfilled, and returns the path of its confirmation page
func HandleCheckOrderStatus(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		writeFailure(w, req, http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var checkOrderStatusRequest models.CheckOrderStatusRequest
	err := requestDecoder.Decode(&checkOrderStatusRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		writeFailure(w, req, http.StatusBadRequest)
		return
	}

	if err = validateRequest(checkOrderStatusRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to check order status: [%v]", err))
		writeFailure(w, req, http.StatusBadRequest)
		return
	}

	order, responseType, err := orderService.CheckOrderStatus(req, checkOrderStatusRequest.PaymentIntentID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error checking order status: [%v]", err))
		writeFailure(w, req, statusFor(responseType))
		return
	}

	utils.WriteJSONWithStatus(w, req, models.ClientResponse{Success: true, Data: "/order-confirmation/" + order.ID}, http.StatusOK)

	log.InfoR(req, "Successful POST request for order status", log.Data{"order_id": order.ID, "status": http.StatusOK})
}

// HandleGetOrder returns the decorated order resource shown on the
// confirmation page
func HandleGetOrder(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id := vars["order_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		writeFailure(w, req, http.StatusBadRequest)
		return
	}

	order, responseType, err := orderService.GetOrder(id)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting order: [%v]", err))
		writeFailure(w, req, statusFor(responseType))
		return
	}

	utils.WriteJSONWithStatus(w, req, models.ClientResponse{Success: true, Data: order}, http.StatusOK)

	log.InfoR(req, "Successful GET request for order resource", log.Data{"order_id": order.ID})
}

func validateRequest(request interface{}) error {
	validate := validator.New()
	return validate.Struct(request)
}

// writeFailure responds with the failure envelope. The reason stays in the
// logs so that internal detail never reaches the client.
func writeFailure(w http.ResponseWriter, req *http.Request, status int) {
	utils.WriteJSONWithStatus(w, req, models.ClientResponse{Success: false}, status)
}

func statusFor(responseType service.ResponseType) int {
	switch responseType {
	case service.InvalidData:
		return http.StatusBadRequest
	case service.Forbidden:
		return http.StatusForbidden
	case service.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
