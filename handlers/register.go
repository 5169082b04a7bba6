package handlers

import (
	"net/http"

	"github.com/photonow/orders.api.photonow.io/config"
	"github.com/photonow/orders.api.photonow.io/dao"
	"github.com/photonow/orders.api.photonow.io/interceptors"
	"github.com/photonow/orders.api.photonow.io/service"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

var orderService *service.OrderService
var connectService *service.ConnectService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config, provider service.PaymentProviderService) {
	m := dao.NewMongoService(cfg)

	orderService = &service.OrderService{
		DAO:      m,
		Provider: provider,
		Config:   cfg,
	}

	connectService = &service.ConnectService{
		DAO:      m,
		Provider: provider,
		Config:   cfg,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Create subrouters. The webhook endpoint is authenticated by its Stripe
	// signature rather than a user identity, so the router needs to be split
	// up. This allows per-subrouter middleware.

	orderRouter := mainRouter.PathPrefix("/stripe").Subrouter()
	orderRouter.HandleFunc("/payment-intent", HandleCreatePaymentIntent).Methods("POST").Name("create-payment-intent")
	orderRouter.HandleFunc("/check-order-status", HandleCheckOrderStatus).Methods("POST").Name("check-order-status")

	// get-order endpoint backs the confirmation page, so lives outside the /stripe prefix
	getOrderRouter := mainRouter.PathPrefix("/orders/{order_id}").Subrouter()
	getOrderRouter.HandleFunc("", HandleGetOrder).Methods("GET").Name("get-order")

	// webhook endpoint should not be intercepted by the userauth interceptor, so needs to be it's own subrouter
	webhookRouter := mainRouter.PathPrefix("/stripe/webhook").Subrouter()
	webhookRouter.HandleFunc("", HandleStripeWebhook).Methods("POST").Name("handle-stripe-webhook")

	// Express onboarding endpoints act on the calling user, so need user auth
	connectRouter := mainRouter.PathPrefix("/stripe").Subrouter()
	connectRouter.HandleFunc("/start", HandleStartConnect).Methods("GET").Name("start-connect")
	connectRouter.HandleFunc("/request-access", HandleConnectCallback).Methods("GET").Name("handle-connect-callback")

	// Set middleware for subrouters
	orderRouter.Use(log.Handler)
	getOrderRouter.Use(log.Handler)
	webhookRouter.Use(log.Handler)
	connectRouter.Use(log.Handler, interceptors.UserAuthenticationInterceptor)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
