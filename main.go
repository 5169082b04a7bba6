package main

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/photonow/orders.api.photonow.io/config"
	"github.com/photonow/orders.api.photonow.io/handlers"
	"github.com/photonow/orders.api.photonow.io/service"

	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "orders.api.photonow.io"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		return
	}

	router := mux.NewRouter()

	handlers.Register(router, *cfg, service.NewStripeService(*cfg))

	log.Info("Starting orders.api.photonow.io service")
	err = http.ListenAndServe(cfg.BindAddr, router)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting orders.api.photonow.io service")
}
