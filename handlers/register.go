package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal.api.ch.gov.uk/interceptors"
	"github.com/companieshouse/paypal.api.ch.gov.uk/service"
	"github.com/gorilla/mux"
)

var checkoutService *service.CheckoutService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, svc *service.CheckoutService, metricsHandler http.Handler) {
	checkoutService = svc

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods(http.MethodGet).Name("get-healthcheck")
	mainRouter.Handle("/metrics", metricsHandler).Methods(http.MethodGet).Name("get-metrics")

	// checkout endpoints need user auth so the caller can be recorded against the order
	checkoutRouter := mainRouter.PathPrefix("/checkout/orders").Subrouter()
	checkoutRouter.HandleFunc("", HandleCreateCheckoutOrder).Methods(http.MethodPost).Name("create-checkout-order")
	checkoutRouter.HandleFunc("/{order_id}", HandleGetCheckoutOrder).Methods(http.MethodGet).Name("get-checkout-order")
	checkoutRouter.HandleFunc("/{order_id}/capture", HandleCaptureCheckoutOrder).Methods(http.MethodPost).Name("capture-checkout-order")

	checkoutRouter.Use(log.Handler, interceptors.UserAuthenticationIntercept)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
