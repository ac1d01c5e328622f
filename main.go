package main

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/paypal.api.ch.gov.uk/dao"
	"github.com/companieshouse/paypal.api.ch.gov.uk/handlers"
	"github.com/companieshouse/paypal.api.ch.gov.uk/metrics"
	"github.com/companieshouse/paypal.api.ch.gov.uk/service"
	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "paypal.api.ch.gov.uk"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	collector := metrics.NewCollector()

	paypalClient, err := service.GetPayPalClient(cfg, collector)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	log.Info("paypal client configured", log.Data{"paypal_env": paypalClient.Environment().String()})

	checkoutService := &service.CheckoutService{
		DAO:    dao.NewDAO(cfg),
		PayPal: &service.PayPalClient{Client: paypalClient},
		Config: *cfg,
	}

	router := mux.NewRouter()
	handlers.Register(router, checkoutService, collector.Handler())

	log.Info("Starting paypal.api.ch.gov.uk service")
	err = http.ListenAndServe(cfg.BindAddr, router)
	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting paypal.api.ch.gov.uk service")
}
