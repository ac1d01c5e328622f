package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
	"github.com/companieshouse/paypal.api.ch.gov.uk/service"
	"github.com/companieshouse/paypal.api.ch.gov.uk/utils"
	"github.com/gorilla/mux"

	"gopkg.in/go-playground/validator.v9"
)

// HandleCreateCheckoutOrder creates a PayPal order for the checkout request and returns it with the link the payer approves it at
func HandleCreateCheckoutOrder(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteMessageWithStatus(w, req, "request body empty", http.StatusBadRequest)
		return
	}

	var checkoutRequest models.CheckoutRequest
	if err := json.NewDecoder(req.Body).Decode(&checkoutRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteMessageWithStatus(w, req, "request body invalid", http.StatusBadRequest)
		return
	}

	if err := validateCheckoutRequest(checkoutRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create checkout order: [%v]", err))
		utils.WriteMessageWithStatus(w, req, err.Error(), http.StatusBadRequest)
		return
	}

	order, responseType, err := checkoutService.CreateOrder(req, checkoutRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating checkout order: [%v]", err))
		writeServiceError(w, req, responseType, err)
		return
	}

	w.Header().Set("Location", order.Links.Approve)
	utils.WriteJSONWithStatus(w, req, order, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new checkout order", log.Data{"order_record_id": order.ID, "paypal_order_id": order.PayPalOrderID, "status": http.StatusCreated})
}

// HandleGetCheckoutOrder returns a checkout order with its current PayPal status
func HandleGetCheckoutOrder(w http.ResponseWriter, req *http.Request) {
	orderID := mux.Vars(req)["order_id"]
	if orderID == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		utils.WriteMessageWithStatus(w, req, "order id not supplied", http.StatusBadRequest)
		return
	}

	order, responseType, err := checkoutService.GetOrder(req, orderID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting checkout order: [%v]", err), log.Data{"paypal_order_id": orderID})
		writeServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, order, http.StatusOK)
}

// HandleCaptureCheckoutOrder captures, or authorizes, an order the payer has approved
func HandleCaptureCheckoutOrder(w http.ResponseWriter, req *http.Request) {
	orderID := mux.Vars(req)["order_id"]
	if orderID == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		utils.WriteMessageWithStatus(w, req, "order id not supplied", http.StatusBadRequest)
		return
	}

	order, responseType, err := checkoutService.CaptureOrder(req, orderID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error capturing checkout order: [%v]", err), log.Data{"paypal_order_id": orderID})
		writeServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, order, http.StatusOK)

	log.InfoR(req, "Successful POST request to capture checkout order", log.Data{"paypal_order_id": orderID, "status": order.Status})
}

func writeServiceError(w http.ResponseWriter, req *http.Request, responseType service.ResponseType, err error) {
	switch responseType {
	case service.InvalidData:
		utils.WriteMessageWithStatus(w, req, err.Error(), http.StatusBadRequest)
	case service.NotFound:
		utils.WriteMessageWithStatus(w, req, "checkout order not found", http.StatusNotFound)
	case service.Unprocessable:
		utils.WriteMessageWithStatus(w, req, "checkout order cannot be completed in its current state", http.StatusUnprocessableEntity)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func validateCheckoutRequest(checkoutRequest models.CheckoutRequest) error {
	validate := validator.New()
	return validate.Struct(checkoutRequest)
}
