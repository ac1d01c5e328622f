package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal.api.ch.gov.uk/client"
	"github.com/companieshouse/paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/paypal.api.ch.gov.uk/dao"
	"github.com/companieshouse/paypal.api.ch.gov.uk/helpers"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
	"github.com/companieshouse/paypal.api.ch.gov.uk/transformers"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CheckoutService creates PayPal orders for checkout requests and keeps a
// record of each one
type CheckoutService struct {
	DAO    dao.DAO
	PayPal PayPalAPI
	Config config.Config
}

// CreateOrder creates a PayPal order for the checkout request and stores a record of it
func (service *CheckoutService) CreateOrder(req *http.Request, checkoutRequest models.CheckoutRequest) (*models.CheckoutOrderRest, ResponseType, error) {
	user, ok := helpers.GetUserDetails(req.Context())
	if !ok {
		return nil, Error, errors.New("invalid AuthUserDetails in request context")
	}

	currency := checkoutRequest.Currency
	if currency == "" {
		currency = service.Config.CheckoutCurrency
	}
	intent := models.Intent(checkoutRequest.Intent)
	if intent == "" {
		intent = models.IntentCapture
	}

	amount, err := models.NewAmount(currency, checkoutRequest.Amount)
	if err != nil {
		return nil, InvalidData, fmt.Errorf("invalid amount: [%w]", err)
	}

	id := uuid.NewString()

	unit, err := models.NewPurchaseUnitBuilder().
		ReferenceID(checkoutRequest.Reference).
		Description(checkoutRequest.Description).
		CustomID(id).
		Amount(*amount).
		Build()
	if err != nil {
		return nil, InvalidData, err
	}

	payload, err := models.NewOrderPayloadBuilder().
		Intent(intent).
		PurchaseUnits(*unit).
		ApplicationContext(models.ApplicationContext{
			BrandName:          service.Config.PaypalBrandName,
			ShippingPreference: models.ShippingNoShipping,
			UserAction:         models.UserActionPayNow,
			ReturnURL:          service.Config.CheckoutReturnURL,
			CancelURL:          service.Config.CheckoutCancelURL,
		}).
		Build()
	if err != nil {
		return nil, InvalidData, err
	}

	log.TraceR(req, "performing PayPal create order request", log.Data{"order_record_id": id, "reference": checkoutRequest.Reference})

	// the record id doubles as the PayPal-Request-Id so a retried create does not place a second order
	order, err := service.PayPal.CreateOrder(req.Context(), payload, id)
	if err != nil {
		return nil, responseTypeFor(err), fmt.Errorf("error creating order: [%w]", err)
	}

	if order.Status != models.OrderStatusCreated {
		log.Debug(fmt.Sprintf("paypal order response status: %s", order.Status))
		return nil, Error, errors.New("failed to correctly create paypal order - status is not CREATED")
	}

	record := transformers.OrderTransformer{}.TransformToDB(id, checkoutRequest, *order, amount.Money(), user)
	if record.Intent == "" {
		record.Intent = intent
	}
	// To match the format time is saved to mongo, truncate the time
	record.CreatedAt = time.Now().Truncate(time.Millisecond)
	record.UpdatedAt = record.CreatedAt

	if err = service.DAO.CreateOrderRecord(req.Context(), &record); err != nil {
		return nil, Error, fmt.Errorf("error writing order record to DB: [%w]", err)
	}

	rest := transformers.OrderTransformer{}.TransformToRest(record)
	return &rest, Success, nil
}

// GetOrder returns the checkout order for a PayPal order id. The stored
// record and PayPal's view of the order are fetched together, and the
// record is brought up to date when the status has moved on.
func (service *CheckoutService) GetOrder(req *http.Request, paypalOrderID string) (*models.CheckoutOrderRest, ResponseType, error) {
	var record *models.OrderRecordDB
	var order *models.Order

	g, ctx := errgroup.WithContext(req.Context())
	g.Go(func() error {
		var err error
		record, err = service.DAO.GetOrderRecord(ctx, paypalOrderID)
		if err != nil {
			return fmt.Errorf("error reading order record from DB: [%w]", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		order, err = service.PayPal.ShowOrderDetails(ctx, paypalOrderID)
		if err != nil {
			return fmt.Errorf("error getting order from PayPal: [%w]", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, responseTypeFor(err), err
	}

	if record == nil {
		return nil, NotFound, fmt.Errorf("order record not found for paypal order [%s]", paypalOrderID)
	}

	if order.Status != record.Status {
		log.InfoR(req, "syncing order status", log.Data{"paypal_order_id": paypalOrderID, "from": record.Status, "to": order.Status})
		if err := service.syncStatus(req.Context(), record, order); err != nil {
			return nil, Error, err
		}
	}

	rest := transformers.OrderTransformer{}.TransformToRest(*record)
	return &rest, Success, nil
}

// CaptureOrder completes an approved order. Orders created with the
// AUTHORIZE intent are authorized rather than captured.
func (service *CheckoutService) CaptureOrder(req *http.Request, paypalOrderID string) (*models.CheckoutOrderRest, ResponseType, error) {
	record, err := service.DAO.GetOrderRecord(req.Context(), paypalOrderID)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading order record from DB: [%w]", err)
	}
	if record == nil {
		return nil, NotFound, fmt.Errorf("order record not found for paypal order [%s]", paypalOrderID)
	}

	var order *models.Order
	if record.Intent == models.IntentAuthorize {
		order, err = service.PayPal.AuthorizeOrder(req.Context(), paypalOrderID, record.ID+"-authorize")
	} else {
		order, err = service.PayPal.CaptureOrder(req.Context(), paypalOrderID, record.ID+"-capture")
	}
	if err != nil {
		return nil, responseTypeFor(err), fmt.Errorf("error completing order with PayPal: [%w]", err)
	}

	if err = service.syncStatus(req.Context(), record, order); err != nil {
		return nil, Error, err
	}

	log.InfoR(req, "order completed", log.Data{"paypal_order_id": paypalOrderID, "intent": record.Intent, "status": record.Status})

	rest := transformers.OrderTransformer{}.TransformToRest(*record)
	return &rest, Success, nil
}

func (service *CheckoutService) syncStatus(ctx context.Context, record *models.OrderRecordDB, order *models.Order) error {
	links := order.Links
	if len(links) == 0 {
		links = record.Links
	}

	if err := service.DAO.UpdateOrderStatus(ctx, record.PayPalOrderID, order.Status, links); err != nil {
		return fmt.Errorf("error updating order record status: [%w]", err)
	}

	record.Status = order.Status
	record.Links = links
	record.UpdatedAt = time.Now().Truncate(time.Millisecond)
	return nil
}

// responseTypeFor maps a PayPal failure onto the response returned to the caller
func responseTypeFor(err error) ResponseType {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusNotFound:
			return NotFound
		case http.StatusUnprocessableEntity:
			return Unprocessable
		}
	}
	return Error
}
