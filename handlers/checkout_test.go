package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/companieshouse/paypal.api.ch.gov.uk/client"
	"github.com/companieshouse/paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/paypal.api.ch.gov.uk/dao"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
	"github.com/companieshouse/paypal.api.ch.gov.uk/service"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

const paypalOrderID = "5O190127TN364715T"

var approveLinks = models.Links{
	{Href: "https://api-m.sandbox.paypal.com/v2/checkout/orders/" + paypalOrderID, Rel: "self", Method: models.LinkMethodGet},
	{Href: "https://www.sandbox.paypal.com/checkoutnow?token=" + paypalOrderID, Rel: "approve", Method: models.LinkMethodGet},
}

func newTestRouter(mockDAO *dao.MockDAO, mockPayPal *service.MockPayPalAPI) *mux.Router {
	router := mux.NewRouter()
	svc := &service.CheckoutService{DAO: mockDAO, PayPal: mockPayPal, Config: *config.DefaultConfig()}
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	Register(router, svc, metrics)
	return router
}

func authorisedRequest(method, path, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.Header.Set("Eric-Identity", "authorised_identity")
	req.Header.Set("Eric-Identity-Type", "oauth2")
	req.Header.Set("ERIC-Authorised-User", "demo@ch.gov.uk; forename=Jane; surname=Doe")
	return req
}

func storedRecord(status models.OrderStatus) *models.OrderRecordDB {
	return &models.OrderRecordDB{
		ID:            "record-1",
		PayPalOrderID: paypalOrderID,
		Reference:     "CONFIRMATION-STATEMENT-123",
		Amount:        models.GBPMoney("13.00"),
		Intent:        models.IntentCapture,
		Status:        status,
		Links:         approveLinks,
	}
}

func TestUnitRegisterRoutes(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Register routes", t, func() {
		router := newTestRouter(dao.NewMockDAO(mockCtrl), service.NewMockPayPalAPI(mockCtrl))
		So(router.GetRoute("get-healthcheck"), ShouldNotBeNil)
		So(router.GetRoute("get-metrics"), ShouldNotBeNil)
		So(router.GetRoute("create-checkout-order"), ShouldNotBeNil)
		So(router.GetRoute("get-checkout-order"), ShouldNotBeNil)
		So(router.GetRoute("capture-checkout-order"), ShouldNotBeNil)
	})

	Convey("Healthcheck needs no authentication", t, func() {
		router := newTestRouter(dao.NewMockDAO(mockCtrl), service.NewMockPayPalAPI(mockCtrl))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("Checkout routes need an authenticated user", t, func() {
		router := newTestRouter(dao.NewMockDAO(mockCtrl), service.NewMockPayPalAPI(mockCtrl))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkout/orders/"+paypalOrderID, nil))
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})
}

func TestUnitHandleCreateCheckoutOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Request body empty", t, func() {
		newTestRouter(dao.NewMockDAO(mockCtrl), service.NewMockPayPalAPI(mockCtrl))
		req, _ := http.NewRequest(http.MethodPost, "/checkout/orders", nil)
		w := httptest.NewRecorder()
		HandleCreateCheckoutOrder(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Request body invalid", t, func() {
		router := newTestRouter(dao.NewMockDAO(mockCtrl), service.NewMockPayPalAPI(mockCtrl))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorisedRequest(http.MethodPost, "/checkout/orders", "{"))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Missing reference", t, func() {
		router := newTestRouter(dao.NewMockDAO(mockCtrl), service.NewMockPayPalAPI(mockCtrl))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorisedRequest(http.MethodPost, "/checkout/orders", `{"amount":"13.00"}`))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, "Reference")
	})

	Convey("Unknown intent", t, func() {
		router := newTestRouter(dao.NewMockDAO(mockCtrl), service.NewMockPayPalAPI(mockCtrl))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorisedRequest(http.MethodPost, "/checkout/orders", `{"reference":"ref","amount":"13.00","intent":"SALE"}`))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Invalid amount", t, func() {
		router := newTestRouter(dao.NewMockDAO(mockCtrl), service.NewMockPayPalAPI(mockCtrl))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorisedRequest(http.MethodPost, "/checkout/orders", `{"reference":"ref","amount":"ten"}`))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Error from PayPal", t, func() {
		mockPayPal := service.NewMockPayPalAPI(mockCtrl)
		router := newTestRouter(dao.NewMockDAO(mockCtrl), mockPayPal)
		mockPayPal.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("error"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorisedRequest(http.MethodPost, "/checkout/orders", `{"reference":"ref","amount":"13.00"}`))
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Successful create", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockPayPal := service.NewMockPayPalAPI(mockCtrl)
		router := newTestRouter(mockDAO, mockPayPal)

		mockPayPal.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.Order{ID: paypalOrderID, Status: models.OrderStatusCreated, Links: approveLinks}, nil)
		mockDAO.EXPECT().CreateOrderRecord(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, record *models.OrderRecordDB) error {
			So(record.CreatedBy, ShouldResemble, models.AuthUserDetails{ID: "authorised_identity", Email: "demo@ch.gov.uk", Forename: "Jane", Surname: "Doe"})
			return nil
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorisedRequest(http.MethodPost, "/checkout/orders", `{"reference":"CONFIRMATION-STATEMENT-123","amount":"13.00"}`))
		So(w.Code, ShouldEqual, http.StatusCreated)
		So(w.Header().Get("Location"), ShouldEqual, "https://www.sandbox.paypal.com/checkoutnow?token="+paypalOrderID)

		var body models.CheckoutOrderRest
		So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
		So(body.PayPalOrderID, ShouldEqual, paypalOrderID)
		So(body.Status, ShouldEqual, models.OrderStatusCreated)
		So(body.Amount, ShouldResemble, models.GBPMoney("13.00"))
	})
}

func TestUnitHandleGetCheckoutOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("No order id", t, func() {
		newTestRouter(dao.NewMockDAO(mockCtrl), service.NewMockPayPalAPI(mockCtrl))
		w := httptest.NewRecorder()
		HandleGetCheckoutOrder(w, httptest.NewRequest(http.MethodGet, "/checkout/orders/", nil))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Order not found", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockPayPal := service.NewMockPayPalAPI(mockCtrl)
		router := newTestRouter(mockDAO, mockPayPal)

		mockDAO.EXPECT().GetOrderRecord(gomock.Any(), paypalOrderID).Return(nil, nil)
		mockPayPal.EXPECT().ShowOrderDetails(gomock.Any(), paypalOrderID).Return(&models.Order{ID: paypalOrderID, Status: models.OrderStatusCreated}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorisedRequest(http.MethodGet, "/checkout/orders/"+paypalOrderID, ""))
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Order returned", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockPayPal := service.NewMockPayPalAPI(mockCtrl)
		router := newTestRouter(mockDAO, mockPayPal)

		mockDAO.EXPECT().GetOrderRecord(gomock.Any(), paypalOrderID).Return(storedRecord(models.OrderStatusCreated), nil)
		mockPayPal.EXPECT().ShowOrderDetails(gomock.Any(), paypalOrderID).Return(&models.Order{ID: paypalOrderID, Status: models.OrderStatusCreated}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorisedRequest(http.MethodGet, "/checkout/orders/"+paypalOrderID, ""))
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"status":"CREATED"`)
	})
}

func TestUnitHandleCaptureCheckoutOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Order not approved", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockPayPal := service.NewMockPayPalAPI(mockCtrl)
		router := newTestRouter(mockDAO, mockPayPal)

		mockDAO.EXPECT().GetOrderRecord(gomock.Any(), paypalOrderID).Return(storedRecord(models.OrderStatusCreated), nil)
		mockPayPal.EXPECT().CaptureOrder(gomock.Any(), paypalOrderID, "record-1-capture").Return(nil, &client.StatusError{StatusCode: http.StatusUnprocessableEntity})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorisedRequest(http.MethodPost, "/checkout/orders/"+paypalOrderID+"/capture", ""))
		So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
	})

	Convey("Error reading the record", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		router := newTestRouter(mockDAO, service.NewMockPayPalAPI(mockCtrl))

		mockDAO.EXPECT().GetOrderRecord(gomock.Any(), paypalOrderID).Return(nil, errors.New("error"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorisedRequest(http.MethodPost, "/checkout/orders/"+paypalOrderID+"/capture", ""))
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Order captured", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockPayPal := service.NewMockPayPalAPI(mockCtrl)
		router := newTestRouter(mockDAO, mockPayPal)

		mockDAO.EXPECT().GetOrderRecord(gomock.Any(), paypalOrderID).Return(storedRecord(models.OrderStatusApproved), nil)
		mockPayPal.EXPECT().CaptureOrder(gomock.Any(), paypalOrderID, "record-1-capture").Return(&models.Order{ID: paypalOrderID, Status: models.OrderStatusCompleted}, nil)
		mockDAO.EXPECT().UpdateOrderStatus(gomock.Any(), paypalOrderID, models.OrderStatusCompleted, gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authorisedRequest(http.MethodPost, "/checkout/orders/"+paypalOrderID+"/capture", ""))
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"status":"COMPLETED"`)
	})
}
