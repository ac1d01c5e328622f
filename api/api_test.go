package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/companieshouse/paypal.api.ch.gov.uk/client"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	baseURL   = "http://paypal.test"
	tokenJSON = `{"access_token":"TOKEN","token_type":"Bearer","app_id":"APP-1","expires_in":32400}`
)

type endpointInfo interface {
	Method() string
	RelativePath() string
	Query() any
	Body() any
}

func newTestClient() *client.Client {
	httpmock.RegisterResponder(http.MethodPost, baseURL+"/v1/oauth2/token", httpmock.NewStringResponder(http.StatusOK, tokenJSON))
	return client.New("id", "secret", client.CustomEnvironment(baseURL))
}

func authorizeOrderPayload() (*models.OrderPayload, error) {
	amount, err := models.NewAmount("EUR", "10.00")
	if err != nil {
		return nil, err
	}
	unit, err := models.NewPurchaseUnitBuilder().Amount(*amount).Build()
	if err != nil {
		return nil, err
	}
	return models.NewOrderPayloadBuilder().Intent(models.IntentAuthorize).PurchaseUnits(*unit).Build()
}

func TestUnitEndpointRoutes(t *testing.T) {
	Convey("Each endpoint has its method and path", t, func() {
		cases := []struct {
			endpoint endpointInfo
			method   string
			path     string
		}{
			{NewCreateOrder(nil), http.MethodPost, "/v2/checkout/orders"},
			{NewShowOrderDetails("5O190127TN364715T"), http.MethodGet, "/v2/checkout/orders/5O190127TN364715T"},
			{NewCaptureOrder("5O190127TN364715T"), http.MethodPost, "/v2/checkout/orders/5O190127TN364715T/capture"},
			{NewAuthorizeOrder("5O190127TN364715T"), http.MethodPost, "/v2/checkout/orders/5O190127TN364715T/authorize"},
			{NewGetAuthorizedPayment("0VF52814937998046"), http.MethodGet, "/v2/payments/authorizations/0VF52814937998046"},
			{NewCaptureAuthorizedPayment("0VF52814937998046", nil), http.MethodPost, "/v2/payments/authorizations/0VF52814937998046/capture"},
			{NewVoidAuthorizedPayment("0VF52814937998046"), http.MethodPost, "/v2/payments/authorizations/0VF52814937998046/void"},
			{NewGetCapturedPayment("2GG279541U471931P"), http.MethodGet, "/v2/payments/captures/2GG279541U471931P"},
			{NewRefundCapturedPayment("2GG279541U471931P", nil), http.MethodPost, "/v2/payments/captures/2GG279541U471931P/refund"},
			{NewGenerateInvoiceNumber(nil), http.MethodPost, "/v2/invoicing/generate-next-invoice-number"},
			{NewCreateDraftInvoice(nil), http.MethodPost, "/v2/invoicing/invoices"},
			{NewGetInvoice("INV2-Z56S-5LLA-Q52L-CPZ5"), http.MethodGet, "/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5"},
			{NewListInvoices(models.Query{}), http.MethodGet, "/v2/invoicing/invoices"},
			{NewDeleteInvoice("INV2-Z56S-5LLA-Q52L-CPZ5"), http.MethodDelete, "/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5"},
			{NewUpdateInvoice(models.Invoice{ID: "INV2-Z56S-5LLA-Q52L-CPZ5"}, UpdateInvoiceQuery{}), http.MethodPut, "/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5"},
			{NewCancelInvoice("INV2-Z56S-5LLA-Q52L-CPZ5", models.CancelReason{}), http.MethodPost, "/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5/cancel"},
			{NewSendInvoice("INV2-Z56S-5LLA-Q52L-CPZ5", models.SendInvoicePayload{}), http.MethodPost, "/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5/send"},
			{NewRecordInvoicePayment("INV2-Z56S-5LLA-Q52L-CPZ5", models.RecordPaymentPayload{}), http.MethodPost, "/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5/payments"},
		}
		for _, c := range cases {
			So(c.endpoint.Method(), ShouldEqual, c.method)
			So(c.endpoint.RelativePath(), ShouldEqual, c.path)
		}
	})

	Convey("Resource ids are escaped", t, func() {
		So(NewShowOrderDetails("a/b").RelativePath(), ShouldEqual, "/v2/checkout/orders/a%2Fb")
	})

	Convey("Optional bodies are omitted", t, func() {
		So(NewCreateOrder(nil).Body(), ShouldBeNil)
		So(NewGenerateInvoiceNumber(nil).Body(), ShouldBeNil)
		So(NewCreateDraftInvoice(nil).Body(), ShouldBeNil)
		So(NewShowOrderDetails("1").Body(), ShouldBeNil)
		So(NewShowOrderDetails("1").Query(), ShouldBeNil)

		body, err := json.Marshal(NewCaptureOrder("1").Body())
		So(err, ShouldBeNil)
		So(string(body), ShouldEqual, `{}`)
	})
}

func TestUnitOrdersAPI(t *testing.T) {
	Convey("Create an authorize intent order", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		c := newTestClient()
		httpmock.RegisterResponder(http.MethodPost, baseURL+"/v2/checkout/orders", func(req *http.Request) (*http.Response, error) {
			var sent models.OrderPayload
			So(json.NewDecoder(req.Body).Decode(&sent), ShouldBeNil)
			So(sent.Intent, ShouldEqual, models.IntentAuthorize)
			So(sent.PurchaseUnits[0].Amount.Value, ShouldEqual, "10.00")
			So(sent.PurchaseUnits[0].Amount.CurrencyCode, ShouldEqual, models.EUR)
			So(req.Header.Get("PayPal-Request-Id"), ShouldEqual, "order-1")
			return httpmock.NewStringResponse(http.StatusCreated, `{
				"id": "5O190127TN364715T",
				"status": "CREATED",
				"links": [
					{"href": "https://api-m.paypal.com/v2/checkout/orders/5O190127TN364715T", "rel": "self", "method": "GET"},
					{"href": "https://www.paypal.com/checkoutnow?token=5O190127TN364715T", "rel": "approve", "method": "GET"}
				]
			}`), nil
		})

		payload, err := authorizeOrderPayload()
		So(err, ShouldBeNil)

		order, err := client.ExecuteWithHeaders(context.Background(), c, NewCreateOrder(payload), client.HeaderParams{RequestID: "order-1"})
		So(err, ShouldBeNil)
		So(order.ID, ShouldEqual, "5O190127TN364715T")
		So(order.Status.Known(), ShouldBeTrue)
		So(order.Links.Rel("approve"), ShouldEqual, "https://www.paypal.com/checkoutnow?token=5O190127TN364715T")
	})

	Convey("Capture an order that is not approved", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		c := newTestClient()
		httpmock.RegisterResponder(http.MethodPost, baseURL+"/v2/checkout/orders/5O190127TN364715T/capture",
			httpmock.NewStringResponder(http.StatusUnprocessableEntity, `{"name":"UNPROCESSABLE_ENTITY","message":"The requested action could not be performed, semantically incorrect, or failed business validation.","details":[{"issue":"ORDER_NOT_APPROVED"}]}`))

		order, err := client.Execute(context.Background(), c, NewCaptureOrder("5O190127TN364715T"))
		So(order, ShouldBeNil)

		var statusErr *client.StatusError
		So(errors.As(err, &statusErr), ShouldBeTrue)
		So(statusErr.PayPal.Name, ShouldEqual, "UNPROCESSABLE_ENTITY")
		So(statusErr.PayPal.Details[0].Issue, ShouldEqual, "ORDER_NOT_APPROVED")
	})

	Convey("Authorize with a payment source token", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		c := newTestClient()
		httpmock.RegisterResponder(http.MethodPost, baseURL+"/v2/checkout/orders/ORDER/authorize", func(req *http.Request) (*http.Response, error) {
			body, _ := io.ReadAll(req.Body)
			So(string(body), ShouldEqual, `{"payment_source":{"token":{"id":"B-1","type":"BILLING_AGREEMENT"}}}`)
			return httpmock.NewStringResponse(http.StatusCreated, `{"id":"ORDER","status":"COMPLETED","purchase_units":[{"amount":{"currency_code":"EUR","value":"10.00"},"payments":{"authorizations":[{"id":"AUTH-1","status":"CREATED"}]}}]}`), nil
		})

		e := NewAuthorizeOrder("ORDER")
		e.PaymentSource = &models.PaymentSource{Token: models.PaymentSourceToken{ID: "B-1", Type: "BILLING_AGREEMENT"}}
		order, err := client.Execute(context.Background(), c, e)
		So(err, ShouldBeNil)
		So(order.Status, ShouldEqual, models.OrderStatusCompleted)
		So(order.PurchaseUnits[0].Payments.Authorizations[0].ID, ShouldEqual, "AUTH-1")
	})
}

func TestUnitPaymentsAPI(t *testing.T) {
	Convey("Capture an authorized payment", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		c := newTestClient()
		httpmock.RegisterResponder(http.MethodPost, baseURL+"/v2/payments/authorizations/AUTH-1/capture", func(req *http.Request) (*http.Response, error) {
			body, _ := io.ReadAll(req.Body)
			So(string(body), ShouldEqual, `{"amount":{"currency_code":"EUR","value":"5.00"}}`)
			return httpmock.NewStringResponse(http.StatusCreated, `{"id":"CAP-1","status":"COMPLETED"}`), nil
		})

		amount := models.EURMoney("5.00")
		capture, err := client.Execute(context.Background(), c, NewCaptureAuthorizedPayment("AUTH-1", &models.CaptureRequest{Amount: &amount}))
		So(err, ShouldBeNil)
		So(capture.ID, ShouldEqual, "CAP-1")
		So(capture.Status, ShouldEqual, models.CaptureCompleted)
	})

	Convey("Void an authorized payment", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		c := newTestClient()
		httpmock.RegisterResponder(http.MethodPost, baseURL+"/v2/payments/authorizations/AUTH-1/void", httpmock.NewStringResponder(http.StatusNoContent, ""))

		res, err := client.Execute(context.Background(), c, NewVoidAuthorizedPayment("AUTH-1"))
		So(err, ShouldBeNil)
		So(res, ShouldResemble, &client.NoContent{})
	})

	Convey("Refund a captured payment in full", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		c := newTestClient()
		httpmock.RegisterResponder(http.MethodPost, baseURL+"/v2/payments/captures/CAP-1/refund", func(req *http.Request) (*http.Response, error) {
			body, _ := io.ReadAll(req.Body)
			So(string(body), ShouldEqual, `{}`)
			return httpmock.NewStringResponse(http.StatusCreated, `{"id":"REF-1","status":"COMPLETED"}`), nil
		})

		refund, err := client.Execute(context.Background(), c, NewRefundCapturedPayment("CAP-1", nil))
		So(err, ShouldBeNil)
		So(refund.ID, ShouldEqual, "REF-1")
	})
}

func TestUnitInvoicingAPI(t *testing.T) {
	Convey("Generate the next invoice number", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		c := newTestClient()
		httpmock.RegisterResponder(http.MethodPost, baseURL+"/v2/invoicing/generate-next-invoice-number",
			httpmock.NewStringResponder(http.StatusOK, `{"invoice_number":"ACR-1235"}`))

		number, err := client.Execute(context.Background(), c, NewGenerateInvoiceNumber(nil))
		So(err, ShouldBeNil)
		So(number.InvoiceNumber, ShouldEqual, "ACR-1235")
	})

	Convey("List invoices with paging", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		c := newTestClient()
		httpmock.RegisterResponder(http.MethodGet, baseURL+"/v2/invoicing/invoices", func(req *http.Request) (*http.Response, error) {
			So(req.URL.Query().Get("page"), ShouldEqual, "1")
			So(req.URL.Query().Get("page_size"), ShouldEqual, "20")
			So(req.URL.Query().Get("total_required"), ShouldEqual, "true")
			So(req.URL.Query().Get("start_time"), ShouldEqual, "2024-01-01T00:00:00Z")
			return httpmock.NewStringResponse(http.StatusOK, `{"total_items":1,"total_pages":1,"items":[{"id":"INV2-1","status":"DRAFT","detail":{"currency_code":"USD"}}]}`), nil
		})

		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		list, err := client.Execute(context.Background(), c, NewListInvoices(models.Query{Page: 1, PageSize: 20, TotalRequired: true, StartTime: &start}))
		So(err, ShouldBeNil)
		So(list.TotalItems, ShouldEqual, 1)
		So(list.Items[0].Status, ShouldEqual, models.InvoiceStatusDraft)
		So(list.Items[0].Detail.CurrencyCode, ShouldEqual, models.USD)
	})

	Convey("Update an invoice and notify the recipient", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		c := newTestClient()
		httpmock.RegisterResponder(http.MethodPut, baseURL+"/v2/invoicing/invoices/INV2-1", func(req *http.Request) (*http.Response, error) {
			So(req.URL.Query().Get("send_to_recipient"), ShouldEqual, "true")
			So(req.URL.Query().Get("send_to_invoicer"), ShouldEqual, "false")
			return httpmock.NewStringResponse(http.StatusOK, `{"id":"INV2-1","status":"DRAFT","detail":{"currency_code":"USD","note":"updated"}}`), nil
		})

		invoice := models.Invoice{ID: "INV2-1", Detail: models.InvoiceDetail{CurrencyCode: models.USD, Note: "updated"}}
		updated, err := client.Execute(context.Background(), c, NewUpdateInvoice(invoice, UpdateInvoiceQuery{SendToRecipient: true}))
		So(err, ShouldBeNil)
		So(updated.Detail.Note, ShouldEqual, "updated")
	})

	Convey("Delete and cancel return no content", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		c := newTestClient()
		httpmock.RegisterResponder(http.MethodDelete, baseURL+"/v2/invoicing/invoices/INV2-1", httpmock.NewStringResponder(http.StatusNoContent, ""))
		httpmock.RegisterResponder(http.MethodPost, baseURL+"/v2/invoicing/invoices/INV2-2/cancel", httpmock.NewStringResponder(http.StatusNoContent, ""))

		_, err := client.Execute(context.Background(), c, NewDeleteInvoice("INV2-1"))
		So(err, ShouldBeNil)
		_, err = client.Execute(context.Background(), c, NewCancelInvoice("INV2-2", models.CancelReason{Note: "Cancelling invoice"}))
		So(err, ShouldBeNil)
	})

	Convey("Record an invoice payment", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		c := newTestClient()
		httpmock.RegisterResponder(http.MethodPost, baseURL+"/v2/invoicing/invoices/INV2-1/payments",
			httpmock.NewStringResponder(http.StatusOK, `{"payment_id":"EXTR-86F38350LX4353815"}`))

		payment := models.RecordPaymentPayload{Method: models.InvoicePaymentCash, Amount: models.USDMoney("10.00")}
		So(payment.Validate(), ShouldBeNil)

		res, err := client.Execute(context.Background(), c, NewRecordInvoicePayment("INV2-1", payment))
		So(err, ShouldBeNil)
		So(res.PaymentID, ShouldEqual, "EXTR-86F38350LX4353815")
	})
}
