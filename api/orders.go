// Package api holds the PayPal endpoints. Each type implements
// client.Endpoint and is sent with client.Execute.
package api

import (
	"net/http"
	"net/url"

	"github.com/companieshouse/paypal.api.ch.gov.uk/client"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
)

const ordersPath = "/v2/checkout/orders"

// CreateOrder creates an order.
type CreateOrder struct {
	client.Responds[models.Order]
	client.NoQuery
	Order *models.OrderPayload
}

// NewCreateOrder returns a CreateOrder for a payload built by
// models.OrderPayloadBuilder.
func NewCreateOrder(order *models.OrderPayload) *CreateOrder {
	return &CreateOrder{Order: order}
}

func (e *CreateOrder) Method() string       { return http.MethodPost }
func (e *CreateOrder) RelativePath() string { return ordersPath }

func (e *CreateOrder) Body() any {
	if e.Order == nil {
		return nil
	}
	return e.Order
}

// ShowOrderDetails shows the details of an order.
type ShowOrderDetails struct {
	client.Responds[models.Order]
	client.NoQuery
	client.NoBody
	OrderID string
}

func NewShowOrderDetails(orderID string) *ShowOrderDetails {
	return &ShowOrderDetails{OrderID: orderID}
}

func (e *ShowOrderDetails) Method() string { return http.MethodGet }

func (e *ShowOrderDetails) RelativePath() string {
	return ordersPath + "/" + url.PathEscape(e.OrderID)
}

// CaptureOrder captures payment for an approved order. The payment
// source is optional.
type CaptureOrder struct {
	client.Responds[models.Order]
	client.NoQuery
	OrderID       string
	PaymentSource *models.PaymentSource
}

func NewCaptureOrder(orderID string) *CaptureOrder {
	return &CaptureOrder{OrderID: orderID}
}

func (e *CaptureOrder) Method() string { return http.MethodPost }

func (e *CaptureOrder) RelativePath() string {
	return ordersPath + "/" + url.PathEscape(e.OrderID) + "/capture"
}

func (e *CaptureOrder) Body() any {
	return models.PaymentSourceBody{PaymentSource: e.PaymentSource}
}

// AuthorizeOrder authorizes payment for an order. The buyer must have
// approved the order unless a payment source is given.
type AuthorizeOrder struct {
	client.Responds[models.Order]
	client.NoQuery
	OrderID       string
	PaymentSource *models.PaymentSource
}

func NewAuthorizeOrder(orderID string) *AuthorizeOrder {
	return &AuthorizeOrder{OrderID: orderID}
}

func (e *AuthorizeOrder) Method() string { return http.MethodPost }

func (e *AuthorizeOrder) RelativePath() string {
	return ordersPath + "/" + url.PathEscape(e.OrderID) + "/authorize"
}

func (e *AuthorizeOrder) Body() any {
	return models.PaymentSourceBody{PaymentSource: e.PaymentSource}
}
