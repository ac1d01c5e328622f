// Package compat exposes the client through the method set of
// github.com/plutov/paypal/v4 so code written against that SDK can move
// over without changing its call sites.
package compat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/companieshouse/paypal.api.ch.gov.uk/api"
	"github.com/companieshouse/paypal.api.ch.gov.uk/client"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
	"github.com/plutov/paypal/v4"
)

// PayPalSDK is the subset of the plutov client used for order checkout.
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, paymentSource *paypal.PaymentSource, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
}

var (
	_ PayPalSDK = (*SDK)(nil)
	_ PayPalSDK = (*paypal.Client)(nil)
)

// SDK implements PayPalSDK on top of client.Client.
type SDK struct {
	Client *client.Client
}

// NewSDK returns an SDK backed by c.
func NewSDK(c *client.Client) *SDK {
	return &SDK{Client: c}
}

func (s *SDK) GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error) {
	tok, err := s.Client.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var out paypal.TokenResponse
	if err := convert(tok, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SDK) CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, paymentSource *paypal.PaymentSource, appContext *paypal.ApplicationContext) (*paypal.Order, error) {
	request := struct {
		Intent             string                       `json:"intent"`
		PurchaseUnits      []paypal.PurchaseUnitRequest `json:"purchase_units"`
		PaymentSource      *paypal.PaymentSource        `json:"payment_source,omitempty"`
		ApplicationContext *paypal.ApplicationContext   `json:"application_context,omitempty"`
	}{intent, purchaseUnits, paymentSource, appContext}

	var payload models.OrderPayload
	if err := convert(request, &payload); err != nil {
		return nil, err
	}

	order, err := client.Execute(ctx, s.Client, api.NewCreateOrder(&payload))
	if err != nil {
		return nil, err
	}
	return toOrder(order)
}

func (s *SDK) GetOrder(ctx context.Context, orderID string) (*paypal.Order, error) {
	order, err := client.Execute(ctx, s.Client, api.NewShowOrderDetails(orderID))
	if err != nil {
		return nil, err
	}
	return toOrder(order)
}

func (s *SDK) CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error) {
	endpoint := api.NewCaptureOrder(orderID)
	if captureOrderRequest.PaymentSource != nil && captureOrderRequest.PaymentSource.Token != nil {
		endpoint.PaymentSource = &models.PaymentSource{}
		if err := convert(captureOrderRequest.PaymentSource.Token, &endpoint.PaymentSource.Token); err != nil {
			return nil, err
		}
	}

	order, err := client.Execute(ctx, s.Client, endpoint)
	if err != nil {
		return nil, err
	}

	var out paypal.CaptureOrderResponse
	if err := convert(order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func toOrder(order *models.Order) (*paypal.Order, error) {
	var out paypal.Order
	if err := convert(order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// convert copies between the two type sets through their shared JSON form
func convert(from, to any) error {
	data, err := json.Marshal(from)
	if err != nil {
		return fmt.Errorf("error converting %T: [%w]", from, err)
	}
	if err := json.Unmarshal(data, to); err != nil {
		return fmt.Errorf("error converting %T to %T: [%w]", from, to, err)
	}
	return nil
}
