package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/paypal.api.ch.gov.uk/api"
	"github.com/companieshouse/paypal.api.ch.gov.uk/client"
	"github.com/companieshouse/paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
)

// GetPayPalClient builds a PayPal REST client from the config. When
// PAYPAL_API_URL is set it overrides the environment's base URL.
func GetPayPalClient(cfg *config.Config, observer client.RequestObserver) (*client.Client, error) {
	if cfg.PaypalClientID == "" || cfg.PaypalSecret == "" {
		return nil, errors.New("paypal client id and secret must be set")
	}

	env, err := client.ParseEnvironment(cfg.PaypalEnv)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%w]", err)
	}
	if cfg.PaypalAPIURL != "" {
		env = client.CustomEnvironment(cfg.PaypalAPIURL)
	}

	opts := []client.Option{
		client.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second}),
	}
	if observer != nil {
		opts = append(opts, client.WithObserver(observer))
	}

	return client.New(cfg.PaypalClientID, cfg.PaypalSecret, env, opts...), nil
}

// PayPalAPI is the set of PayPal order operations used by the checkout
// service
type PayPalAPI interface {
	CreateOrder(ctx context.Context, payload *models.OrderPayload, requestID string) (*models.Order, error)
	ShowOrderDetails(ctx context.Context, orderID string) (*models.Order, error)
	CaptureOrder(ctx context.Context, orderID, requestID string) (*models.Order, error)
	AuthorizeOrder(ctx context.Context, orderID, requestID string) (*models.Order, error)
}

// PayPalClient implements PayPalAPI on the REST client. Request ids are
// sent as PayPal-Request-Id so that retried calls are idempotent.
type PayPalClient struct {
	Client *client.Client
}

func (p *PayPalClient) CreateOrder(ctx context.Context, payload *models.OrderPayload, requestID string) (*models.Order, error) {
	return client.ExecuteWithHeaders(ctx, p.Client, api.NewCreateOrder(payload), client.HeaderParams{RequestID: requestID})
}

func (p *PayPalClient) ShowOrderDetails(ctx context.Context, orderID string) (*models.Order, error) {
	return client.Execute(ctx, p.Client, api.NewShowOrderDetails(orderID))
}

func (p *PayPalClient) CaptureOrder(ctx context.Context, orderID, requestID string) (*models.Order, error) {
	return client.ExecuteWithHeaders(ctx, p.Client, api.NewCaptureOrder(orderID), client.HeaderParams{RequestID: requestID})
}

func (p *PayPalClient) AuthorizeOrder(ctx context.Context, orderID, requestID string) (*models.Order, error) {
	return client.ExecuteWithHeaders(ctx, p.Client, api.NewAuthorizeOrder(orderID), client.HeaderParams{RequestID: requestID})
}
