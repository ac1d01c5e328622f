// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr           string `env:"BIND_ADDR"            flag:"bind-addr"            flagDesc:"Bind address"`
	Collection         string `env:"MONGODB_COLLECTION"   flag:"mongodb-collection"   flagDesc:"MongoDB collection for data"`
	Database           string `env:"MONGODB_DATABASE"     flag:"mongodb-database"     flagDesc:"MongoDB database for data"`
	MongoDBURL         string `env:"MONGODB_URL"          flag:"mongodb-url"          flagDesc:"MongoDB server URL"`
	PaypalClientID     string `env:"PAYPAL_CLIENTID"      flag:"paypal-client-id"     flagDesc:"Client ID for the PayPal REST API"`
	PaypalSecret       string `env:"PAYPAL_SECRET"        flag:"paypal-secret"        flagDesc:"Secret for the PayPal REST API"`
	PaypalEnv          string `env:"PAYPAL_ENV"           flag:"paypal-env"           flagDesc:"PayPal environment: live, sandbox or test"`
	PaypalAPIURL       string `env:"PAYPAL_API_URL"       flag:"paypal-api-url"       flagDesc:"Overrides the PayPal API base URL"`
	PaypalBrandName    string `env:"PAYPAL_BRAND_NAME"    flag:"paypal-brand-name"    flagDesc:"Brand name shown to the payer on PayPal"`
	CheckoutReturnURL  string `env:"CHECKOUT_RETURN_URL"  flag:"checkout-return-url"  flagDesc:"URL the payer returns to after approving"`
	CheckoutCancelURL  string `env:"CHECKOUT_CANCEL_URL"  flag:"checkout-cancel-url"  flagDesc:"URL the payer returns to after cancelling"`
	CheckoutCurrency   string `env:"CHECKOUT_CURRENCY"    flag:"checkout-currency"    flagDesc:"Default currency for checkout orders"`
	HTTPTimeoutSeconds int    `env:"HTTP_TIMEOUT_SECONDS" flag:"http-timeout-seconds" flagDesc:"Timeout for calls to PayPal"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:           ":8080",
		Database:           "paypal",
		Collection:         "checkout_orders",
		PaypalEnv:          "sandbox",
		CheckoutCurrency:   "GBP",
		HTTPTimeoutSeconds: 30,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
