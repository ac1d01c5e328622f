package client

import (
	"fmt"
	"strings"

	"github.com/plutov/paypal/v4"
)

// Environment is a PayPal deployment target.
type Environment struct {
	Name    string
	BaseURL string
}

var (
	// Sandbox is PayPal's test environment.
	Sandbox = Environment{Name: "sandbox", BaseURL: paypal.APIBaseSandBox}

	// Live is PayPal's production environment.
	Live = Environment{Name: "live", BaseURL: paypal.APIBaseLive}
)

// CustomEnvironment returns an Environment rooted at baseURL, for use
// against a mock server.
func CustomEnvironment(baseURL string) Environment {
	return Environment{Name: "custom", BaseURL: strings.TrimRight(baseURL, "/")}
}

// ParseEnvironment returns the Environment for a configuration value.
// "test" is accepted as an alias of "sandbox".
func ParseEnvironment(name string) (Environment, error) {
	switch strings.ToLower(name) {
	case "live":
		return Live, nil
	case "sandbox", "test":
		return Sandbox, nil
	default:
		return Environment{}, fmt.Errorf("invalid paypal env: [%s]", name)
	}
}

// MakeURL joins the base URL and a relative path, which must start with '/'.
func (e Environment) MakeURL(target string) (string, error) {
	if !strings.HasPrefix(target, "/") {
		return "", fmt.Errorf("target path must start with '/': [%s]", target)
	}
	return e.BaseURL + target, nil
}

func (e Environment) String() string {
	return e.Name
}
