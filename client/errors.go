package client

import (
	"fmt"

	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
)

// AuthError is returned when the client credentials exchange fails,
// either because PayPal rejected the credentials or the call did not
// complete.
type AuthError struct {
	// StatusCode is zero when no response was received.
	StatusCode int
	OAuth      *models.OAuthError
	Err        error
}

func (e *AuthError) Error() string {
	switch {
	case e.OAuth != nil:
		return fmt.Sprintf("error getting access token: status [%d]: [%s: %s]", e.StatusCode, e.OAuth.Error, e.OAuth.ErrorDescription)
	case e.Err != nil:
		return fmt.Sprintf("error getting access token: [%v]", e.Err)
	default:
		return fmt.Sprintf("error getting access token: status [%d]", e.StatusCode)
	}
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// RequestError is returned when a request could not be sent or its
// response could not be read.
type RequestError struct {
	Method string
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("error sending request to PayPal: [%s %s]: [%v]", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError is returned for a non-2xx response. PayPal holds the error
// body as sent by PayPal; Body keeps the raw bytes when it could not be
// parsed.
type StatusError struct {
	StatusCode int
	PayPal     models.PayPalError
	Body       []byte
}

func (e *StatusError) Error() string {
	if e.PayPal.Name == "" {
		return fmt.Sprintf("error status [%d] back from PayPal: [%s]", e.StatusCode, string(e.Body))
	}
	return fmt.Sprintf("error status [%d] back from PayPal: [%s: %s]", e.StatusCode, e.PayPal.Name, e.PayPal.Message)
}

// DecodeError is returned when a successful response does not match the
// expected response type.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error reading response from PayPal: [%v]", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
