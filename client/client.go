// Package client is a typed client for the PayPal REST API. A Client holds
// the credentials and environment and caches the OAuth2 access token;
// Execute dispatches any Endpoint through it.
package client

import (
	"net/http"
	"time"
)

// RequestObserver is notified after every API call. StatusCode is zero
// when no response was received.
type RequestObserver interface {
	ObserveRequest(operation string, statusCode int, duration time.Duration)
}

// Client is a PayPal REST API client. It is safe for concurrent use.
type Client struct {
	clientID     string
	secret       string
	env          Environment
	httpClient   *http.Client
	observer     RequestObserver
	tokens       *tokenCache
	tokenTimeout time.Duration
	now          func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for all calls.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithObserver sets an observer notified after each API call.
func WithObserver(o RequestObserver) Option {
	return func(c *Client) {
		c.observer = o
	}
}

func withTokenTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.tokenTimeout = d
	}
}

func withClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New returns a Client for the given credentials and environment. It does
// no I/O; the access token is fetched on first use or by GetAccessToken.
func New(clientID, secret string, env Environment, opts ...Option) *Client {
	c := &Client{
		clientID:     clientID,
		secret:       secret,
		env:          env,
		httpClient:   &http.Client{},
		tokens:       &tokenCache{},
		tokenTimeout: defaultTokenTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientID returns the client id the Client authenticates with.
func (c *Client) ClientID() string {
	return c.clientID
}

// Environment returns the environment the Client calls.
func (c *Client) Environment() Environment {
	return c.env
}

func (c *Client) observe(operation string, statusCode int, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveRequest(operation, statusCode, c.now().Sub(start))
}
