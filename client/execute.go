package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
	"github.com/google/go-querystring/query"
)

// Execute sends e with the default headers and decodes the response.
func Execute[R any](ctx context.Context, c *Client, e Endpoint[R]) (*R, error) {
	return ExecuteWithHeaders(ctx, c, e, HeaderParams{})
}

// ExecuteWithHeaders sends e with the given optional headers and decodes
// the response. An empty response body yields the zero R.
func ExecuteWithHeaders[R any](ctx context.Context, c *Client, e Endpoint[R], params HeaderParams) (*R, error) {
	operation := operationName(e)

	req, err := c.newRequest(ctx, e.Method(), e.RelativePath(), e.Query(), e.Body())
	if err != nil {
		return nil, err
	}

	tok, err := c.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}
	headers, err := c.headers(tok.AccessToken, params)
	if err != nil {
		return nil, err
	}
	req.Header = headers
	if o, ok := e.(HeaderOverrider); ok {
		for k, v := range o.Headers() {
			req.Header[http.CanonicalHeaderKey(k)] = v
		}
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, 0, start)
		return nil, &RequestError{Method: req.Method, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()
	c.observe(operation, resp.StatusCode, start)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Method: req.Method, URL: req.URL.String(), Err: err}
	}

	logData := log.Data{"operation": operation, "method": req.Method, "path": req.URL.Path, "status": resp.StatusCode}
	if debugID := resp.Header.Get("Paypal-Debug-Id"); debugID != "" {
		logData["debug_id"] = debugID
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.tokens.invalidate()
		}
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: data}
		var ppErr models.PayPalError
		if json.Unmarshal(data, &ppErr) == nil {
			statusErr.PayPal = ppErr
		}
		log.Error(statusErr, logData)
		return nil, statusErr
	}
	log.Trace("paypal request complete", logData)

	out := e.Response()
	if out == nil {
		out = new(R)
	}
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Body: data, Err: err}
	}
	return out, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, q, body any) (*http.Request, error) {
	target, err := c.env.MakeURL(path)
	if err != nil {
		return nil, &RequestError{Method: method, URL: path, Err: err}
	}

	if q != nil {
		values, err := query.Values(q)
		if err != nil {
			return nil, &RequestError{Method: method, URL: target, Err: fmt.Errorf("error encoding query: [%w]", err)}
		}
		if len(values) > 0 {
			target += "?" + values.Encode()
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &RequestError{Method: method, URL: target, Err: fmt.Errorf("error marshalling request body: [%w]", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &RequestError{Method: method, URL: target, Err: err}
	}
	return req, nil
}

func operationName(e any) string {
	t := reflect.TypeOf(e)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
