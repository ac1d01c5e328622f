package client

import "net/http"

// Endpoint describes one PayPal operation whose successful response
// decodes into R.
type Endpoint[R any] interface {
	// Method is the HTTP method.
	Method() string

	// RelativePath is the request path, starting with '/'.
	RelativePath() string

	// Query returns a struct encoded into the query string, or nil.
	Query() any

	// Body returns the value sent as the JSON request body, or nil.
	Body() any

	// Response allocates the value the response body is decoded into.
	Response() *R
}

// HeaderOverrider is implemented by endpoints that set headers of their
// own. These are applied after the standard headers.
type HeaderOverrider interface {
	Headers() http.Header
}

// Responds provides Response for endpoints returning R. Embed it.
type Responds[R any] struct{}

func (Responds[R]) Response() *R {
	return new(R)
}

// NoQuery provides an empty Query. Embed it.
type NoQuery struct{}

func (NoQuery) Query() any {
	return nil
}

// NoBody provides an empty Body. Embed it.
type NoBody struct{}

func (NoBody) Body() any {
	return nil
}

// NoContent is the response type of endpoints that return no body.
type NoContent struct{}
