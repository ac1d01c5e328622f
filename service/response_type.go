package service

// ResponseType enumerates the outcomes of a checkout service call
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// NotFound response
	NotFound

	// Success response
	Success

	// Unprocessable response, PayPal refused the action for the order in its current state
	Unprocessable
)

var vals = [...]string{
	"invalid-data",
	"error",
	"not-found",
	"success",
	"unprocessable",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
