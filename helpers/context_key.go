package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyUserDetails is the key for the AuthUserDetails of the caller, added to the request context by the user authentication interceptor
var ContextKeyUserDetails = ContextKey("user_details")
