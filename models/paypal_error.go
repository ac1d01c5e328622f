package models

// PayPalError is the error body PayPal returns with a non-2xx response.
type PayPalError struct {
	Name            string              `json:"name"`
	Message         string              `json:"message"`
	DebugID         string              `json:"debug_id,omitempty"`
	InformationLink string              `json:"information_link,omitempty"`
	Details         []PayPalErrorDetail `json:"details,omitempty"`
	Links           Links               `json:"links,omitempty"`
}

// PayPalErrorDetail describes one problem reported in a PayPalError.
type PayPalErrorDetail struct {
	Field       string `json:"field,omitempty"`
	Value       string `json:"value,omitempty"`
	Location    string `json:"location,omitempty"`
	Issue       string `json:"issue"`
	Description string `json:"description,omitempty"`
}

// OAuthError is the error body of a rejected token request.
type OAuthError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
