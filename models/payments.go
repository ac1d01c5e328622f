package models

import "time"

// AuthorizedPaymentDetails is an authorized payment as returned by the payments API.
type AuthorizedPaymentDetails struct {
	ID               string                      `json:"id"`
	Status           AuthorizationStatus         `json:"status"`
	StatusDetails    *AuthorizationStatusDetails `json:"status_details,omitempty"`
	Amount           *Money                      `json:"amount,omitempty"`
	InvoiceID        string                      `json:"invoice_id,omitempty"`
	CustomID         string                      `json:"custom_id,omitempty"`
	SellerProtection *SellerProtection           `json:"seller_protection,omitempty"`
	ExpirationTime   *time.Time                  `json:"expiration_time,omitempty"`
	Links            Links                       `json:"links,omitempty"`
	CreateTime       *time.Time                  `json:"create_time,omitempty"`
	UpdateTime       *time.Time                  `json:"update_time,omitempty"`
}

// CaptureRequest is the request body to capture an authorized payment.
// Omitting the amount captures the full authorized amount.
type CaptureRequest struct {
	Amount         *Money `json:"amount,omitempty"`
	InvoiceID      string `json:"invoice_id,omitempty"      validate:"max=127"`
	FinalCapture   *bool  `json:"final_capture,omitempty"`
	NoteToPayer    string `json:"note_to_payer,omitempty"   validate:"max=255"`
	SoftDescriptor string `json:"soft_descriptor,omitempty" validate:"max=22"`
}

// Validate checks the request fields.
func (r CaptureRequest) Validate() error {
	return validateStruct(r)
}

// RefundRequest is the request body to refund a captured payment.
// Omitting the amount refunds the full captured amount.
type RefundRequest struct {
	Amount      *Money `json:"amount,omitempty"`
	InvoiceID   string `json:"invoice_id,omitempty"    validate:"max=127"`
	NoteToPayer string `json:"note_to_payer,omitempty" validate:"max=255"`
}

// Validate checks the request fields.
func (r RefundRequest) Validate() error {
	return validateStruct(r)
}
