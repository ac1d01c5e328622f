package models

import "time"

// CheckoutRequest is the body of a request to start a PayPal checkout.
type CheckoutRequest struct {
	Reference   string `json:"reference"   validate:"required,max=127"`
	Description string `json:"description" validate:"max=127"`
	Amount      string `json:"amount"      validate:"required"`
	// Currency defaults to the configured checkout currency.
	Currency string `json:"currency" validate:"omitempty,len=3"`
	// Intent defaults to CAPTURE.
	Intent string `json:"intent" validate:"omitempty,oneof=CAPTURE AUTHORIZE"`
}

// OrderRecordDB is the stored record of a checkout order.
type OrderRecordDB struct {
	ID            string          `bson:"_id"`
	PayPalOrderID string          `bson:"paypal_order_id"`
	Reference     string          `bson:"reference"`
	Description   string          `bson:"description,omitempty"`
	Amount        Money           `bson:"amount"`
	Intent        Intent          `bson:"intent"`
	Status        OrderStatus     `bson:"status"`
	Links         Links           `bson:"links,omitempty"`
	CreatedBy     AuthUserDetails `bson:"created_by"`
	CreatedAt     time.Time       `bson:"created_at"`
	UpdatedAt     time.Time       `bson:"updated_at"`
}

// CheckoutOrderRest is the REST representation of a checkout order.
type CheckoutOrderRest struct {
	ID            string            `json:"id"`
	PayPalOrderID string            `json:"paypal_order_id"`
	Reference     string            `json:"reference"`
	Description   string            `json:"description,omitempty"`
	Amount        Money             `json:"amount"`
	Intent        Intent            `json:"intent"`
	Status        OrderStatus       `json:"status"`
	CreatedBy     AuthUserDetails   `json:"created_by"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Links         CheckoutLinksRest `json:"links"`
}

// CheckoutLinksRest holds the links of a checkout order. Approve is where
// the payer is sent to approve the order.
type CheckoutLinksRest struct {
	Self    string `json:"self"`
	Approve string `json:"approve,omitempty"`
	PayPal  string `json:"paypal,omitempty"`
}
