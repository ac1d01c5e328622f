package models

import "time"

// FileReference is a file attached to an invoice.
type FileReference struct {
	ID           string     `json:"id,omitempty"`
	ReferenceURL string     `json:"reference_url,omitempty"`
	ContentType  string     `json:"content_type,omitempty"`
	CreateTime   *time.Time `json:"create_time,omitempty"`
	Size         string     `json:"size,omitempty"`
}

// PaymentTermType is the payment term of an invoice.
type PaymentTermType string

const (
	PaymentTermDueOnReceipt       PaymentTermType = "DUE_ON_RECEIPT"
	PaymentTermDueOnDateSpecified PaymentTermType = "DUE_ON_DATE_SPECIFIED"
	PaymentTermNet10              PaymentTermType = "NET_10"
	PaymentTermNet15              PaymentTermType = "NET_15"
	PaymentTermNet30              PaymentTermType = "NET_30"
	PaymentTermNet45              PaymentTermType = "NET_45"
	PaymentTermNet60              PaymentTermType = "NET_60"
	PaymentTermNet90              PaymentTermType = "NET_90"
	PaymentTermNoDueDate          PaymentTermType = "NO_DUE_DATE"
)

// PaymentTerm is when an invoice is due.
type PaymentTerm struct {
	TermType PaymentTermType `json:"term_type,omitempty"`
	// DueDate is a date in YYYY-MM-DD format.
	DueDate string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// FlowType is how an invoice was created.
type FlowType string

const (
	FlowMultipleRecipientsGroup FlowType = "MULTIPLE_RECIPIENTS_GROUP"
	FlowBatch                   FlowType = "BATCH"
	FlowRegularSingle           FlowType = "REGULAR_SINGLE"
)

// InvoiceMetadata holds audit information about an invoice. It is set by PayPal.
type InvoiceMetadata struct {
	CreateTime       *time.Time `json:"create_time,omitempty"`
	CreatedBy        string     `json:"created_by,omitempty"`
	LastUpdateTime   *time.Time `json:"last_update_time,omitempty"`
	LastUpdatedBy    string     `json:"last_updated_by,omitempty"`
	CancelTime       *time.Time `json:"cancel_time,omitempty"`
	CancelledBy      string     `json:"cancelled_by,omitempty"`
	FirstSentTime    *time.Time `json:"first_sent_time,omitempty"`
	LastSentTime     *time.Time `json:"last_sent_time,omitempty"`
	LastSentBy       string     `json:"last_sent_by,omitempty"`
	CreatedByFlow    FlowType   `json:"created_by_flow,omitempty"`
	RecipientViewURL string     `json:"recipient_view_url,omitempty"`
	InvoicerViewURL  string     `json:"invoicer_view_url,omitempty"`
}

// InvoiceDetail holds the details of an invoice. The currency is required.
type InvoiceDetail struct {
	Reference          string           `json:"reference,omitempty"            validate:"max=120"`
	CurrencyCode       Currency         `json:"currency_code"                  validate:"required"`
	Note               string           `json:"note,omitempty"                 validate:"max=4000"`
	TermsAndConditions string           `json:"terms_and_conditions,omitempty" validate:"max=4000"`
	Memo               string           `json:"memo,omitempty"                 validate:"max=500"`
	Attachments        []FileReference  `json:"attachments,omitempty"`
	InvoiceNumber      string           `json:"invoice_number,omitempty"       validate:"max=127"`
	InvoiceDate        string           `json:"invoice_date,omitempty"         validate:"omitempty,datetime=2006-01-02"`
	PaymentTerm        *PaymentTerm     `json:"payment_term,omitempty"`
	Metadata           *InvoiceMetadata `json:"metadata,omitempty"`
}

// Name is the name of a party to an invoice.
type Name struct {
	Prefix            string `json:"prefix,omitempty"`
	GivenName         string `json:"given_name,omitempty"`
	Surname           string `json:"surname,omitempty"`
	MiddleName        string `json:"middle_name,omitempty"`
	Suffix            string `json:"suffix,omitempty"`
	AlternateFullName string `json:"alternate_full_name,omitempty"`
	FullName          string `json:"full_name,omitempty"`
}

// PhoneDetail is a phone number of a party to an invoice.
type PhoneDetail struct {
	CountryCode     string    `json:"country_code"               validate:"required,numeric,max=3"`
	NationalNumber  string    `json:"national_number"            validate:"required,numeric,max=14"`
	ExtensionNumber string    `json:"extension_number,omitempty" validate:"omitempty,numeric"`
	PhoneType       PhoneType `json:"phone_type,omitempty"`
}

// InvoicerInfo is the merchant who issues an invoice.
type InvoicerInfo struct {
	BusinessName    string        `json:"business_name,omitempty"    validate:"max=300"`
	Name            *Name         `json:"name,omitempty"`
	Address         *Address      `json:"address,omitempty"`
	EmailAddress    string        `json:"email_address,omitempty"    validate:"omitempty,email"`
	Phones          []PhoneDetail `json:"phones,omitempty"           validate:"omitempty,dive"`
	Website         string        `json:"website,omitempty"          validate:"omitempty,url"`
	TaxID           string        `json:"tax_id,omitempty"`
	AdditionalNotes string        `json:"additional_notes,omitempty"`
	LogoURL         string        `json:"logo_url,omitempty"         validate:"omitempty,url"`
}

// BillingInfo is the billing information of an invoice recipient.
type BillingInfo struct {
	BusinessName   string        `json:"business_name,omitempty"   validate:"max=300"`
	Name           *Name         `json:"name,omitempty"`
	Address        *Address      `json:"address,omitempty"`
	EmailAddress   string        `json:"email_address,omitempty"   validate:"omitempty,email"`
	Phones         []PhoneDetail `json:"phones,omitempty"          validate:"omitempty,dive"`
	AdditionalInfo string        `json:"additional_info,omitempty"`
	Language       string        `json:"language,omitempty"`
}

// ContactInformation is a name and address.
type ContactInformation struct {
	BusinessName string   `json:"business_name,omitempty"`
	Name         *Name    `json:"name,omitempty"`
	Address      *Address `json:"address,omitempty"`
}

// RecipientInfo is a recipient of an invoice.
type RecipientInfo struct {
	BillingInfo  *BillingInfo        `json:"billing_info,omitempty"`
	ShippingInfo *ContactInformation `json:"shipping_info,omitempty"`
}

// Tax is a tax applied to an invoice item or to shipping.
type Tax struct {
	Name    string `json:"name"             validate:"required,max=100"`
	Percent string `json:"percent"          validate:"required,numeric"`
	Amount  *Money `json:"amount,omitempty"`
}

// Discount is a discount as a percentage or an amount.
type Discount struct {
	Percent string `json:"percent,omitempty" validate:"omitempty,numeric"`
	Amount  *Money `json:"amount,omitempty"`
}

// UnitOfMeasure is the unit of measure of an invoice item.
type UnitOfMeasure string

const (
	UnitOfMeasureQuantity UnitOfMeasure = "QUANTITY"
	UnitOfMeasureHours    UnitOfMeasure = "HOURS"
	UnitOfMeasureAmount   UnitOfMeasure = "AMOUNT"
)

// InvoiceItem is a line item of an invoice.
type InvoiceItem struct {
	ID            string        `json:"id,omitempty"`
	Name          string        `json:"name"                      validate:"required,max=200"`
	Description   string        `json:"description,omitempty"     validate:"max=1000"`
	Quantity      string        `json:"quantity"                  validate:"required,numeric"`
	UnitAmount    Money         `json:"unit_amount"`
	Tax           *Tax          `json:"tax,omitempty"`
	ItemDate      string        `json:"item_date,omitempty"       validate:"omitempty,datetime=2006-01-02"`
	Discount      *Discount     `json:"discount,omitempty"`
	UnitOfMeasure UnitOfMeasure `json:"unit_of_measure,omitempty"`
}

// PartialPayment configures whether the recipient may pay less than the total.
type PartialPayment struct {
	AllowPartialPayment bool   `json:"allow_partial_payment,omitempty"`
	MinimumAmountDue    *Money `json:"minimum_amount_due,omitempty"`
}

// InvoiceConfiguration holds the invoice payment and tax configuration.
type InvoiceConfiguration struct {
	TaxCalculatedAfterDiscount bool            `json:"tax_calculated_after_discount,omitempty"`
	TaxInclusive               bool            `json:"tax_inclusive,omitempty"`
	AllowTip                   bool            `json:"allow_tip,omitempty"`
	PartialPayment             *PartialPayment `json:"partial_payment,omitempty"`
	TemplateID                 string          `json:"template_id,omitempty"`
}

// AggregatedDiscount is the discount applied to the invoice and its items.
type AggregatedDiscount struct {
	InvoiceDiscount *Discount `json:"invoice_discount,omitempty"`
	ItemDiscount    *Money    `json:"item_discount,omitempty"`
}

// ShippingCost is the shipping fee of an invoice.
type ShippingCost struct {
	Amount *Money `json:"amount,omitempty"`
	Tax    *Tax   `json:"tax,omitempty"`
}

// CustomAmount is a custom amount applied to an invoice.
type CustomAmount struct {
	Label  string `json:"label"            validate:"required,max=50"`
	Amount *Money `json:"amount,omitempty"`
}

// InvoiceBreakdown itemises the total amount of an invoice.
type InvoiceBreakdown struct {
	ItemTotal *Money              `json:"item_total,omitempty"`
	Discount  *AggregatedDiscount `json:"discount,omitempty"`
	TaxTotal  *Money              `json:"tax_total,omitempty"`
	Shipping  *ShippingCost       `json:"shipping,omitempty"`
	Custom    *CustomAmount       `json:"custom,omitempty"`
}

// InvoiceAmount is the total amount of an invoice.
type InvoiceAmount struct {
	CurrencyCode Currency          `json:"currency_code"`
	Value        string            `json:"value"`
	Breakdown    *InvoiceBreakdown `json:"breakdown,omitempty"`
}

// PaymentType is whether a payment was made through PayPal or recorded externally.
type PaymentType string

const (
	PaymentTypePayPal   PaymentType = "PAYPAL"
	PaymentTypeExternal PaymentType = "EXTERNAL"
)

// InvoicePaymentMethod is the method of a payment or refund recorded on an invoice.
type InvoicePaymentMethod string

const (
	InvoicePaymentBankTransfer InvoicePaymentMethod = "BANK_TRANSFER"
	InvoicePaymentCash         InvoicePaymentMethod = "CASH"
	InvoicePaymentCheck        InvoicePaymentMethod = "CHECK"
	InvoicePaymentCreditCard   InvoicePaymentMethod = "CREDIT_CARD"
	InvoicePaymentDebitCard    InvoicePaymentMethod = "DEBIT_CARD"
	InvoicePaymentPayPal       InvoicePaymentMethod = "PAYPAL"
	InvoicePaymentWireTransfer InvoicePaymentMethod = "WIRE_TRANSFER"
	InvoicePaymentOther        InvoicePaymentMethod = "OTHER"
)

// PaymentDetail is a payment made against an invoice.
type PaymentDetail struct {
	Type         PaymentType          `json:"type,omitempty"`
	PaymentID    string               `json:"payment_id,omitempty"`
	PaymentDate  string               `json:"payment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Method       InvoicePaymentMethod `json:"method"                 validate:"required"`
	Note         string               `json:"note,omitempty"`
	Amount       *Money               `json:"amount,omitempty"`
	ShippingInfo *ContactInformation  `json:"shipping_info,omitempty"`
}

// InvoicePayments summarises the payments made against an invoice.
type InvoicePayments struct {
	PaidAmount   *Money          `json:"paid_amount,omitempty"`
	Transactions []PaymentDetail `json:"transactions,omitempty"`
}

// RefundDetail is a refund made against an invoice.
type RefundDetail struct {
	Type       PaymentType          `json:"type,omitempty"`
	RefundID   string               `json:"refund_id,omitempty"`
	RefundDate string               `json:"refund_date,omitempty"`
	Amount     *Money               `json:"amount,omitempty"`
	Method     InvoicePaymentMethod `json:"method"`
}

// InvoiceRefunds summarises the refunds made against an invoice.
type InvoiceRefunds struct {
	RefundAmount *Money         `json:"refund_amount,omitempty"`
	Transactions []RefundDetail `json:"transactions,omitempty"`
}

// InvoiceStatus is the status of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft             InvoiceStatus = "DRAFT"
	InvoiceStatusSent              InvoiceStatus = "SENT"
	InvoiceStatusScheduled         InvoiceStatus = "SCHEDULED"
	InvoiceStatusPaid              InvoiceStatus = "PAID"
	InvoiceStatusMarkedAsPaid      InvoiceStatus = "MARKED_AS_PAID"
	InvoiceStatusCancelled         InvoiceStatus = "CANCELLED"
	InvoiceStatusRefunded          InvoiceStatus = "REFUNDED"
	InvoiceStatusPartiallyPaid     InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPartiallyRefunded InvoiceStatus = "PARTIALLY_REFUNDED"
	InvoiceStatusMarkedAsRefunded  InvoiceStatus = "MARKED_AS_REFUNDED"
	InvoiceStatusUnpaid            InvoiceStatus = "UNPAID"
	InvoiceStatusPaymentPending    InvoiceStatus = "PAYMENT_PENDING"
)

// InvoicePayload is the request body to create a draft invoice.
type InvoicePayload struct {
	Detail               InvoiceDetail         `json:"detail"`
	Invoicer             *InvoicerInfo         `json:"invoicer,omitempty"`
	PrimaryRecipients    []RecipientInfo       `json:"primary_recipients,omitempty"    validate:"max=100"`
	AdditionalRecipients []string              `json:"additional_recipients,omitempty" validate:"max=100,dive,email"`
	Items                []InvoiceItem         `json:"items"                           validate:"required,min=1,max=100,dive"`
	Configuration        *InvoiceConfiguration `json:"configuration,omitempty"`
	Amount               *InvoiceAmount        `json:"amount,omitempty"`
}

// Invoice is an invoice as returned by PayPal.
type Invoice struct {
	ID                   string                `json:"id"`
	ParentID             string                `json:"parent_id,omitempty"`
	Status               InvoiceStatus         `json:"status"`
	Detail               InvoiceDetail         `json:"detail"`
	Invoicer             *InvoicerInfo         `json:"invoicer,omitempty"`
	PrimaryRecipients    []RecipientInfo       `json:"primary_recipients,omitempty"`
	AdditionalRecipients []string              `json:"additional_recipients,omitempty"`
	Items                []InvoiceItem         `json:"items,omitempty"`
	Configuration        *InvoiceConfiguration `json:"configuration,omitempty"`
	Amount               *InvoiceAmount        `json:"amount,omitempty"`
	DueAmount            *Money                `json:"due_amount,omitempty"`
	Gratuity             *Money                `json:"gratuity,omitempty"`
	Payments             *InvoicePayments      `json:"payments,omitempty"`
	Refunds              *InvoiceRefunds       `json:"refunds,omitempty"`
	Links                Links                 `json:"links,omitempty"`
}

// InvoiceList is a page of invoices.
type InvoiceList struct {
	TotalItems int       `json:"total_items"`
	TotalPages int       `json:"total_pages"`
	Items      []Invoice `json:"items"`
	Links      Links     `json:"links,omitempty"`
}

// CancelReason is the request body to cancel a sent invoice.
type CancelReason struct {
	Subject              string   `json:"subject,omitempty"`
	Note                 string   `json:"note,omitempty"`
	SendToInvoicer       *bool    `json:"send_to_invoicer,omitempty"`
	SendToRecipient      *bool    `json:"send_to_recipient,omitempty"`
	AdditionalRecipients []string `json:"additional_recipients,omitempty"`
}

// SendInvoicePayload is the request body to send an invoice.
type SendInvoicePayload struct {
	Subject              string   `json:"subject,omitempty"`
	Note                 string   `json:"note,omitempty"`
	SendToInvoicer       *bool    `json:"send_to_invoicer,omitempty"`
	SendToRecipient      *bool    `json:"send_to_recipient,omitempty"`
	AdditionalRecipients []string `json:"additional_recipients,omitempty"`
}

// RecordPaymentPayload is the request body to record an external payment against an invoice.
type RecordPaymentPayload struct {
	PaymentID    string               `json:"payment_id,omitempty"`
	PaymentDate  string               `json:"payment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Method       InvoicePaymentMethod `json:"method"                 validate:"required"`
	Note         string               `json:"note,omitempty"`
	Amount       Money                `json:"amount"`
	ShippingInfo *ContactInformation  `json:"shipping_info,omitempty"`
}

// Validate checks the required fields of the payload.
func (p RecordPaymentPayload) Validate() error {
	return validateStruct(p)
}

// RecordPaymentResponse is the response to recording an invoice payment.
type RecordPaymentResponse struct {
	PaymentID string `json:"payment_id"`
}
