package api

import (
	"net/http"
	"net/url"

	"github.com/companieshouse/paypal.api.ch.gov.uk/client"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
)

const invoicesPath = "/v2/invoicing/invoices"

// GenerateInvoiceNumber generates the next invoice number available to
// the merchant. The number after INVOICE-1234 is INVOICE-1235.
type GenerateInvoiceNumber struct {
	client.Responds[models.InvoiceNumber]
	client.NoQuery

	// InvoiceNumber is optional.
	InvoiceNumber *models.InvoiceNumber
}

func NewGenerateInvoiceNumber(number *models.InvoiceNumber) *GenerateInvoiceNumber {
	return &GenerateInvoiceNumber{InvoiceNumber: number}
}

func (e *GenerateInvoiceNumber) Method() string       { return http.MethodPost }
func (e *GenerateInvoiceNumber) RelativePath() string { return "/v2/invoicing/generate-next-invoice-number" }

func (e *GenerateInvoiceNumber) Body() any {
	if e.InvoiceNumber == nil {
		return nil
	}
	return e.InvoiceNumber
}

// CreateDraftInvoice creates a draft invoice. Send the invoice to move it
// to a payable state.
type CreateDraftInvoice struct {
	client.Responds[models.Invoice]
	client.NoQuery
	Invoice *models.InvoicePayload
}

func NewCreateDraftInvoice(invoice *models.InvoicePayload) *CreateDraftInvoice {
	return &CreateDraftInvoice{Invoice: invoice}
}

func (e *CreateDraftInvoice) Method() string       { return http.MethodPost }
func (e *CreateDraftInvoice) RelativePath() string { return invoicesPath }

func (e *CreateDraftInvoice) Body() any {
	if e.Invoice == nil {
		return nil
	}
	return e.Invoice
}

// GetInvoice shows the details of an invoice.
type GetInvoice struct {
	client.Responds[models.Invoice]
	client.NoQuery
	client.NoBody
	InvoiceID string
}

func NewGetInvoice(invoiceID string) *GetInvoice {
	return &GetInvoice{InvoiceID: invoiceID}
}

func (e *GetInvoice) Method() string { return http.MethodGet }

func (e *GetInvoice) RelativePath() string {
	return invoicesPath + "/" + url.PathEscape(e.InvoiceID)
}

// ListInvoices lists invoices, a page at a time.
type ListInvoices struct {
	client.Responds[models.InvoiceList]
	client.NoBody
	Params models.Query
}

func NewListInvoices(params models.Query) *ListInvoices {
	return &ListInvoices{Params: params}
}

func (e *ListInvoices) Method() string       { return http.MethodGet }
func (e *ListInvoices) RelativePath() string { return invoicesPath }
func (e *ListInvoices) Query() any           { return e.Params }

// DeleteInvoice deletes a draft or scheduled invoice. Sent invoices must
// be cancelled instead.
type DeleteInvoice struct {
	client.Responds[client.NoContent]
	client.NoQuery
	client.NoBody
	InvoiceID string
}

func NewDeleteInvoice(invoiceID string) *DeleteInvoice {
	return &DeleteInvoice{InvoiceID: invoiceID}
}

func (e *DeleteInvoice) Method() string { return http.MethodDelete }

func (e *DeleteInvoice) RelativePath() string {
	return invoicesPath + "/" + url.PathEscape(e.InvoiceID)
}

// UpdateInvoiceQuery selects who is notified of an invoice update.
type UpdateInvoiceQuery struct {
	SendToRecipient bool `url:"send_to_recipient"`
	SendToInvoicer  bool `url:"send_to_invoicer"`
}

// UpdateInvoice fully replaces an invoice. Partial updates are not
// supported, so Invoice must be complete and carry its id.
type UpdateInvoice struct {
	client.Responds[models.Invoice]
	Invoice models.Invoice
	Notify  UpdateInvoiceQuery
}

func NewUpdateInvoice(invoice models.Invoice, notify UpdateInvoiceQuery) *UpdateInvoice {
	return &UpdateInvoice{Invoice: invoice, Notify: notify}
}

func (e *UpdateInvoice) Method() string { return http.MethodPut }

func (e *UpdateInvoice) RelativePath() string {
	return invoicesPath + "/" + url.PathEscape(e.Invoice.ID)
}

func (e *UpdateInvoice) Query() any { return e.Notify }
func (e *UpdateInvoice) Body() any  { return e.Invoice }

// CancelInvoice cancels a sent invoice and optionally notifies the
// payer, the merchant and any additional recipients.
type CancelInvoice struct {
	client.Responds[client.NoContent]
	client.NoQuery
	InvoiceID string
	Reason    models.CancelReason
}

func NewCancelInvoice(invoiceID string, reason models.CancelReason) *CancelInvoice {
	return &CancelInvoice{InvoiceID: invoiceID, Reason: reason}
}

func (e *CancelInvoice) Method() string { return http.MethodPost }

func (e *CancelInvoice) RelativePath() string {
	return invoicesPath + "/" + url.PathEscape(e.InvoiceID) + "/cancel"
}

func (e *CancelInvoice) Body() any { return e.Reason }

// SendInvoice sends an invoice to its recipients. The response holds the
// payer view link when PayPal returns one.
type SendInvoice struct {
	client.Responds[models.LinkDescription]
	client.NoQuery
	InvoiceID string
	Payload   models.SendInvoicePayload
}

func NewSendInvoice(invoiceID string, payload models.SendInvoicePayload) *SendInvoice {
	return &SendInvoice{InvoiceID: invoiceID, Payload: payload}
}

func (e *SendInvoice) Method() string { return http.MethodPost }

func (e *SendInvoice) RelativePath() string {
	return invoicesPath + "/" + url.PathEscape(e.InvoiceID) + "/send"
}

func (e *SendInvoice) Body() any { return e.Payload }

// RecordInvoicePayment records a payment made outside PayPal against an
// invoice.
type RecordInvoicePayment struct {
	client.Responds[models.RecordPaymentResponse]
	client.NoQuery
	InvoiceID string
	Payment   models.RecordPaymentPayload
}

func NewRecordInvoicePayment(invoiceID string, payment models.RecordPaymentPayload) *RecordInvoicePayment {
	return &RecordInvoicePayment{InvoiceID: invoiceID, Payment: payment}
}

func (e *RecordInvoicePayment) Method() string { return http.MethodPost }

func (e *RecordInvoicePayment) RelativePath() string {
	return invoicesPath + "/" + url.PathEscape(e.InvoiceID) + "/payments"
}

func (e *RecordInvoicePayment) Body() any { return e.Payment }
