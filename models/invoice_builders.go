package models

// InvoicePayloadBuilder builds an InvoicePayload. The detail currency and
// at least one item are required.
type InvoicePayloadBuilder struct {
	payload InvoicePayload
}

// NewInvoicePayloadBuilder returns an empty InvoicePayloadBuilder.
func NewInvoicePayloadBuilder() *InvoicePayloadBuilder {
	return &InvoicePayloadBuilder{}
}

func (b *InvoicePayloadBuilder) Detail(detail InvoiceDetail) *InvoicePayloadBuilder {
	b.payload.Detail = detail
	return b
}

func (b *InvoicePayloadBuilder) Invoicer(invoicer InvoicerInfo) *InvoicePayloadBuilder {
	b.payload.Invoicer = &invoicer
	return b
}

func (b *InvoicePayloadBuilder) PrimaryRecipients(recipients ...RecipientInfo) *InvoicePayloadBuilder {
	b.payload.PrimaryRecipients = append(b.payload.PrimaryRecipients, recipients...)
	return b
}

func (b *InvoicePayloadBuilder) AdditionalRecipients(emails ...string) *InvoicePayloadBuilder {
	b.payload.AdditionalRecipients = append(b.payload.AdditionalRecipients, emails...)
	return b
}

func (b *InvoicePayloadBuilder) Items(items ...InvoiceItem) *InvoicePayloadBuilder {
	b.payload.Items = append(b.payload.Items, items...)
	return b
}

func (b *InvoicePayloadBuilder) Configuration(cfg InvoiceConfiguration) *InvoicePayloadBuilder {
	b.payload.Configuration = &cfg
	return b
}

func (b *InvoicePayloadBuilder) Amount(amount InvoiceAmount) *InvoicePayloadBuilder {
	b.payload.Amount = &amount
	return b
}

// Build validates the payload and returns it. Every item must be priced
// in the invoice currency.
func (b *InvoicePayloadBuilder) Build() (*InvoicePayload, error) {
	payload := b.payload
	payload.PrimaryRecipients = append([]RecipientInfo(nil), b.payload.PrimaryRecipients...)
	payload.AdditionalRecipients = append([]string(nil), b.payload.AdditionalRecipients...)
	payload.Items = append([]InvoiceItem(nil), b.payload.Items...)

	if err := validateStruct(payload); err != nil {
		return nil, err
	}
	for _, item := range payload.Items {
		if item.UnitAmount.CurrencyCode != payload.Detail.CurrencyCode {
			return nil, &ValidationError{
				Field: "items.unit_amount.currency_code",
				Rule:  "eqfield=detail.currency_code",
				Value: string(item.UnitAmount.CurrencyCode),
			}
		}
	}
	return &payload, nil
}

// InvoiceDetailBuilder builds an InvoiceDetail. The currency is required.
type InvoiceDetailBuilder struct {
	detail InvoiceDetail
}

// NewInvoiceDetailBuilder returns an empty InvoiceDetailBuilder.
func NewInvoiceDetailBuilder() *InvoiceDetailBuilder {
	return &InvoiceDetailBuilder{}
}

func (b *InvoiceDetailBuilder) CurrencyCode(currency Currency) *InvoiceDetailBuilder {
	b.detail.CurrencyCode = currency
	return b
}

func (b *InvoiceDetailBuilder) Reference(reference string) *InvoiceDetailBuilder {
	b.detail.Reference = reference
	return b
}

func (b *InvoiceDetailBuilder) InvoiceNumber(number string) *InvoiceDetailBuilder {
	b.detail.InvoiceNumber = number
	return b
}

// InvoiceDate is a date in YYYY-MM-DD format.
func (b *InvoiceDetailBuilder) InvoiceDate(date string) *InvoiceDetailBuilder {
	b.detail.InvoiceDate = date
	return b
}

func (b *InvoiceDetailBuilder) Note(note string) *InvoiceDetailBuilder {
	b.detail.Note = note
	return b
}

func (b *InvoiceDetailBuilder) TermsAndConditions(terms string) *InvoiceDetailBuilder {
	b.detail.TermsAndConditions = terms
	return b
}

func (b *InvoiceDetailBuilder) Memo(memo string) *InvoiceDetailBuilder {
	b.detail.Memo = memo
	return b
}

func (b *InvoiceDetailBuilder) PaymentTerm(term PaymentTerm) *InvoiceDetailBuilder {
	b.detail.PaymentTerm = &term
	return b
}

// Build validates the detail and returns it.
func (b *InvoiceDetailBuilder) Build() (*InvoiceDetail, error) {
	detail := b.detail
	if err := validateStruct(detail); err != nil {
		return nil, err
	}
	if !detail.CurrencyCode.Supported() {
		return nil, &InvalidCurrencyError{Code: string(detail.CurrencyCode)}
	}
	return &detail, nil
}

// InvoiceItemBuilder builds an InvoiceItem. Name, quantity and unit amount are required.
type InvoiceItemBuilder struct {
	item InvoiceItem
}

// NewInvoiceItemBuilder returns an empty InvoiceItemBuilder.
func NewInvoiceItemBuilder() *InvoiceItemBuilder {
	return &InvoiceItemBuilder{}
}

func (b *InvoiceItemBuilder) Name(name string) *InvoiceItemBuilder {
	b.item.Name = name
	return b
}

func (b *InvoiceItemBuilder) Description(description string) *InvoiceItemBuilder {
	b.item.Description = description
	return b
}

func (b *InvoiceItemBuilder) Quantity(quantity string) *InvoiceItemBuilder {
	b.item.Quantity = quantity
	return b
}

func (b *InvoiceItemBuilder) UnitAmount(amount Money) *InvoiceItemBuilder {
	b.item.UnitAmount = amount
	return b
}

func (b *InvoiceItemBuilder) Tax(tax Tax) *InvoiceItemBuilder {
	b.item.Tax = &tax
	return b
}

func (b *InvoiceItemBuilder) Discount(discount Discount) *InvoiceItemBuilder {
	b.item.Discount = &discount
	return b
}

func (b *InvoiceItemBuilder) UnitOfMeasure(unit UnitOfMeasure) *InvoiceItemBuilder {
	b.item.UnitOfMeasure = unit
	return b
}

// Build validates the item and returns it.
func (b *InvoiceItemBuilder) Build() (*InvoiceItem, error) {
	item := b.item
	if err := validateStruct(item); err != nil {
		return nil, err
	}
	return &item, nil
}
