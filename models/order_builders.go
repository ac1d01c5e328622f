package models

// OrderPayloadBuilder builds an OrderPayload. Intent and at least one
// purchase unit are required; everything else is optional.
type OrderPayloadBuilder struct {
	payload OrderPayload
}

// NewOrderPayloadBuilder returns an empty OrderPayloadBuilder.
func NewOrderPayloadBuilder() *OrderPayloadBuilder {
	return &OrderPayloadBuilder{}
}

func (b *OrderPayloadBuilder) Intent(intent Intent) *OrderPayloadBuilder {
	b.payload.Intent = intent
	return b
}

func (b *OrderPayloadBuilder) PurchaseUnits(units ...PurchaseUnit) *OrderPayloadBuilder {
	b.payload.PurchaseUnits = append(b.payload.PurchaseUnits, units...)
	return b
}

func (b *OrderPayloadBuilder) Payer(payer Payer) *OrderPayloadBuilder {
	b.payload.Payer = &payer
	return b
}

func (b *OrderPayloadBuilder) ApplicationContext(ctx ApplicationContext) *OrderPayloadBuilder {
	b.payload.ApplicationContext = &ctx
	return b
}

func (b *OrderPayloadBuilder) PaymentSource(source OrderPaymentSource) *OrderPayloadBuilder {
	b.payload.PaymentSource = &source
	return b
}

// Build validates the payload and returns it. A missing or invalid field
// fails with a *ValidationError naming the field.
func (b *OrderPayloadBuilder) Build() (*OrderPayload, error) {
	payload := b.payload
	payload.PurchaseUnits = append([]PurchaseUnit(nil), b.payload.PurchaseUnits...)

	if err := validateStruct(payload); err != nil {
		return nil, err
	}
	if payload.Intent == IntentAuthorize && len(payload.PurchaseUnits) > 1 {
		return nil, &ValidationError{Field: "purchase_units", Rule: "max=1"}
	}
	return &payload, nil
}

// PurchaseUnitBuilder builds a PurchaseUnit. The amount is required.
type PurchaseUnitBuilder struct {
	unit PurchaseUnit
}

// NewPurchaseUnitBuilder returns an empty PurchaseUnitBuilder.
func NewPurchaseUnitBuilder() *PurchaseUnitBuilder {
	return &PurchaseUnitBuilder{}
}

func (b *PurchaseUnitBuilder) ReferenceID(id string) *PurchaseUnitBuilder {
	b.unit.ReferenceID = id
	return b
}

func (b *PurchaseUnitBuilder) Amount(amount Amount) *PurchaseUnitBuilder {
	b.unit.Amount = amount
	return b
}

func (b *PurchaseUnitBuilder) Payee(payee Payee) *PurchaseUnitBuilder {
	b.unit.Payee = &payee
	return b
}

func (b *PurchaseUnitBuilder) PaymentInstruction(instruction PaymentInstruction) *PurchaseUnitBuilder {
	b.unit.PaymentInstruction = &instruction
	return b
}

func (b *PurchaseUnitBuilder) Description(description string) *PurchaseUnitBuilder {
	b.unit.Description = description
	return b
}

func (b *PurchaseUnitBuilder) CustomID(id string) *PurchaseUnitBuilder {
	b.unit.CustomID = id
	return b
}

func (b *PurchaseUnitBuilder) InvoiceID(id string) *PurchaseUnitBuilder {
	b.unit.InvoiceID = id
	return b
}

func (b *PurchaseUnitBuilder) SoftDescriptor(descriptor string) *PurchaseUnitBuilder {
	b.unit.SoftDescriptor = descriptor
	return b
}

func (b *PurchaseUnitBuilder) Items(items ...Item) *PurchaseUnitBuilder {
	b.unit.Items = append(b.unit.Items, items...)
	return b
}

func (b *PurchaseUnitBuilder) Shipping(shipping ShippingDetail) *PurchaseUnitBuilder {
	b.unit.Shipping = &shipping
	return b
}

// Build validates the purchase unit and returns it.
func (b *PurchaseUnitBuilder) Build() (*PurchaseUnit, error) {
	unit := b.unit
	unit.Items = append([]Item(nil), b.unit.Items...)
	if len(unit.Items) == 0 {
		unit.Items = nil
	}

	if err := validateStruct(unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

// ItemBuilder builds an order Item. Name, unit amount and quantity are required.
type ItemBuilder struct {
	item Item
}

// NewItemBuilder returns an empty ItemBuilder.
func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{}
}

func (b *ItemBuilder) Name(name string) *ItemBuilder {
	b.item.Name = name
	return b
}

func (b *ItemBuilder) UnitAmount(amount Money) *ItemBuilder {
	b.item.UnitAmount = amount
	return b
}

func (b *ItemBuilder) Tax(tax Money) *ItemBuilder {
	b.item.Tax = &tax
	return b
}

func (b *ItemBuilder) Quantity(quantity string) *ItemBuilder {
	b.item.Quantity = quantity
	return b
}

func (b *ItemBuilder) Description(description string) *ItemBuilder {
	b.item.Description = description
	return b
}

func (b *ItemBuilder) SKU(sku string) *ItemBuilder {
	b.item.SKU = sku
	return b
}

func (b *ItemBuilder) Category(category ItemCategory) *ItemBuilder {
	b.item.Category = category
	return b
}

// Build validates the item and returns it.
func (b *ItemBuilder) Build() (*Item, error) {
	item := b.item
	if err := validateStruct(item); err != nil {
		return nil, err
	}
	return &item, nil
}

// AddressBuilder builds an Address. The country code is required.
type AddressBuilder struct {
	address Address
}

// NewAddressBuilder returns an empty AddressBuilder.
func NewAddressBuilder() *AddressBuilder {
	return &AddressBuilder{}
}

func (b *AddressBuilder) AddressLine1(line string) *AddressBuilder {
	b.address.AddressLine1 = line
	return b
}

func (b *AddressBuilder) AddressLine2(line string) *AddressBuilder {
	b.address.AddressLine2 = line
	return b
}

// AdminArea1 is the state, province or ISO-3166-2 subdivision.
func (b *AddressBuilder) AdminArea1(area string) *AddressBuilder {
	b.address.AdminArea1 = area
	return b
}

// AdminArea2 is the city, town or village.
func (b *AddressBuilder) AdminArea2(area string) *AddressBuilder {
	b.address.AdminArea2 = area
	return b
}

func (b *AddressBuilder) PostalCode(code string) *AddressBuilder {
	b.address.PostalCode = code
	return b
}

func (b *AddressBuilder) CountryCode(code string) *AddressBuilder {
	b.address.CountryCode = code
	return b
}

func (b *AddressBuilder) AddressDetails(details AddressDetails) *AddressBuilder {
	b.address.AddressDetails = &details
	return b
}

// Build validates the address and returns it.
func (b *AddressBuilder) Build() (*Address, error) {
	address := b.address
	if err := validateStruct(address); err != nil {
		return nil, err
	}
	return &address, nil
}

// PaymentCardBuilder builds a PaymentCard. Number and expiry are required.
type PaymentCardBuilder struct {
	card PaymentCard
}

// NewPaymentCardBuilder returns an empty PaymentCardBuilder.
func NewPaymentCardBuilder() *PaymentCardBuilder {
	return &PaymentCardBuilder{}
}

func (b *PaymentCardBuilder) Name(name string) *PaymentCardBuilder {
	b.card.Name = name
	return b
}

func (b *PaymentCardBuilder) Number(number string) *PaymentCardBuilder {
	b.card.Number = number
	return b
}

// Expiry is the card expiry in YYYY-MM format.
func (b *PaymentCardBuilder) Expiry(expiry string) *PaymentCardBuilder {
	b.card.Expiry = expiry
	return b
}

func (b *PaymentCardBuilder) SecurityCode(code string) *PaymentCardBuilder {
	b.card.SecurityCode = code
	return b
}

func (b *PaymentCardBuilder) BillingAddress(address Address) *PaymentCardBuilder {
	b.card.BillingAddress = &address
	return b
}

func (b *PaymentCardBuilder) StoredCredential(credential StoredCredential) *PaymentCardBuilder {
	b.card.StoredCredential = &credential
	return b
}

// Build validates the card and returns it.
func (b *PaymentCardBuilder) Build() (*PaymentCard, error) {
	card := b.card
	if err := validateStruct(card); err != nil {
		return nil, err
	}
	return &card, nil
}
