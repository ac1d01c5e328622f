package models

import "time"

// Intent is whether the merchant captures payment immediately or
// authorizes it for capture later.
type Intent string

const (
	// IntentCapture captures payment immediately after the customer pays.
	IntentCapture Intent = "CAPTURE"
	// IntentAuthorize places funds on hold after the customer pays. It is
	// not supported for orders with more than one purchase unit.
	IntentAuthorize Intent = "AUTHORIZE"
)

// PayerName is the name of the payer.
type PayerName struct {
	GivenName string `json:"given_name,omitempty"`
	Surname   string `json:"surname,omitempty"`
}

// PhoneNumber is a phone number in E.164 format.
type PhoneNumber struct {
	NationalNumber string `json:"national_number" validate:"required"`
}

// Phone is a phone number with its type.
type Phone struct {
	PhoneType   PhoneType   `json:"phone_type,omitempty"`
	PhoneNumber PhoneNumber `json:"phone_number"`
}

// TaxIDType is the type of a Brazilian tax id.
type TaxIDType string

const (
	TaxIDTypeBRCPF  TaxIDType = "BR_CPF"
	TaxIDTypeBRCNPJ TaxIDType = "BR_CNPJ"
)

// TaxInfo is the tax information of a payer. Only supported for Brazil.
type TaxInfo struct {
	TaxID     string    `json:"tax_id"      validate:"required"`
	TaxIDType TaxIDType `json:"tax_id_type" validate:"required,oneof=BR_CPF BR_CNPJ"`
}

// Payer is the customer who approves and pays for the order.
type Payer struct {
	Name         *PayerName `json:"name,omitempty"`
	EmailAddress string     `json:"email_address,omitempty" validate:"omitempty,email"`
	PayerID      string     `json:"payer_id,omitempty"`
	Phone        *Phone     `json:"phone,omitempty"`
	BirthDate    string     `json:"birth_date,omitempty"`
	TaxInfo      *TaxInfo   `json:"tax_info,omitempty"`
	Address      *Address   `json:"address,omitempty"`
}

// Breakdown itemises the total amount of a purchase unit.
type Breakdown struct {
	ItemTotal        *Money `json:"item_total,omitempty"`
	Shipping         *Money `json:"shipping,omitempty"`
	Handling         *Money `json:"handling,omitempty"`
	TaxTotal         *Money `json:"tax_total,omitempty"`
	Insurance        *Money `json:"insurance,omitempty"`
	ShippingDiscount *Money `json:"shipping_discount,omitempty"`
	Discount         *Money `json:"discount,omitempty"`
}

// Amount is the total amount of a purchase unit with an optional breakdown.
type Amount struct {
	CurrencyCode Currency   `json:"currency_code"       validate:"required"`
	Value        string     `json:"value"               validate:"required"`
	Breakdown    *Breakdown `json:"breakdown,omitempty"`
}

// NewAmount validates the currency and value and returns an Amount.
func NewAmount(currency, value string) (*Amount, error) {
	m, err := NewMoney(currency, value)
	if err != nil {
		return nil, err
	}
	return &Amount{CurrencyCode: m.CurrencyCode, Value: m.Value}, nil
}

// Money returns the amount without its breakdown.
func (a Amount) Money() Money {
	return Money{CurrencyCode: a.CurrencyCode, Value: a.Value}
}

// Payee is the merchant who receives payment.
type Payee struct {
	EmailAddress string `json:"email_address,omitempty"`
	MerchantID   string `json:"merchant_id,omitempty"`
}

// PlatformFee is a fee the API caller collects on a transaction.
type PlatformFee struct {
	Amount Money  `json:"amount"`
	Payee  *Payee `json:"payee,omitempty"`
}

// DisbursementMode is when funds are released to the payee.
type DisbursementMode string

const (
	DisbursementInstant DisbursementMode = "INSTANT"
	DisbursementDelayed DisbursementMode = "DELAYED"
)

// PaymentInstruction describes how the payment is disbursed.
type PaymentInstruction struct {
	PlatformFees     []PlatformFee    `json:"platform_fees,omitempty" validate:"omitempty,dive"`
	DisbursementMode DisbursementMode `json:"disbursement_mode,omitempty"`
}

// ItemCategory is the category of an item.
type ItemCategory string

const (
	ItemCategoryDigitalGoods  ItemCategory = "DIGITAL_GOODS"
	ItemCategoryPhysicalGoods ItemCategory = "PHYSICAL_GOODS"
	ItemCategoryDonation      ItemCategory = "DONATION"
)

// ShippingName is the name of the recipient of a shipment.
type ShippingName struct {
	FullName string `json:"full_name,omitempty"`
}

// ShippingDetail is the shipping name and address of a purchase unit.
type ShippingDetail struct {
	Name    *ShippingName `json:"name,omitempty"`
	Address *Address      `json:"address,omitempty"`
}

// Item is a line item of a purchase unit.
type Item struct {
	Name        string       `json:"name"                  validate:"required,max=127"`
	UnitAmount  Money        `json:"unit_amount"`
	Tax         *Money       `json:"tax,omitempty"`
	Quantity    string       `json:"quantity"              validate:"required,numeric"`
	Description string       `json:"description,omitempty" validate:"max=127"`
	SKU         string       `json:"sku,omitempty"`
	Category    ItemCategory `json:"category,omitempty"`
}

// AuthorizationStatus is the status of an authorized payment.
type AuthorizationStatus string

const (
	AuthorizationCreated           AuthorizationStatus = "CREATED"
	AuthorizationCaptured          AuthorizationStatus = "CAPTURED"
	AuthorizationDenied            AuthorizationStatus = "DENIED"
	AuthorizationExpired           AuthorizationStatus = "EXPIRED"
	AuthorizationPartiallyExpired  AuthorizationStatus = "PARTIALLY_EXPIRED"
	AuthorizationPartiallyCaptured AuthorizationStatus = "PARTIALLY_CAPTURED"
	AuthorizationPartiallyCreated  AuthorizationStatus = "PARTIALLY_CREATED"
	AuthorizationVoided            AuthorizationStatus = "VOIDED"
	AuthorizationPending           AuthorizationStatus = "PENDING"
)

// Authorization is an authorized payment within an order.
type Authorization struct {
	ID               string                      `json:"id,omitempty"`
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

// CaptureStatus is the status of a captured payment.
type CaptureStatus string

const (
	CaptureCompleted         CaptureStatus = "COMPLETED"
	CaptureDeclined          CaptureStatus = "DECLINED"
	CapturePartiallyRefunded CaptureStatus = "PARTIALLY_REFUNDED"
	CapturePending           CaptureStatus = "PENDING"
	CaptureRefunded          CaptureStatus = "REFUNDED"
	CaptureFailed            CaptureStatus = "FAILED"
)

// CaptureStatusDetailsReason is the reason a capture is pending.
type CaptureStatusDetailsReason string

const (
	CaptureReasonBuyerComplaint                          CaptureStatusDetailsReason = "BUYER_COMPLAINT"
	CaptureReasonChargeback                              CaptureStatusDetailsReason = "CHARGEBACK"
	CaptureReasonEcheck                                  CaptureStatusDetailsReason = "ECHECK"
	CaptureReasonInternationalWithdrawal                 CaptureStatusDetailsReason = "INTERNATIONAL_WITHDRAWAL"
	CaptureReasonOther                                   CaptureStatusDetailsReason = "OTHER"
	CaptureReasonPendingReview                           CaptureStatusDetailsReason = "PENDING_REVIEW"
	CaptureReasonReceivingPreferenceMandatesManualAction CaptureStatusDetailsReason = "RECEIVING_PREFERENCE_MANDATES_MANUAL_ACTION"
	CaptureReasonRefunded                                CaptureStatusDetailsReason = "REFUNDED"
	CaptureReasonTransactionApprovedAwaitingFunding      CaptureStatusDetailsReason = "TRANSACTION_APPROVED_AWAITING_FUNDING"
	CaptureReasonUnilateral                              CaptureStatusDetailsReason = "UNILATERAL"
	CaptureReasonVerificationRequired                    CaptureStatusDetailsReason = "VERIFICATION_REQUIRED"
)

// CaptureStatusDetails holds details about the status of a capture.
type CaptureStatusDetails struct {
	Reason CaptureStatusDetailsReason `json:"reason"`
}

// Capture is a captured payment.
type Capture struct {
	ID                        string                     `json:"id,omitempty"`
	Status                    CaptureStatus              `json:"status"`
	StatusDetails             *CaptureStatusDetails      `json:"status_details,omitempty"`
	Amount                    *Money                     `json:"amount,omitempty"`
	InvoiceID                 string                     `json:"invoice_id,omitempty"`
	CustomID                  string                     `json:"custom_id,omitempty"`
	FinalCapture              bool                       `json:"final_capture,omitempty"`
	DisbursementMode          DisbursementMode           `json:"disbursement_mode,omitempty"`
	SellerProtection          *SellerProtection          `json:"seller_protection,omitempty"`
	SellerReceivableBreakdown *SellerReceivableBreakdown `json:"seller_receivable_breakdown,omitempty"`
	Links                     Links                      `json:"links,omitempty"`
	CreateTime                *time.Time                 `json:"create_time,omitempty"`
	UpdateTime                *time.Time                 `json:"update_time,omitempty"`
}

// SellerReceivableBreakdown itemises the amount received by the payee for a capture.
type SellerReceivableBreakdown struct {
	GrossAmount  Money         `json:"gross_amount"`
	PayPalFee    *Money        `json:"paypal_fee,omitempty"`
	NetAmount    *Money        `json:"net_amount,omitempty"`
	PlatformFees []PlatformFee `json:"platform_fees,omitempty"`
}

// RefundStatus is the status of a refund.
type RefundStatus string

const (
	RefundCancelled RefundStatus = "CANCELLED"
	RefundPending   RefundStatus = "PENDING"
	RefundCompleted RefundStatus = "COMPLETED"
	RefundFailed    RefundStatus = "FAILED"
)

// RefundStatusDetails holds details about the status of a refund.
type RefundStatusDetails struct {
	Reason string `json:"reason"`
}

// ExchangeRate is the rate used to convert between two currencies.
type ExchangeRate struct {
	SourceCurrency Currency `json:"source_currency,omitempty"`
	TargetCurrency Currency `json:"target_currency,omitempty"`
	Value          string   `json:"value,omitempty"`
}

// NetAmountBreakdown is the net amount debited from the payee, per currency.
type NetAmountBreakdown struct {
	ConvertedAmount *Money        `json:"converted_amount,omitempty"`
	ExchangeRate    *ExchangeRate `json:"exchange_rate,omitempty"`
	PayableAmount   *Money        `json:"payable_amount,omitempty"`
}

// SellerPayableBreakdown itemises the amount debited from the payee for a refund.
type SellerPayableBreakdown struct {
	GrossAmount                   *Money               `json:"gross_amount,omitempty"`
	NetAmount                     *Money               `json:"net_amount,omitempty"`
	NetAmountBreakdown            []NetAmountBreakdown `json:"net_amount_breakdown,omitempty"`
	NetAmountInReceivableCurrency *Money               `json:"net_amount_in_receivable_currency,omitempty"`
	PayPalFee                     *Money               `json:"paypal_fee,omitempty"`
	PayPalFeeInReceivableCurrency *Money               `json:"paypal_fee_in_receivable_currency,omitempty"`
	PlatformFees                  []PlatformFee        `json:"platform_fees,omitempty"`
	TotalRefundedAmount           *Money               `json:"total_refunded_amount,omitempty"`
}

// Refund is a refund of a captured payment.
type Refund struct {
	ID                     string                  `json:"id"`
	Status                 RefundStatus            `json:"status"`
	StatusDetails          *RefundStatusDetails    `json:"status_details,omitempty"`
	Amount                 *Money                  `json:"amount,omitempty"`
	InvoiceID              string                  `json:"invoice_id,omitempty"`
	NoteToPayer            string                  `json:"note_to_payer,omitempty"`
	SellerPayableBreakdown *SellerPayableBreakdown `json:"seller_payable_breakdown,omitempty"`
	Links                  Links                   `json:"links,omitempty"`
	CreateTime             *time.Time              `json:"create_time,omitempty"`
	UpdateTime             *time.Time              `json:"update_time,omitempty"`
}

// PaymentCollection groups the payments made against a purchase unit.
type PaymentCollection struct {
	Authorizations []Authorization `json:"authorizations,omitempty"`
	Captures       []Capture       `json:"captures,omitempty"`
	Refunds        []Refund        `json:"refunds,omitempty"`
}

// PurchaseUnit is a contract between a payer and a payee. An order has
// one or more purchase units.
type PurchaseUnit struct {
	ReferenceID        string              `json:"reference_id,omitempty"    validate:"max=256"`
	Amount             Amount              `json:"amount"`
	Payee              *Payee              `json:"payee,omitempty"`
	PaymentInstruction *PaymentInstruction `json:"payment_instruction,omitempty"`
	Description        string              `json:"description,omitempty"     validate:"max=127"`
	CustomID           string              `json:"custom_id,omitempty"       validate:"max=127"`
	InvoiceID          string              `json:"invoice_id,omitempty"      validate:"max=127"`
	ID                 string              `json:"id,omitempty"`
	SoftDescriptor     string              `json:"soft_descriptor,omitempty" validate:"max=22"`
	Items              []Item              `json:"items,omitempty"           validate:"omitempty,dive"`
	Shipping           *ShippingDetail     `json:"shipping,omitempty"`
	Payments           *PaymentCollection  `json:"payments,omitempty"`
}

// LandingPage is the type of page PayPal shows the payer.
type LandingPage string

const (
	LandingPageLogin        LandingPage = "LOGIN"
	LandingPageBilling      LandingPage = "BILLING"
	LandingPageNoPreference LandingPage = "NO_PREFERENCE"
)

// ShippingPreference is where the shipping address is taken from.
type ShippingPreference string

const (
	ShippingGetFromFile        ShippingPreference = "GET_FROM_FILE"
	ShippingNoShipping         ShippingPreference = "NO_SHIPPING"
	ShippingSetProvidedAddress ShippingPreference = "SET_PROVIDED_ADDRESS"
)

// UserAction configures the label of the final button on the PayPal checkout page.
type UserAction string

const (
	UserActionContinue UserAction = "CONTINUE"
	UserActionPayNow   UserAction = "PAY_NOW"
)

// PayeePreferred is the merchant-preferred payment method.
type PayeePreferred string

const (
	PayeePreferredUnrestricted             PayeePreferred = "UNRESTRICTED"
	PayeePreferredImmediatePaymentRequired PayeePreferred = "IMMEDIATE_PAYMENT_REQUIRED"
)

// PaymentMethod holds the customer and merchant payment preferences.
type PaymentMethod struct {
	PayerSelected  string         `json:"payer_selected,omitempty"`
	PayeePreferred PayeePreferred `json:"payee_preferred,omitempty"`
}

// ApplicationContext customises the payer experience during approval.
type ApplicationContext struct {
	BrandName          string             `json:"brand_name,omitempty" validate:"max=127"`
	Locale             string             `json:"locale,omitempty"`
	LandingPage        LandingPage        `json:"landing_page,omitempty"`
	ShippingPreference ShippingPreference `json:"shipping_preference,omitempty"`
	UserAction         UserAction         `json:"user_action,omitempty"`
	PaymentMethod      *PaymentMethod     `json:"payment_method,omitempty"`
	ReturnURL          string             `json:"return_url,omitempty" validate:"omitempty,url"`
	CancelURL          string             `json:"cancel_url,omitempty" validate:"omitempty,url"`
}

// TransactionReference identifies a previous network transaction.
type TransactionReference struct {
	ID      string `json:"id"                validate:"required"`
	Network string `json:"network,omitempty"`
	Date    string `json:"date,omitempty"`
}

// StoredCredential describes a card-on-file payment.
type StoredCredential struct {
	PaymentInitiator                    string                `json:"payment_initiator" validate:"required,oneof=CUSTOMER MERCHANT"`
	PaymentType                         string                `json:"payment_type"      validate:"required,oneof=ONE_TIME RECURRING UNSCHEDULED"`
	Usage                               string                `json:"usage,omitempty"   validate:"omitempty,oneof=FIRST SUBSEQUENT DERIVED"`
	PreviousNetworkTransactionReference *TransactionReference `json:"previous_network_transaction_reference,omitempty"`
}

// PaymentCard is a card used to fund an order.
type PaymentCard struct {
	Name             string            `json:"name,omitempty"`
	Number           string            `json:"number"                  validate:"required,numeric,min=13,max=19"`
	Expiry           string            `json:"expiry"                  validate:"required,datetime=2006-01"`
	SecurityCode     string            `json:"security_code,omitempty" validate:"omitempty,numeric,min=3,max=4"`
	BillingAddress   *Address          `json:"billing_address,omitempty"`
	StoredCredential *StoredCredential `json:"stored_credential,omitempty"`
}

// PaymentSourceToken is a tokenized payment source.
type PaymentSourceToken struct {
	ID string `json:"id"   validate:"required"`
	// Type is the tokenization method; only BILLING_AGREEMENT is supported.
	Type string `json:"type" validate:"required,eq=BILLING_AGREEMENT"`
}

// OrderPaymentSource is the payment source used to fund an order on creation.
type OrderPaymentSource struct {
	Card  *PaymentCard        `json:"card,omitempty"`
	Token *PaymentSourceToken `json:"token,omitempty"`
}

// OrderPayload is the request body to create an order.
type OrderPayload struct {
	Intent             Intent              `json:"intent"                        validate:"required,oneof=CAPTURE AUTHORIZE"`
	Payer              *Payer              `json:"payer,omitempty"`
	PurchaseUnits      []PurchaseUnit      `json:"purchase_units"                validate:"required,min=1,max=10,dive"`
	ApplicationContext *ApplicationContext `json:"application_context,omitempty"`
	PaymentSource      *OrderPaymentSource `json:"payment_source,omitempty"`
}

// PaymentSource wraps the tokenized source used to capture or authorize an order.
type PaymentSource struct {
	Token PaymentSourceToken `json:"token"`
}

// PaymentSourceBody is the request body of the capture and authorize order calls.
type PaymentSourceBody struct {
	PaymentSource *PaymentSource `json:"payment_source,omitempty"`
}

// CardBrand is the brand of a card.
type CardBrand string

const (
	CardBrandVisa          CardBrand = "VISA"
	CardBrandMastercard    CardBrand = "MASTERCARD"
	CardBrandDiscover      CardBrand = "DISCOVER"
	CardBrandAmex          CardBrand = "AMEX"
	CardBrandSolo          CardBrand = "SOLO"
	CardBrandJCB           CardBrand = "JCB"
	CardBrandStar          CardBrand = "STAR"
	CardBrandDelta         CardBrand = "DELTA"
	CardBrandSwitch        CardBrand = "SWITCH"
	CardBrandMaestro       CardBrand = "MAESTRO"
	CardBrandCbNationale   CardBrand = "CB_NATIONALE"
	CardBrandConfigoga     CardBrand = "CONFIGOGA"
	CardBrandConfidis      CardBrand = "CONFIDIS"
	CardBrandElectron      CardBrand = "ELECTRON"
	CardBrandCetelem       CardBrand = "CETELEM"
	CardBrandChinaUnionPay CardBrand = "CHINA_UNION_PAY"
)

// CardType is the funding type of a card.
type CardType string

const (
	CardTypeCredit  CardType = "CREDIT"
	CardTypeDebit   CardType = "DEBIT"
	CardTypePrepaid CardType = "PREPAID"
	CardTypeUnknown CardType = "UNKNOWN"
)

// CardResponse is the card used to fund an order, as returned by PayPal.
type CardResponse struct {
	LastDigits string    `json:"last_digits,omitempty"`
	Brand      CardBrand `json:"brand,omitempty"`
	Type       CardType  `json:"type,omitempty"`
}

// WalletResponse is the wallet used to fund an order.
type WalletResponse struct {
	ApplePay *CardResponse `json:"apple_pay,omitempty"`
}

// PaymentSourceResponse is the payment source used to fund an order.
type PaymentSourceResponse struct {
	Card   *CardResponse   `json:"card,omitempty"`
	Wallet *WalletResponse `json:"wallet,omitempty"`
}

// OrderStatus is the status of an order.
type OrderStatus string

const (
	OrderStatusCreated             OrderStatus = "CREATED"
	OrderStatusSaved               OrderStatus = "SAVED"
	OrderStatusApproved            OrderStatus = "APPROVED"
	OrderStatusVoided              OrderStatus = "VOIDED"
	OrderStatusCompleted           OrderStatus = "COMPLETED"
	OrderStatusPayerActionRequired OrderStatus = "PAYER_ACTION_REQUIRED"
)

// Known reports whether s is one of the order statuses PayPal documents.
func (s OrderStatus) Known() bool {
	switch s {
	case OrderStatusCreated, OrderStatusSaved, OrderStatusApproved,
		OrderStatusVoided, OrderStatusCompleted, OrderStatusPayerActionRequired:
		return true
	}
	return false
}

// Order is an order as returned by PayPal.
type Order struct {
	CreateTime    *time.Time             `json:"create_time,omitempty"`
	UpdateTime    *time.Time             `json:"update_time,omitempty"`
	ID            string                 `json:"id"`
	PaymentSource *PaymentSourceResponse `json:"payment_source,omitempty"`
	Intent        Intent                 `json:"intent,omitempty"`
	Payer         *Payer                 `json:"payer,omitempty"`
	PurchaseUnits []PurchaseUnit         `json:"purchase_units,omitempty"`
	Status        OrderStatus            `json:"status"`
	Links         Links                  `json:"links,omitempty"`
}

// InvoiceNumber is an invoice number, as generated by PayPal.
type InvoiceNumber struct {
	InvoiceNumber string `json:"invoice_number"`
}
