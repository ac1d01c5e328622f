package models

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// Currency is a three-character ISO-4217 currency code supported by PayPal.
type Currency string

// Currencies supported by the PayPal REST API.
const (
	AUD Currency = "AUD"
	BRL Currency = "BRL" // in-country PayPal accounts only
	CAD Currency = "CAD"
	CNY Currency = "CNY"
	CZK Currency = "CZK"
	DKK Currency = "DKK"
	EUR Currency = "EUR"
	HKD Currency = "HKD"
	HUF Currency = "HUF"
	INR Currency = "INR" // in-country PayPal India accounts only
	ILS Currency = "ILS"
	JPY Currency = "JPY"
	MYR Currency = "MYR"
	MXN Currency = "MXN"
	TWD Currency = "TWD"
	NZD Currency = "NZD"
	NOK Currency = "NOK"
	PHP Currency = "PHP"
	PLN Currency = "PLN"
	GBP Currency = "GBP"
	RUB Currency = "RUB"
	SGD Currency = "SGD"
	SEK Currency = "SEK"
	CHF Currency = "CHF"
	THB Currency = "THB"
	USD Currency = "USD"
)

// minorUnits holds the number of decimal places PayPal accepts per currency.
var minorUnits = map[Currency]int32{
	AUD: 2, BRL: 2, CAD: 2, CNY: 2, CZK: 2, DKK: 2, EUR: 2, HKD: 2,
	HUF: 0, INR: 2, ILS: 2, JPY: 0, MYR: 2, MXN: 2, TWD: 0, NZD: 2,
	NOK: 2, PHP: 2, PLN: 2, GBP: 2, RUB: 2, SGD: 2, SEK: 2, CHF: 2,
	THB: 2, USD: 2,
}

var amountPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// InvalidCurrencyError is returned when a currency code is not one PayPal supports.
type InvalidCurrencyError struct {
	Code string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("unsupported currency code [%s]", e.Code)
}

// ParseCurrency returns the Currency for the given code, or an
// *InvalidCurrencyError when PayPal does not support it.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if !c.Supported() {
		return "", &InvalidCurrencyError{Code: code}
	}
	return c, nil
}

// Supported reports whether PayPal accepts the currency.
func (c Currency) Supported() bool {
	_, ok := minorUnits[c]
	return ok
}

// MinorUnits returns the number of decimal places allowed for the currency.
func (c Currency) MinorUnits() int32 {
	return minorUnits[c]
}

func (c Currency) String() string {
	return string(c)
}

// Money is an amount in a given currency.
type Money struct {
	CurrencyCode Currency `json:"currency_code" bson:"currency_code" validate:"required"`
	Value        string   `json:"value"         bson:"value"         validate:"required"`
}

// NewMoney validates the currency code and amount and returns the Money
// value. The amount must be a non-negative decimal with no more decimal
// places than the currency allows.
func NewMoney(currency, value string) (*Money, error) {
	c, err := ParseCurrency(currency)
	if err != nil {
		return nil, err
	}
	m := &Money{CurrencyCode: c, Value: value}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the currency is supported and the value is a valid
// decimal amount for it.
func (m Money) Validate() error {
	if !m.CurrencyCode.Supported() {
		return &InvalidCurrencyError{Code: string(m.CurrencyCode)}
	}
	return validateAmount(m.CurrencyCode, m.Value)
}

// Decimal parses the value of m.
func (m Money) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(m.Value)
}

func validateAmount(c Currency, value string) error {
	if !amountPattern.MatchString(value) {
		return &ValidationError{Field: "value", Rule: "decimal", Value: value}
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return &ValidationError{Field: "value", Rule: "decimal", Value: value}
	}
	if -d.Exponent() > c.MinorUnits() {
		return &ValidationError{Field: "value", Rule: "precision", Value: value}
	}
	return nil
}

// AmountOf formats value for the currency, rounding to its minor units.
func AmountOf(c Currency, value decimal.Decimal) Money {
	return Money{CurrencyCode: c, Value: value.StringFixed(c.MinorUnits())}
}

// EURMoney creates Money in euros.
func EURMoney(value string) Money { return Money{CurrencyCode: EUR, Value: value} }

// USDMoney creates Money in US dollars.
func USDMoney(value string) Money { return Money{CurrencyCode: USD, Value: value} }

// GBPMoney creates Money in pounds sterling.
func GBPMoney(value string) Money { return Money{CurrencyCode: GBP, Value: value} }

// BRLMoney creates Money in Brazilian reais.
func BRLMoney(value string) Money { return Money{CurrencyCode: BRL, Value: value} }

// CNYMoney creates Money in Chinese renminbi.
func CNYMoney(value string) Money { return Money{CurrencyCode: CNY, Value: value} }

// CZKMoney creates Money in Czech koruna.
func CZKMoney(value string) Money { return Money{CurrencyCode: CZK, Value: value} }

// JPYMoney creates Money in Japanese yen.
func JPYMoney(value string) Money { return Money{CurrencyCode: JPY, Value: value} }

// PhoneType is the type of a phone number.
type PhoneType string

const (
	PhoneTypeFax    PhoneType = "FAX"
	PhoneTypeHome   PhoneType = "HOME"
	PhoneTypeMobile PhoneType = "MOBILE"
	PhoneTypeOther  PhoneType = "OTHER"
	PhoneTypePager  PhoneType = "PAGER"
)

// AddressDetails holds the non-portable parts of an address.
type AddressDetails struct {
	StreetNumber    string `json:"street_number,omitempty"`
	StreetName      string `json:"street_name,omitempty"`
	StreetType      string `json:"street_type,omitempty"`
	DeliveryService string `json:"delivery_service,omitempty"`
	BuildingName    string `json:"building_name,omitempty"`
	SubBuilding     string `json:"sub_building,omitempty"`
}

// Address is a postal address. Only the country code is required.
type Address struct {
	AddressLine1   string          `json:"address_line_1,omitempty"`
	AddressLine2   string          `json:"address_line_2,omitempty"`
	AdminArea2     string          `json:"admin_area_2,omitempty"`
	AdminArea1     string          `json:"admin_area_1,omitempty"`
	PostalCode     string          `json:"postal_code,omitempty"`
	CountryCode    string          `json:"country_code" validate:"required,len=2"`
	AddressDetails *AddressDetails `json:"address_details,omitempty"`
}

// LinkMethod is the HTTP method of a HATEOAS link.
type LinkMethod string

const (
	LinkMethodGet     LinkMethod = "GET"
	LinkMethodPost    LinkMethod = "POST"
	LinkMethodPut     LinkMethod = "PUT"
	LinkMethodDelete  LinkMethod = "DELETE"
	LinkMethodHead    LinkMethod = "HEAD"
	LinkMethodConnect LinkMethod = "CONNECT"
	LinkMethodOptions LinkMethod = "OPTIONS"
	LinkMethodPatch   LinkMethod = "PATCH"
)

// LinkDescription is a HATEOAS link returned by PayPal.
type LinkDescription struct {
	Href   string     `json:"href"             bson:"href"`
	Rel    string     `json:"rel,omitempty"    bson:"rel,omitempty"`
	Method LinkMethod `json:"method,omitempty" bson:"method,omitempty"`
}

// Links is a list of HATEOAS links.
type Links []LinkDescription

// Rel returns the href of the first link with the given relation, or an
// empty string.
func (l Links) Rel(rel string) string {
	for _, link := range l {
		if link.Rel == rel {
			return link.Href
		}
	}
	return ""
}

// AuthorizationStatusDetailsReason is the reason an authorization is pending.
type AuthorizationStatusDetailsReason string

const AuthorizationPendingReview AuthorizationStatusDetailsReason = "PENDING_REVIEW"

// AuthorizationStatusDetails holds details about the status of an authorization.
type AuthorizationStatusDetails struct {
	Reason AuthorizationStatusDetailsReason `json:"reason"`
}

// SellerProtectionStatus indicates whether a transaction is eligible for seller protection.
type SellerProtectionStatus string

const (
	SellerProtectionEligible          SellerProtectionStatus = "ELIGIBLE"
	SellerProtectionPartiallyEligible SellerProtectionStatus = "PARTIALLY_ELIGIBLE"
	SellerProtectionNotEligible       SellerProtectionStatus = "NOT_ELIGIBLE"
)

// DisputeCategory is a condition covered by seller protection.
type DisputeCategory string

const (
	DisputeItemNotReceived         DisputeCategory = "ITEM_NOT_RECEIVED"
	DisputeUnauthorizedTransaction DisputeCategory = "UNAUTHORIZED_TRANSACTION"
)

// SellerProtection is the level of protection offered by PayPal Seller Protection.
type SellerProtection struct {
	Status            SellerProtectionStatus `json:"status,omitempty"`
	DisputeCategories []DisputeCategory      `json:"dispute_categories,omitempty"`
}
