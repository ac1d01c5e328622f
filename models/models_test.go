package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

func eurUnit(value string) PurchaseUnit {
	return PurchaseUnit{Amount: Amount{CurrencyCode: EUR, Value: value}}
}

func TestUnitMoney(t *testing.T) {
	Convey("Valid amounts", t, func() {
		m, err := NewMoney("EUR", "10.00")
		So(err, ShouldBeNil)
		So(m, ShouldResemble, &Money{CurrencyCode: EUR, Value: "10.00"})

		m, err = NewMoney("JPY", "1000")
		So(err, ShouldBeNil)
		So(m.CurrencyCode.MinorUnits(), ShouldEqual, 0)

		d, err := m.Decimal()
		So(err, ShouldBeNil)
		So(d.Equal(decimal.NewFromInt(1000)), ShouldBeTrue)
	})

	Convey("Unsupported currency is rejected", t, func() {
		m, err := NewMoney("XYZ", "10.00")
		So(m, ShouldBeNil)

		var currencyErr *InvalidCurrencyError
		So(errors.As(err, &currencyErr), ShouldBeTrue)
		So(currencyErr.Code, ShouldEqual, "XYZ")
		So(err.Error(), ShouldEqual, "unsupported currency code [XYZ]")

		_, err = NewAmount("ABC", "1")
		So(errors.As(err, &currencyErr), ShouldBeTrue)
	})

	Convey("Malformed amounts are rejected", t, func() {
		var ve *ValidationError
		for _, value := range []string{"", "ten", "-1.00", "1.", "1,00", "1e3"} {
			_, err := NewMoney("GBP", value)
			So(errors.As(err, &ve), ShouldBeTrue)
			So(ve.Rule, ShouldEqual, "decimal")
		}
	})

	Convey("Amounts finer than the currency allows are rejected", t, func() {
		var ve *ValidationError
		_, err := NewMoney("EUR", "10.001")
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Rule, ShouldEqual, "precision")
		So(ve.Value, ShouldEqual, "10.001")

		_, err = NewMoney("HUF", "10.5")
		So(errors.As(err, &ve), ShouldBeTrue)

		_, err = NewMoney("SEK", "10.5")
		So(err, ShouldBeNil)
	})

	Convey("Format a decimal for a currency", t, func() {
		So(AmountOf(USD, decimal.RequireFromString("12.5")), ShouldResemble, Money{CurrencyCode: USD, Value: "12.50"})
		So(AmountOf(JPY, decimal.RequireFromString("12.5")).Value, ShouldEqual, "13")
	})

	Convey("Currency helpers", t, func() {
		So(EURMoney("1.00").CurrencyCode, ShouldEqual, EUR)
		So(GBPMoney("1.00").CurrencyCode, ShouldEqual, GBP)
		So(SEK.Supported(), ShouldBeTrue)
		So(Currency("SEK").String(), ShouldEqual, "SEK")

		c, err := ParseCurrency("TWD")
		So(err, ShouldBeNil)
		So(c.MinorUnits(), ShouldEqual, 0)
	})
}

func TestUnitOrderPayloadBuilder(t *testing.T) {
	Convey("Missing purchase units", t, func() {
		payload, err := NewOrderPayloadBuilder().Intent(IntentCapture).Build()
		So(payload, ShouldBeNil)

		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Field, ShouldEqual, "purchase_units")
		So(ve.Rule, ShouldEqual, "required")
		So(err.Error(), ShouldEqual, "missing required field [purchase_units]")
	})

	Convey("Missing intent", t, func() {
		_, err := NewOrderPayloadBuilder().PurchaseUnits(eurUnit("10.00")).Build()

		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Field, ShouldEqual, "intent")
	})

	Convey("Invalid nested amount names the full path", t, func() {
		_, err := NewOrderPayloadBuilder().Intent(IntentCapture).PurchaseUnits(eurUnit("10.001")).Build()

		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Field, ShouldEqual, "purchase_units[0].amount.value")
		So(ve.Rule, ShouldEqual, "precision")
	})

	Convey("Authorize intent takes a single purchase unit", t, func() {
		_, err := NewOrderPayloadBuilder().Intent(IntentAuthorize).PurchaseUnits(eurUnit("1.00"), eurUnit("2.00")).Build()

		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Field, ShouldEqual, "purchase_units")
		So(ve.Rule, ShouldEqual, "max=1")
	})

	Convey("Complete payload builds and round trips through JSON", t, func() {
		item, err := NewItemBuilder().Name("Certified copy").UnitAmount(EURMoney("10.00")).Quantity("1").Category(ItemCategoryDigitalGoods).Build()
		So(err, ShouldBeNil)

		unit, err := NewPurchaseUnitBuilder().
			ReferenceID("default").
			Amount(Amount{CurrencyCode: EUR, Value: "10.00", Breakdown: &Breakdown{ItemTotal: &Money{CurrencyCode: EUR, Value: "10.00"}}}).
			Description("Certified copy of incorporation").
			Items(*item).
			Build()
		So(err, ShouldBeNil)

		builder := NewOrderPayloadBuilder().Intent(IntentAuthorize).PurchaseUnits(*unit)
		payload, err := builder.Build()
		So(err, ShouldBeNil)

		data, err := json.Marshal(payload)
		So(err, ShouldBeNil)

		var decoded OrderPayload
		So(json.Unmarshal(data, &decoded), ShouldBeNil)
		So(&decoded, ShouldResemble, payload)

		Convey("Later builder changes do not affect the built payload", func() {
			builder.PurchaseUnits(eurUnit("5.00"))
			So(len(payload.PurchaseUnits), ShouldEqual, 1)
		})
	})

	Convey("Item requires a unit amount", t, func() {
		_, err := NewItemBuilder().Name("Certified copy").Quantity("1").Build()

		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Field, ShouldEqual, "unit_amount.currency_code")
		So(ve.Others, ShouldContain, "unit_amount.value")
	})

	Convey("Address requires a two letter country code", t, func() {
		_, err := NewAddressBuilder().AddressLine1("Crown Way").Build()
		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Field, ShouldEqual, "country_code")

		address, err := NewAddressBuilder().AddressLine1("Crown Way").AdminArea2("Cardiff").PostalCode("CF14 3UZ").CountryCode("GB").Build()
		So(err, ShouldBeNil)
		So(address.CountryCode, ShouldEqual, "GB")
	})

	Convey("Payment card checks number and expiry", t, func() {
		_, err := NewPaymentCardBuilder().Number("4111111111111111").Expiry("2030/01").Build()
		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Field, ShouldEqual, "expiry")

		card, err := NewPaymentCardBuilder().Name("J Smith").Number("4111111111111111").Expiry("2030-01").SecurityCode("123").Build()
		So(err, ShouldBeNil)
		So(card.Number, ShouldEqual, "4111111111111111")
	})
}

func TestUnitInvoicePayloadBuilder(t *testing.T) {
	Convey("Invoice detail requires a currency", t, func() {
		_, err := NewInvoiceDetailBuilder().Note("Thanks").Build()
		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Field, ShouldEqual, "currency_code")

		_, err = NewInvoiceDetailBuilder().CurrencyCode("XXX").Build()
		var currencyErr *InvalidCurrencyError
		So(errors.As(err, &currencyErr), ShouldBeTrue)
	})

	Convey("Invoice requires items", t, func() {
		detail, err := NewInvoiceDetailBuilder().CurrencyCode(USD).Build()
		So(err, ShouldBeNil)

		_, err = NewInvoicePayloadBuilder().Detail(*detail).Build()
		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Field, ShouldEqual, "items")
	})

	Convey("Items must be priced in the invoice currency", t, func() {
		detail, err := NewInvoiceDetailBuilder().CurrencyCode(USD).Build()
		So(err, ShouldBeNil)
		item, err := NewInvoiceItemBuilder().Name("Filing fee").Quantity("1").UnitAmount(GBPMoney("13.00")).Build()
		So(err, ShouldBeNil)

		_, err = NewInvoicePayloadBuilder().Detail(*detail).Items(*item).Build()
		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Rule, ShouldEqual, "eqfield=detail.currency_code")
		So(ve.Value, ShouldEqual, "GBP")
	})

	Convey("Complete invoice builds and round trips through JSON", t, func() {
		detail, err := NewInvoiceDetailBuilder().CurrencyCode(USD).InvoiceNumber("#123").InvoiceDate("2024-03-01").Note("Thank you").Build()
		So(err, ShouldBeNil)
		item, err := NewInvoiceItemBuilder().Name("Yoga mat").Quantity("1").UnitAmount(USDMoney("50.00")).UnitOfMeasure(UnitOfMeasureQuantity).Build()
		So(err, ShouldBeNil)

		payload, err := NewInvoicePayloadBuilder().Detail(*detail).Items(*item).AdditionalRecipients("user@example.com").Build()
		So(err, ShouldBeNil)

		data, err := json.Marshal(payload)
		So(err, ShouldBeNil)
		var decoded InvoicePayload
		So(json.Unmarshal(data, &decoded), ShouldBeNil)
		So(&decoded, ShouldResemble, payload)
	})

	Convey("Additional recipients must be emails", t, func() {
		detail, _ := NewInvoiceDetailBuilder().CurrencyCode(USD).Build()
		item, _ := NewInvoiceItemBuilder().Name("Yoga mat").Quantity("1").UnitAmount(USDMoney("50.00")).Build()

		_, err := NewInvoicePayloadBuilder().Detail(*detail).Items(*item).AdditionalRecipients("not-an-email").Build()
		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Field, ShouldEqual, "additional_recipients[0]")
		So(ve.Rule, ShouldEqual, "email")
	})

	Convey("Record payment requires a method", t, func() {
		err := RecordPaymentPayload{Amount: USDMoney("10.00")}.Validate()
		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Field, ShouldEqual, "method")
	})
}

func TestUnitPaymentRequests(t *testing.T) {
	Convey("Capture request checks the amount", t, func() {
		bad := EURMoney("1.234")
		err := CaptureRequest{Amount: &bad}.Validate()
		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Field, ShouldEqual, "amount.value")

		good := EURMoney("1.23")
		So(CaptureRequest{Amount: &good, SoftDescriptor: "CH"}.Validate(), ShouldBeNil)
	})

	Convey("Refund request checks the note length", t, func() {
		note := make([]byte, 256)
		for i := range note {
			note[i] = 'a'
		}
		err := RefundRequest{NoteToPayer: string(note)}.Validate()
		var ve *ValidationError
		So(errors.As(err, &ve), ShouldBeTrue)
		So(ve.Field, ShouldEqual, "note_to_payer")
		So(ve.Rule, ShouldEqual, "max")
	})
}

func TestUnitLinks(t *testing.T) {
	Convey("Find links by relation", t, func() {
		links := Links{
			{Href: "https://api-m.paypal.com/v2/checkout/orders/1", Rel: "self", Method: LinkMethodGet},
			{Href: "https://www.paypal.com/checkoutnow?token=1", Rel: "approve", Method: LinkMethodGet},
		}
		So(links.Rel("approve"), ShouldEqual, "https://www.paypal.com/checkoutnow?token=1")
		So(links.Rel("capture"), ShouldBeEmpty)
	})
}

func TestUnitOrderStatus(t *testing.T) {
	Convey("Recognised order statuses", t, func() {
		So(OrderStatusCreated.Known(), ShouldBeTrue)
		So(OrderStatusPayerActionRequired.Known(), ShouldBeTrue)
		So(OrderStatus("PENDING").Known(), ShouldBeFalse)
	})
}
