package transformers

import (
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
)

const checkoutOrdersPath = "/checkout/orders/"

// OrderTransformer transforms checkout order records between database and rest models
type OrderTransformer struct{}

// TransformToRest transforms an order record into the checkout order rest model. The
// approve and paypal links are taken from the links PayPal returned for the order.
func (ot OrderTransformer) TransformToRest(record models.OrderRecordDB) models.CheckoutOrderRest {
	return models.CheckoutOrderRest{
		ID:            record.ID,
		PayPalOrderID: record.PayPalOrderID,
		Reference:     record.Reference,
		Description:   record.Description,
		Amount:        record.Amount,
		Intent:        record.Intent,
		Status:        record.Status,
		CreatedBy:     record.CreatedBy,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
		Links: models.CheckoutLinksRest{
			Self:    checkoutOrdersPath + record.PayPalOrderID,
			Approve: record.Links.Rel("approve"),
			PayPal:  record.Links.Rel("self"),
		},
	}
}

// TransformToDB builds the record of a PayPal order created for a checkout request.
func (ot OrderTransformer) TransformToDB(id string, req models.CheckoutRequest, order models.Order, amount models.Money, user models.AuthUserDetails) models.OrderRecordDB {
	return models.OrderRecordDB{
		ID:            id,
		PayPalOrderID: order.ID,
		Reference:     req.Reference,
		Description:   req.Description,
		Amount:        amount,
		Intent:        order.Intent,
		Status:        order.Status,
		Links:         order.Links,
		CreatedBy:     user,
	}
}
