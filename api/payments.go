package api

import (
	"net/http"
	"net/url"

	"github.com/companieshouse/paypal.api.ch.gov.uk/client"
	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
)

const (
	authorizationsPath = "/v2/payments/authorizations"
	capturesPath       = "/v2/payments/captures"
)

// GetAuthorizedPayment shows the details of an authorized payment.
type GetAuthorizedPayment struct {
	client.Responds[models.AuthorizedPaymentDetails]
	client.NoQuery
	client.NoBody
	AuthorizationID string
}

func NewGetAuthorizedPayment(authorizationID string) *GetAuthorizedPayment {
	return &GetAuthorizedPayment{AuthorizationID: authorizationID}
}

func (e *GetAuthorizedPayment) Method() string { return http.MethodGet }

func (e *GetAuthorizedPayment) RelativePath() string {
	return authorizationsPath + "/" + url.PathEscape(e.AuthorizationID)
}

// CaptureAuthorizedPayment captures an authorized payment. A nil Capture
// captures the full authorized amount.
type CaptureAuthorizedPayment struct {
	client.Responds[models.Capture]
	client.NoQuery
	AuthorizationID string
	Capture         *models.CaptureRequest
}

func NewCaptureAuthorizedPayment(authorizationID string, capture *models.CaptureRequest) *CaptureAuthorizedPayment {
	return &CaptureAuthorizedPayment{AuthorizationID: authorizationID, Capture: capture}
}

func (e *CaptureAuthorizedPayment) Method() string { return http.MethodPost }

func (e *CaptureAuthorizedPayment) RelativePath() string {
	return authorizationsPath + "/" + url.PathEscape(e.AuthorizationID) + "/capture"
}

func (e *CaptureAuthorizedPayment) Body() any {
	if e.Capture == nil {
		return models.CaptureRequest{}
	}
	return e.Capture
}

// VoidAuthorizedPayment voids an authorized payment. A captured
// authorization cannot be voided.
type VoidAuthorizedPayment struct {
	client.Responds[client.NoContent]
	client.NoQuery
	client.NoBody
	AuthorizationID string
}

func NewVoidAuthorizedPayment(authorizationID string) *VoidAuthorizedPayment {
	return &VoidAuthorizedPayment{AuthorizationID: authorizationID}
}

func (e *VoidAuthorizedPayment) Method() string { return http.MethodPost }

func (e *VoidAuthorizedPayment) RelativePath() string {
	return authorizationsPath + "/" + url.PathEscape(e.AuthorizationID) + "/void"
}

// GetCapturedPayment shows the details of a captured payment.
type GetCapturedPayment struct {
	client.Responds[models.Capture]
	client.NoQuery
	client.NoBody
	CaptureID string
}

func NewGetCapturedPayment(captureID string) *GetCapturedPayment {
	return &GetCapturedPayment{CaptureID: captureID}
}

func (e *GetCapturedPayment) Method() string { return http.MethodGet }

func (e *GetCapturedPayment) RelativePath() string {
	return capturesPath + "/" + url.PathEscape(e.CaptureID)
}

// RefundCapturedPayment refunds a captured payment. A nil Refund refunds
// the full captured amount.
type RefundCapturedPayment struct {
	client.Responds[models.Refund]
	client.NoQuery
	CaptureID string
	Refund    *models.RefundRequest
}

func NewRefundCapturedPayment(captureID string, refund *models.RefundRequest) *RefundCapturedPayment {
	return &RefundCapturedPayment{CaptureID: captureID, Refund: refund}
}

func (e *RefundCapturedPayment) Method() string { return http.MethodPost }

func (e *RefundCapturedPayment) RelativePath() string {
	return capturesPath + "/" + url.PathEscape(e.CaptureID) + "/refund"
}

func (e *RefundCapturedPayment) Body() any {
	if e.Refund == nil {
		return models.RefundRequest{}
	}
	return e.Refund
}
