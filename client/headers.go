package client

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Prefer selects how much of a resource PayPal returns.
type Prefer string

const (
	PreferMinimal        Prefer = "return=minimal"
	PreferRepresentation Prefer = "return=representation"
)

const contentTypeJSON = "application/json"

// HeaderParams are the optional per-request headers PayPal understands.
type HeaderParams struct {
	// MerchantPayerID, when set, is sent as a PayPal-Auth-Assertion so the
	// call acts on behalf of that merchant.
	MerchantPayerID string

	ClientMetadataID     string
	PartnerAttributionID string

	// RequestID makes the call idempotent. See NewRequestID.
	RequestID string

	// Prefer defaults to PreferRepresentation.
	Prefer Prefer

	// ContentType defaults to application/json.
	ContentType string
}

// NewRequestID returns a fresh value for HeaderParams.RequestID.
func NewRequestID() string {
	return uuid.NewString()
}

func (c *Client) headers(token string, params HeaderParams) (http.Header, error) {
	h := http.Header{}
	h.Set("Accept", contentTypeJSON)
	h.Set("Authorization", "Bearer "+token)

	contentType := params.ContentType
	if contentType == "" {
		contentType = contentTypeJSON
	}
	h.Set("Content-Type", contentType)

	prefer := params.Prefer
	if prefer == "" {
		prefer = PreferRepresentation
	}
	h.Set("Prefer", string(prefer))

	if params.MerchantPayerID != "" {
		assertion, err := authAssertion(c.clientID, c.secret, params.MerchantPayerID)
		if err != nil {
			return nil, err
		}
		h.Set("PayPal-Auth-Assertion", assertion)
	}
	if params.ClientMetadataID != "" {
		h.Set("PayPal-Client-Metadata-Id", params.ClientMetadataID)
	}
	if params.PartnerAttributionID != "" {
		h.Set("PayPal-Partner-Attribution-Id", params.PartnerAttributionID)
	}
	if params.RequestID != "" {
		h.Set("PayPal-Request-Id", params.RequestID)
	}
	return h, nil
}

// authAssertion signs the merchant payer id with the client secret.
func authAssertion(clientID, secret, payerID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":      clientID,
		"payer_id": payerID,
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("error signing auth assertion: [%w]", err)
	}
	return base64.StdEncoding.EncodeToString([]byte(signed)), nil
}
