package helpers

import (
	"context"
	"net/http"
	"strings"

	"github.com/companieshouse/paypal.api.ch.gov.uk/models"
)

const (
	Oauth2IdentityType = "oauth2"

	ericIdentity       = "ERIC-Identity"
	ericIdentityType   = "ERIC-Identity-Type"
	ericAuthorisedUser = "ERIC-Authorised-User"
)

func GetAuthorisedIdentity(r *http.Request) string {
	return r.Header.Get(ericIdentity)
}

func GetAuthorisedIdentityType(r *http.Request) string {
	return r.Header.Get(ericIdentityType)
}

func GetAuthorisedUser(r *http.Request) string {
	return r.Header.Get(ericAuthorisedUser)
}

// ParseAuthorisedUser builds user details from an identity and an
// ERIC-Authorised-User value. Both "email;forename;surname" and
// "email; forename=x; surname=y" are accepted.
func ParseAuthorisedUser(identity, authorisedUser string) models.AuthUserDetails {
	details := models.AuthUserDetails{ID: identity}

	parts := strings.Split(authorisedUser, ";")
	details.Email = strings.TrimSpace(parts[0])

	for i, part := range parts[1:] {
		key, value, found := strings.Cut(part, "=")
		if !found {
			switch i {
			case 0:
				details.Forename = strings.TrimSpace(part)
			case 1:
				details.Surname = strings.TrimSpace(part)
			}
			continue
		}
		switch strings.TrimSpace(key) {
		case "forename":
			details.Forename = strings.TrimSpace(value)
		case "surname":
			details.Surname = strings.TrimSpace(value)
		}
	}

	return details
}

// GetUserDetails returns the user details placed in the context by the
// user authentication interceptor.
func GetUserDetails(ctx context.Context) (models.AuthUserDetails, bool) {
	details, ok := ctx.Value(ContextKeyUserDetails).(models.AuthUserDetails)
	return details, ok
}
