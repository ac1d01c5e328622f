package interceptors

import (
	"context"
	"errors"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal.api.ch.gov.uk/helpers"
)

// UserAuthenticationIntercept rejects requests without an oauth2 ERIC
// identity and authorised user. The caller's details are added to the
// request context for the checkout service to record.
func UserAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if helpers.GetAuthorisedIdentityType(r) != helpers.Oauth2IdentityType {
			log.ErrorR(r, errors.New("user authentication interceptor unauthorised: not oauth2 identity type"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		identity := helpers.GetAuthorisedIdentity(r)
		if identity == "" {
			log.ErrorR(r, errors.New("user authentication interceptor unauthorised: no authorised identity"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		authorisedUser := helpers.GetAuthorisedUser(r)
		if authorisedUser == "" {
			log.ErrorR(r, errors.New("user authentication interceptor unauthorised: no authorised user"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		userDetails := helpers.ParseAuthorisedUser(identity, authorisedUser)
		ctx := context.WithValue(r.Context(), helpers.ContextKeyUserDetails, userDetails)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
