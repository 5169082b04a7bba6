package interceptors

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/photonow/orders.api.photonow.io/helpers"
	"github.com/photonow/orders.api.photonow.io/models"

	"github.com/companieshouse/chs.go/log"
)

// UserAuthenticationInterceptor rejects requests without a fully populated
// oauth2 identity, and adds the authorised user's details to the request
// context for the handlers behind it
func UserAuthenticationInterceptor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check headers for identity type and identity
		identityType := helpers.GetAuthorisedIdentityType(r)
		if identityType != helpers.Oauth2IdentityType {
			log.Error(fmt.Errorf("authentication interceptor unauthorised: not oauth2 identity type"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		identity := helpers.GetAuthorisedIdentity(r)
		if identity == "" {
			log.Error(fmt.Errorf("authentication interceptor unauthorised: no authorised identity"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		authorisedUser := helpers.GetAuthorisedUser(r)
		if authorisedUser == "" {
			log.Error(fmt.Errorf("authentication interceptor unauthorised: no authorised user"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		// Extract user details and add to context
		userDetails := strings.Split(authorisedUser, ";")
		authUserDetails := models.AuthUserDetails{ID: identity}

		switch len(userDetails) {
		case 1:
			authUserDetails.Email = strings.TrimSpace(userDetails[0])
		default:
			authUserDetails.Email = strings.TrimSpace(userDetails[0])
			authUserDetails.Role = strings.TrimSpace(userDetails[1])
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyUserDetails, authUserDetails)

		// Call the next handler
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
