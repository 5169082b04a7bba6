package helpers

import (
	"net/http"
)

const (
	Oauth2IdentityType = "oauth2"

	identityHeader     = "Photonow-Identity"
	identityTypeHeader = "Photonow-Identity-Type"
	authorisedUser     = "Photonow-Authorised-User"
)

func GetAuthorisedIdentity(r *http.Request) string {
	return r.Header.Get(identityHeader)
}

func GetAuthorisedIdentityType(r *http.Request) string {
	return r.Header.Get(identityTypeHeader)
}

func GetAuthorisedUser(r *http.Request) string {
	return r.Header.Get(authorisedUser)
}
