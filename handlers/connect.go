package handlers

import (
	"fmt"
	"net/http"

	"github.com/photonow/orders.api.photonow.io/helpers"
	"github.com/photonow/orders.api.photonow.io/models"

	"github.com/companieshouse/chs.go/log"
)

// HandleStartConnect issues a state token for the calling user and redirects
// them to the Stripe Express authorize page
func HandleStartConnect(w http.ResponseWriter, req *http.Request) {
	// get user details from context, put there by UserAuthenticationInterceptor
	userDetails, ok := req.Context().Value(helpers.ContextKeyUserDetails).(models.AuthUserDetails)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		writeFailure(w, req, http.StatusInternalServerError)
		return
	}

	authorizeURL, responseType, err := connectService.StartOnboarding(userDetails.ID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error starting express onboarding: [%v]", err))
		writeFailure(w, req, statusFor(responseType))
		return
	}

	log.InfoR(req, "Redirecting user to Stripe Express onboarding", log.Data{"user_id": userDetails.ID})
	http.Redirect(w, req, authorizeURL, http.StatusFound)
}

// HandleConnectCallback completes Express onboarding once Stripe redirects
// the user back with an authorization code
func HandleConnectCallback(w http.ResponseWriter, req *http.Request) {
	userDetails, ok := req.Context().Value(helpers.ContextKeyUserDetails).(models.AuthUserDetails)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		writeFailure(w, req, http.StatusInternalServerError)
		return
	}

	query := req.URL.Query()
	code := query.Get("code")
	state := query.Get("state")
	if code == "" {
		log.ErrorR(req, fmt.Errorf("authorization code not supplied"))
		writeFailure(w, req, http.StatusBadRequest)
		return
	}

	user, responseType, err := connectService.CompleteOnboarding(req.Context(), userDetails.ID, code, state)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error completing express onboarding: [%v]", err))
		writeFailure(w, req, statusFor(responseType))
		return
	}

	redirectURL := connectService.RedirectURL(user)
	log.InfoR(req, "Successfully completed Express onboarding", log.Data{"user_id": user.ID, "redirect_url": redirectURL})
	http.Redirect(w, req, redirectURL, http.StatusFound)
}
