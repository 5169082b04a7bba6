package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/photonow/orders.api.photonow.io/config"
	"github.com/photonow/orders.api.photonow.io/dao"
	"github.com/photonow/orders.api.photonow.io/models"
)

// statePlaceholder is the token in the authorize URL template replaced with
// the generated state value
const statePlaceholder = "{STATE_VALUE}"

// ConnectService runs the Stripe Express onboarding handshake for
// photographers
type ConnectService struct {
	DAO      dao.DAO
	Provider PaymentProviderService
	Config   config.Config
}

// StartOnboarding generates and stores a single-use state token and returns
// the hosted onboarding URL to redirect the photographer to
func (service *ConnectService) StartOnboarding(userID string) (string, ResponseType, error) {
	state := uuid.NewString()

	err := service.DAO.CreateConnectStateResource(&models.ConnectStateDB{
		State:  state,
		UserID: userID,
		// To match the format time is saved to mongo, e.g. "2018-11-22T08:39:16.782Z", truncate the time
		CreatedAt: time.Now().Truncate(time.Millisecond),
	})
	if err != nil {
		return "", Error, fmt.Errorf("error storing connect state token: [%v]", err)
	}

	return strings.Replace(service.Config.ExpressAuthorizeURL, statePlaceholder, state, 1), Success, nil
}

// CompleteOnboarding validates and consumes the state token, exchanges the
// authorization code for connect credentials and merges them into the user
// record. A missing, unknown or replayed state token is rejected, as is a
// token issued to a different user.
func (service *ConnectService) CompleteOnboarding(ctx context.Context, userID, code, state string) (*models.UserResourceDB, ResponseType, error) {
	if state == "" {
		return nil, Forbidden, fmt.Errorf("state token not supplied")
	}

	stateResource, err := service.DAO.ConsumeConnectStateResource(state)
	if err != nil {
		return nil, Error, fmt.Errorf("error consuming connect state token: [%v]", err)
	}
	if stateResource == nil {
		return nil, Forbidden, fmt.Errorf("state token not recognised or already used")
	}

	// The token only authorises the onboarding it was issued for. A token
	// started in one user's session must not complete another user's
	// callback.
	if stateResource.UserID != userID {
		return nil, Forbidden, fmt.Errorf("state token was not issued to user [%s]", userID)
	}

	connect, err := service.Provider.ExchangeAuthorizationCode(ctx, code)
	if err != nil {
		return nil, Error, fmt.Errorf("error exchanging authorization code: [%v]", err)
	}

	user, err := service.DAO.GetUserResource(userID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting user from db: [%v]", err)
	}
	if user == nil {
		return nil, NotFound, fmt.Errorf("user not found. id: %s", userID)
	}

	connectDB := &models.StripeConnectDB{
		AccessToken:    connect.AccessToken,
		RefreshToken:   connect.RefreshToken,
		TokenType:      connect.TokenType,
		PublishableKey: connect.PublishableKey,
		UserID:         connect.UserID,
		Scope:          connect.Scope,
	}

	err = service.DAO.UpdateUserStripeConnect(userID, connectDB)
	if err != nil {
		return nil, Error, fmt.Errorf("error merging connect credentials into user: [%v]", err)
	}

	user.StripeConnect = connectDB

	return user, Success, nil
}

// RedirectURL chooses the post-onboarding destination from the user's role
func (service *ConnectService) RedirectURL(user *models.UserResourceDB) string {
	if user.Role == models.RolePhotographer || user.Role == models.RoleAdmin {
		return service.Config.PaymentsWebURL + "dashboard"
	}
	return service.Config.PaymentsWebURL
}
