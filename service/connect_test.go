package service

import (
	"context"
	"errors"
	"testing"

	"github.com/photonow/orders.api.photonow.io/config"
	"github.com/photonow/orders.api.photonow.io/dao"
	"github.com/photonow/orders.api.photonow.io/models"

	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

func createMockConnectService(mockDAO *dao.MockDAO, mockProvider *MockPaymentProviderService, cfg config.Config) ConnectService {
	return ConnectService{
		DAO:      mockDAO,
		Provider: mockProvider,
		Config:   cfg,
	}
}

var defaultConnectCredentials = models.StripeConnectRest{
	AccessToken:    "access",
	RefreshToken:   "refresh",
	TokenType:      "bearer",
	PublishableKey: "pk_123",
	UserID:         "acct_123",
	Scope:          "read_write",
}

func TestUnitStartOnboarding(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	cfg.ExpressAuthorizeURL = "https://connect.stripe.com/express/oauth/authorize?state={STATE_VALUE}"

	Convey("Error storing the state token", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		connectService := createMockConnectService(mock, NewMockPaymentProviderService(mockCtrl), *cfg)
		mock.EXPECT().CreateConnectStateResource(gomock.Any()).Return(errors.New("error"))

		authorizeURL, responseType, err := connectService.StartOnboarding("userID")
		So(authorizeURL, ShouldBeEmpty)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error storing connect state token: [error]")
	})

	Convey("Authorize URL carries the stored state token", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		connectService := createMockConnectService(mock, NewMockPaymentProviderService(mockCtrl), *cfg)

		var storedState models.ConnectStateDB
		mock.EXPECT().CreateConnectStateResource(gomock.Any()).DoAndReturn(func(state *models.ConnectStateDB) error {
			storedState = *state
			return nil
		})

		authorizeURL, responseType, err := connectService.StartOnboarding("userID")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(storedState.UserID, ShouldEqual, "userID")
		So(storedState.State, ShouldNotBeEmpty)
		So(authorizeURL, ShouldEqual, "https://connect.stripe.com/express/oauth/authorize?state="+storedState.State)
	})
}

func TestUnitCompleteOnboarding(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	ctx := context.Background()

	Convey("Missing state token is rejected", t, func() {
		connectService := createMockConnectService(dao.NewMockDAO(mockCtrl), NewMockPaymentProviderService(mockCtrl), *cfg)

		user, responseType, err := connectService.CompleteOnboarding(ctx, "userID", "code", "")
		So(user, ShouldBeNil)
		So(responseType, ShouldEqual, Forbidden)
		So(err.Error(), ShouldEqual, "state token not supplied")
	})

	Convey("Error consuming the state token", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		connectService := createMockConnectService(mock, NewMockPaymentProviderService(mockCtrl), *cfg)
		mock.EXPECT().ConsumeConnectStateResource("state").Return(nil, errors.New("error"))

		user, responseType, err := connectService.CompleteOnboarding(ctx, "userID", "code", "state")
		So(user, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error consuming connect state token: [error]")
	})

	Convey("Unknown or replayed state token is rejected", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		connectService := createMockConnectService(mock, NewMockPaymentProviderService(mockCtrl), *cfg)
		mock.EXPECT().ConsumeConnectStateResource("state").Return(nil, nil)

		user, responseType, err := connectService.CompleteOnboarding(ctx, "userID", "code", "state")
		So(user, ShouldBeNil)
		So(responseType, ShouldEqual, Forbidden)
		So(err.Error(), ShouldEqual, "state token not recognised or already used")
	})

	Convey("State token issued to a different user is rejected", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		connectService := createMockConnectService(mock, NewMockPaymentProviderService(mockCtrl), *cfg)
		mock.EXPECT().ConsumeConnectStateResource("state").Return(&models.ConnectStateDB{State: "state", UserID: "otherUser"}, nil)

		user, responseType, err := connectService.CompleteOnboarding(ctx, "userID", "code", "state")
		So(user, ShouldBeNil)
		So(responseType, ShouldEqual, Forbidden)
		So(err.Error(), ShouldEqual, "state token was not issued to user [userID]")
	})

	Convey("Error exchanging the authorization code", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		provider := NewMockPaymentProviderService(mockCtrl)
		connectService := createMockConnectService(mock, provider, *cfg)
		mock.EXPECT().ConsumeConnectStateResource("state").Return(&models.ConnectStateDB{State: "state", UserID: "userID"}, nil)
		provider.EXPECT().ExchangeAuthorizationCode(gomock.Any(), "code").Return(nil, errors.New("error"))

		user, responseType, err := connectService.CompleteOnboarding(ctx, "userID", "code", "state")
		So(user, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error exchanging authorization code: [error]")
	})

	Convey("User not found", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		provider := NewMockPaymentProviderService(mockCtrl)
		connectService := createMockConnectService(mock, provider, *cfg)
		mock.EXPECT().ConsumeConnectStateResource("state").Return(&models.ConnectStateDB{State: "state", UserID: "userID"}, nil)
		provider.EXPECT().ExchangeAuthorizationCode(gomock.Any(), "code").Return(&defaultConnectCredentials, nil)
		mock.EXPECT().GetUserResource("userID").Return(nil, nil)

		user, responseType, err := connectService.CompleteOnboarding(ctx, "userID", "code", "state")
		So(user, ShouldBeNil)
		So(responseType, ShouldEqual, NotFound)
		So(err.Error(), ShouldEqual, "user not found. id: userID")
	})

	Convey("Credentials are merged into the user", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		provider := NewMockPaymentProviderService(mockCtrl)
		connectService := createMockConnectService(mock, provider, *cfg)
		mock.EXPECT().ConsumeConnectStateResource("state").Return(&models.ConnectStateDB{State: "state", UserID: "userID"}, nil)
		provider.EXPECT().ExchangeAuthorizationCode(gomock.Any(), "code").Return(&defaultConnectCredentials, nil)
		mock.EXPECT().GetUserResource("userID").Return(&models.UserResourceDB{ID: "userID", Role: models.RolePhotographer}, nil)

		var mergedConnect models.StripeConnectDB
		mock.EXPECT().UpdateUserStripeConnect("userID", gomock.Any()).DoAndReturn(func(userID string, connect *models.StripeConnectDB) error {
			mergedConnect = *connect
			return nil
		})

		user, responseType, err := connectService.CompleteOnboarding(ctx, "userID", "code", "state")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(user.StripeConnect, ShouldNotBeNil)
		So(user.StripeConnect.UserID, ShouldEqual, "acct_123")
		So(mergedConnect.AccessToken, ShouldEqual, "access")
		So(mergedConnect.RefreshToken, ShouldEqual, "refresh")
		So(mergedConnect.PublishableKey, ShouldEqual, "pk_123")
	})

	Convey("Error merging credentials", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		provider := NewMockPaymentProviderService(mockCtrl)
		connectService := createMockConnectService(mock, provider, *cfg)
		mock.EXPECT().ConsumeConnectStateResource("state").Return(&models.ConnectStateDB{State: "state", UserID: "userID"}, nil)
		provider.EXPECT().ExchangeAuthorizationCode(gomock.Any(), "code").Return(&defaultConnectCredentials, nil)
		mock.EXPECT().GetUserResource("userID").Return(&models.UserResourceDB{ID: "userID"}, nil)
		mock.EXPECT().UpdateUserStripeConnect("userID", gomock.Any()).Return(errors.New("error"))

		user, responseType, err := connectService.CompleteOnboarding(ctx, "userID", "code", "state")
		So(user, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error merging connect credentials into user: [error]")
	})
}

func TestUnitRedirectURL(t *testing.T) {
	cfg, _ := config.Get()
	cfg.PaymentsWebURL = "https://app.photonow.io/"
	connectService := ConnectService{Config: *cfg}

	Convey("Photographers land on the dashboard", t, func() {
		url := connectService.RedirectURL(&models.UserResourceDB{Role: models.RolePhotographer})
		So(url, ShouldEqual, "https://app.photonow.io/dashboard")
	})

	Convey("Admins land on the dashboard", t, func() {
		url := connectService.RedirectURL(&models.UserResourceDB{Role: models.RoleAdmin})
		So(url, ShouldEqual, "https://app.photonow.io/dashboard")
	})

	Convey("Everyone else lands on the home page", t, func() {
		url := connectService.RedirectURL(&models.UserResourceDB{Role: models.RoleCustomer})
		So(url, ShouldEqual, "https://app.photonow.io/")
	})
}
