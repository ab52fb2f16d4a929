package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"marketdash/internal/domain/entity"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/domain/service"
	"marketdash/internal/errors"
	mockrepository "marketdash/internal/mocks/repository"
	mockservice "marketdash/internal/mocks/service"
	"marketdash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	api         *mockservice.MockMarketplaceAPI
	credentials *mockrepository.MockCredentialRepository
	tokens      *mockservice.MockTokenInspector
	session     usecase.SessionUsecase
	auth        usecase.AuthUsecase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		api:         mockservice.NewMockMarketplaceAPI(t),
		credentials: mockrepository.NewMockCredentialRepository(t),
		tokens:      mockservice.NewMockTokenInspector(t),
		session:     NewSessionManager(newTestLogger()),
	}
	resolver := newTestResolver(f.api, resolverConfig(time.Second, 5, true))
	f.auth = NewAuthService(AuthServiceParams{
		API:         f.api,
		Credentials: f.credentials,
		Tokens:      f.tokens,
		Session:     f.session,
		Resolver:    resolver,
		Logger:      newTestLogger(),
	})

	return f
}

func (f *authFixture) expectCleared() {
	f.api.EXPECT().ClearTokens().Return().Once()
	f.credentials.EXPECT().Clear(mock.Anything).Return(nil).Once()
}

func adminSession() *entity.Session {
	return &entity.Session{ID: "a1", Email: "admin@example.com", Role: entity.RoleAdmin}
}

func unauthorized() error {
	return &domainerrors.UpstreamError{StatusCode: http.StatusUnauthorized, Msg: "jwt expired"}
}

func TestAuthService_LoginAdmin(t *testing.T) {
	f := newAuthFixture(t)
	f.api.EXPECT().Login(mock.Anything, "admin@example.com", "secret").
		Return(&service.AuthResult{AccessToken: "at", RefreshToken: "rt", User: adminSession()}, nil).Once()
	f.api.EXPECT().SetTokens("at", "rt").Return().Once()
	f.credentials.EXPECT().Save(mock.Anything, mock.MatchedBy(func(c *entity.Credentials) bool {
		return c.AccessToken == "at" && c.RefreshToken == "rt" && c.User.ID == "a1"
	})).Return(nil).Once()

	snap, err := f.auth.Login(context.Background(), &usecase.LoginInput{Email: "admin@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.True(t, snap.Authenticated())
	assert.Equal(t, entity.OutcomeNotApplicable, snap.Resolution.Outcome)
	assert.Equal(t, entity.VerdictAllowed, snap.Verdict.Kind)
}

func TestAuthService_LoginMerchantResolvesStore(t *testing.T) {
	f := newAuthFixture(t)
	f.api.EXPECT().Login(mock.Anything, "m@example.com", "secret").
		Return(&service.AuthResult{AccessToken: "at", RefreshToken: "rt", User: merchantSession("S1")}, nil).Once()
	f.api.EXPECT().SetTokens("at", "rt").Return().Once()
	f.credentials.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	f.api.EXPECT().MyStore(mock.Anything).Return(activeStore("S1"), nil).Once()

	snap, err := f.auth.Login(context.Background(), &usecase.LoginInput{Email: "m@example.com", Password: "secret"})

	require.NoError(t, err)
	require.NotNil(t, snap.Store)
	assert.Equal(t, "S1", snap.Store.ID)
	assert.Equal(t, entity.VerdictAllowed, snap.Verdict.Kind)
}

func TestAuthService_LoginPersistFailureKeepsSession(t *testing.T) {
	f := newAuthFixture(t)
	f.api.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).
		Return(&service.AuthResult{AccessToken: "at", User: adminSession()}, nil).Once()
	f.api.EXPECT().SetTokens("at", "").Return().Once()
	f.credentials.EXPECT().Save(mock.Anything, mock.Anything).
		Return(domainerrors.NewStorageError(errors.New("disk full"), "save")).Once()

	snap, err := f.auth.Login(context.Background(), &usecase.LoginInput{Email: "admin@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.True(t, snap.Authenticated())
}

func TestAuthService_LoginRejected(t *testing.T) {
	f := newAuthFixture(t)
	f.api.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).Return(nil, unauthorized()).Once()

	snap, err := f.auth.Login(context.Background(), &usecase.LoginInput{Email: "m@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.False(t, snap.Authenticated())
}

func TestAuthService_LoginValidation(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.auth.Login(context.Background(), &usecase.LoginInput{Email: "not-an-email"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validation *domainerrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.FieldErrors(), "email")
	assert.Contains(t, validation.FieldErrors(), "password")
}

func TestAuthService_RestoreWithNothingStored(t *testing.T) {
	f := newAuthFixture(t)
	f.credentials.EXPECT().Load(mock.Anything).Return(&entity.Credentials{}, nil).Once()

	snap, err := f.auth.Restore(context.Background())

	require.NoError(t, err)
	assert.False(t, snap.Authenticated())
}

func TestAuthService_RestoreRefreshesExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	f.credentials.EXPECT().Load(mock.Anything).
		Return(&entity.Credentials{AccessToken: "old", RefreshToken: "rt", User: adminSession()}, nil).Once()
	f.tokens.EXPECT().Expired("old", accessTokenLeeway).Return(true).Once()
	f.api.EXPECT().Refresh(mock.Anything, "rt").Return(&service.AuthResult{AccessToken: "new", RefreshToken: "rt2"}, nil).Once()
	f.credentials.EXPECT().Save(mock.Anything, mock.MatchedBy(func(c *entity.Credentials) bool {
		return c.AccessToken == "new" && c.RefreshToken == "rt2"
	})).Return(nil).Twice()
	f.api.EXPECT().SetTokens("new", "rt2").Return().Once()
	f.api.EXPECT().Me(mock.Anything).Return(adminSession(), nil).Once()

	snap, err := f.auth.Restore(context.Background())

	require.NoError(t, err)
	assert.True(t, snap.Authenticated())
	assert.Equal(t, "a1", snap.Session.ID)
}

func TestAuthService_RestoreRejectedTokenForgetsSession(t *testing.T) {
	f := newAuthFixture(t)
	f.credentials.EXPECT().Load(mock.Anything).
		Return(&entity.Credentials{AccessToken: "at", RefreshToken: "rt", User: adminSession()}, nil).Once()
	f.tokens.EXPECT().Expired("at", accessTokenLeeway).Return(false).Once()
	f.api.EXPECT().SetTokens("at", "rt").Return().Once()
	f.api.EXPECT().Me(mock.Anything).Return(nil, unauthorized()).Once()
	f.expectCleared()

	snap, err := f.auth.Restore(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
	assert.False(t, snap.Authenticated())
}

func TestAuthService_RestoreRejectedRefreshForgetsSession(t *testing.T) {
	f := newAuthFixture(t)
	f.credentials.EXPECT().Load(mock.Anything).
		Return(&entity.Credentials{AccessToken: "old", RefreshToken: "rt", User: adminSession()}, nil).Once()
	f.tokens.EXPECT().Expired("old", accessTokenLeeway).Return(true).Once()
	f.api.EXPECT().Refresh(mock.Anything, "rt").Return(nil, unauthorized()).Once()
	f.expectCleared()

	_, err := f.auth.Restore(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestAuthService_RestoreOfflineKeepsStoredUser(t *testing.T) {
	f := newAuthFixture(t)
	f.credentials.EXPECT().Load(mock.Anything).
		Return(&entity.Credentials{AccessToken: "at", RefreshToken: "rt", User: merchantSession("S1")}, nil).Once()
	f.tokens.EXPECT().Expired("at", accessTokenLeeway).Return(false).Once()
	f.api.EXPECT().SetTokens("at", "rt").Return().Twice()
	f.api.EXPECT().Me(mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrUpstreamUnavailable.WithDetails("connection refused"))).Once()

	snap, err := f.auth.Restore(context.Background())

	require.NoError(t, err)
	assert.True(t, snap.Authenticated())
	assert.Equal(t, entity.VerdictPending, snap.Verdict.Kind)
	f.credentials.AssertNotCalled(t, "Clear", mock.Anything)
}

func TestAuthService_LogoutAlwaysClears(t *testing.T) {
	f := newAuthFixture(t)
	f.session.SetSession(adminSession())
	f.api.EXPECT().AccessToken().Return("at").Once()
	f.api.EXPECT().Logout(mock.Anything).Return(errors.WithStack(domainerrors.ErrUpstreamUnavailable)).Once()
	f.expectCleared()

	require.NoError(t, f.auth.Logout(context.Background()))
	assert.False(t, f.session.Snapshot().Authenticated())
}

func TestAuthService_LogoutWithoutToken(t *testing.T) {
	f := newAuthFixture(t)
	f.api.EXPECT().AccessToken().Return("").Once()
	f.expectCleared()

	require.NoError(t, f.auth.Logout(context.Background()))
	f.api.AssertNotCalled(t, "Logout", mock.Anything)
}

func TestAuthService_RefreshStoreUnauthorizedEndsSession(t *testing.T) {
	f := newAuthFixture(t)
	f.session.SetSession(merchantSession("S1"))
	f.api.EXPECT().MyStore(mock.Anything).Return(nil, unauthorized()).Once()
	f.expectCleared()

	snap, err := f.auth.RefreshStore(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
	assert.False(t, snap.Authenticated())
}

func TestAuthService_RefreshStoreRequiresSession(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.auth.RefreshStore(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestAuthService_InvalidateWithoutSessionIsNoop(t *testing.T) {
	f := newAuthFixture(t)

	f.auth.Invalidate(context.Background(), unauthorized())

	f.api.AssertNotCalled(t, "ClearTokens")
}

func TestAuthService_RefreshStoreAbandonedKeepsStore(t *testing.T) {
	f := newAuthFixture(t)
	f.session.SetSession(merchantSession(""))
	f.session.SetResolvedStore(activeStore("S1"))

	release := make(chan struct{})
	done := make(chan struct{})
	f.api.EXPECT().MyStore(mock.Anything).RunAndReturn(func(context.Context) (*entity.Store, error) {
		defer close(done)
		<-release

		return activeStore("S1"), nil
	}).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	snap, err := f.auth.RefreshStore(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomePending, snap.Resolution.Outcome)
	require.NotNil(t, snap.Store)
	assert.Equal(t, "S1", snap.Store.ID)
	assert.Equal(t, entity.VerdictAllowed, snap.Verdict.Kind)

	close(release)
	<-done
}
