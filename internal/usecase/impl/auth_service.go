package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketdash/internal/delivery/context"
	"marketdash/internal/domain/entity"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/domain/repository"
	"marketdash/internal/domain/service"
	"marketdash/internal/errors"
	"marketdash/internal/usecase"
	"marketdash/internal/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// tokens this close to expiry are refreshed before use
const accessTokenLeeway = 30 * time.Second

// authClient is the part of the marketplace client the auth flow needs.
type authClient interface {
	service.TokenHolder
	service.AuthAPI
}

// authService implements the AuthUsecase interface.
type authService struct {
	api         authClient
	credentials repository.CredentialRepository
	tokens      service.TokenInspector
	session     usecase.SessionUsecase
	resolver    usecase.StoreResolver
	validate    *validator.Validate
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	API         service.MarketplaceAPI
	Credentials repository.CredentialRepository
	Tokens      service.TokenInspector
	Session     usecase.SessionUsecase
	Resolver    usecase.StoreResolver
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		api:         params.API,
		credentials: params.Credentials,
		tokens:      params.Tokens,
		session:     params.Session,
		resolver:    params.Resolver,
		validate:    validation.New(),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login signs in, persists the credentials and resolves the merchant's store.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (usecase.SessionSnapshot, error) {
	if err := validation.Check(srv.validate, input); err != nil {
		return srv.session.Snapshot(), err
	}

	srv.log(ctx).Info("Signing in", slog.String("email", input.Email))

	result, err := srv.api.Login(ctx, input.Email, input.Password)
	if err != nil {
		if domainerrors.IsUnauthorized(err) {
			return srv.session.Snapshot(), errors.Wrap(domainerrors.ErrInvalidCredentials, err.Error())
		}
		srv.log(ctx).Warn("Sign in failed", slog.Any("error", err))

		return srv.session.Snapshot(), errors.Wrap(err, "failed to sign in")
	}

	srv.api.SetTokens(result.AccessToken, result.RefreshToken)
	srv.persist(ctx, &entity.Credentials{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         result.User,
	})
	srv.session.SetSession(result.User)

	srv.log(ctx).Info("Signed in",
		slog.String("user_id", result.User.ID),
		slog.String("role", result.User.Role.String()))

	return srv.RefreshStore(ctx)
}

// Restore revives the persisted session. An expired access token is refreshed
// first; the token is then verified with /auth/me. Only a 401 drops the stored
// credentials: any other failure keeps the stored user signed in offline.
func (srv *authService) Restore(ctx context.Context) (usecase.SessionSnapshot, error) {
	creds, err := srv.credentials.Load(ctx)
	if err != nil {
		return srv.session.Snapshot(), errors.Wrap(err, "failed to load credentials")
	}
	if creds.Empty() {
		srv.log(ctx).Debug("No stored session")

		return srv.session.Snapshot(), nil
	}

	if srv.tokens.Expired(creds.AccessToken, accessTokenLeeway) {
		refreshed, err := srv.refresh(ctx, creds)
		if err != nil {
			if domainerrors.IsUnauthorized(err) {
				srv.forget(ctx)

				return srv.session.Snapshot(), errors.Wrap(domainerrors.ErrSessionExpired, err.Error())
			}

			return srv.restoreOffline(ctx, creds, err)
		}
		creds = refreshed
	}

	srv.api.SetTokens(creds.AccessToken, creds.RefreshToken)

	user, err := srv.api.Me(ctx)
	if err != nil {
		if domainerrors.IsUnauthorized(err) {
			srv.log(ctx).Info("Stored session was rejected", slog.Any("error", err))
			srv.forget(ctx)

			return srv.session.Snapshot(), errors.Wrap(domainerrors.ErrSessionExpired, err.Error())
		}

		return srv.restoreOffline(ctx, creds, err)
	}

	creds.User = user
	srv.persist(ctx, creds)
	srv.session.SetSession(user)

	srv.log(ctx).Info("Session restored", slog.String("user_id", user.ID))

	return srv.RefreshStore(ctx)
}

func (srv *authService) refresh(ctx context.Context, creds *entity.Credentials) (*entity.Credentials, error) {
	if creds.RefreshToken == "" {
		return nil, errors.WithStack(domainerrors.ErrSessionExpired)
	}

	result, err := srv.api.Refresh(ctx, creds.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh access token")
	}

	refreshed := &entity.Credentials{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         creds.User,
	}
	if result.User != nil {
		refreshed.User = result.User
	}
	srv.persist(ctx, refreshed)

	srv.log(ctx).Info("Access token refreshed")

	return refreshed, nil
}

// restoreOffline keeps the stored user signed in when the API could not be asked.
func (srv *authService) restoreOffline(ctx context.Context, creds *entity.Credentials, cause error) (usecase.SessionSnapshot, error) {
	if creds.User == nil {
		return srv.session.Snapshot(), errors.Wrap(cause, "failed to verify stored session")
	}

	srv.log(ctx).Warn("Could not verify stored session, continuing offline", slog.Any("error", cause))

	srv.api.SetTokens(creds.AccessToken, creds.RefreshToken)
	srv.session.SetSession(creds.User)

	return srv.session.Snapshot(), nil
}

// Logout signs out upstream on a best-effort basis and always forgets locally.
func (srv *authService) Logout(ctx context.Context) error {
	if srv.api.AccessToken() != "" {
		if err := srv.api.Logout(ctx); err != nil {
			srv.log(ctx).Warn("Upstream sign out failed", slog.Any("error", err))
		}
	}

	if err := srv.clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear stored session")
	}

	srv.log(ctx).Info("Signed out")

	return nil
}

// RefreshStore re-runs store resolution for the current session.
func (srv *authService) RefreshStore(ctx context.Context) (usecase.SessionSnapshot, error) {
	snap := srv.session.Snapshot()
	if !snap.Authenticated() {
		return snap, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	srv.session.SetResolutionState(snap.Generation, entity.Resolution{Outcome: entity.OutcomeResolving})

	resolution := srv.resolver.Resolve(ctx, snap.Session)
	if resolution.Outcome == entity.OutcomeUnauthorized {
		srv.Invalidate(ctx, resolution.Err)

		return srv.session.Snapshot(), errors.WithStack(domainerrors.ErrSessionExpired)
	}

	srv.session.SetResolutionState(snap.Generation, resolution)

	return srv.session.Snapshot(), nil
}

// Invalidate ends the session after the API rejected its token.
func (srv *authService) Invalidate(ctx context.Context, cause error) {
	if !srv.session.Snapshot().Authenticated() {
		return
	}

	srv.log(ctx).Warn("Session invalidated by the API", slog.Any("error", cause))
	srv.forget(ctx)
}

// forget clears every trace of the session, logging storage failures.
func (srv *authService) forget(ctx context.Context) {
	if err := srv.clear(ctx); err != nil {
		srv.log(ctx).Error("Failed to clear stored credentials", slog.Any("error", err))
	}
}

func (srv *authService) clear(ctx context.Context) error {
	srv.api.ClearTokens()
	srv.session.ClearSession()

	return srv.credentials.Clear(ctx)
}

// persist stores credentials; the in-memory session stays usable if it fails.
func (srv *authService) persist(ctx context.Context, creds *entity.Credentials) {
	if err := srv.credentials.Save(ctx, creds); err != nil {
		srv.log(ctx).Error("Failed to persist credentials", slog.Any("error", err))
	}
}
