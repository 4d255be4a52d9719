package impl

import (
	"context"
	"log/slog"
	"time"

	"folio/config"
	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	creds  repository.CredentialRepository
	hasher service.PasswordHasher
	tokens service.TokenService
	cfg    *config.Config
	logger *slog.Logger
}

// NewSessionService is the constructor for sessionService. On startup it
// seeds the configured initial credential when no record exists for it yet,
// so a fresh deployment is immediately signable-in.
func NewSessionService(
	lc fx.Lifecycle,
	creds repository.CredentialRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	srv := &sessionService{
		creds:  creds,
		hasher: hasher,
		tokens: tokens,
		cfg:    cfg,
		logger: logger,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return srv.seedInitialCredential(ctx)
		},
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) seedInitialCredential(ctx context.Context) error {
	email := srv.cfg.Auth.InitialEmail
	password := srv.cfg.Auth.InitialPassword
	if email == "" || password == "" {
		return nil
	}

	_, err := srv.creds.Find(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrCredentialNotFound) {
		return errors.Wrap(err, "failed to check initial credential")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash initial password")
	}

	cred := &entity.AdminCredential{
		Email:        email,
		PasswordHash: hash,
		UpdatedAt:    time.Now(),
	}
	if err := srv.creds.Save(ctx, cred); err != nil {
		return errors.Wrap(err, "failed to seed initial credential")
	}
	srv.logger.Info("Seeded initial admin credential", slog.String("email", email))

	return nil
}

// Login verifies the email/password pair and returns a session token. A bad
// email and a bad password fail identically, leaving stored state untouched.
func (srv *sessionService) Login(ctx context.Context, email, password string) (string, error) {
	cred, err := srv.creds.Find(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return "", domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to look up credential", slog.Any("error", err))

		return "", domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}

	if !srv.hasher.Check(password, cred.PasswordHash) {
		srv.log(ctx).Info("Rejected login attempt", slog.String("email", email))

		return "", domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.GenerateAdminToken(cred.Email, time.Now())
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}
	srv.log(ctx).Info("Admin logged in", slog.String("email", email))

	return token, nil
}

// Authenticate validates a session token and returns its claims.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*service.AdminClaims, error) {
	claims, err := srv.tokens.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}

// UpdateCredentials re-proves the current password and changes the admin
// email, the password, or both. The freshness window is checked before the
// password so a stale session is told to log in again rather than probe.
func (srv *sessionService) UpdateCredentials(ctx context.Context, claims *service.AdminClaims, update *usecase.CredentialUpdate) (string, error) {
	if update.NewEmail == "" && update.NewPassword == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("nothing to change")
	}

	if time.Since(claims.AuthTime) > srv.cfg.Auth.ReauthWindow {
		return "", domainerrors.ErrReauthenticationRequired
	}

	cred, err := srv.creds.Find(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return "", domainerrors.ErrUnauthorized
		}
		srv.log(ctx).Error("Failed to look up credential", slog.Any("error", err))

		return "", domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}

	if !srv.hasher.Check(update.CurrentPassword, cred.PasswordHash) {
		return "", domainerrors.ErrInvalidCredentials
	}

	email := claims.Email
	if update.NewEmail != "" && update.NewEmail != claims.Email {
		email = update.NewEmail
	}

	hash := cred.PasswordHash
	if update.NewPassword != "" {
		hash, err = srv.hasher.Hash(update.NewPassword)
		if err != nil {
			return "", errors.Wrap(err, "failed to hash new password")
		}
	}

	// One repository write carrying both changes, so a failure cannot leave
	// the email renamed with the prior password still in place.
	updated := &entity.AdminCredential{
		Email:        email,
		PasswordHash: hash,
		UpdatedAt:    time.Now(),
	}
	if email != claims.Email {
		err = srv.creds.Rename(ctx, claims.Email, updated)
	} else {
		err = srv.creds.Save(ctx, updated)
	}
	if err != nil {
		if errors.Is(err, repository.ErrCredentialExists) {
			return "", domainerrors.ErrEmailAlreadyInUse
		}
		srv.log(ctx).Error("Failed to update credential", slog.Any("error", err))

		return "", domainerrors.ErrStorageUnavailable.WithDetails(err.Error())
	}

	// The password was just re-proven, so the new token carries a fresh
	// authentication time.
	token, err := srv.tokens.GenerateAdminToken(email, time.Now())
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}
	srv.log(ctx).Info("Admin credentials updated", slog.String("email", email))

	return token, nil
}
