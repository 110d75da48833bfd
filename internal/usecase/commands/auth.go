package commands

import (
	"context"
	"log/slog"
	"time"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/infra"
	"rental-admin/internal/pkg/errs"
	"rental-admin/internal/pkg/jwt"
	"rental-admin/internal/pkg/password"
	"rental-admin/internal/usecase/queries"
	"rental-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.New("token validation failed")
)

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SessionStore tracks the refresh tokens that are still allowed to rotate.
type SessionStore interface {
	Save(ctx context.Context, jti string, userID uuid.UUID, ttl time.Duration) error
	Consume(ctx context.Context, jti string) (uuid.UUID, error)
	Revoke(ctx context.Context, jti string) error
	RevokeUser(ctx context.Context, userID uuid.UUID) error
}

type AuthCommands interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	sessions   SessionStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, sessions SessionStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		sessions:   sessions,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	u, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	pair, err := a.issue(ctx, u.ID(), u.Role())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), u.ID())
	})
	if err != nil {
		// login already succeeded; only the last_login stamp is lost
		slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
	}

	return &LoginResult{UserID: u.ID(), TokenPair: pair}, nil
}

// RefreshToken rotates the pair. The presented jti is consumed first, so a
// replayed refresh token fails even while its signature is still valid.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	owner, err := a.sessions.Consume(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if owner != claims.UserID {
		return nil, auth.ErrSessionExpired
	}

	// role comes from the stored user so role changes apply at the next rotation
	u, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		return nil, translate(err, queries.ErrUserNotFound, nil)
	}
	if !u.IsActive() {
		return nil, queries.ErrUserInactive
	}

	return a.issue(ctx, u.ID(), u.Role())
}

// Logout is idempotent: an expired or unknown refresh token is not an error.
func (a *authCommandsImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return nil
	}
	return a.sessions.Revoke(ctx, claims.ID)
}

func (a *authCommandsImpl) issue(ctx context.Context, userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, jti, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.sessions.Save(ctx, jti, userID, a.jwtService.RefreshTokenDuration()); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*user.User, error) {
	u, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same error as a password mismatch to prevent user enumeration
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	if !u.IsActive() {
		return nil, queries.ErrUserInactive
	}

	return u, nil
}
