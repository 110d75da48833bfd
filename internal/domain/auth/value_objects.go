package auth

import (
	"errors"

	"rental-admin/internal/domain/user"
	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionExpired     = errors.New("session expired or revoked")
	ErrInsufficientRole   = errs.Forbidden("insufficient role for this operation")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Principal is the authenticated caller of a command.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

func NewPrincipal(userID uuid.UUID, role user.Role) Principal {
	return Principal{UserID: userID, Role: role}
}

// Require fails with ErrInsufficientRole when the principal ranks below role.
func (p Principal) Require(role user.Role) error {
	if !p.Role.AtLeast(role) {
		return ErrInsufficientRole
	}
	return nil
}
