package user

import (
	"time"

	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyInactive  = errs.Conflict("user is already deactivated")
	ErrSelfModification = errs.Forbidden("users cannot change their own role or status")
)

// User is a staff account of the admin panel.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ChangeRole is refused when actor and target are the same account.
func (u *User) ChangeRole(actorID uuid.UUID, role Role, now time.Time) error {
	if actorID == u.id {
		return ErrSelfModification
	}
	if !role.IsValid() {
		return ErrInvalidRole
	}
	u.role = role
	u.updatedAt = now
	return nil
}

func (u *User) Deactivate(actorID uuid.UUID, now time.Time) error {
	if actorID == u.id {
		return ErrSelfModification
	}
	if !u.isActive {
		return ErrAlreadyInactive
	}
	u.isActive = false
	u.updatedAt = now
	return nil
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
