package commands

import (
	"context"
	"log/slog"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/pkg/clock"
	"rental-admin/internal/pkg/errs"
	"rental-admin/internal/pkg/password"
	"rental-admin/internal/usecase/queries"
	"rental-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string
	Password string
	Role     string
}

type UserCommands interface {
	CreateUser(ctx context.Context, actor auth.Principal, req CreateUserRequest) (uuid.UUID, error)
	UpdateUserRole(ctx context.Context, actor auth.Principal, userID uuid.UUID, role string) error
	DeactivateUser(ctx context.Context, actor auth.Principal, userID uuid.UUID) error
}

type userCommandsImpl struct {
	uow      shared.UnitOfWork
	sessions SessionStore
	clock    clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, sessions SessionStore, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, sessions: sessions, clock: clk}
}

func (uc *userCommandsImpl) CreateUser(ctx context.Context, actor auth.Principal, req CreateUserRequest) (uuid.UUID, error) {
	if err := actor.Require(user.RoleAdmin); err != nil {
		return uuid.Nil, err
	}
	credentials, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		return uuid.Nil, err
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return uuid.Nil, errs.Invalid("role", err)
	}
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(credentials.Email(), hash, role, uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Users().Create(ctx, tx.DB(), u), nil, ErrEmailTaken)
	})
	if err != nil {
		return uuid.Nil, err
	}
	slog.Info("user created", "user_id", u.ID(), "role", role, "by", actor.UserID)
	return u.ID(), nil
}

func (uc *userCommandsImpl) UpdateUserRole(ctx context.Context, actor auth.Principal, userID uuid.UUID, role string) error {
	if err := actor.Require(user.RoleAdmin); err != nil {
		return err
	}
	next, err := user.NewRole(role)
	if err != nil {
		return errs.Invalid("role", err)
	}

	var demoted bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return translate(err, queries.ErrUserNotFound, nil)
		}
		demoted = !next.AtLeast(u.Role())
		if err := u.ChangeRole(actor.UserID, next, uc.clock.Now()); err != nil {
			return err
		}
		return translate(tx.Users().Update(ctx, tx.DB(), u), queries.ErrUserNotFound, nil)
	})
	if err != nil {
		return err
	}
	if demoted {
		uc.revokeSessions(ctx, userID)
	}
	return nil
}

func (uc *userCommandsImpl) DeactivateUser(ctx context.Context, actor auth.Principal, userID uuid.UUID) error {
	if err := actor.Require(user.RoleAdmin); err != nil {
		return err
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return translate(err, queries.ErrUserNotFound, nil)
		}
		if err := u.Deactivate(actor.UserID, uc.clock.Now()); err != nil {
			return err
		}
		return translate(tx.Users().Update(ctx, tx.DB(), u), queries.ErrUserNotFound, nil)
	})
	if err != nil {
		return err
	}
	uc.revokeSessions(ctx, userID)
	return nil
}

// revokeSessions is best effort; refresh also re-checks role and status.
func (uc *userCommandsImpl) revokeSessions(ctx context.Context, userID uuid.UUID) {
	if err := uc.sessions.RevokeUser(ctx, userID); err != nil {
		slog.Warn("failed to revoke user sessions", "user_id", userID, "error", err.Error())
	}
}
