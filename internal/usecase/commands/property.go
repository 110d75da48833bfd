package commands

import (
	"context"
	"log/slog"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/domain/property"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/infra"
	"rental-admin/internal/pkg/clock"
	"rental-admin/internal/usecase/queries"
	"rental-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type PropertyCommands interface {
	CreateProperty(ctx context.Context, actor auth.Principal, params property.Params) (uuid.UUID, error)
	UpdateProperty(ctx context.Context, actor auth.Principal, id uuid.UUID, params property.Params) error
	DeleteProperty(ctx context.Context, actor auth.Principal, id uuid.UUID) error
}

type propertyCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPropertyCommands(uow shared.UnitOfWork, clk clock.Clock) PropertyCommands {
	return &propertyCommandsImpl{uow: uow, clock: clk}
}

func (uc *propertyCommandsImpl) CreateProperty(ctx context.Context, actor auth.Principal, params property.Params) (uuid.UUID, error) {
	if err := actor.Require(user.RoleAdmin); err != nil {
		return uuid.Nil, err
	}
	p, err := property.NewProperty(params, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Properties().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return uuid.Nil, err
	}
	slog.Info("property created", "property_id", p.ID(), "overrides", p.Overrides().Len())
	return p.ID(), nil
}

// UpdateProperty replaces the profile and the override set in the same
// transaction as the attributes, so a failure leaves the stored set intact.
func (uc *propertyCommandsImpl) UpdateProperty(ctx context.Context, actor auth.Principal, id uuid.UUID, params property.Params) error {
	if err := actor.Require(user.RoleAdmin); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().PropertyByID(ctx, id)
		if err != nil {
			return translate(err, queries.ErrPropertyNotFound, nil)
		}
		if err := p.Revise(params, uc.clock.Now()); err != nil {
			return err
		}
		return translate(tx.Properties().Update(ctx, tx.DB(), p), queries.ErrPropertyNotFound, nil)
	})
}

func (uc *propertyCommandsImpl) DeleteProperty(ctx context.Context, actor auth.Principal, id uuid.UUID) error {
	if err := actor.Require(user.RoleAdmin); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Properties().Delete(ctx, tx.DB(), id)
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrPropertyInUse
		}
		return translate(err, queries.ErrPropertyNotFound, nil)
	})
}
