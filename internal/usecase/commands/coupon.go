package commands

import (
	"context"
	"log/slog"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/domain/coupon"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/infra"
	"rental-admin/internal/pkg/clock"
	"rental-admin/internal/pkg/errs"
	"rental-admin/internal/usecase/queries"
	"rental-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownLinkedProperty = errs.Validation("a linked property does not exist")

type CouponCommands interface {
	CreateCoupon(ctx context.Context, actor auth.Principal, params coupon.Params) (uuid.UUID, error)
	UpdateCoupon(ctx context.Context, actor auth.Principal, id uuid.UUID, params coupon.Params) error
	DeleteCoupon(ctx context.Context, actor auth.Principal, id uuid.UUID) error
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, clock: clk}
}

func (uc *couponCommandsImpl) CreateCoupon(ctx context.Context, actor auth.Principal, params coupon.Params) (uuid.UUID, error) {
	if err := actor.Require(user.RoleAdmin); err != nil {
		return uuid.Nil, err
	}
	c, err := coupon.NewCoupon(params, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return couponWriteErr(tx.Coupons().Create(ctx, tx.DB(), c))
	})
	if err != nil {
		return uuid.Nil, err
	}
	slog.Info("coupon created", "coupon_id", c.ID(), "code", c.Code(), "properties", len(c.PropertyIDs()))
	return c.ID(), nil
}

// UpdateCoupon replaces the linked property set along with the coupon row.
func (uc *couponCommandsImpl) UpdateCoupon(ctx context.Context, actor auth.Principal, id uuid.UUID, params coupon.Params) error {
	if err := actor.Require(user.RoleAdmin); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().CouponByID(ctx, id)
		if err != nil {
			return translate(err, queries.ErrCouponNotFound, nil)
		}
		if err := c.Revise(params, uc.clock.Now()); err != nil {
			return err
		}
		return couponWriteErr(tx.Coupons().Update(ctx, tx.DB(), c))
	})
}

func (uc *couponCommandsImpl) DeleteCoupon(ctx context.Context, actor auth.Principal, id uuid.UUID) error {
	if err := actor.Require(user.RoleAdmin); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Coupons().Delete(ctx, tx.DB(), id), queries.ErrCouponNotFound, nil)
	})
}

func couponWriteErr(err error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Invalid("propertyIds", ErrUnknownLinkedProperty)
	}
	return translate(err, queries.ErrCouponNotFound, ErrCouponCodeTaken)
}
