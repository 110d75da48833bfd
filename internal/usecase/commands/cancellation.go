package commands

import (
	"context"
	"log/slog"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/domain/cancellation"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/pkg/clock"
	"rental-admin/internal/usecase/queries"
	"rental-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CancelBookingRequest struct {
	Reason       string
	RefundAmount decimal.Decimal
}

type CancellationCommands interface {
	CancelBooking(ctx context.Context, actor auth.Principal, bookingID uuid.UUID, req CancelBookingRequest) (uuid.UUID, error)
}

type cancellationCommandsImpl struct {
	uow     shared.UnitOfWork
	metrics BookingMetrics
	clock   clock.Clock
}

func NewCancellationCommands(uow shared.UnitOfWork, metrics BookingMetrics, clk clock.Clock) CancellationCommands {
	return &cancellationCommandsImpl{uow: uow, metrics: metrics, clock: clk}
}

func (uc *cancellationCommandsImpl) CancelBooking(ctx context.Context, actor auth.Principal, bookingID uuid.UUID, req CancelBookingRequest) (uuid.UUID, error) {
	if err := actor.Require(user.RoleOperator); err != nil {
		return uuid.Nil, err
	}

	var created *cancellation.Cancellation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().LockByID(ctx, tx.DB(), bookingID)
		if err != nil {
			return translate(err, queries.ErrBookingNotFound, nil)
		}
		paid, err := tx.Payments().SumByBooking(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}

		c, err := cancellation.Cancel(b, paid, cancellation.Params{
			Reason:       req.Reason,
			RefundAmount: req.RefundAmount,
			CancelledBy:  actor.UserID,
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return translate(err, queries.ErrBookingNotFound, nil)
		}
		// booking_id is unique on cancellations; a racing cancel lands here
		if err := translate(tx.Cancellations().Create(ctx, tx.DB(), c), nil, cancellation.ErrAlreadyCancelled); err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.metrics.BookingCancelled()
	slog.Info("booking cancelled", "booking_id", bookingID, "refund", created.RefundAmount().StringFixed(2))
	return created.ID(), nil
}
