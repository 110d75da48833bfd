package commands

import (
	"context"
	"time"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/domain/payment"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/pkg/clock"
	"rental-admin/internal/usecase/queries"
	"rental-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	Amount    decimal.Decimal
	Method    string
	Reference string
	// PaidAt defaults to now when zero.
	PaidAt time.Time
}

type PaymentCommands interface {
	RecordPayment(ctx context.Context, actor auth.Principal, bookingID uuid.UUID, req RecordPaymentRequest) (uuid.UUID, error)
}

type paymentCommandsImpl struct {
	uow     shared.UnitOfWork
	metrics BookingMetrics
	clock   clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, metrics BookingMetrics, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, metrics: metrics, clock: clk}
}

// RecordPayment locks the booking row so concurrent payments see each other's sums.
func (uc *paymentCommandsImpl) RecordPayment(ctx context.Context, actor auth.Principal, bookingID uuid.UUID, req RecordPaymentRequest) (uuid.UUID, error) {
	if err := actor.Require(user.RoleOperator); err != nil {
		return uuid.Nil, err
	}
	now := uc.clock.Now()
	paidAt := req.PaidAt
	if paidAt.IsZero() {
		paidAt = now
	}

	var created *payment.Payment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().LockByID(ctx, tx.DB(), bookingID)
		if err != nil {
			return translate(err, queries.ErrBookingNotFound, nil)
		}
		paid, err := tx.Payments().SumByBooking(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}

		p, err := payment.NewPayment(payment.Ledger{
			BookingID: b.ID(),
			Status:    b.Status(),
			Total:     b.Total(),
			Paid:      paid,
		}, payment.Params{
			Amount:     req.Amount,
			Method:     req.Method,
			Reference:  req.Reference,
			PaidAt:     paidAt,
			RecordedBy: actor.UserID,
		}, now)
		if err != nil {
			return err
		}
		if err := tx.Payments().Create(ctx, tx.DB(), p); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	uc.metrics.PaymentRecorded(created.Method().String())
	return created.ID(), nil
}
