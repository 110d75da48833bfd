package repository

import (
	"context"

	"rental-admin/internal/domain/payment"
	"rental-admin/internal/infra"
	"rental-admin/internal/infra/converter"
	sqlc "rental-admin/internal/infra/sqlc/generated"
	"rental-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	SumPaymentsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (pgtype.Numeric, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, tx, converter.PaymentToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to record payment", err)
	}
	return nil
}

// SumByBooking returns zero for a booking with no payments.
func (r *PaymentRepository) SumByBooking(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (decimal.Decimal, error) {
	sum, err := r.queries.SumPaymentsByBooking(ctx, tx, bookingID)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum payments", err)
	}
	return pgconv.DecimalFromNumeric(sum), nil
}
