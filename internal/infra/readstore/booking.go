package readstore

import (
	"context"

	"rental-admin/internal/infra"
	sqlc "rental-admin/internal/infra/sqlc/generated"
	"rental-admin/internal/pkg/pgconv"
	"rental-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.ListBookingsRow, error)
	ListPaymentsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.Payments, error)
	ListCancellations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCancellationsParams) ([]sqlc.ListCancellationsRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return &queries.BookingView{
		ID:               row.ID,
		PropertyID:       row.PropertyID,
		PropertyName:     row.PropertyName,
		CustomerID:       row.CustomerID,
		CustomerName:     row.CustomerName,
		CustomerEmail:    row.CustomerEmail,
		CouponID:         pgconv.UUIDPtrFromPgtype(row.CouponID),
		CouponCode:       pgconv.StringPtrFromPgtype(row.CouponCode),
		CheckinDate:      pgconv.DateFromPgtype(row.CheckinDate),
		CheckoutDate:     pgconv.DateFromPgtype(row.CheckoutDate),
		AdultCount:       row.AdultCount,
		ChildrenCount:    row.ChildrenCount,
		InfantCount:      row.InfantCount,
		RentalCharge:     pgconv.DecimalFromNumeric(row.RentalCharge),
		ExtraGuestCharge: pgconv.DecimalFromNumeric(row.ExtraGuestCharge),
		DiscountAmount:   pgconv.DecimalFromNumeric(row.DiscountAmount),
		TotalAmount:      pgconv.DecimalFromNumeric(row.TotalAmount),
		PaidAmount:       pgconv.DecimalFromNumeric(row.PaidAmount),
		Status:           row.Status,
		Notes:            pgconv.StringFromPgtype(row.Notes),
		CreatedBy:        row.CreatedBy,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter, after *queries.Keyset, limit int32) ([]*queries.BookingListItem, error) {
	cursorAt, cursorID := keysetArgs(after)
	status := pgtype.Text{Valid: false}
	if filter.Status != nil {
		status = pgconv.StringToPgtype(filter.Status.String())
	}

	rows, err := r.queries.ListBookings(ctx, r.db, sqlc.ListBookingsParams{
		PropertyID:      pgconv.UUIDPtrToPgtype(filter.PropertyID),
		CustomerID:      pgconv.UUIDPtrToPgtype(filter.CustomerID),
		Status:          status,
		CheckinFrom:     pgconv.DatePtrToPgtype(filter.CheckinFrom),
		CheckinTo:       pgconv.DatePtrToPgtype(filter.CheckinTo),
		CursorCreatedAt: cursorAt,
		CursorID:        cursorID,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	out := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		out[i] = &queries.BookingListItem{
			ID:           row.ID,
			PropertyID:   row.PropertyID,
			PropertyName: row.PropertyName,
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			CheckinDate:  pgconv.DateFromPgtype(row.CheckinDate),
			CheckoutDate: pgconv.DateFromPgtype(row.CheckoutDate),
			TotalAmount:  pgconv.DecimalFromNumeric(row.TotalAmount),
			Status:       row.Status,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}

func (r *BookingReadStore) ListPayments(ctx context.Context, bookingID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	out := make([]*queries.PaymentView, len(rows))
	for i, row := range rows {
		out[i] = &queries.PaymentView{
			ID:         row.ID,
			BookingID:  row.BookingID,
			Amount:     pgconv.DecimalFromNumeric(row.Amount),
			Method:     row.Method,
			Reference:  pgconv.StringFromPgtype(row.Reference),
			PaidAt:     pgconv.TimeFromPgtype(row.PaidAt),
			RecordedBy: row.RecordedBy,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}

func (r *BookingReadStore) ListCancellations(ctx context.Context, propertyID *uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.CancellationListItem, error) {
	cursorAt, cursorID := keysetArgs(after)
	rows, err := r.queries.ListCancellations(ctx, r.db, sqlc.ListCancellationsParams{
		PropertyID:      pgconv.UUIDPtrToPgtype(propertyID),
		CursorCreatedAt: cursorAt,
		CursorID:        cursorID,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cancellations", err)
	}
	out := make([]*queries.CancellationListItem, len(rows))
	for i, row := range rows {
		out[i] = &queries.CancellationListItem{
			ID:           row.ID,
			BookingID:    row.BookingID,
			PropertyID:   row.PropertyID,
			PropertyName: row.PropertyName,
			Reason:       row.Reason,
			RefundAmount: pgconv.DecimalFromNumeric(row.RefundAmount),
			CancelledBy:  row.CancelledBy,
			CancelledAt:  pgconv.TimeFromPgtype(row.CancelledAt),
		}
	}
	return out, nil
}
