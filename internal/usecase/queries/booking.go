package queries

import (
	"context"
	"time"

	"rental-admin/internal/domain/booking"
	"rental-admin/internal/infra"
	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.NotFound("booking not found")
	ErrInvalidDateSpan = errs.Validation("checkinFrom must be before checkinTo")
)

// BookingFilter bounds check-in dates as [CheckinFrom, CheckinTo).
type BookingFilter struct {
	PropertyID  *uuid.UUID
	CustomerID  *uuid.UUID
	Status      *booking.Status
	CheckinFrom *time.Time
	CheckinTo   *time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, after *Keyset, limit int32) ([]*BookingListItem, error)
	ListPayments(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error)
	ListCancellations(ctx context.Context, propertyID *uuid.UUID, after *Keyset, limit int32) ([]*CancellationListItem, error)
}

type BookingQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
	ListPayments(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error)
	ListCancellations(ctx context.Context, propertyID *uuid.UUID, cursor *Cursor, limit int) ([]*CancellationListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	if filter.CheckinFrom != nil && filter.CheckinTo != nil && !filter.CheckinFrom.Before(*filter.CheckinTo) {
		return nil, nil, errs.Invalid("checkinTo", ErrInvalidDateSpan)
	}
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.readStore.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(b *BookingListItem) (time.Time, uuid.UUID) { return b.CreatedAt, b.ID })
	return page, next, nil
}

// ListPayments distinguishes a missing booking from a booking without payments.
func (q *bookingQueriesImpl) ListPayments(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error) {
	if _, err := q.Get(ctx, bookingID); err != nil {
		return nil, err
	}
	return q.readStore.ListPayments(ctx, bookingID)
}

func (q *bookingQueriesImpl) ListCancellations(ctx context.Context, propertyID *uuid.UUID, cursor *Cursor, limit int) ([]*CancellationListItem, *Cursor, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.readStore.ListCancellations(ctx, propertyID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(c *CancellationListItem) (time.Time, uuid.UUID) { return c.CancelledAt, c.ID })
	return page, next, nil
}
