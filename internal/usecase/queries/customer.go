package queries

import (
	"context"
	"time"

	"rental-admin/internal/infra"
	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errs.NotFound("customer not found")

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context, search string, after *Keyset, limit int32) ([]*CustomerView, error)
}

type CustomerQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context, search string, cursor *Cursor, limit int) ([]*CustomerView, *Cursor, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *customerQueriesImpl) List(ctx context.Context, search string, cursor *Cursor, limit int) ([]*CustomerView, *Cursor, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.readStore.List(ctx, search, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(c *CustomerView) (time.Time, uuid.UUID) { return c.CreatedAt, c.ID })
	return page, next, nil
}
