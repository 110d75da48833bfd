package readstore

import (
	"context"
	"strings"

	"rental-admin/internal/infra"
	sqlc "rental-admin/internal/infra/sqlc/generated"
	"rental-admin/internal/pkg/pgconv"
	"rental-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerViewQueries interface {
	GetCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Customers, error)
	ListCustomers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCustomersParams) ([]sqlc.Customers, error)
}

type CustomerReadStore struct {
	queries CustomerViewQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries CustomerViewQueries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row, err := r.queries.GetCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get customer by id", err)
	}
	return toCustomerView(row), nil
}

// List matches search against name and email, case-insensitively.
func (r *CustomerReadStore) List(ctx context.Context, search string, after *queries.Keyset, limit int32) ([]*queries.CustomerView, error) {
	cursorAt, cursorID := keysetArgs(after)
	rows, err := r.queries.ListCustomers(ctx, r.db, sqlc.ListCustomersParams{
		Q:               pgconv.TextOrNull(strings.TrimSpace(search)),
		CursorCreatedAt: cursorAt,
		CursorID:        cursorID,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	out := make([]*queries.CustomerView, len(rows))
	for i, row := range rows {
		out[i] = toCustomerView(row)
	}
	return out, nil
}

func toCustomerView(row sqlc.Customers) *queries.CustomerView {
	return &queries.CustomerView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     pgconv.StringFromPgtype(row.Phone),
		Notes:     pgconv.StringFromPgtype(row.Notes),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
