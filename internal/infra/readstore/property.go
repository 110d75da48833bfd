package readstore

import (
	"context"

	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/infra"
	"rental-admin/internal/infra/converter"
	sqlc "rental-admin/internal/infra/sqlc/generated"
	"rental-admin/internal/pkg/pgconv"
	"rental-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyViewQueries interface {
	GetPropertyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Properties, error)
	ListProperties(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPropertiesParams) ([]sqlc.Properties, error)
	ListPropertyRates(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) ([]sqlc.PropertyRates, error)
	ListSpecialDatePrices(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) ([]sqlc.SpecialDatePrices, error)
}

type PropertyReadStore struct {
	queries PropertyViewQueries
	db      sqlc.DBTX
}

func NewPropertyReadStore(queries PropertyViewQueries, db sqlc.DBTX) *PropertyReadStore {
	return &PropertyReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID loads the property with its full profile and override set.
// Callers wanting a consistent snapshot pass a transaction as db.
func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	row, err := r.queries.GetPropertyByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get property by id", err)
	}

	rateRows, err := r.queries.ListPropertyRates(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list property rates", err)
	}
	overrideRows, err := r.queries.ListSpecialDatePrices(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list special date prices", err)
	}

	view := &queries.PropertyView{
		ID:        row.ID,
		Name:      row.Name,
		Address:   row.Address,
		City:      row.City,
		MaxGuests: row.MaxGuests,
		Daywise:   row.DaywisePrice,
		IsActive:  row.IsActive,
		Rates:     make(map[pricing.DayBucket]pricing.Rates, len(rateRows)),
		Overrides: make([]queries.OverrideView, 0, len(overrideRows)),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for _, rr := range rateRows {
		bucket, rates, ok := converter.PropertyRateFromRow(rr)
		if !ok {
			continue
		}
		view.Rates[bucket] = rates
	}
	for _, or := range overrideRows {
		view.Overrides = append(view.Overrides, queries.OverrideView{
			Date:  pgconv.DateFromPgtype(or.Date),
			Rates: converter.OverrideRatesFromRow(or),
		})
	}
	return view, nil
}

func (r *PropertyReadStore) List(ctx context.Context, filter queries.PropertyFilter, after *queries.Keyset, limit int32) ([]*queries.PropertyListItem, error) {
	cursorAt, cursorID := keysetArgs(after)
	rows, err := r.queries.ListProperties(ctx, r.db, sqlc.ListPropertiesParams{
		City:            pgconv.StringPtrToPgtype(filter.City),
		IsActive:        pgconv.BoolPtrToPgtype(filter.IsActive),
		CursorCreatedAt: cursorAt,
		CursorID:        cursorID,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}

	out := make([]*queries.PropertyListItem, len(rows))
	for i, row := range rows {
		out[i] = &queries.PropertyListItem{
			ID:        row.ID,
			Name:      row.Name,
			City:      row.City,
			MaxGuests: row.MaxGuests,
			Daywise:   row.DaywisePrice,
			IsActive:  row.IsActive,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}
