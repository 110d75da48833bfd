package repository

import (
	"context"

	"rental-admin/internal/domain/cancellation"
	"rental-admin/internal/infra"
	"rental-admin/internal/infra/converter"
	sqlc "rental-admin/internal/infra/sqlc/generated"
)

type CancellationWriteQueries interface {
	CreateCancellation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCancellationParams) error
}

type CancellationRepository struct {
	queries CancellationWriteQueries
	db      sqlc.DBTX
}

func NewCancellationRepository(queries CancellationWriteQueries, db sqlc.DBTX) *CancellationRepository {
	return &CancellationRepository{
		queries: queries,
		db:      db,
	}
}

// Create maps a second cancellation of the same booking to DUPLICATE_KEY.
func (r *CancellationRepository) Create(ctx context.Context, tx sqlc.DBTX, c *cancellation.Cancellation) error {
	if err := r.queries.CreateCancellation(ctx, tx, converter.CancellationToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to record cancellation", err)
	}
	return nil
}
