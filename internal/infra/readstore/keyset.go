package readstore

import (
	"rental-admin/internal/pkg/pgconv"
	"rental-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// keysetArgs maps a nil keyset to NULL cursor parameters, which selects the first page.
func keysetArgs(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{Valid: false}, pgtype.UUID{Valid: false}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}
