//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"rental-admin/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		kinds      []infra.RepositoryErrorKind
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:       "plain error defaults to db failure",
			err:        errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "unique violation is a duplicate key",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "coupons_code_key"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "foreign key violation",
			err:        &pgconn.PgError{Code: "23503"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "check violation",
			err:        &pgconn.PgError{Code: "23514"},
			expectKind: infra.KindCheckViolated,
		},
		{
			name:       "explicit kind wins",
			err:        pgx.ErrNoRows,
			kinds:      []infra.RepositoryErrorKind{infra.KindNotFound},
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("doing something", tc.err, tc.kinds...)

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("constraint name is exposed", func(t *testing.T) {
		err := infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505", ConstraintName: "customers_email_key"})
		assert.Equal(t, "customers_email_key", infra.Constraint(err))
	})

	t.Run("nil cause still carries the kind", func(t *testing.T) {
		err := infra.WrapRepoErr("nothing updated", nil, infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, "NOT_FOUND: nothing updated", err.Error())
	})
}
