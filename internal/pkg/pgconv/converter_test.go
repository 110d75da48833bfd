//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"rental-admin/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimalNumeric(t *testing.T) {
	tests := []string{"0", "1500.00", "12.345", "-3.5", "1000000"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			d := decimal.RequireFromString(in)
			got := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		})
	}

	t.Run("null numeric", func(t *testing.T) {
		assert.Nil(t, pgconv.DecimalPtrFromNumeric(pgtype.Numeric{}))
		assert.True(t, pgconv.DecimalFromNumeric(pgtype.Numeric{}).IsZero())
		assert.False(t, pgconv.DecimalPtrToNumeric(nil).Valid)
	})
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	in := time.Date(2025, 6, 6, 23, 30, 0, 0, loc)

	pd := pgconv.DateToPgtype(in)
	assert.True(t, pd.Valid)
	assert.Equal(t, time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(pd))
	assert.True(t, pgconv.DateFromPgtype(pgtype.Date{}).IsZero())
}

func TestNullables(t *testing.T) {
	assert.False(t, pgconv.TextOrNull("").Valid)
	assert.Equal(t, pgtype.Text{String: "x", Valid: true}, pgconv.TextOrNull("x"))

	yes := true
	assert.Equal(t, pgtype.Bool{Bool: true, Valid: true}, pgconv.BoolPtrToPgtype(&yes))
	assert.False(t, pgconv.BoolPtrToPgtype(nil).Valid)

	two := 2
	assert.Equal(t, &two, pgconv.IntPtrFromPgtype(pgconv.IntPtrToPgtype(&two)))
	assert.Nil(t, pgconv.IntPtrFromPgtype(pgtype.Int4{}))
	assert.False(t, pgconv.DatePtrToPgtype(nil).Valid)
}
