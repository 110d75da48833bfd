//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"rental-admin/internal/infra"
	sqlc "rental-admin/internal/infra/sqlc/generated"
	"rental-admin/internal/pkg/pgconv"
	"rental-admin/internal/usecase/queries"
	"rental-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCouponViewQueries struct {
	mock.Mock
}

func (m *MockCouponViewQueries) GetCouponByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Coupons), args.Error(1)
}

func (m *MockCouponViewQueries) GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error) {
	args := m.Called(ctx, db, code)
	return args.Get(0).(sqlc.Coupons), args.Error(1)
}

func (m *MockCouponViewQueries) ListCoupons(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCouponsParams) ([]sqlc.Coupons, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Coupons), args.Error(1)
}

func (m *MockCouponViewQueries) ListCouponPropertyIDs(ctx context.Context, db sqlc.DBTX, couponID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, db, couponID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func couponRow() sqlc.Coupons {
	now := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
	return sqlc.Coupons{
		ID:            uuid.New(),
		Name:          "Summer weekends",
		Code:          "SUMMER25",
		ValidFrom:     pgconv.DateToPgtype(builder.Date(2025, time.June, 1)),
		ValidTo:       pgconv.DateToPgtype(builder.Date(2025, time.June, 30)),
		DiscountType:  "PERCENTAGE",
		DiscountValue: pgconv.DecimalToNumeric(builder.Dec("20")),
		Friday:        true,
		Sunday:        true,
		IsActive:      true,
		CreatedAt:     pgconv.TimeToPgtype(now),
		UpdatedAt:     pgconv.TimeToPgtype(now),
	}
}

func TestCouponFindByCode(t *testing.T) {
	row := couponRow()
	linked := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("loads links and weekdays", func(t *testing.T) {
		m := new(MockCouponViewQueries)
		m.On("GetCouponByCode", mock.Anything, mock.Anything, "SUMMER25").Return(row, nil)
		m.On("ListCouponPropertyIDs", mock.Anything, mock.Anything, row.ID).Return(linked, nil)

		view, err := NewCouponReadStore(m, nil).FindByCode(context.Background(), "SUMMER25")

		require.NoError(t, err)
		assert.Equal(t, linked, view.PropertyIDs)
		assert.Equal(t, []time.Weekday{time.Friday, time.Sunday}, view.Weekdays)
		assert.Nil(t, view.MaxDiscountValue)
		assert.True(t, view.DiscountValue.Equal(builder.Dec("20")))
		m.AssertExpectations(t)
	})

	t.Run("no links yields empty slice", func(t *testing.T) {
		m := new(MockCouponViewQueries)
		m.On("GetCouponByCode", mock.Anything, mock.Anything, "SUMMER25").Return(row, nil)
		m.On("ListCouponPropertyIDs", mock.Anything, mock.Anything, row.ID).Return([]uuid.UUID(nil), nil)

		view, err := NewCouponReadStore(m, nil).FindByCode(context.Background(), "SUMMER25")

		require.NoError(t, err)
		assert.NotNil(t, view.PropertyIDs)
		assert.Empty(t, view.PropertyIDs)
	})

	t.Run("unknown code", func(t *testing.T) {
		m := new(MockCouponViewQueries)
		m.On("GetCouponByCode", mock.Anything, mock.Anything, "NOPE").Return(sqlc.Coupons{}, pgx.ErrNoRows)

		_, err := NewCouponReadStore(m, nil).FindByCode(context.Background(), "NOPE")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCouponList(t *testing.T) {
	a, b := couponRow(), couponRow()
	inactive := false

	m := new(MockCouponViewQueries)
	m.On("ListCoupons", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.ListCouponsParams) bool {
		return arg.IsActive.Valid && !arg.IsActive.Bool && arg.Limit == 11
	})).Return([]sqlc.Coupons{a, b}, nil)
	m.On("ListCouponPropertyIDs", mock.Anything, mock.Anything, a.ID).Return([]uuid.UUID{}, nil)
	m.On("ListCouponPropertyIDs", mock.Anything, mock.Anything, b.ID).Return([]uuid.UUID(nil), assert.AnError)

	_, err := NewCouponReadStore(m, nil).List(context.Background(), queries.CouponFilter{IsActive: &inactive}, nil, 11)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	m.AssertExpectations(t)
}
