//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"rental-admin/internal/domain/booking"
	"rental-admin/internal/domain/cancellation"
	"rental-admin/internal/infra"
	"rental-admin/internal/infra/converter"
	"rental-admin/internal/infra/repository"
	sqlc "rental-admin/internal/infra/sqlc/generated"
	"rental-admin/internal/pkg/pgconv"
	"rental-admin/tests/common/builder"
	repositorymock "rental-admin/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bookingRow(t *testing.T) (*booking.Booking, sqlc.Bookings) {
	t.Helper()
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	p := converter.BookingToCreateParams(b)
	return b, sqlc.Bookings{
		ID:               p.ID,
		PropertyID:       p.PropertyID,
		CustomerID:       p.CustomerID,
		CouponID:         p.CouponID,
		CheckinDate:      p.CheckinDate,
		CheckoutDate:     p.CheckoutDate,
		AdultCount:       p.AdultCount,
		ChildrenCount:    p.ChildrenCount,
		InfantCount:      p.InfantCount,
		RentalCharge:     p.RentalCharge,
		ExtraGuestCharge: p.ExtraGuestCharge,
		DiscountAmount:   p.DiscountAmount,
		TotalAmount:      p.TotalAmount,
		Status:           p.Status,
		Notes:            p.Notes,
		CreatedBy:        p.CreatedBy,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	b, _ := bookingRow(t)

	mockQueries.EXPECT().CreateBooking(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) error {
			assert.True(t, pgconv.DecimalFromNumeric(arg.TotalAmount).Equal(builder.Dec("3500")))
			assert.False(t, arg.CouponID.Valid)
			assert.Equal(t, "CONFIRMED", arg.Status)
			return errFKViolation
		})

	err := repository.NewBookingRepository(mockQueries, mockDB).Create(ctx, mockDB, b)
	assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
}

func TestBookingRepository_LockByID(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips the stored row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		want, row := bookingRow(t)

		mockQueries.EXPECT().GetBookingForUpdate(ctx, mockDB, want.ID()).Return(row, nil)

		got, err := repository.NewBookingRepository(mockQueries, mockDB).LockByID(ctx, mockDB, want.ID())

		require.NoError(t, err)
		assert.Equal(t, want.ID(), got.ID())
		assert.True(t, got.Total().Equal(want.Total()))
		assert.Len(t, got.Stay().Nights(), 3)
		assert.True(t, got.IsConfirmed())
	})

	t.Run("missing booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		id := uuid.New()

		mockQueries.EXPECT().GetBookingForUpdate(ctx, mockDB, id).Return(sqlc.Bookings{}, pgx.ErrNoRows)

		_, err := repository.NewBookingRepository(mockQueries, mockDB).LockByID(ctx, mockDB, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown stored status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		_, row := bookingRow(t)
		row.Status = "TENTATIVE"

		mockQueries.EXPECT().GetBookingForUpdate(ctx, mockDB, row.ID).Return(row, nil)

		_, err := repository.NewBookingRepository(mockQueries, mockDB).LockByID(ctx, mockDB, row.ID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	b, _ := bookingRow(t)
	require.NoError(t, b.Cancel(b.CreatedAt()))

	mockQueries.EXPECT().UpdateBookingStatus(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
			assert.Equal(t, "CANCELLED", arg.Status)
			return 1, nil
		})

	assert.NoError(t, repository.NewBookingRepository(mockQueries, mockDB).UpdateStatus(ctx, mockDB, b))
}

func TestPaymentRepository_SumByBooking(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	testCases := []struct {
		name    string
		sum     string
		mockErr error
		want    string
	}{
		{name: "sums recorded payments", sum: "1250.50", want: "1250.5"},
		{name: "no payments is zero", sum: "0", want: "0"},
		{name: "error", mockErr: errors.New("boom")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			ret := pgconv.DecimalToNumeric(builder.Dec("0"))
			if tc.sum != "" {
				ret = pgconv.DecimalToNumeric(builder.Dec(tc.sum))
			}
			mockQueries.EXPECT().SumPaymentsByBooking(ctx, mockDB, bookingID).Return(ret, tc.mockErr)

			got, err := repository.NewPaymentRepository(mockQueries, mockDB).SumByBooking(ctx, mockDB, bookingID)

			if tc.mockErr != nil {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(builder.Dec(tc.want)), "got %s", got)
		})
	}
}

func TestCancellationRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCancellationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	b, _ := bookingRow(t)

	c, err := cancellation.Cancel(b, builder.Dec("0"), cancellation.Params{
		Reason:      "guest request",
		CancelledBy: uuid.New(),
	}, b.CreatedAt())
	require.NoError(t, err)

	mockQueries.EXPECT().CreateCancellation(ctx, mockDB, gomock.Any()).Return(errUniqueViolation)

	err = repository.NewCancellationRepository(mockQueries, mockDB).Create(ctx, mockDB, c)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}
