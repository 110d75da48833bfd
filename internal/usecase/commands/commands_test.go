//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/pkg/clock"
	"rental-admin/internal/usecase/shared"
	sharedmock "rental-admin/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.May, 10, 8, 30, 0, 0, time.UTC)

// txHarness runs Within callbacks against mocked repositories.
type txHarness struct {
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	users         *sharedmock.MockUserRepository
	properties    *sharedmock.MockPropertyRepository
	coupons       *sharedmock.MockCouponRepository
	customers     *sharedmock.MockCustomerRepository
	bookings      *sharedmock.MockBookingRepository
	payments      *sharedmock.MockPaymentRepository
	cancellations *sharedmock.MockCancellationRepository
	clock         *clock.MockClock
}

func newHarness(t *testing.T) *txHarness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &txHarness{
		ctrl:          ctrl,
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		properties:    sharedmock.NewMockPropertyRepository(ctrl),
		coupons:       sharedmock.NewMockCouponRepository(ctrl),
		customers:     sharedmock.NewMockCustomerRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		payments:      sharedmock.NewMockPaymentRepository(ctrl),
		cancellations: sharedmock.NewMockCancellationRepository(ctrl),
		clock:         clock.NewMockClock(fixedNow),
	}

	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().Users().Return(h.users).AnyTimes()
	h.tx.EXPECT().Properties().Return(h.properties).AnyTimes()
	h.tx.EXPECT().Coupons().Return(h.coupons).AnyTimes()
	h.tx.EXPECT().Customers().Return(h.customers).AnyTimes()
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Payments().Return(h.payments).AnyTimes()
	h.tx.EXPECT().Cancellations().Return(h.cancellations).AnyTimes()
	return h
}

func principal(role user.Role) auth.Principal {
	return auth.NewPrincipal(uuid.New(), role)
}
