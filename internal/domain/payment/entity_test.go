//go:build unit

package payment_test

import (
	"testing"
	"time"

	"rental-admin/internal/domain/booking"
	"rental-admin/internal/domain/payment"
	"rental-admin/internal/pkg/errs"
	"rental-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	now := time.Date(2025, time.January, 2, 10, 0, 0, 0, time.UTC)
	ledger := payment.Ledger{
		BookingID: uuid.New(),
		Status:    booking.StatusConfirmed,
		Total:     builder.Dec("3500"),
		Paid:      builder.Dec("3000"),
	}
	params := func(amount, method string) payment.Params {
		return payment.Params{Amount: builder.Dec(amount), Method: method, RecordedBy: uuid.New()}
	}

	t.Run("settles the outstanding balance", func(t *testing.T) {
		p, err := payment.NewPayment(ledger, params("500", "upi"), now)
		require.NoError(t, err)
		assert.Equal(t, payment.MethodUPI, p.Method())
		assert.Equal(t, now, p.PaidAt(), "paidAt defaults to now")
		assert.Equal(t, ledger.BookingID, p.BookingID())
	})

	t.Run("overpayment", func(t *testing.T) {
		_, err := payment.NewPayment(ledger, params("500.01", "CASH"), now)
		assert.ErrorIs(t, err, payment.ErrExceedsOutstanding)
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := payment.NewPayment(ledger, params("0", "CASH"), now)
		assert.ErrorIs(t, err, payment.ErrNonPositiveAmount)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := payment.NewPayment(ledger, params("10", "CHEQUE"), now)
		assert.ErrorIs(t, err, payment.ErrInvalidMethod)
	})

	t.Run("cancelled booking", func(t *testing.T) {
		cancelled := ledger
		cancelled.Status = booking.StatusCancelled
		_, err := payment.NewPayment(cancelled, params("10", "CASH"), now)
		assert.ErrorIs(t, err, payment.ErrBookingCancelled)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}
