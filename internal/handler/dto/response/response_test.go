//go:build unit

package response_test

import (
	"testing"
	"time"

	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/handler/dto/response"
	"rental-admin/internal/pkg/ptr"
	"rental-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	updated = time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)
)

func TestNewUser(t *testing.T) {
	id := uuid.New()
	login := time.Date(2025, 5, 3, 7, 0, 0, 0, time.UTC)

	res, err := response.NewUser(&queries.UserView{
		ID: id, Email: "ops@example.com", Role: "operator", IsActive: true,
		LastLogin: &login, CreatedAt: created, UpdatedAt: updated,
	})
	require.NoError(t, err)

	assert.Equal(t, id.String(), res.ID)
	assert.Equal(t, "operator", res.Role)
	require.NotNil(t, res.LastLogin)
	assert.Equal(t, login.Unix(), *res.LastLogin)
	assert.Equal(t, created.Unix(), res.CreatedAt)

	res, err = response.NewUser(&queries.UserView{ID: id, CreatedAt: created})
	require.NoError(t, err)
	assert.Nil(t, res.LastLogin)
}

func TestNewCoupon(t *testing.T) {
	pid := uuid.New()
	res, err := response.NewCoupon(&queries.CouponView{
		ID:               uuid.New(),
		Code:             "SUMMER25",
		ValidFrom:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:          time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
		DiscountType:     "PERCENTAGE",
		DiscountValue:    decimal.RequireFromString("20"),
		MaxDiscountValue: ptr.To(decimal.RequireFromString("1000")),
		Weekdays:         []time.Weekday{time.Friday, time.Saturday},
		PropertyIDs:      []uuid.UUID{pid},
		IsActive:         true,
		CreatedAt:        created,
		UpdatedAt:        updated,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", res.ValidFrom)
	assert.Equal(t, "2025-08-31", res.ValidTo)
	assert.True(t, decimal.RequireFromString("20").Equal(res.DiscountValue))
	require.NotNil(t, res.MaxDiscountValue)
	assert.True(t, decimal.RequireFromString("1000").Equal(*res.MaxDiscountValue))
	assert.Equal(t, []string{"FRIDAY", "SATURDAY"}, res.Weekdays)
	assert.Equal(t, []string{pid.String()}, res.PropertyIDs)
}

func TestNewBooking(t *testing.T) {
	res, err := response.NewBooking(&queries.BookingView{
		ID:           uuid.New(),
		CheckinDate:  time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		CheckoutDate: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		TotalAmount:  decimal.RequireFromString("3800"),
		PaidAmount:   decimal.RequireFromString("1000"),
		Status:       "CONFIRMED",
		CreatedAt:    created,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-05", res.CheckinDate)
	assert.Equal(t, "2025-06-08", res.CheckoutDate)
	assert.True(t, decimal.RequireFromString("2800").Equal(res.Outstanding))
	assert.Nil(t, res.CouponID)
}

func TestNewCustomerPage(t *testing.T) {
	items := []*queries.CustomerView{
		{ID: uuid.New(), Name: "Asha", CreatedAt: created},
		{ID: uuid.New(), Name: "Ravi", CreatedAt: updated},
	}

	page, err := response.NewCustomerPage(items, &queries.Cursor{After: "abc"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Ravi", page.Items[1].Name)
	assert.Equal(t, "abc", page.NextCursor)

	page, err = response.NewCustomerPage(nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.NextCursor)
}

func TestNewProperty(t *testing.T) {
	price := decimal.RequireFromString("1500")
	res := response.NewProperty(&queries.PropertyView{
		ID:      uuid.New(),
		Daywise: false,
		Rates: map[pricing.DayBucket]pricing.Rates{
			pricing.BucketWeekend: {Price: &price},
		},
		Overrides: []queries.OverrideView{{Date: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)}},
	})

	require.Contains(t, res.Rates, "WEEKEND")
	assert.True(t, price.Equal(*res.Rates["WEEKEND"].Price))
	require.Len(t, res.Overrides, 1)
	assert.Equal(t, "2025-12-31", res.Overrides[0].Date)
	assert.Nil(t, res.Overrides[0].Price)
}

func TestNewQuote(t *testing.T) {
	night := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	res := response.NewQuote(&queries.Quote{
		PropertyID: uuid.New(),
		Stay: pricing.StayCharge{
			Nights: []pricing.NightlyCharge{{
				Date: night, Bucket: pricing.BucketWeekend,
				Rate:       pricing.Rate{Price: decimal.RequireFromString("1500"), Discount: decimal.Zero},
				BaseAmount: decimal.RequireFromString("1500"), Total: decimal.RequireFromString("1500"),
			}},
			RentalCharge: decimal.RequireFromString("1500"),
			Total:        decimal.RequireFromString("1500"),
		},
		Coupon: &queries.CouponQuote{
			Code: "FRI10", ApplicableNights: []time.Time{night},
			EligibleAmount: decimal.RequireFromString("1500"), Discount: decimal.RequireFromString("150"),
		},
		Discount: decimal.RequireFromString("150"),
		Total:    decimal.RequireFromString("1350"),
	})

	require.Len(t, res.Nights, 1)
	assert.Equal(t, "2025-06-06", res.Nights[0].Date)
	assert.Equal(t, "WEEKEND", res.Nights[0].Bucket)
	require.NotNil(t, res.Coupon)
	assert.Equal(t, []string{"2025-06-06"}, res.Coupon.ApplicableNights)
	assert.True(t, decimal.RequireFromString("1350").Equal(res.Total))
}
