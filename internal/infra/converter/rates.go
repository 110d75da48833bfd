package converter

import (
	"rental-admin/internal/domain/pricing"
	sqlc "rental-admin/internal/infra/sqlc/generated"
	"rental-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// rateColumns is the nullable column group shared by property_rates and special_date_prices.
type rateColumns struct {
	Price                  pgtype.Numeric
	AdultExtraGuestCharge  pgtype.Numeric
	ChildExtraGuestCharge  pgtype.Numeric
	InfantExtraGuestCharge pgtype.Numeric
	BaseGuestCount         pgtype.Int4
	Discount               pgtype.Numeric
}

func toRateColumns(r pricing.Rates) rateColumns {
	return rateColumns{
		Price:                  pgconv.DecimalPtrToNumeric(r.Price),
		AdultExtraGuestCharge:  pgconv.DecimalPtrToNumeric(r.AdultExtraGuestCharge),
		ChildExtraGuestCharge:  pgconv.DecimalPtrToNumeric(r.ChildExtraGuestCharge),
		InfantExtraGuestCharge: pgconv.DecimalPtrToNumeric(r.InfantExtraGuestCharge),
		BaseGuestCount:         pgconv.IntPtrToPgtype(r.BaseGuestCount),
		Discount:               pgconv.DecimalPtrToNumeric(r.Discount),
	}
}

func (c rateColumns) rates() pricing.Rates {
	return pricing.Rates{
		Price:                  pgconv.DecimalPtrFromNumeric(c.Price),
		AdultExtraGuestCharge:  pgconv.DecimalPtrFromNumeric(c.AdultExtraGuestCharge),
		ChildExtraGuestCharge:  pgconv.DecimalPtrFromNumeric(c.ChildExtraGuestCharge),
		InfantExtraGuestCharge: pgconv.DecimalPtrFromNumeric(c.InfantExtraGuestCharge),
		BaseGuestCount:         pgconv.IntPtrFromPgtype(c.BaseGuestCount),
		Discount:               pgconv.DecimalPtrFromNumeric(c.Discount),
	}
}

func PropertyRateToParams(propertyID uuid.UUID, bucket pricing.DayBucket, r pricing.Rates) sqlc.InsertPropertyRateParams {
	c := toRateColumns(r)
	return sqlc.InsertPropertyRateParams{
		PropertyID:             propertyID,
		Bucket:                 bucket.String(),
		Price:                  c.Price,
		AdultExtraGuestCharge:  c.AdultExtraGuestCharge,
		ChildExtraGuestCharge:  c.ChildExtraGuestCharge,
		InfantExtraGuestCharge: c.InfantExtraGuestCharge,
		BaseGuestCount:         c.BaseGuestCount,
		Discount:               c.Discount,
	}
}

func OverrideToParams(propertyID uuid.UUID, o pricing.Override) sqlc.InsertSpecialDatePriceParams {
	c := toRateColumns(o.Rates())
	return sqlc.InsertSpecialDatePriceParams{
		PropertyID:             propertyID,
		Date:                   pgconv.DateToPgtype(o.Date()),
		Price:                  c.Price,
		AdultExtraGuestCharge:  c.AdultExtraGuestCharge,
		ChildExtraGuestCharge:  c.ChildExtraGuestCharge,
		InfantExtraGuestCharge: c.InfantExtraGuestCharge,
		BaseGuestCount:         c.BaseGuestCount,
		Discount:               c.Discount,
	}
}

// PropertyRateFromRow skips rows whose bucket is unknown to this build.
func PropertyRateFromRow(row sqlc.PropertyRates) (pricing.DayBucket, pricing.Rates, bool) {
	bucket, err := pricing.ParseDayBucket(row.Bucket)
	if err != nil {
		return "", pricing.Rates{}, false
	}
	c := rateColumns{
		Price:                  row.Price,
		AdultExtraGuestCharge:  row.AdultExtraGuestCharge,
		ChildExtraGuestCharge:  row.ChildExtraGuestCharge,
		InfantExtraGuestCharge: row.InfantExtraGuestCharge,
		BaseGuestCount:         row.BaseGuestCount,
		Discount:               row.Discount,
	}
	return bucket, c.rates(), true
}

func OverrideRatesFromRow(row sqlc.SpecialDatePrices) pricing.Rates {
	c := rateColumns{
		Price:                  row.Price,
		AdultExtraGuestCharge:  row.AdultExtraGuestCharge,
		ChildExtraGuestCharge:  row.ChildExtraGuestCharge,
		InfantExtraGuestCharge: row.InfantExtraGuestCharge,
		BaseGuestCount:         row.BaseGuestCount,
		Discount:               row.Discount,
	}
	return c.rates()
}
