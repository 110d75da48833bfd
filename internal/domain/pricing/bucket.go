package pricing

import (
	"strings"
	"time"
)

// DayBucket names the pricing row consulted for a night.
type DayBucket string

const (
	BucketMonday    DayBucket = "MONDAY"
	BucketTuesday   DayBucket = "TUESDAY"
	BucketWednesday DayBucket = "WEDNESDAY"
	BucketThursday  DayBucket = "THURSDAY"
	BucketFriday    DayBucket = "FRIDAY"
	BucketSaturday  DayBucket = "SATURDAY"
	BucketSunday    DayBucket = "SUNDAY"

	// Weekday covers Mon-Thu, Weekend covers Fri and Sun, WeekendSaturday covers Sat.
	BucketWeekday         DayBucket = "WEEKDAY"
	BucketWeekend         DayBucket = "WEEKEND"
	BucketWeekendSaturday DayBucket = "WEEKEND_SATURDAY"
)

var (
	daywiseBuckets = []DayBucket{
		BucketMonday, BucketTuesday, BucketWednesday, BucketThursday,
		BucketFriday, BucketSaturday, BucketSunday,
	}
	aggregateBuckets = []DayBucket{BucketWeekday, BucketWeekend, BucketWeekendSaturday}

	weekdayBuckets = map[time.Weekday]DayBucket{
		time.Monday:    BucketMonday,
		time.Tuesday:   BucketTuesday,
		time.Wednesday: BucketWednesday,
		time.Thursday:  BucketThursday,
		time.Friday:    BucketFriday,
		time.Saturday:  BucketSaturday,
		time.Sunday:    BucketSunday,
	}
)

// DaywiseBuckets returns the seven per-weekday buckets in Monday-first order.
func DaywiseBuckets() []DayBucket {
	return append([]DayBucket(nil), daywiseBuckets...)
}

// AggregateBuckets returns Weekday, Weekend and WeekendSaturday.
func AggregateBuckets() []DayBucket {
	return append([]DayBucket(nil), aggregateBuckets...)
}

func AllBuckets() []DayBucket {
	return append(DaywiseBuckets(), aggregateBuckets...)
}

// ActiveBuckets is the bucket set consulted for a profile with the given flag.
func ActiveBuckets(daywise bool) []DayBucket {
	if daywise {
		return DaywiseBuckets()
	}
	return AggregateBuckets()
}

func ParseDayBucket(s string) (DayBucket, error) {
	b := DayBucket(strings.ToUpper(strings.TrimSpace(s)))
	if !b.IsValid() {
		return "", ErrUnknownBucket
	}
	return b, nil
}

func (b DayBucket) IsValid() bool {
	for _, known := range AllBuckets() {
		if b == known {
			return true
		}
	}
	return false
}

func (b DayBucket) String() string { return string(b) }

// BucketFor picks exactly one bucket for a weekday, decided solely by the daywise flag.
func BucketFor(wd time.Weekday, daywise bool) DayBucket {
	if daywise {
		return weekdayBuckets[wd]
	}
	switch wd {
	case time.Saturday:
		return BucketWeekendSaturday
	case time.Friday, time.Sunday:
		return BucketWeekend
	default:
		return BucketWeekday
	}
}
