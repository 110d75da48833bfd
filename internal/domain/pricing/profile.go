package pricing

import "strings"

// Profile is the default day-of-week pricing table of one property.
type Profile struct {
	daywise bool
	raw     map[DayBucket]Rates
	active  map[DayBucket]Rate
}

// NewProfile validates the bucket set selected by daywise. Rows of the other set
// are kept as entered but never consulted.
func NewProfile(daywise bool, rates map[DayBucket]Rates) (*Profile, error) {
	for b, r := range rates {
		if !b.IsValid() {
			return nil, ErrUnknownBucket
		}
		if err := r.validateValues(bucketField(b)); err != nil {
			return nil, err
		}
	}

	active := make(map[DayBucket]Rate, 7)
	for _, b := range ActiveBuckets(daywise) {
		r := rates[b]
		if err := r.requireComplete(bucketField(b)); err != nil {
			return nil, err
		}
		active[b] = r.orZero()
	}

	return &Profile{daywise: daywise, raw: copyRates(rates), active: active}, nil
}

// ReconstructProfile rebuilds a stored profile without re-validating it.
func ReconstructProfile(daywise bool, rates map[DayBucket]Rates) *Profile {
	active := make(map[DayBucket]Rate, 7)
	for _, b := range ActiveBuckets(daywise) {
		active[b] = rates[b].orZero()
	}
	return &Profile{daywise: daywise, raw: copyRates(rates), active: active}
}

func (p *Profile) Daywise() bool { return p.daywise }

// Default returns the resolved bucket row for b. Only buckets of the active set are populated.
func (p *Profile) Default(b DayBucket) (Rate, bool) {
	r, ok := p.active[b]
	return r, ok
}

// Rates returns the row as entered, including rows of the inactive set.
func (p *Profile) Rates(b DayBucket) (Rates, bool) {
	r, ok := p.raw[b]
	return r, ok
}

// Buckets lists every stored bucket in canonical order.
func (p *Profile) Buckets() []DayBucket {
	out := make([]DayBucket, 0, len(p.raw))
	for _, b := range AllBuckets() {
		if _, ok := p.raw[b]; ok {
			out = append(out, b)
		}
	}
	return out
}

func copyRates(in map[DayBucket]Rates) map[DayBucket]Rates {
	out := make(map[DayBucket]Rates, len(in))
	for b, r := range in {
		out[b] = r
	}
	return out
}

// bucketField turns WEEKEND_SATURDAY into weekendSaturday for error fields.
func bucketField(b DayBucket) string {
	parts := strings.Split(strings.ToLower(string(b)), "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
