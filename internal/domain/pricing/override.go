package pricing

import (
	"sort"
	"time"

	"rental-admin/internal/pkg/errs"
)

const dateKeyLayout = "2006-01-02"

// Override is a special-date exception; every null field falls back to the default bucket.
type Override struct {
	date  time.Time
	rates Rates
}

func NewOverride(date time.Time, rates Rates) (Override, error) {
	if date.IsZero() {
		return Override{}, errs.Invalid("date", ErrMissingOverrideDate)
	}
	if err := rates.validateValues("override." + date.Format(dateKeyLayout)); err != nil {
		return Override{}, err
	}
	return Override{date: DateOf(date), rates: rates}, nil
}

func (o Override) Date() time.Time { return o.date }
func (o Override) Rates() Rates    { return o.rates }

// Overrides is the per-property override set keyed by exact calendar date.
type Overrides struct {
	byDate map[string]Override
}

func NewOverrides(list []Override) (Overrides, error) {
	byDate := make(map[string]Override, len(list))
	for _, o := range list {
		key := o.date.Format(dateKeyLayout)
		if _, dup := byDate[key]; dup {
			return Overrides{}, errs.Invalid("overrides."+key, ErrDuplicateOverrideDate)
		}
		byDate[key] = o
	}
	return Overrides{byDate: byDate}, nil
}

func (s Overrides) Lookup(date time.Time) (Override, bool) {
	o, ok := s.byDate[DateOf(date).Format(dateKeyLayout)]
	return o, ok
}

func (s Overrides) Len() int { return len(s.byDate) }

// List returns the overrides sorted by date.
func (s Overrides) List() []Override {
	out := make([]Override, 0, len(s.byDate))
	for _, o := range s.byDate {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].date.Before(out[j].date) })
	return out
}

// DateOf drops the clock and zone, keeping the calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
