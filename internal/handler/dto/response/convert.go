package response

import (
	"time"

	"rental-admin/internal/handler/validation"
	"rental-admin/internal/pkg/errs"
	"rental-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Ids leave as strings, calendar dates as YYYY-MM-DD and instants as unix seconds.
// DeepCopy stays off: it would walk into decimal.Decimal and drop its unexported state.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: []uuid.UUID{},
			DstType: []string{},
			Fn: func(src any) (any, error) {
				ids := src.([]uuid.UUID)
				out := make([]string, len(ids))
				for i, id := range ids {
					out[i] = id.String()
				}
				return out, nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(validation.DateLayout), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
		{
			SrcType: &time.Time{},
			DstType: new(int64),
			Fn: func(src any) (any, error) {
				t := src.(*time.Time)
				if t == nil {
					return (*int64)(nil), nil
				}
				v := t.Unix()
				return &v, nil
			},
		},
		{
			SrcType: []time.Weekday{},
			DstType: []string{},
			Fn: func(src any) (any, error) {
				days := src.([]time.Weekday)
				out := make([]string, len(days))
				for i, d := range days {
					out[i] = weekdayName(d)
				}
				return out, nil
			},
		},
	},
}

func weekdayName(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "MONDAY"
	case time.Tuesday:
		return "TUESDAY"
	case time.Wednesday:
		return "WEDNESDAY"
	case time.Thursday:
		return "THURSDAY"
	case time.Friday:
		return "FRIDAY"
	case time.Saturday:
		return "SATURDAY"
	default:
		return "SUNDAY"
	}
}

func copyView[T any](src any) (T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOptions); err != nil {
		return dst, errs.Wrap(err, "map view to response")
	}
	return dst, nil
}

type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

func newPage[V any, T any](items []V, next *queries.Cursor) (*Page[T], error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		dto, err := copyView[T](item)
		if err != nil {
			return nil, err
		}
		out = append(out, dto)
	}
	page := &Page[T]{Items: out}
	if next != nil {
		page.NextCursor = next.After
	}
	return page, nil
}

func date(t time.Time) string { return t.Format(validation.DateLayout) }
