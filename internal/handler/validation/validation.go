// Package validation registers the request binding rules shared by the API handlers.
package validation

import (
	"sync"
	"time"

	"rental-admin/internal/domain/booking"
	"rental-admin/internal/domain/coupon"
	"rental-admin/internal/domain/payment"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of every calendar date.
const DateLayout = time.DateOnly

var registerOnce sync.Once

var rules = map[string]validator.Func{
	"isodate": func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	},
	"discounttype": func(fl validator.FieldLevel) bool {
		_, err := coupon.ParseDiscountType(fl.Field().String())
		return err == nil
	},
	"paymentmethod": func(fl validator.FieldLevel) bool {
		_, err := payment.ParseMethod(fl.Field().String())
		return err == nil
	},
	"role": func(fl validator.FieldLevel) bool {
		_, err := user.NewRole(fl.Field().String())
		return err == nil
	},
	"bookingstatus": func(fl validator.FieldLevel) bool {
		_, err := booking.ParseStatus(fl.Field().String())
		return err == nil
	},
}

// Register installs the custom rules on gin's validator. It is safe to call more than once.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errs.New("gin binding validator is not go-playground/validator")
			return
		}
		for tag, fn := range rules {
			if err = v.RegisterValidation(tag, fn); err != nil {
				err = errs.Wrapf(err, "register %s", tag)
				return
			}
		}
	})
	return err
}

// ParseDate reads a YYYY-MM-DD value as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseOptionalDate leaves nil for an empty input.
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
