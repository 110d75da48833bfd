package pricing

import "rental-admin/internal/pkg/errs"

var (
	ErrUnknownBucket          = errs.Validation("unknown day bucket")
	ErrMissingRate            = errs.Validation("pricing field is required for the active bucket set")
	ErrNegativeAmount         = errs.Validation("amount cannot be negative")
	ErrDiscountOutOfRange     = errs.Validation("discount must be between 0 and 100")
	ErrNegativeBaseGuestCount = errs.Validation("base guest count cannot be negative")
	ErrMissingOverrideDate    = errs.Validation("override date is required")
	ErrDuplicateOverrideDate  = errs.Validation("only one override is allowed per date")

	ErrInvalidStayRange   = errs.Validation("checkout date must be after checkin date")
	ErrStayTooLong        = errs.Validation("stay exceeds the maximum number of nights")
	ErrNoAdults           = errs.Validation("at least one adult is required")
	ErrNegativeGuestCount = errs.Validation("guest counts cannot be negative")
)
