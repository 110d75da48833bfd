package password

import (
	"errors"

	"rental-admin/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.New("invalid password")
	// bcrypt ignores everything past 72 bytes, so longer inputs are refused outright
	ErrPasswordTooLong = errs.Validation("password cannot exceed 72 bytes")
)

const (
	DefaultCost = bcrypt.DefaultCost
	maxBytes    = 72
)

func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultCost)
}

// HashPasswordWithCost lets tests and fixtures use bcrypt.MinCost.
func HashPasswordWithCost(password string, cost int) (string, error) {
	switch {
	case password == "":
		return "", ErrInvalidPassword
	case len(password) > maxBytes:
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(hashed), nil
}

// ComparePassword returns ErrComparisonFailed for a wrong password and a wrapped
// error for a malformed hash.
func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errs.Wrap(err, "compare password hash")
	}
}
