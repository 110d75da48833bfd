package user

import (
	"net/mail"
	"strings"

	"rental-admin/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Validation("invalid email format")
	ErrInvalidRole     = errs.Validation("invalid role")
	ErrPasswordTooWeak = errs.Validation("password must be at least 8 characters long")
	ErrPasswordTooLong = errs.Validation("password cannot exceed 72 bytes")
)

const (
	maxEmailLength    = 254
	minPasswordLength = 8
	maxPasswordBytes  = 72
)

// Email is trimmed and lower-cased; staff and customer emails share it.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || len(s) > maxEmailLength {
		return Email{}, ErrInvalidEmail
	}
	// bare addresses only; "Name <a@b.c>" is rejected
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || !strings.Contains(s[strings.LastIndex(s, "@")+1:], ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Password holds plaintext only for as long as it takes to hash or compare it.
type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	switch {
	case len([]rune(s)) < minPasswordLength:
		return Password{}, ErrPasswordTooWeak
	case len(s) > maxPasswordBytes:
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
