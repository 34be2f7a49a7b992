package validators

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrEmailEmpty   = errors.New("no email address provided")
	ErrEmailInvalid = errors.New("invalid email address provided")
	ErrEmailTooLong = errors.New("email must not exceed 50 characters")
)

func EmailValidator(e string) error {
	if e == "" {
		return ErrEmailEmpty
	}

	if len(e) > 50 {
		return ErrEmailTooLong
	}

	if _, err := mail.ParseAddress(e); err != nil {
		return ErrEmailInvalid
	}

	return nil
}

// NormalizeEmail trims and lowercases an address so that uniqueness
// checks are case-insensitive
func NormalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
