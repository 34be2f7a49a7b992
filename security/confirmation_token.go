package security

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	tokenCharset = "0123456789"
	tokenLength  = 6
)

// NewConfirmationToken returns a 6 digit one-shot token used for
// account confirmation and password resets. Short on purpose so it
// can be typed from a mail client. Guess resistance is weak and the
// auth routes are rate limited because of it
func NewConfirmationToken() (string, error) {
	return gonanoid.Generate(tokenCharset, tokenLength)
}
