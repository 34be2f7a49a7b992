package validators

import "errors"

var (
	ErrTokenEmpty     = errors.New("no token provided")
	ErrTokenBadLength = errors.New("token must be 6 characters")
)

func TokenValidator(t string) error {
	if t == "" {
		return ErrTokenEmpty
	}

	if len(t) != 6 {
		return ErrTokenBadLength
	}

	return nil
}
