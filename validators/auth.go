package validators

import "errors"

var (
	ErrNameEmpty   = errors.New("no name provided")
	ErrNameTooLong = errors.New("name must be between 1 and 50 characters")
)

func NameValidator(n string) error {
	if n == "" {
		return ErrNameEmpty
	}

	if len(n) > 50 {
		return ErrNameTooLong
	}

	return nil
}

// Registration checks every field of a create-account request and
// returns one entry per failing field
func Registration(name, email, password string) []FieldError {
	var errs []FieldError

	if err := NameValidator(name); err != nil {
		errs = append(errs, fieldErr("name", err))
	}

	if err := EmailValidator(email); err != nil {
		errs = append(errs, fieldErr("email", err))
	}

	if err := PasswordValidator(password); err != nil {
		errs = append(errs, fieldErr("password", err))
	}

	return errs
}

// Login only checks shape. Complexity rules don't apply to a password
// that's merely being compared
func Login(email, password string) []FieldError {
	var errs []FieldError

	if err := EmailValidator(email); err != nil {
		errs = append(errs, fieldErr("email", err))
	}

	if password == "" {
		errs = append(errs, fieldErr("password", ErrPasswordEmpty))
	} else if len(password) < 8 || len(password) > 60 {
		errs = append(errs, fieldErr("password", errors.New("password must be between 8 and 60 characters")))
	}

	return errs
}

func ForgotPassword(email string) []FieldError {
	var errs []FieldError

	if err := EmailValidator(email); err != nil {
		errs = append(errs, fieldErr("email", err))
	}

	return errs
}

func ConfirmationToken(token string) []FieldError {
	var errs []FieldError

	if err := TokenValidator(token); err != nil {
		errs = append(errs, fieldErr("token", err))
	}

	return errs
}

var ErrPasswordMismatch = errors.New("password confirmation does not match password")

func ResetPassword(token, password, confirmPassword string) []FieldError {
	var errs []FieldError

	if err := TokenValidator(token); err != nil {
		errs = append(errs, fieldErr("token", err))
	}

	if err := PasswordValidator(password); err != nil {
		errs = append(errs, fieldErr("password", err))
	}

	if password != confirmPassword {
		errs = append(errs, fieldErr("confirmPassword", ErrPasswordMismatch))
	}

	return errs
}

func UpdatePassword(currentPassword, password string) []FieldError {
	var errs []FieldError

	if currentPassword == "" {
		errs = append(errs, fieldErr("currentPassword", ErrPasswordEmpty))
	}

	if err := PasswordValidator(password); err != nil {
		errs = append(errs, fieldErr("password", err))
	}

	return errs
}

func CheckPassword(password string) []FieldError {
	var errs []FieldError

	if password == "" {
		errs = append(errs, fieldErr("password", ErrPasswordEmpty))
	}

	return errs
}
