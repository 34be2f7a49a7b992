package validators

import "errors"

var (
	ErrBudgetNameEmpty   = errors.New("no budget name provided")
	ErrBudgetNameTooLong = errors.New("budget name must not exceed 100 characters")
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
)

// Budget covers create and update payloads. The amount check runs
// before anything is persisted so a non-positive amount can never
// reach the database
func Budget(name string, amount float64) []FieldError {
	var errs []FieldError

	if name == "" {
		errs = append(errs, fieldErr("name", ErrBudgetNameEmpty))
	} else if len(name) > 100 {
		errs = append(errs, fieldErr("name", ErrBudgetNameTooLong))
	}

	if amount <= 0 {
		errs = append(errs, fieldErr("amount", ErrAmountNotPositive))
	}

	return errs
}
