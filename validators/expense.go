package validators

import "errors"

var (
	ErrExpenseNameEmpty   = errors.New("no expense name provided")
	ErrExpenseNameTooLong = errors.New("expense name must not exceed 100 characters")
)

func Expense(name string, amount float64) []FieldError {
	var errs []FieldError

	if name == "" {
		errs = append(errs, fieldErr("name", ErrExpenseNameEmpty))
	} else if len(name) > 100 {
		errs = append(errs, fieldErr("name", ErrExpenseNameTooLong))
	}

	if amount <= 0 {
		errs = append(errs, fieldErr("amount", ErrAmountNotPositive))
	}

	return errs
}
