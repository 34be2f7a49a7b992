package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetAmountMustBePositive(t *testing.T) {
	for _, amount := range []float64{0, -0.01, -100} {
		errs := Budget("Groceries", amount)
		assert.Len(t, errs, 1, "amount %v", amount)
		assert.Equal(t, "amount", errs[0].Field)
	}

	assert.Empty(t, Budget("Groceries", 0.01))
}

func TestBudgetName(t *testing.T) {
	errs := Budget("", 100)
	assert.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)

	errs = Budget(strings.Repeat("a", 101), 100)
	assert.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
}

func TestExpenseValidation(t *testing.T) {
	assert.Empty(t, Expense("Milk", 4.5))

	errs := Expense("", -1)
	assert.Len(t, errs, 2)
}
