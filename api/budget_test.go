package api

import (
	"bitwise74/budget-api/model"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetListScopedAndOrdered(t *testing.T) {
	a, mailer := newTestAPI(t)
	owner := registerAndConfirm(t, a, mailer, "Juan", "juan@x.com", "Abcdef1!")
	other := registerAndConfirm(t, a, mailer, "Ana", "ana@x.com", "Abcdef1!")

	createBudget(t, a, owner, "Groceries", 300)
	createBudget(t, a, owner, "Rent", 1200)
	createBudget(t, a, other, "Travel", 800)

	w := doRequest(a, http.MethodGet, "/api/budget", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	budgets := decodeBody(t, w)["budgets"].([]any)
	require.Len(t, budgets, 2)

	// Creation order, oldest first
	assert.Equal(t, "Groceries", budgets[0].(map[string]any)["name"])
	assert.Equal(t, "Rent", budgets[1].(map[string]any)["name"])
}

func TestBudgetCreateOwnerFromSession(t *testing.T) {
	a, mailer := newTestAPI(t)
	token := registerAndConfirm(t, a, mailer, "Juan", "juan@x.com", "Abcdef1!")

	id := createBudget(t, a, token, "Groceries", 300)

	var budget model.Budget
	require.NoError(t, a.DB.First(&budget, id).Error)

	var user model.User
	require.NoError(t, a.DB.Where("email = ?", "juan@x.com").First(&user).Error)
	assert.Equal(t, user.ID, budget.UserID)
}

func TestBudgetCreateRejectsNonPositiveAmount(t *testing.T) {
	a, mailer := newTestAPI(t)
	token := registerAndConfirm(t, a, mailer, "Juan", "juan@x.com", "Abcdef1!")

	for _, amount := range []float64{0, -10} {
		w := doRequest(a, http.MethodPost, "/api/budget", token, gin.H{
			"name":   "Groceries",
			"amount": amount,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "greater than zero")
	}

	var count int64
	a.DB.Model(model.Budget{}).Count(&count)
	assert.Zero(t, count)
}

func TestBudgetFetchIncludesExpenses(t *testing.T) {
	a, mailer := newTestAPI(t)
	token := registerAndConfirm(t, a, mailer, "Juan", "juan@x.com", "Abcdef1!")
	id := createBudget(t, a, token, "Groceries", 300)

	w := doRequest(a, http.MethodPost, fmt.Sprintf("/api/budget/%d/expenses", id), token, gin.H{
		"name":   "Milk",
		"amount": 4.5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(a, http.MethodGet, fmt.Sprintf("/api/budget/%d", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	expenses := body["expenses"].([]any)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Milk", expenses[0].(map[string]any)["name"])
}

func TestBudgetAccessDeniedForForeignUser(t *testing.T) {
	a, mailer := newTestAPI(t)
	owner := registerAndConfirm(t, a, mailer, "Juan", "juan@x.com", "Abcdef1!")
	other := registerAndConfirm(t, a, mailer, "Ana", "ana@x.com", "Abcdef1!")

	id := createBudget(t, a, owner, "Groceries", 300)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := doRequest(a, method, fmt.Sprintf("/api/budget/%d", id), other, gin.H{
			"name":   "Hijacked",
			"amount": 1,
		})
		assert.Equal(t, http.StatusForbidden, w.Code, method)
		assert.Contains(t, w.Body.String(), "Access denied")
	}
}

func TestBudgetNotFound(t *testing.T) {
	a, mailer := newTestAPI(t)
	token := registerAndConfirm(t, a, mailer, "Juan", "juan@x.com", "Abcdef1!")

	w := doRequest(a, http.MethodDelete, "/api/budget/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Budget not found")
}

func TestBudgetInvalidIDParam(t *testing.T) {
	a, mailer := newTestAPI(t)
	token := registerAndConfirm(t, a, mailer, "Juan", "juan@x.com", "Abcdef1!")

	w := doRequest(a, http.MethodGet, "/api/budget/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "positive number")
}

func TestBudgetUpdate(t *testing.T) {
	a, mailer := newTestAPI(t)
	token := registerAndConfirm(t, a, mailer, "Juan", "juan@x.com", "Abcdef1!")
	id := createBudget(t, a, token, "Groceries", 300)

	w := doRequest(a, http.MethodPut, fmt.Sprintf("/api/budget/%d", id), token, gin.H{
		"name":   "Groceries",
		"amount": 350.0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Budget updated successfully")

	var budget model.Budget
	require.NoError(t, a.DB.First(&budget, id).Error)
	assert.Equal(t, 350.0, budget.Amount)
}

func TestBudgetUpdateNoOpDetected(t *testing.T) {
	a, mailer := newTestAPI(t)
	token := registerAndConfirm(t, a, mailer, "Juan", "juan@x.com", "Abcdef1!")
	id := createBudget(t, a, token, "Groceries", 300)

	// Identical payload, nothing to change
	w := doRequest(a, http.MethodPut, fmt.Sprintf("/api/budget/%d", id), token, gin.H{
		"name":   "Groceries",
		"amount": 300.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No changes were made to the budget")
}

func TestBudgetDeleteCascadesToExpenses(t *testing.T) {
	a, mailer := newTestAPI(t)
	token := registerAndConfirm(t, a, mailer, "Juan", "juan@x.com", "Abcdef1!")
	id := createBudget(t, a, token, "Groceries", 300)

	w := doRequest(a, http.MethodPost, fmt.Sprintf("/api/budget/%d/expenses", id), token, gin.H{
		"name":   "Milk",
		"amount": 4.5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(a, http.MethodDelete, fmt.Sprintf("/api/budget/%d", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Budget deleted successfully")

	var budgets, expenses int64
	a.DB.Model(model.Budget{}).Count(&budgets)
	a.DB.Model(model.Expense{}).Count(&expenses)
	assert.Zero(t, budgets)
	assert.Zero(t, expenses)
}
