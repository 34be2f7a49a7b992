package api

import (
	"bitwise74/budget-api/model"
	"bitwise74/budget-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type expenseBody struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

func (a *API) ExpenseCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	budget := c.MustGet("budget").(model.Budget)

	var data expenseBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if errs := validators.Expense(data.Name, data.Amount); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors":    errs,
			"requestID": requestID,
		})
		return
	}

	// Parent comes from the guard-resolved budget, not the body
	expense := model.Expense{
		BudgetID: budget.ID,
		Name:     data.Name,
		Amount:   data.Amount,
	}

	if err := a.DB.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create expense", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":     "Expense created successfully",
		"expense": expense,
	})
}
