package api

import (
	"bitwise74/budget-api/model"
	"bitwise74/budget-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ExpenseUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	expense := c.MustGet("expense").(model.Expense)

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

	err := a.DB.
		Model(model.Expense{}).
		Where("id = ?", expense.ID).
		Updates(map[string]any{
			"name":   data.Name,
			"amount": data.Amount,
		}).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update expense", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Expense updated successfully",
	})
}
