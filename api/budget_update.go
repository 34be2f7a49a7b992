package api

import (
	"bitwise74/budget-api/model"
	"bitwise74/budget-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) BudgetUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	budget := c.MustGet("budget").(model.Budget)

	var data budgetBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if errs := validators.Budget(data.Name, data.Amount); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors":    errs,
			"requestID": requestID,
		})
		return
	}

	// A payload identical to the stored row changes nothing and is
	// reported as such instead of a fake success
	if budget.Name == data.Name && budget.Amount == data.Amount {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No changes were made to the budget",
			"requestID": requestID,
		})
		return
	}

	r := a.DB.
		Model(model.Budget{}).
		Where("id = ?", budget.ID).
		Updates(map[string]any{
			"name":   data.Name,
			"amount": data.Amount,
		})
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update budget", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	// The row can vanish between the ownership check and the update.
	// Same answer as the no-op, the client can't tell them apart
	if r.RowsAffected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No changes were made to the budget",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Budget updated successfully",
	})
}
