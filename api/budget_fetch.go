package api

import (
	"bitwise74/budget-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) BudgetFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	budget := c.MustGet("budget").(model.Budget)

	// The guard resolved the bare row, reads also want the children
	err := a.DB.
		Preload("Expenses").
		First(&budget, budget.ID).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load budget expenses", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, budget)
}
