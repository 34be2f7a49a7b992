package api

import (
	"bitwise74/budget-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) BudgetDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	budget := c.MustGet("budget").(model.Budget)

	// Expenses go with it through the cascade rule on the foreign key
	r := a.DB.Delete(&model.Budget{}, budget.ID)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete budget", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"msg":       "Budget not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Budget deleted successfully",
	})
}
