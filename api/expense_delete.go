package api

import (
	"bitwise74/budget-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ExpenseDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	expense := c.MustGet("expense").(model.Expense)

	r := a.DB.Delete(&model.Expense{}, expense.ID)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete expense", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"msg":       "Expense not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Expense deleted successfully",
	})
}
