package middleware

import (
	"bitwise74/budget-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewExpenseOwnershipMiddleware resolves the expenseId parameter and
// checks ownership transitively. An expense has no user column, so the
// only thing that decides access is whether its parent budget belongs
// to the authenticated user. The resolved expense is stored in the
// context as expense
func NewExpenseOwnershipMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)
		userID := c.MustGet("userID").(uint)

		expenseID, ok := ParseID(c, "expenseId")
		if !ok {
			return
		}

		var expense model.Expense
		err := d.Where("id = ?", expenseID).First(&expense).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
					"error":     "Expense not found",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to fetch expense", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		// Follow the expense to its own parent instead of trusting the
		// budget id in the URL
		var parent model.Budget
		err = d.Where("id = ?", expense.BudgetID).First(&parent).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error":     "Access denied",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to fetch parent budget", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if parent.UserID != userID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Access denied",
				"requestID": requestID,
			})
			return
		}

		c.Set("expense", expense)
		c.Next()
	}
}
