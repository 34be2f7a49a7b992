package middleware

import (
	"bitwise74/budget-api/model"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ParseID converts a route parameter into a positive integer id
func ParseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		requestID := c.MustGet("requestID").(string)

		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "ID must be a positive number",
			"requestID": requestID,
		})
		return 0, false
	}

	return uint(id), true
}

// NewBudgetOwnershipMiddleware resolves the budgetId parameter and
// rejects the request unless the budget belongs to the authenticated
// user. The resolved budget is stored in the context as budget so
// handlers don't look it up a second time. Read-only, never mutates
// the row
func NewBudgetOwnershipMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)
		userID := c.MustGet("userID").(uint)

		budgetID, ok := ParseID(c, "budgetId")
		if !ok {
			return
		}

		var budget model.Budget
		err := d.Where("id = ?", budgetID).First(&budget).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
					"error":     "Budget not found",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to fetch budget", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if budget.UserID != userID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Access denied",
				"requestID": requestID,
			})
			return
		}

		c.Set("budget", budget)
		c.Next()
	}
}
