package middleware

import (
	"bitwise74/budget-api/model"
	"bitwise74/budget-api/security"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewJWTMiddleware guards a route group with the Authorization header.
// On success the principal's id and row are stored in the context as
// userID and user so that handlers never re-verify anything
func NewJWTMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		bearer := c.GetHeader("Authorization")
		if bearer == "" || !strings.HasPrefix(bearer, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Unauthorized: Token missing or invalid format",
				"requestID": requestID,
			})
			return
		}

		tokenStr := strings.TrimPrefix(bearer, "Bearer ")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Unauthorized: Token is required",
				"requestID": requestID,
			})
			return
		}

		claims, err := security.ParseSessionToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Unauthorized: Invalid token or verification failed",
				"requestID": requestID,
			})

			zap.L().Debug("Failed to parse session token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		// The token may outlive the account it was issued for
		var user model.User
		err = d.Where("id = ?", claims.UserID).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
					"error":     "User doesn't exist",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", user)
		c.Next()
	}
}
