package api

import (
	"bitwise74/budget-api/model"
	"bitwise74/budget-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type checkPasswordBody struct {
	Password string `json:"password"`
}

// AuthCheckPassword lets the frontend re-confirm the password before
// destructive actions without creating a new session
func (a *API) AuthCheckPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	user := c.MustGet("user").(model.User)

	var data checkPasswordBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if errs := validators.CheckPassword(data.Password); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors":    errs,
			"requestID": requestID,
		})
		return
	}

	ok, err := a.Argon.VerifyPasswd(data.Password, user.PasswordHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to verify password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "Current password is incorrect",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Password is correct",
	})
}
