package api

import (
	"bitwise74/budget-api/model"
	"bitwise74/budget-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type validateTokenBody struct {
	Token string `json:"token"`
}

// AuthValidateToken is a read-only probe. The frontend calls it before
// prompting for a new password so the user isn't asked to type one
// against a dead token. Nothing is consumed here
func (a *API) AuthValidateToken(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data validateTokenBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if errs := validators.ConfirmationToken(data.Token); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors":    errs,
			"requestID": requestID,
		})
		return
	}

	var found bool
	err := a.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("token = ?", data.Token).
		Find(&found).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Invalid token",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Token is valid, set a new password",
	})
}
