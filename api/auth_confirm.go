package api

import (
	"bitwise74/budget-api/model"
	"bitwise74/budget-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type confirmBody struct {
	Token string `json:"token"`
}

func (a *API) AuthConfirm(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data confirmBody
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

	var user model.User
	err := a.DB.Where("token = ?", data.Token).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// Also the path a second redemption takes. Confirming
			// clears the token, so a used one simply doesn't match
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid token",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up confirmation token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(&user).Updates(map[string]any{
		"confirmed": true,
		"token":     nil,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to confirm user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Account confirmed successfully",
	})
}
