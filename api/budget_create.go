package api

import (
	"bitwise74/budget-api/model"
	"bitwise74/budget-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type budgetBody struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

func (a *API) BudgetCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

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

	// Owner comes from the session, not the body. A client can't
	// create a budget as somebody else
	budget := model.Budget{
		UserID: userID,
		Name:   data.Name,
		Amount: data.Amount,
	}

	if err := a.DB.Create(&budget).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create budget", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":    "Budget created",
		"budget": budget,
	})
}
