package api

import (
	"bitwise74/budget-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) ExpenseFetch(c *gin.Context) {
	expense := c.MustGet("expense").(model.Expense)

	c.JSON(http.StatusOK, expense)
}
