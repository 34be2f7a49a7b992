package api

import (
	"bitwise74/budget-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthUser returns the principal the JWT middleware already resolved.
// The credential columns never serialize, see the model tags
func (a *API) AuthUser(c *gin.Context) {
	user := c.MustGet("user").(model.User)

	c.JSON(http.StatusOK, user)
}
