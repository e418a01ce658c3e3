package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Adminizer barra quem não tem role admin. Assume AuthRequired antes
// no mesmo grupo.
func Adminizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUserLogged(c)
		if !ok {
			RespondError(c, unauthenticatedMsg, http.StatusUnauthorized)
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			RespondError(c, "admin required", http.StatusForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
