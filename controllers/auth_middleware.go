package controllers

import (
	"net/http"
	"strings"

	dbpkg "fixstore/db"
	"fixstore/models"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "auth_user"

// Mensagem única pra todas as causas de 401 do guard (sem token, token
// inválido, token expirado, conta apagada) — o cliente não distingue.
const unauthenticatedMsg = "não autenticado"

// AuthRequired extrai o token do header Authorization (ou do cookie de
// sessão), valida e carrega o usuário do banco pro contexto.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			RespondError(c, unauthenticatedMsg, http.StatusUnauthorized)
			c.Abort()
			return
		}

		userID, err := VerifyToken(token)
		if err != nil {
			RespondError(c, unauthenticatedMsg, http.StatusUnauthorized)
			c.Abort()
			return
		}

		db := dbpkg.DBInstance(c)
		if db == nil {
			RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
			c.Abort()
			return
		}

		// Token pode ter sobrevivido à conta (usuário apagado): 401 igual.
		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			RespondError(c, unauthenticatedMsg, http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" && cookie != logoutSentinel {
		return cookie
	}
	return ""
}

// GetUserLogged returns the user loaded by AuthRequired.
func GetUserLogged(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
