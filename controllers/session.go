package controllers

import (
	"net/http"
	"time"

	"fixstore/models"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "jwt"

// logoutSentinel sobrescreve o cookie no logout; o JWT em si continua válido
// até expirar naturalmente, não existe revogação server-side.
const logoutSentinel = "loggedout"
const logoutCookieSeconds = 10

// issueSession assina o token, grava o cookie de sessão e devolve
// {token, user} com o hash de senha já fora da serialização.
func issueSession(c *gin.Context, user models.User, code int) {
	signed, exp, err := SignToken(user.ID)
	if err != nil {
		RespondError(c, "erro ao assinar token", http.StatusInternalServerError)
		return
	}

	setSessionCookie(c, signed, int(time.Until(exp).Seconds()))

	user.Password = ""
	c.JSON(code, gin.H{"token": signed, "user": user})
}

// Cookie httpOnly + SameSite=Lax; Secure em qualquer ambiente que não seja
// development (staging incluso), não só em production.
func setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, value, maxAge, "/", "", !conf.IsDevelopment(), true)
}
