package controllers

import (
	"log"
	"net/http"

	"fixstore/config"
	"fixstore/tools"

	"github.com/gin-gonic/gin"
)

var conf config.Configuration

// SendEmail é variável de pacote pra permitir stub nos testes.
var SendEmail func(to, subject, message string) error

// SetConfigurations injeta a configuração carregada no main (mesmo esquema
// do pacote db). Em produção é fatal subir sem um segredo JWT de verdade.
func SetConfigurations(configuration config.Configuration) {
	conf = configuration

	secret := conf.Security.JwtSecret
	if conf.IsProduction() && (secret == "" || secret == "CHANGE_ME") {
		log.Fatal("JWT_SECRET não configurado em produção")
	}
	if !conf.IsProduction() && (secret == "" || secret == "CHANGE_ME") {
		log.Println("AVISO: usando segredo JWT de desenvolvimento, INSEGURO fora de dev")
	}

	mailer := tools.Mailer{
		Host: conf.Smtp.Host,
		Port: conf.Smtp.Port,
		User: conf.Smtp.User,
		Pass: conf.Smtp.Pass,
		From: conf.Smtp.From,
	}
	SendEmail = mailer.SendEmail
}

// Envelope padrão de erro: {status, message}. 4xx vira "fail", 5xx "error".
func RespondError(c *gin.Context, msg string, code int) {
	status := "fail"
	if code >= http.StatusInternalServerError {
		status = "error"
	}
	c.JSON(code, gin.H{"status": status, "message": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
