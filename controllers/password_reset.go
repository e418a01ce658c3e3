package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	dbpkg "fixstore/db"
	"fixstore/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// POST /forgotPassword (public)
// Body: { "email": "..." }
// Gera um token de reset, guarda só o hash + expiração (10 min) no usuário
// e manda o texto puro por email. Se o envio falhar, o ticket é desfeito:
// nunca fica um reset "ativo" que o dono da conta não recebeu.
func ForgotPassword(c *gin.Context) {
	type Request struct {
		Email string `json:"email" form:"email"`
	}

	var req Request
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		RespondError(c, "email é obrigatório", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("email = ?", models.NormalizeEmail(req.Email)).First(&user).Error; err != nil {
		RespondError(c, "usuário não encontrado", http.StatusNotFound)
		return
	}

	// Um forgot novo simplesmente sobrescreve o ticket anterior
	// (last-write-wins, só vale o último token enviado).
	clearToken := user.NewPasswordResetToken(resetTokenValidity())

	// Persistimos só as colunas de reset, sem revalidar o registro inteiro.
	if err := saveResetFields(db, &user); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	resetURL := conf.AppURL + "/resetPassword/" + clearToken
	msg := fmt.Sprintf("Esqueceu sua senha? Acesse o link abaixo pra definir uma nova (válido por %d minutos):\n\n%s\n\nSe não foi você, ignore este email.",
		conf.Security.ResetTokenValidMins, resetURL)

	if err := SendEmail(user.Email, "Recuperação de senha", msg); err != nil {
		log.Printf("forgot password: falha no envio user_id=%d err=%v", user.ID, err)

		user.ClearPasswordReset()
		if err := saveResetFields(db, &user); err != nil {
			log.Printf("forgot password: falha ao desfazer ticket user_id=%d err=%v", user.ID, err)
		}

		RespondError(c, "falha ao enviar o email de recuperação, tente novamente", http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"status": "success", "message": "token enviado para o email"})
}

// PATCH /resetPassword/:token (public)
// Body: { "password": "..." }
// Troca o token (ainda válido) por uma senha nova e já emite sessão, igual
// ao login. Consumir o token limpa os campos de reset: é de uso único.
func ResetPassword(c *gin.Context) {
	type Request struct {
		Password string `json:"password" form:"password"`
	}

	tokenParam := c.Param("token")

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	tokenHash := models.HashResetToken(tokenParam)

	var user models.User
	err := db.
		Where("password_reset_token = ? AND password_reset_expires > ?", tokenHash, time.Now()).
		First(&user).Error
	if err != nil {
		RespondError(c, "token inválido ou expirado", http.StatusBadRequest)
		return
	}

	if len(req.Password) < conf.Security.MinPasswordLen {
		msg := fmt.Sprintf("senha deve ter pelo menos %d caracteres", conf.Security.MinPasswordLen)
		RespondError(c, msg, http.StatusBadRequest)
		return
	}

	// SetPassword já limpa os campos de reset.
	if err := user.SetPassword(req.Password); err != nil {
		RespondError(c, "erro ao gerar hash da senha", http.StatusInternalServerError)
		return
	}
	if err := savePasswordAndResetFields(db, &user); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	issueSession(c, user, http.StatusOK)
}

// PATCH /updatePassword (autenticado)
// Body: { "current_password": "...", "new_password": "..." }
func UpdatePassword(c *gin.Context) {
	type Request struct {
		CurrentPassword string `json:"current_password" form:"current_password"`
		NewPassword     string `json:"new_password" form:"new_password"`
	}

	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, unauthenticatedMsg, http.StatusUnauthorized)
		return
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if !user.CheckPassword(req.CurrentPassword) {
		RespondError(c, "senha atual incorreta", http.StatusUnauthorized)
		return
	}
	if len(req.NewPassword) < conf.Security.MinPasswordLen {
		msg := fmt.Sprintf("senha deve ter pelo menos %d caracteres", conf.Security.MinPasswordLen)
		RespondError(c, msg, http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		RespondError(c, "erro ao gerar hash da senha", http.StatusInternalServerError)
		return
	}
	if err := savePasswordAndResetFields(db, &user); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	issueSession(c, user, http.StatusOK)
}

func saveResetFields(db *gorm.DB, user *models.User) error {
	return db.Model(user).Updates(map[string]interface{}{
		"password_reset_token":   user.PasswordResetToken,
		"password_reset_expires": user.PasswordResetExpires,
	}).Error
}

func savePasswordAndResetFields(db *gorm.DB, user *models.User) error {
	return db.Model(user).Updates(map[string]interface{}{
		"password":               user.Password,
		"password_reset_token":   user.PasswordResetToken,
		"password_reset_expires": user.PasswordResetExpires,
	}).Error
}
