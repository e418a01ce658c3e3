package controllers

import (
	"fmt"
	"net/http"
	"strings"

	dbpkg "fixstore/db"
	"fixstore/models"
	"fixstore/tools"

	"github.com/gin-gonic/gin"
)

// Mensagem única pra email desconhecido E senha errada, pra não permitir
// enumeração de contas.
const loginFailMsg = "usuário ou senha inválidos"

type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// POST /register
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = models.NormalizeEmail(req.Email)

	// Validação de entrada é detalhada; só falha de autenticação é opaca.
	if req.Name == "" {
		RespondError(c, "Faltando campo name", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		RespondError(c, "Faltando campo email", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		RespondError(c, "Faltando campo password", http.StatusBadRequest)
		return
	}
	if !tools.ValidateEmail(req.Email) {
		RespondError(c, "E-mail inválido!", http.StatusBadRequest)
		return
	}
	if len(req.Password) < conf.Security.MinPasswordLen {
		msg := fmt.Sprintf("senha deve ter pelo menos %d caracteres", conf.Security.MinPasswordLen)
		RespondError(c, msg, http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  models.USER_ROLE_NORMAL,
	}
	if err := user.SetPassword(req.Password); err != nil {
		RespondError(c, "erro ao gerar hash da senha", http.StatusInternalServerError)
		return
	}

	if err := db.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			RespondError(c, "email já cadastrado", http.StatusBadRequest)
			return
		}
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	issueSession(c, user, http.StatusCreated)
}

// POST /login
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	req.Email = models.NormalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" {
		RespondError(c, "email e password são obrigatórios", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		RespondError(c, loginFailMsg, http.StatusUnauthorized)
		return
	}
	if !user.CheckPassword(req.Password) {
		RespondError(c, loginFailMsg, http.StatusUnauthorized)
		return
	}

	issueSession(c, user, http.StatusOK)
}

// GET /logout
// Só troca o cookie por um valor sentinela de vida curtíssima; tokens já
// emitidos continuam válidos até a expiração natural.
func Logout(c *gin.Context) {
	setSessionCookie(c, logoutSentinel, logoutCookieSeconds)
	RespondSuccess(c, gin.H{"status": "success"})
}
