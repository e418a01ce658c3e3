package controllers

import (
	"net/http"

	dbpkg "fixstore/db"
	"fixstore/models"
	"fixstore/tools"

	"github.com/gin-gonic/gin"
)

// POST /queries (public) — formulário de contato, não exige conta.
func CreateQuery(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var query models.Query
	if err := c.Bind(&query); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if missing := query.MissingFields(); missing != "" {
		RespondError(c, "Faltando campo "+missing, http.StatusBadRequest)
		return
	}
	if !tools.ValidateEmail(query.Email) {
		RespondError(c, "E-mail inválido!", http.StatusBadRequest)
		return
	}

	query.ID = 0
	query.Answered = false
	if err := db.Create(&query).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, query)
}

// GET /admin/queries (admin)
func GetQueries(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	queryDB := db.Order("id desc")
	if c.Query("answered") == "false" {
		queryDB = queryDB.Where("answered = ?", false)
	}

	var queries []models.Query
	if err := queryDB.Find(&queries).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, queries)
}

// PUT /admin/queries/:id (admin)
// Responde a mensagem por email e marca como respondida.
func AnswerQuery(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	type Request struct {
		Answer string `json:"answer" form:"answer"`
	}
	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Answer == "" {
		RespondError(c, "Faltando campo answer", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var query models.Query
	if err := db.First(&query, id).Error; err != nil {
		RespondError(c, "mensagem não encontrada", http.StatusNotFound)
		return
	}

	subject := "Re: " + query.Subject
	if query.Subject == "" {
		subject = "Resposta ao seu contato"
	}
	if err := SendEmail(query.Email, subject, req.Answer); err != nil {
		RespondError(c, "falha ao enviar a resposta por email", http.StatusInternalServerError)
		return
	}

	if err := db.Model(&query).Update("answered", true).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	query.Answered = true
	RespondSuccess(c, query)
}
