package controllers

import (
	"net/http"

	dbpkg "fixstore/db"
	"fixstore/models"

	"github.com/gin-gonic/gin"
)

// POST /admin/repairs/:id/quotes (admin)
// Emite um orçamento pro chamado e move o chamado pra awaiting_approval.
func CreateQuote(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	type Request struct {
		Amount  float64 `json:"amount" form:"amount"`
		Message string  `json:"message" form:"message"`
	}
	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		RespondError(c, "amount deve ser maior que zero", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var job models.RepairJob
	if err := db.First(&job, id).Error; err != nil {
		RespondError(c, "chamado não encontrado", http.StatusNotFound)
		return
	}

	quote := models.Quote{
		RepairJobID: job.ID,
		Amount:      req.Amount,
		Message:     req.Message,
		Status:      models.QUOTE_STATUS_PENDING,
	}

	tx := db.Begin()
	if err := tx.Create(&quote).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Model(&job).Update("status", models.REPAIR_STATUS_AWAITING_APPROVAL).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, quote)
}

// GET /quotes (autenticado) — orçamentos dos chamados do próprio usuário.
func GetQuotes(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, unauthenticatedMsg, http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var quotes []models.Quote
	err := db.
		Joins("JOIN repair_jobs ON repair_jobs.id = quotes.repair_job_id").
		Where("repair_jobs.user_id = ?", user.ID).
		Order("quotes.id desc").
		Find(&quotes).Error
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, quotes)
}

// POST /quotes/:id/accept (autenticado, dono do chamado)
func AcceptQuote(c *gin.Context) {
	resolveQuote(c, models.QUOTE_STATUS_ACCEPTED, models.REPAIR_STATUS_REPAIRING)
}

// POST /quotes/:id/reject (autenticado, dono do chamado)
func RejectQuote(c *gin.Context) {
	resolveQuote(c, models.QUOTE_STATUS_REJECTED, models.REPAIR_STATUS_DONE)
}

func resolveQuote(c *gin.Context, quoteStatus, jobStatus string) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, unauthenticatedMsg, http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var quote models.Quote
	if err := db.First(&quote, id).Error; err != nil {
		RespondError(c, "orçamento não encontrado", http.StatusNotFound)
		return
	}

	var job models.RepairJob
	if err := db.First(&job, quote.RepairJobID).Error; err != nil {
		RespondError(c, "chamado não encontrado", http.StatusNotFound)
		return
	}
	if job.UserID != user.ID {
		RespondError(c, "sem acesso a este orçamento", http.StatusForbidden)
		return
	}
	if quote.Status != models.QUOTE_STATUS_PENDING {
		RespondError(c, "orçamento já resolvido", http.StatusBadRequest)
		return
	}

	tx := db.Begin()
	if err := tx.Model(&quote).Update("status", quoteStatus).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Model(&job).Update("status", jobStatus).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	quote.Status = quoteStatus
	RespondSuccess(c, quote)
}
