package controllers

import (
	"net/http"

	dbpkg "fixstore/db"
	"fixstore/models"

	"github.com/gin-gonic/gin"
)

// POST /repairs (autenticado)
func CreateRepairJob(c *gin.Context) {
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

	var job models.RepairJob
	if err := c.Bind(&job); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if missing := job.MissingFields(); missing != "" {
		RespondError(c, "Faltando campo "+missing, http.StatusBadRequest)
		return
	}

	job.ID = 0
	job.UserID = user.ID
	job.Status = models.REPAIR_STATUS_RECEIVED
	job.Notes = ""

	if err := db.Create(&job).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// GET /repairs (autenticado) — chamados do próprio usuário.
func GetRepairJobs(c *gin.Context) {
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

	var jobs []models.RepairJob
	err := db.Where("user_id = ?", user.ID).Order("id desc").Find(&jobs).Error
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, jobs)
}

// GET /repairs/:id (autenticado) — dono ou admin.
func GetRepairJobByID(c *gin.Context) {
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

	var job models.RepairJob
	if err := db.First(&job, id).Error; err != nil {
		RespondError(c, "chamado não encontrado", http.StatusNotFound)
		return
	}
	if job.UserID != user.ID && !user.IsAdmin() {
		RespondError(c, "sem acesso a este chamado", http.StatusForbidden)
		return
	}
	RespondSuccess(c, job)
}

// GET /admin/repairs (admin)
func GetAllRepairJobs(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var jobs []models.RepairJob
	if err := db.Order("id desc").Find(&jobs).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, jobs)
}

// PUT /admin/repairs/:id (admin)
// Body: { "status": "...", "notes": "..." }
func UpdateRepairJob(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	type Request struct {
		Status string `json:"status" form:"status"`
		Notes  string `json:"notes" form:"notes"`
	}
	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Status != "" && !models.IsValidRepairStatus(req.Status) {
		RespondError(c, "status inválido", http.StatusBadRequest)
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

	updates := map[string]interface{}{}
	if req.Status != "" {
		updates["status"] = req.Status
		job.Status = req.Status
	}
	if req.Notes != "" {
		updates["notes"] = req.Notes
		job.Notes = req.Notes
	}
	if len(updates) == 0 {
		RespondError(c, "nada para atualizar", http.StatusBadRequest)
		return
	}

	if err := db.Model(&job).Updates(updates).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, job)
}
