package controllers

import (
	"net/http"

	dbpkg "fixstore/db"
	"fixstore/models"

	"github.com/gin-gonic/gin"
)

// GET /cart (autenticado)
func GetCart(c *gin.Context) {
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

	var items []models.CartItem
	err := db.Preload("Product").Where("user_id = ?", user.ID).Order("id").Find(&items).Error
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, items)
}

// POST /cart (autenticado)
// Body: { "product_id": 1, "quantity": 2 }
// Produto repetido soma a quantidade na linha existente.
func AddToCart(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, unauthenticatedMsg, http.StatusUnauthorized)
		return
	}

	type Request struct {
		ProductID int64 `json:"product_id" form:"product_id"`
		Quantity  int   `json:"quantity" form:"quantity"`
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ProductID <= 0 {
		RespondError(c, "product_id é obrigatório", http.StatusBadRequest)
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var product models.Product
	if err := db.First(&product, req.ProductID).Error; err != nil {
		RespondError(c, "produto não encontrado", http.StatusNotFound)
		return
	}

	var item models.CartItem
	err := db.Where("user_id = ? AND product_id = ?", user.ID, req.ProductID).First(&item).Error
	if err == nil {
		item.Quantity += req.Quantity
		if err := db.Save(&item).Error; err != nil {
			RespondError(c, err.Error(), http.StatusInternalServerError)
			return
		}
		RespondSuccess(c, item)
		return
	}

	item = models.CartItem{
		UserID:    user.ID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if err := db.Create(&item).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DELETE /cart/:id (autenticado)
func RemoveFromCart(c *gin.Context) {
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

	var item models.CartItem
	if err := db.Where("id = ? AND user_id = ?", id, user.ID).First(&item).Error; err != nil {
		RespondError(c, "item não encontrado", http.StatusNotFound)
		return
	}
	if err := db.Delete(&item).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, gin.H{"status": "success"})
}
