package controllers

import (
	"net/http"

	dbpkg "fixstore/db"
	"fixstore/models"

	"github.com/gin-gonic/gin"
)

// GET /products (public)
func GetProducts(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	query := db.Order("id")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, products)
}

// GET /products/:id (public)
func GetProductByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		RespondError(c, "produto não encontrado", http.StatusNotFound)
		return
	}
	RespondSuccess(c, product)
}

// POST /products (admin)
func CreateProduct(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var product models.Product
	if err := c.Bind(&product); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if missing := product.MissingFields(); missing != "" {
		RespondError(c, "Faltando campo "+missing, http.StatusBadRequest)
		return
	}

	product.ID = 0
	if err := db.Create(&product).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PUT /products/:id (admin)
func UpdateProduct(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		RespondError(c, "produto não encontrado", http.StatusNotFound)
		return
	}

	var input models.Product
	if err := c.Bind(&input); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if missing := input.MissingFields(); missing != "" {
		RespondError(c, "Faltando campo "+missing, http.StatusBadRequest)
		return
	}

	input.ID = product.ID
	input.CreatedAt = product.CreatedAt
	if err := db.Save(&input).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, input)
}

// DELETE /products/:id (admin)
func DeleteProduct(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		RespondError(c, "produto não encontrado", http.StatusNotFound)
		return
	}
	if err := db.Delete(&product).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, gin.H{"status": "success"})
}
