package controllers

import (
	"net/http"

	dbpkg "fixstore/db"
	"fixstore/models"

	"github.com/gin-gonic/gin"
)

// POST /orders (autenticado)
// Fecha o carrinho atual num pedido: congela preço unitário, soma o total
// e esvazia o carrinho, tudo na mesma transação.
func CreateOrder(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, unauthenticatedMsg, http.StatusUnauthorized)
		return
	}

	type Request struct {
		Address string `json:"address" form:"address"`
	}
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

	var cartItems []models.CartItem
	err := db.Preload("Product").Where("user_id = ?", user.ID).Find(&cartItems).Error
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(cartItems) == 0 {
		RespondError(c, "carrinho vazio", http.StatusBadRequest)
		return
	}

	order := models.Order{
		UserID:  user.ID,
		Status:  models.ORDER_STATUS_PENDING,
		Address: req.Address,
	}
	for _, item := range cartItems {
		if item.Product == nil {
			RespondError(c, "produto do carrinho não existe mais", http.StatusBadRequest)
			return
		}
		order.Total += item.Product.Price * float64(item.Quantity)
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
		})
	}

	tx := db.Begin()
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GET /orders (autenticado) — só os pedidos do próprio usuário.
func GetOrders(c *gin.Context) {
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

	var orders []models.Order
	err := db.Preload("Items").Where("user_id = ?", user.ID).Order("id desc").Find(&orders).Error
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, orders)
}

// GET /orders/:id (autenticado) — dono ou admin.
func GetOrderByID(c *gin.Context) {
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

	var order models.Order
	if err := db.Preload("Items").First(&order, id).Error; err != nil {
		RespondError(c, "pedido não encontrado", http.StatusNotFound)
		return
	}
	if order.UserID != user.ID && !user.IsAdmin() {
		RespondError(c, "sem acesso a este pedido", http.StatusForbidden)
		return
	}
	RespondSuccess(c, order)
}

// GET /admin/orders (admin)
func GetAllOrders(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var orders []models.Order
	if err := db.Preload("Items").Order("id desc").Find(&orders).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, orders)
}

// PUT /admin/orders/:id (admin)
// Body: { "status": "paid" } — mutação simples de status, sem workflow.
func UpdateOrderStatus(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	type Request struct {
		Status string `json:"status" form:"status"`
	}
	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if !models.IsValidOrderStatus(req.Status) {
		RespondError(c, "status inválido", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		RespondError(c, "pedido não encontrado", http.StatusNotFound)
		return
	}
	if err := db.Model(&order).Update("status", req.Status).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	order.Status = req.Status
	RespondSuccess(c, order)
}
