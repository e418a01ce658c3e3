package models

import "time"

/************************************************
/**** MARK: ORDER STATUS ****/
/************************************************/
const ORDER_STATUS_PENDING = "pending"
const ORDER_STATUS_PAID = "paid"
const ORDER_STATUS_SHIPPED = "shipped"
const ORDER_STATUS_DELIVERED = "delivered"
const ORDER_STATUS_CANCELLED = "cancelled"

// Order é um pedido fechado a partir do carrinho.
type Order struct {
	ID        int64       `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64       `gorm:"not null;index" json:"user_id"`
	Status    string      `gorm:"not null;default:'pending'" json:"status" form:"status"`
	Total     float64     `gorm:"not null" json:"total"`
	Address   string      `gorm:"default:''" json:"address" form:"address"`
	Items     []OrderItem `gorm:"foreignkey:OrderID" json:"items"`
	CreatedAt *time.Time  `json:"created_at"`
	UpdatedAt *time.Time  `json:"updated_at"`
}

// OrderItem congela produto, quantidade e preço unitário no momento da compra.
type OrderItem struct {
	ID        int64   `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	OrderID   int64   `gorm:"not null;index" json:"order_id"`
	ProductID int64   `gorm:"not null" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
}

func IsValidOrderStatus(status string) bool {
	switch status {
	case ORDER_STATUS_PENDING, ORDER_STATUS_PAID, ORDER_STATUS_SHIPPED,
		ORDER_STATUS_DELIVERED, ORDER_STATUS_CANCELLED:
		return true
	}
	return false
}
