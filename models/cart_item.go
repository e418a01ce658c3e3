package models

import "time"

// CartItem é uma linha do carrinho de um usuário.
// Um produto aparece no máximo uma vez por usuário (índice único user+product).
type CartItem struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	ProductID int64      `gorm:"not null;index" json:"product_id" form:"product_id"`
	Quantity  int        `gorm:"not null;default:1" json:"quantity" form:"quantity"`
	Product   *Product   `gorm:"foreignkey:ProductID" json:"product,omitempty"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
