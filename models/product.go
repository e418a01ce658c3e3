package models

import "time"

// Product representa um item do catálogo.
type Product struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name        string     `gorm:"not null" json:"name" form:"name"`
	Description string     `gorm:"default:''" json:"description" form:"description"`
	Brand       string     `gorm:"default:''" json:"brand" form:"brand"`
	Category    string     `gorm:"default:''" json:"category" form:"category"`
	Price       float64    `gorm:"not null" json:"price" form:"price"`
	Stock       int        `gorm:"not null;default:0" json:"stock" form:"stock"`
	ImageURL    string     `gorm:"column:image_url;default:''" json:"image_url" form:"image_url"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func (product Product) MissingFields() string {
	if product.Name == "" {
		return "name"
	} else if product.Price <= 0 {
		return "price"
	}
	return ""
}
