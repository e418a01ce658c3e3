package models

import "time"

// Query é uma mensagem do formulário de contato (não exige conta).
type Query struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string     `gorm:"not null" json:"name" form:"name"`
	Email     string     `gorm:"not null" json:"email" form:"email"`
	Subject   string     `gorm:"default:''" json:"subject" form:"subject"`
	Message   string     `gorm:"not null" json:"message" form:"message"`
	Answered  bool       `gorm:"not null;default:false" json:"answered"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (query Query) MissingFields() string {
	if query.Name == "" {
		return "name"
	} else if query.Email == "" {
		return "email"
	} else if query.Message == "" {
		return "message"
	}
	return ""
}
