package models

import "time"

/************************************************
/**** MARK: QUOTE STATUS ****/
/************************************************/
const QUOTE_STATUS_PENDING = "pending"
const QUOTE_STATUS_ACCEPTED = "accepted"
const QUOTE_STATUS_REJECTED = "rejected"

// Quote é o orçamento emitido pela oficina pra um chamado de conserto.
type Quote struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	RepairJobID int64      `gorm:"not null;index" json:"repair_job_id" form:"repair_job_id"`
	Amount      float64    `gorm:"not null" json:"amount" form:"amount"`
	Message     string     `gorm:"default:''" json:"message" form:"message"`
	Status      string     `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
