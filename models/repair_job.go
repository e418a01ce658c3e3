package models

import "time"

/************************************************
/**** MARK: REPAIR STATUS ****/
/************************************************/
const REPAIR_STATUS_RECEIVED = "received"
const REPAIR_STATUS_DIAGNOSING = "diagnosing"
const REPAIR_STATUS_AWAITING_APPROVAL = "awaiting_approval"
const REPAIR_STATUS_REPAIRING = "repairing"
const REPAIR_STATUS_DONE = "done"
const REPAIR_STATUS_DELIVERED = "delivered"

// RepairJob é um chamado de conserto aberto por um cliente.
type RepairJob struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	Device    string     `gorm:"not null" json:"device" form:"device"`
	Brand     string     `gorm:"default:''" json:"brand" form:"brand"`
	Model     string     `gorm:"default:''" json:"model" form:"model"`
	Problem   string     `gorm:"not null" json:"problem" form:"problem"`
	Status    string     `gorm:"not null;default:'received'" json:"status" form:"status"`
	Notes     string     `gorm:"default:''" json:"notes" form:"notes"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (job RepairJob) MissingFields() string {
	if job.Device == "" {
		return "device"
	} else if job.Problem == "" {
		return "problem"
	}
	return ""
}

func IsValidRepairStatus(status string) bool {
	switch status {
	case REPAIR_STATUS_RECEIVED, REPAIR_STATUS_DIAGNOSING, REPAIR_STATUS_AWAITING_APPROVAL,
		REPAIR_STATUS_REPAIRING, REPAIR_STATUS_DONE, REPAIR_STATUS_DELIVERED:
		return true
	}
	return false
}
