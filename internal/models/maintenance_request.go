package models

import (
	"time"
)

const (
	UrgencyLow    = "Low"
	UrgencyMedium = "Medium"
	UrgencyHigh   = "High"
)

const (
	MaintenancePending    = "Pending"
	MaintenanceInProgress = "In Progress"
	MaintenanceResolved   = "Resolved"
)

// MaintenanceRequest is a worker-submitted facility issue.
type MaintenanceRequest struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Description string    `gorm:"not null" json:"description"`
	Location    string    `gorm:"not null" json:"location"`
	Urgency     string    `gorm:"type:varchar(10);not null;default:'Low'" json:"urgency"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	Date        string    `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}

func (m *MaintenanceRequest) IsValid() bool {
	if m.UserID == 0 || m.Description == "" || m.Location == "" {
		return false
	}
	if m.Urgency != UrgencyLow && m.Urgency != UrgencyMedium && m.Urgency != UrgencyHigh {
		return false
	}
	switch m.Status {
	case MaintenancePending, MaintenanceInProgress, MaintenanceResolved:
		return true
	}
	return false
}
