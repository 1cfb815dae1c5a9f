package models

import (
	"time"
)

// Day-off request statuses. Requests are created by workers as pending and
// transitioned by administrators; they are never deleted.
const (
	DayOffPending  = "pending"
	DayOffApproved = "approved"
	DayOffRejected = "rejected"
)

type DayOffRequest struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_dayoff_user_date" json:"user_id"`
	Date        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_dayoff_user_date" json:"date"` // YYYY-MM-DD
	Status      string    `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	RequestedAt time.Time `gorm:"not null" json:"requested_at"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (DayOffRequest) TableName() string {
	return "day_off_requests"
}

// IsValidStatus reports whether s is one of the three recognized statuses.
func IsValidStatus(s string) bool {
	return s == DayOffPending || s == DayOffApproved || s == DayOffRejected
}

func (r *DayOffRequest) IsValid() bool {
	if r.UserID == 0 {
		return false
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return false
	}
	return IsValidStatus(r.Status)
}

// IsDecided reports whether an administrator has already reviewed the request.
func (r *DayOffRequest) IsDecided() bool {
	return r.Status == DayOffApproved || r.Status == DayOffRejected
}
