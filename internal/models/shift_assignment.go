package models

import (
	"time"
)

// ShiftAssignment is one scheduled block of work. Assignments are created by
// an administrator, read-only to the assigned worker, and only ever added or
// removed as whole records.
type ShiftAssignment struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Month      string    `gorm:"type:varchar(7);not null;index" json:"month"` // YYYY-MM
	Date       string    `gorm:"type:varchar(10);not null;index" json:"date"` // YYYY-MM-DD
	ShiftStart string    `gorm:"type:varchar(5);not null" json:"shift_start"` // HH:MM
	ShiftEnd   string    `gorm:"type:varchar(5);not null" json:"shift_end"`
	Pay        float64   `gorm:"not null;default:0" json:"pay"`
	Location   string    `json:"location"`
	AssignedBy string    `gorm:"not null" json:"assigned_by"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (ShiftAssignment) TableName() string {
	return "shift_assignments"
}

// Hours returns the shift length in fractional hours.
func (sa *ShiftAssignment) Hours() float64 {
	start, errS := time.Parse("15:04", sa.ShiftStart)
	end, errE := time.Parse("15:04", sa.ShiftEnd)
	if errS != nil || errE != nil {
		return 0
	}
	return end.Sub(start).Hours()
}

// IsValid checks the shift invariants: a well-formed date, well-formed
// times, and an end strictly after the start within the same day.
func (sa *ShiftAssignment) IsValid() bool {
	if sa.UserID == 0 {
		return false
	}
	if _, err := time.Parse("2006-01-02", sa.Date); err != nil {
		return false
	}
	start, err := time.Parse("15:04", sa.ShiftStart)
	if err != nil {
		return false
	}
	end, err := time.Parse("15:04", sa.ShiftEnd)
	if err != nil {
		return false
	}
	if !end.After(start) {
		return false
	}
	if sa.Pay < 0 {
		return false
	}
	return true
}
