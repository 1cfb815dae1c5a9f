package models

import (
	"time"
)

// Payment statuses for a pay period.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

// WeeklyEarning is one week-of-month bucket of shift pay.
type WeeklyEarning struct {
	Week   string  `json:"week"` // "Week N"
	Amount float64 `json:"amount"`
}

// PayrollSummary is the derived payroll breakdown for one pay period.
// It is computed fresh for display and never persisted; the submit-hours
// flow writes a PayrollSnapshot instead.
type PayrollSummary struct {
	HoursWorked    float64           `json:"hours_worked"`
	HourlyRate     float64           `json:"hourly_rate"`
	GrossSalary    float64           `json:"gross_salary"`
	CPP            float64           `json:"cpp"`
	EI             float64           `json:"ei"`
	IncomeTax      float64           `json:"income_tax"`
	NetSalary      float64           `json:"net_salary"`
	PaymentDate    time.Time         `json:"payment_date"`
	PaymentStatus  string            `json:"payment_status"`
	WeeklyEarnings []WeeklyEarning   `json:"weekly_earnings,omitempty"`
	Jobs           []ShiftAssignment `json:"jobs,omitempty"`
}

// TotalDeductions returns the sum of the three deduction categories.
func (p *PayrollSummary) TotalDeductions() float64 {
	return p.CPP + p.EI + p.IncomeTax
}

// PayrollSnapshot records submitted hours for a month. One row per
// user and month.
type PayrollSnapshot struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_snapshot_user_month" json:"user_id"`
	Month       string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_snapshot_user_month" json:"month"` // YYYY-MM
	TotalHours  float64   `gorm:"not null;default:0" json:"total_hours"`
	LastUpdated time.Time `gorm:"not null" json:"last_updated"`
	Status      string    `gorm:"type:varchar(20);not null;default:'submitted'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (PayrollSnapshot) TableName() string {
	return "payroll_snapshots"
}
