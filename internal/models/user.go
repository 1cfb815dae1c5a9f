package models

type Role string

const (
	RoleWorker string = "worker"
	RoleAdmin  string = "admin"
)

type User struct {
	ID         uint    `gorm:"primarykey" json:"id"`
	CreatedAt  int64   `json:"created_at"`
	UpdatedAt  int64   `json:"updated_at"`
	ChatID     int64   `gorm:"uniqueIndex;not null" json:"chat_id"`
	Username   string  `json:"username"`
	FirstName  string  `gorm:"not null" json:"first_name"`
	LastName   string  `json:"last_name"`
	Role       string  `gorm:"default:'worker'" json:"role"`
	HourlyRate float64 `gorm:"not null;default:17.20" json:"hourly_rate"`
}

// IsAdmin reports whether the user may assign shifts and review requests.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

func (u *User) SetRole(role Role) {
	u.Role = string(role)
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (User) TableName() string {
	return "users"
}
