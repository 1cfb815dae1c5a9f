package service

import (
	"fmt"
	"strings"
	"workforce-bot/internal/models"
	"workforce-bot/internal/repository"
)

type UserService struct {
	repo              repository.UserRepository
	defaultHourlyRate float64
}

func NewUserService(repo repository.UserRepository, defaultHourlyRate float64) *UserService {
	return &UserService{repo: repo, defaultHourlyRate: defaultHourlyRate}
}

// CreateUser registers a new worker profile.
func (s *UserService) CreateUser(chatID int64, username, firstName, lastName string) (*models.User, error) {
	if firstName == "" {
		return nil, fmt.Errorf("first name must not be empty")
	}

	existing, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("check existing profile: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	user := &models.User{
		ChatID:     chatID,
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
		Role:       models.RoleWorker,
		HourlyRate: s.defaultHourlyRate,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetUser(chatID int64) (*models.User, error) {
	user, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *UserService) GetAllUsers() ([]*models.User, error) {
	return s.repo.GetAll()
}

func (s *UserService) GetAdmins() ([]*models.User, error) {
	return s.repo.GetByRole(models.RoleAdmin)
}

// UpdateRole changes a user's role. Only administrators may change roles.
func (s *UserService) UpdateRole(adminChatID, targetChatID int64, role models.Role) error {
	admin, err := s.repo.GetByChatID(adminChatID)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if admin == nil || !admin.IsAdmin() {
		return fmt.Errorf("access denied: only administrators may change roles")
	}

	target, err := s.repo.GetByChatID(targetChatID)
	if err != nil {
		return fmt.Errorf("get target user: %w", err)
	}
	if target == nil {
		return fmt.Errorf("user with chat ID %d not found", targetChatID)
	}

	target.SetRole(role)
	return s.repo.Update(target)
}

// SetHourlyRate updates a worker's pay rate. Only administrators may do so.
func (s *UserService) SetHourlyRate(adminChatID, targetChatID int64, rate float64) error {
	admin, err := s.repo.GetByChatID(adminChatID)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if admin == nil || !admin.IsAdmin() {
		return fmt.Errorf("access denied: only administrators may set pay rates")
	}
	if rate < 0 {
		return fmt.Errorf("hourly rate must not be negative")
	}

	target, err := s.repo.GetByChatID(targetChatID)
	if err != nil {
		return fmt.Errorf("get target user: %w", err)
	}
	if target == nil {
		return fmt.Errorf("user with chat ID %d not found", targetChatID)
	}

	target.HourlyRate = rate
	return s.repo.Update(target)
}

// DeleteUser removes a worker's profile. Only administrators may do so, and
// an administrator cannot remove themselves.
func (s *UserService) DeleteUser(adminChatID, targetChatID int64) error {
	admin, err := s.repo.GetByChatID(adminChatID)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if admin == nil || !admin.IsAdmin() {
		return fmt.Errorf("access denied: only administrators may remove users")
	}
	if adminChatID == targetChatID {
		return fmt.Errorf("administrators cannot remove their own profile")
	}
	return s.repo.Delete(targetChatID)
}

// InitializeAdmin promotes the configured chat ID to administrator, creating
// a stub profile when none exists yet.
func (s *UserService) InitializeAdmin(adminChatID int64) error {
	if adminChatID == 0 {
		return nil
	}

	user, err := s.repo.GetByChatID(adminChatID)
	if err != nil {
		return fmt.Errorf("get admin user: %w", err)
	}

	if user == nil {
		user = &models.User{
			ChatID:     adminChatID,
			FirstName:  "Admin",
			Role:       models.RoleAdmin,
			HourlyRate: s.defaultHourlyRate,
		}
		return s.repo.Create(user)
	}

	if user.IsAdmin() {
		return nil
	}
	user.SetRole(models.Role(models.RoleAdmin))
	return s.repo.Update(user)
}

// FormatUser renders a one-line profile summary for lists.
func (s *UserService) FormatUser(user *models.User) string {
	parts := []string{user.FullName()}
	if user.Username != "" {
		parts = append(parts, "@"+user.Username)
	}
	parts = append(parts, fmt.Sprintf("chat %d", user.ChatID), user.Role)
	return strings.Join(parts, " · ")
}
