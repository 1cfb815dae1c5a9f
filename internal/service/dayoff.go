package service

import (
	"fmt"
	"time"
	"workforce-bot/internal/models"
	"workforce-bot/internal/repository"
	"workforce-bot/pkg/calendar"

	"github.com/sirupsen/logrus"
)

type DayOffService struct {
	repo     repository.DayOffRequestRepository
	userRepo repository.UserRepository
	logger   *logrus.Logger
	now      func() time.Time
}

func NewDayOffService(repo repository.DayOffRequestRepository, userRepo repository.UserRepository) *DayOffService {
	return &DayOffService{
		repo:     repo,
		userRepo: userRepo,
		logger:   logrus.New(),
		now:      time.Now,
	}
}

// Request files a pending day-off request for a worker. At most one request
// may exist per worker and date.
func (s *DayOffService) Request(userID uint, date string) (*models.DayOffRequest, error) {
	if _, err := calendar.ParseDate(date); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, fmt.Errorf("check existing request: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("a day-off request for %s already exists (%s)", date, existing.Status)
	}

	request := &models.DayOffRequest{
		UserID:      userID,
		Date:        date,
		Status:      models.DayOffPending,
		RequestedAt: s.now(),
	}
	if err := s.repo.Create(request); err != nil {
		s.logger.WithError(err).Error("Failed to create day-off request")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"date":    date,
	}).Info("Day-off request filed")

	return request, nil
}

// Decide transitions a pending request to approved or rejected. Only
// administrators may decide, and decided requests stay decided.
func (s *DayOffService) Decide(adminChatID int64, userID uint, date, status string) (*models.DayOffRequest, error) {
	admin, err := s.userRepo.GetByChatID(adminChatID)
	if err != nil {
		return nil, fmt.Errorf("check admin: %w", err)
	}
	if admin == nil || !admin.IsAdmin() {
		return nil, fmt.Errorf("access denied: only administrators may review day-off requests")
	}

	if status != models.DayOffApproved && status != models.DayOffRejected {
		return nil, fmt.Errorf("decision must be %q or %q, got %q", models.DayOffApproved, models.DayOffRejected, status)
	}

	request, err := s.repo.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("no day-off request for %s", date)
	}
	if request.IsDecided() {
		return nil, fmt.Errorf("request for %s is already %s", date, request.Status)
	}

	if err := s.repo.UpdateStatus(request.ID, status); err != nil {
		s.logger.WithError(err).Error("Failed to update day-off request status")
		return nil, err
	}
	request.Status = status

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"date":    date,
		"status":  status,
	}).Info("Day-off request decided")

	return request, nil
}

// Pending lists undecided requests across all workers, oldest first.
func (s *DayOffService) Pending() ([]models.DayOffRequest, error) {
	return s.repo.GetPending()
}

// ForUser lists a worker's requests, newest date first.
func (s *DayOffService) ForUser(userID uint) ([]models.DayOffRequest, error) {
	return s.repo.GetByUser(userID)
}
