package service

import (
	"fmt"
	"time"
	"workforce-bot/internal/models"
	"workforce-bot/internal/repository"

	"github.com/sirupsen/logrus"
)

type MaintenanceService struct {
	repo   repository.MaintenanceRequestRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewMaintenanceService(repo repository.MaintenanceRequestRepository) *MaintenanceService {
	return &MaintenanceService{
		repo:   repo,
		logger: logrus.New(),
		now:    time.Now,
	}
}

// Submit files a new maintenance request. New requests always start Pending.
func (s *MaintenanceService) Submit(userID uint, description, location, urgency string) (*models.MaintenanceRequest, error) {
	if urgency == "" {
		urgency = models.UrgencyLow
	}

	request := &models.MaintenanceRequest{
		UserID:      userID,
		Description: description,
		Location:    location,
		Urgency:     urgency,
		Status:      models.MaintenancePending,
		Date:        s.now().Format("2006-01-02"),
	}
	if !request.IsValid() {
		return nil, fmt.Errorf("description, location and a valid urgency (Low/Medium/High) are required")
	}

	if err := s.repo.Create(request); err != nil {
		s.logger.WithError(err).Error("Failed to submit maintenance request")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"urgency": urgency,
	}).Info("Maintenance request submitted")

	return request, nil
}

func (s *MaintenanceService) ForUser(userID uint) ([]models.MaintenanceRequest, error) {
	return s.repo.GetByUser(userID)
}

func (s *MaintenanceService) All() ([]models.MaintenanceRequest, error) {
	return s.repo.GetAll()
}

func (s *MaintenanceService) Open() ([]models.MaintenanceRequest, error) {
	return s.repo.GetByStatus(models.MaintenancePending)
}

// SetStatus moves a request along Pending → In Progress → Resolved.
func (s *MaintenanceService) SetStatus(id uint, status string) (*models.MaintenanceRequest, error) {
	request, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("maintenance request %d not found", id)
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	request.Status = status
	return request, nil
}
