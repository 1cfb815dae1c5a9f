package repository

import (
	"errors"
	"workforce-bot/internal/models"

	"gorm.io/gorm"
)

type MaintenanceRequestRepository interface {
	Create(request *models.MaintenanceRequest) error
	GetByID(id uint) (*models.MaintenanceRequest, error)
	GetByUser(userID uint) ([]models.MaintenanceRequest, error)
	GetAll() ([]models.MaintenanceRequest, error)
	GetByStatus(status string) ([]models.MaintenanceRequest, error)
	UpdateStatus(id uint, status string) error
}

type GormMaintenanceRequestRepository struct {
	db *gorm.DB
}

func NewGormMaintenanceRequestRepository(db *gorm.DB) (*GormMaintenanceRequestRepository, error) {
	if err := db.AutoMigrate(&models.MaintenanceRequest{}); err != nil {
		return nil, err
	}
	return &GormMaintenanceRequestRepository{db: db}, nil
}

func (r *GormMaintenanceRequestRepository) Create(request *models.MaintenanceRequest) error {
	if !request.IsValid() {
		return errors.New("invalid maintenance request")
	}
	return r.db.Create(request).Error
}

func (r *GormMaintenanceRequestRepository) GetByID(id uint) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	err := r.db.First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *GormMaintenanceRequestRepository) GetByUser(userID uint) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *GormMaintenanceRequestRepository) GetAll() ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	err := r.db.Preload("User").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *GormMaintenanceRequestRepository) GetByStatus(status string) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	err := r.db.Preload("User").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *GormMaintenanceRequestRepository) UpdateStatus(id uint, status string) error {
	switch status {
	case models.MaintenancePending, models.MaintenanceInProgress, models.MaintenanceResolved:
	default:
		return errors.New("invalid maintenance status: " + status)
	}
	result := r.db.Model(&models.MaintenanceRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("maintenance request not found")
	}
	return nil
}
