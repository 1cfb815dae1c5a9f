package repository

import (
	"errors"
	"workforce-bot/internal/models"

	"gorm.io/gorm"
)

type DayOffRequestRepository interface {
	Create(request *models.DayOffRequest) error
	GetByID(id uint) (*models.DayOffRequest, error)
	GetByUserAndDate(userID uint, date string) (*models.DayOffRequest, error)
	GetByUser(userID uint) ([]models.DayOffRequest, error)
	GetByUserAndMonth(userID uint, month string) ([]models.DayOffRequest, error)
	GetPending() ([]models.DayOffRequest, error)
	UpdateStatus(id uint, status string) error
}

type GormDayOffRequestRepository struct {
	db *gorm.DB
}

func NewGormDayOffRequestRepository(db *gorm.DB) (*GormDayOffRequestRepository, error) {
	if err := db.AutoMigrate(&models.DayOffRequest{}); err != nil {
		return nil, err
	}
	return &GormDayOffRequestRepository{db: db}, nil
}

func (r *GormDayOffRequestRepository) Create(request *models.DayOffRequest) error {
	if !request.IsValid() {
		return errors.New("invalid day-off request")
	}
	return r.db.Create(request).Error
}

func (r *GormDayOffRequestRepository) GetByID(id uint) (*models.DayOffRequest, error) {
	var request models.DayOffRequest
	err := r.db.First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *GormDayOffRequestRepository) GetByUserAndDate(userID uint, date string) (*models.DayOffRequest, error) {
	var request models.DayOffRequest
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *GormDayOffRequestRepository) GetByUser(userID uint) ([]models.DayOffRequest, error) {
	var requests []models.DayOffRequest
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&requests).Error
	return requests, err
}

func (r *GormDayOffRequestRepository) GetByUserAndMonth(userID uint, month string) ([]models.DayOffRequest, error) {
	var requests []models.DayOffRequest
	err := r.db.Where("user_id = ? AND date LIKE ?", userID, month+"-%").
		Order("date ASC").
		Find(&requests).Error
	return requests, err
}

func (r *GormDayOffRequestRepository) GetPending() ([]models.DayOffRequest, error) {
	var requests []models.DayOffRequest
	err := r.db.Preload("User").
		Where("status = ?", models.DayOffPending).
		Order("requested_at ASC").
		Find(&requests).Error
	return requests, err
}

// UpdateStatus transitions a request. Only the status column changes;
// requests are never deleted.
func (r *GormDayOffRequestRepository) UpdateStatus(id uint, status string) error {
	if !models.IsValidStatus(status) {
		return errors.New("invalid day-off status: " + status)
	}
	result := r.db.Model(&models.DayOffRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("day-off request not found")
	}
	return nil
}
