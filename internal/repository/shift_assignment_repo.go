package repository

import (
	"errors"
	"workforce-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ShiftAssignmentRepository interface {
	Create(shift *models.ShiftAssignment) error
	DeleteByUserAndDate(userID uint, date string) (int64, error)
	GetByUserAndMonth(userID uint, month string) ([]models.ShiftAssignment, error)
	GetByUserAndDate(userID uint, date string) ([]models.ShiftAssignment, error)
	GetByMonth(month string) ([]models.ShiftAssignment, error)
}

type GormShiftAssignmentRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormShiftAssignmentRepository(db *gorm.DB) (*GormShiftAssignmentRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.ShiftAssignment{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate shift_assignments table")
		return nil, err
	}

	return &GormShiftAssignmentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormShiftAssignmentRepository) Create(shift *models.ShiftAssignment) error {
	r.logger.WithFields(logrus.Fields{
		"user_id": shift.UserID,
		"date":    shift.Date,
	}).Info("Creating shift assignment")

	if !shift.IsValid() {
		r.logger.WithFields(logrus.Fields{
			"user_id": shift.UserID,
			"date":    shift.Date,
		}).Warn("Invalid shift assignment data")
		return errors.New("invalid shift assignment: check date and start/end times")
	}

	// Month is derived from the date so range queries by pay period stay cheap.
	shift.Month = shift.Date[:7]

	result := r.db.Create(shift)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create shift assignment")
		return result.Error
	}

	return nil
}

func (r *GormShiftAssignmentRepository) DeleteByUserAndDate(userID uint, date string) (int64, error) {
	result := r.db.Where("user_id = ? AND date = ?", userID, date).Delete(&models.ShiftAssignment{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete shift assignments by date")
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// GetByUserAndMonth returns all assignments inside one pay period with a
// single range query instead of a per-date fetch loop.
func (r *GormShiftAssignmentRepository) GetByUserAndMonth(userID uint, month string) ([]models.ShiftAssignment, error) {
	var shifts []models.ShiftAssignment
	result := r.db.Where("user_id = ? AND month = ?", userID, month).
		Order("date ASC, shift_start ASC").
		Find(&shifts)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get shift assignments by month")
		return nil, result.Error
	}
	return shifts, nil
}

func (r *GormShiftAssignmentRepository) GetByUserAndDate(userID uint, date string) ([]models.ShiftAssignment, error) {
	var shifts []models.ShiftAssignment
	result := r.db.Where("user_id = ? AND date = ?", userID, date).
		Order("shift_start ASC").
		Find(&shifts)
	if result.Error != nil {
		return nil, result.Error
	}
	return shifts, nil
}

func (r *GormShiftAssignmentRepository) GetByMonth(month string) ([]models.ShiftAssignment, error) {
	var shifts []models.ShiftAssignment
	result := r.db.Where("month = ?", month).
		Order("user_id ASC, date ASC").
		Find(&shifts)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get shift assignments for month")
		return nil, result.Error
	}
	return shifts, nil
}
