package repository

import (
	"errors"
	"time"
	"workforce-bot/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PayrollSnapshotRepository interface {
	Upsert(snapshot *models.PayrollSnapshot) error
	GetByUserAndMonth(userID uint, month string) (*models.PayrollSnapshot, error)
	GetByMonth(month string) ([]models.PayrollSnapshot, error)
}

type GormPayrollSnapshotRepository struct {
	db *gorm.DB
}

func NewGormPayrollSnapshotRepository(db *gorm.DB) (*GormPayrollSnapshotRepository, error) {
	if err := db.AutoMigrate(&models.PayrollSnapshot{}); err != nil {
		return nil, err
	}
	return &GormPayrollSnapshotRepository{db: db}, nil
}

// Upsert writes the snapshot for (user, month), replacing any earlier
// submission for the same period.
func (r *GormPayrollSnapshotRepository) Upsert(snapshot *models.PayrollSnapshot) error {
	if snapshot.UserID == 0 || snapshot.Month == "" {
		return errors.New("invalid payroll snapshot")
	}
	if snapshot.LastUpdated.IsZero() {
		snapshot.LastUpdated = time.Now()
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_hours", "last_updated", "status"}),
	}).Create(snapshot).Error
}

func (r *GormPayrollSnapshotRepository) GetByUserAndMonth(userID uint, month string) (*models.PayrollSnapshot, error) {
	var snapshot models.PayrollSnapshot
	err := r.db.Where("user_id = ? AND month = ?", userID, month).First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *GormPayrollSnapshotRepository) GetByMonth(month string) ([]models.PayrollSnapshot, error) {
	var snapshots []models.PayrollSnapshot
	err := r.db.Preload("User").
		Where("month = ?", month).
		Order("user_id ASC").
		Find(&snapshots).Error
	return snapshots, err
}
