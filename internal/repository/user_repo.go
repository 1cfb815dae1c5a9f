package repository

import (
	"errors"
	"workforce-bot/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(chatID int64) error
	GetByChatID(chatID int64) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetAll() ([]*models.User, error)
	GetByRole(role string) ([]*models.User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) (*GormUserRepository, error) {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, err
	}
	return &GormUserRepository{db: db}, nil
}

func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *GormUserRepository) Delete(chatID int64) error {
	result := r.db.Where("chat_id = ?", chatID).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("user not found")
	}
	return nil
}

func (r *GormUserRepository) GetByChatID(chatID int64) (*models.User, error) {
	var user models.User
	result := r.db.Where("chat_id = ?", chatID).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *GormUserRepository) GetAll() ([]*models.User, error) {
	var users []*models.User
	err := r.db.Order("first_name ASC").Find(&users).Error
	return users, err
}

func (r *GormUserRepository) GetByRole(role string) ([]*models.User, error) {
	var users []*models.User
	err := r.db.Where("role = ?", role).Order("first_name ASC").Find(&users).Error
	return users, err
}
