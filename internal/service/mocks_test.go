package service

import (
	"workforce-bot/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockShiftAssignmentRepository struct {
	mock.Mock
}

func (m *MockShiftAssignmentRepository) Create(shift *models.ShiftAssignment) error {
	args := m.Called(shift)
	return args.Error(0)
}

func (m *MockShiftAssignmentRepository) DeleteByUserAndDate(userID uint, date string) (int64, error) {
	args := m.Called(userID, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShiftAssignmentRepository) GetByUserAndMonth(userID uint, month string) ([]models.ShiftAssignment, error) {
	args := m.Called(userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShiftAssignment), args.Error(1)
}

func (m *MockShiftAssignmentRepository) GetByUserAndDate(userID uint, date string) ([]models.ShiftAssignment, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShiftAssignment), args.Error(1)
}

func (m *MockShiftAssignmentRepository) GetByMonth(month string) ([]models.ShiftAssignment, error) {
	args := m.Called(month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShiftAssignment), args.Error(1)
}

type MockDayOffRequestRepository struct {
	mock.Mock
}

func (m *MockDayOffRequestRepository) Create(request *models.DayOffRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockDayOffRequestRepository) GetByID(id uint) (*models.DayOffRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DayOffRequest), args.Error(1)
}

func (m *MockDayOffRequestRepository) GetByUserAndDate(userID uint, date string) (*models.DayOffRequest, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DayOffRequest), args.Error(1)
}

func (m *MockDayOffRequestRepository) GetByUser(userID uint) ([]models.DayOffRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DayOffRequest), args.Error(1)
}

func (m *MockDayOffRequestRepository) GetByUserAndMonth(userID uint, month string) ([]models.DayOffRequest, error) {
	args := m.Called(userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DayOffRequest), args.Error(1)
}

func (m *MockDayOffRequestRepository) GetPending() ([]models.DayOffRequest, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DayOffRequest), args.Error(1)
}

func (m *MockDayOffRequestRepository) UpdateStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}

func (m *MockUserRepository) GetByChatID(chatID int64) (*models.User, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]*models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByRole(role string) ([]*models.User, error) {
	args := m.Called(role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

type MockPayrollSnapshotRepository struct {
	mock.Mock
}

func (m *MockPayrollSnapshotRepository) Upsert(snapshot *models.PayrollSnapshot) error {
	args := m.Called(snapshot)
	return args.Error(0)
}

func (m *MockPayrollSnapshotRepository) GetByUserAndMonth(userID uint, month string) (*models.PayrollSnapshot, error) {
	args := m.Called(userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PayrollSnapshot), args.Error(1)
}

func (m *MockPayrollSnapshotRepository) GetByMonth(month string) ([]models.PayrollSnapshot, error) {
	args := m.Called(month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PayrollSnapshot), args.Error(1)
}
