package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"workforce-bot/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMaintenanceManager struct {
	mock.Mock
}

func (m *MockMaintenanceManager) Submit(userID uint, description, location, urgency string) (*models.MaintenanceRequest, error) {
	args := m.Called(userID, description, location, urgency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceManager) ForUser(userID uint) ([]models.MaintenanceRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceManager) Open() ([]models.MaintenanceRequest, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaintenanceRequest), args.Error(1)
}

func maintenanceTestRouter(users UserGetter, maintenance MaintenanceManager) *chi.Mux {
	log := logrus.New()
	r := chi.NewRouter()
	r.Get("/api/maintenance/open/all", GetOpenMaintenanceRequests(log, maintenance))
	r.Get("/api/maintenance/{chatID}", GetMaintenanceRequests(log, users, maintenance))
	return r
}

func TestGetOpenMaintenanceRequests(t *testing.T) {
	maintenance := new(MockMaintenanceManager)
	maintenance.On("Open").Return([]models.MaintenanceRequest{
		{ID: 1, UserID: 7, Description: "Leaking pipe", Location: "Warehouse A", Urgency: "High", Status: "Pending"},
		{ID: 2, UserID: 9, Description: "Broken light", Location: "Office", Urgency: "Low", Status: "In Progress"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance/open/all", nil)
	rr := httptest.NewRecorder()
	maintenanceTestRouter(new(MockUserGetter), maintenance).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body []models.MaintenanceRequest
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "Leaking pipe", body[0].Description)
	maintenance.AssertExpectations(t)
}

func TestGetOpenMaintenanceRequests_Error(t *testing.T) {
	maintenance := new(MockMaintenanceManager)
	maintenance.On("Open").Return(nil, errors.New("db closed"))

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance/open/all", nil)
	rr := httptest.NewRecorder()
	maintenanceTestRouter(new(MockUserGetter), maintenance).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetMaintenanceRequests(t *testing.T) {
	users := new(MockUserGetter)
	maintenance := new(MockMaintenanceManager)

	users.On("GetUser", int64(100)).Return(&models.User{ID: 7, ChatID: 100}, nil)
	maintenance.On("ForUser", uint(7)).Return([]models.MaintenanceRequest{
		{ID: 1, UserID: 7, Description: "Leaking pipe", Status: "Pending"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/maintenance/100", nil)
	rr := httptest.NewRecorder()
	maintenanceTestRouter(users, maintenance).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body []models.MaintenanceRequest
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, uint(7), body[0].UserID)
}
