package api

import (
	"encoding/json"
	"net/http"
	"workforce-bot/internal/models"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

type MaintenanceManager interface {
	Submit(userID uint, description, location, urgency string) (*models.MaintenanceRequest, error)
	ForUser(userID uint) ([]models.MaintenanceRequest, error)
	Open() ([]models.MaintenanceRequest, error)
}

type createMaintenancePayload struct {
	Description string `json:"description"`
	Location    string `json:"location"`
	Urgency     string `json:"urgency"`
}

func CreateMaintenanceRequest(log *logrus.Logger, users UserGetter, maintenance MaintenanceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromRequest(w, r, log, users)
		if user == nil {
			return
		}

		var payload createMaintenancePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		request, err := maintenance.Submit(user.ID, payload.Description, payload.Location, payload.Urgency)
		if err != nil {
			log.WithError(err).Warn("Maintenance request rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, request)
	}
}

// GetOpenMaintenanceRequests lists unresolved requests across all workers.
func GetOpenMaintenanceRequests(log *logrus.Logger, maintenance MaintenanceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := maintenance.Open()
		if err != nil {
			log.WithError(err).Error("Failed to load open maintenance requests")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, requests)
	}
}

func GetMaintenanceRequests(log *logrus.Logger, users UserGetter, maintenance MaintenanceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromRequest(w, r, log, users)
		if user == nil {
			return
		}

		requests, err := maintenance.ForUser(user.ID)
		if err != nil {
			log.WithError(err).Error("Failed to load maintenance requests")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, requests)
	}
}
