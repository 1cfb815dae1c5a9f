package api

import (
	"encoding/json"
	"net/http"
	"workforce-bot/internal/models"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

type DayOffManager interface {
	Request(userID uint, date string) (*models.DayOffRequest, error)
	Decide(adminChatID int64, userID uint, date, status string) (*models.DayOffRequest, error)
	Pending() ([]models.DayOffRequest, error)
	ForUser(userID uint) ([]models.DayOffRequest, error)
}

type createDayOffPayload struct {
	Date string `json:"date"`
}

func CreateDayOffRequest(log *logrus.Logger, users UserGetter, dayOff DayOffManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromRequest(w, r, log, users)
		if user == nil {
			return
		}

		var payload createDayOffPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if payload.Date == "" {
			http.Error(w, "date is required", http.StatusBadRequest)
			return
		}

		request, err := dayOff.Request(user.ID, payload.Date)
		if err != nil {
			log.WithError(err).Warn("Day-off request rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, request)
	}
}

func GetDayOffRequests(log *logrus.Logger, users UserGetter, dayOff DayOffManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromRequest(w, r, log, users)
		if user == nil {
			return
		}

		requests, err := dayOff.ForUser(user.ID)
		if err != nil {
			log.WithError(err).Error("Failed to load day-off requests")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, requests)
	}
}

func GetPendingDayOffRequests(log *logrus.Logger, dayOff DayOffManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := dayOff.Pending()
		if err != nil {
			log.WithError(err).Error("Failed to load pending day-off requests")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, requests)
	}
}

type decideDayOffPayload struct {
	AdminChatID int64  `json:"admin_chat_id"`
	ChatID      int64  `json:"chat_id"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

func DecideDayOffRequest(log *logrus.Logger, users UserGetter, dayOff DayOffManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload decideDayOffPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		target, err := users.GetUser(payload.ChatID)
		if err != nil {
			log.WithError(err).Error("Failed to load target user")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if target == nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		request, err := dayOff.Decide(payload.AdminChatID, target.ID, payload.Date, payload.Status)
		if err != nil {
			log.WithError(err).Warn("Day-off decision rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		render.JSON(w, r, request)
	}
}
