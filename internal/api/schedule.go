package api

import (
	"net/http"
	"strconv"
	"time"
	"workforce-bot/internal/models"
	"workforce-bot/pkg/calendar"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

type UserGetter interface {
	GetUser(chatID int64) (*models.User, error)
}

type MarkerSource interface {
	MonthMarkers(userID uint, month string) (map[string]models.CalendarMarker, error)
	ScheduledHours(userID uint, month string) (float64, error)
	ShiftsForDate(userID uint, date string) ([]models.ShiftAssignment, error)
}

// userFromRequest resolves the {chatID} path parameter to a profile, writing
// the error response itself when resolution fails.
func userFromRequest(w http.ResponseWriter, r *http.Request, log *logrus.Logger, users UserGetter) *models.User {
	chatID, err := strconv.ParseInt(chi.URLParam(r, "chatID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid chat ID", http.StatusBadRequest)
		return nil
	}

	user, err := users.GetUser(chatID)
	if err != nil {
		log.WithError(err).Error("Failed to load user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return nil
	}
	if user == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return nil
	}
	return user
}

// monthFromQuery reads ?month=YYYY-MM, defaulting to the current month.
func monthFromQuery(r *http.Request) (string, error) {
	month := r.URL.Query().Get("month")
	if month == "" {
		now := time.Now()
		return calendar.MonthKey(now.Year(), int(now.Month())), nil
	}
	if _, _, err := calendar.ParseMonth(month); err != nil {
		return "", err
	}
	return month, nil
}

func GetMonthMarkers(log *logrus.Logger, users UserGetter, markers MarkerSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromRequest(w, r, log, users)
		if user == nil {
			return
		}

		month, err := monthFromQuery(r)
		if err != nil {
			http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
			return
		}

		markedDates, err := markers.MonthMarkers(user.ID, month)
		if err != nil {
			log.WithError(err).Error("Failed to build month markers")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"month":        month,
			"marked_dates": markedDates,
		})
	}
}

// GetDayShifts returns a worker's shifts for a single date, for day-detail
// views on the calendar.
func GetDayShifts(log *logrus.Logger, users UserGetter, markers MarkerSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromRequest(w, r, log, users)
		if user == nil {
			return
		}

		date := r.URL.Query().Get("date")
		if _, err := calendar.ParseDate(date); err != nil {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		shifts, err := markers.ShiftsForDate(user.ID, date)
		if err != nil {
			log.WithError(err).Error("Failed to load day shifts")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"date": date,
			"jobs": shifts,
		})
	}
}

func GetScheduledHours(log *logrus.Logger, users UserGetter, markers MarkerSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromRequest(w, r, log, users)
		if user == nil {
			return
		}

		month, err := monthFromQuery(r)
		if err != nil {
			http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
			return
		}

		hours, err := markers.ScheduledHours(user.ID, month)
		if err != nil {
			log.WithError(err).Error("Failed to compute scheduled hours")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"month":       month,
			"total_hours": hours,
		})
	}
}
