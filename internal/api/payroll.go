package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"workforce-bot/internal/models"
	"workforce-bot/pkg/calendar"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

type PayrollSource interface {
	PayrollFor(user *models.User, year, month int) (*models.PayrollSummary, error)
	SubmitHours(userID uint, month string, totalHours float64) (*models.PayrollSnapshot, error)
}

func GetPayroll(log *logrus.Logger, users UserGetter, payroll PayrollSource) http.HandlerFunc {
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
		year, monthNum, _ := calendar.ParseMonth(month)

		summary, err := payroll.PayrollFor(user, year, monthNum)
		if err != nil {
			log.WithError(err).Error("Failed to compute payroll")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, summary)
	}
}

type submitHoursPayload struct {
	Month string `json:"month"`
}

// SubmitHours totals the worker's scheduled hours for the month and writes
// the payroll snapshot.
func SubmitHours(log *logrus.Logger, users UserGetter, markers MarkerSource, payroll PayrollSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromRequest(w, r, log, users)
		if user == nil {
			return
		}

		var payload submitHoursPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		month := payload.Month
		if month == "" {
			http.Error(w, "month is required", http.StatusBadRequest)
			return
		}
		if _, _, err := calendar.ParseMonth(month); err != nil {
			http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
			return
		}

		hours, err := markers.ScheduledHours(user.ID, month)
		if err != nil {
			log.WithError(err).Error("Failed to compute scheduled hours")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		snapshot, err := payroll.SubmitHours(user.ID, month, hours)
		if err != nil {
			log.WithError(err).Error("Failed to save payroll snapshot")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, snapshot)
	}
}

type ReportSource interface {
	MonthlyPayrollWorkbook(year, month int) ([]byte, error)
}

func GeneratePayrollReport(log *logrus.Logger, report ReportSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, err := monthFromQuery(r)
		if err != nil {
			http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
			return
		}
		year, monthNum, _ := calendar.ParseMonth(month)

		workbook, err := report.MonthlyPayrollWorkbook(year, monthNum)
		if err != nil {
			log.WithError(err).Error("Failed to build payroll report")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payroll-%s.xlsx", month))
		w.Write(workbook)
	}
}
