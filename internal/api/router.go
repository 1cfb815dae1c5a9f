package api

import (
	"net/http"
	"workforce-bot/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// Router wires the HTTP surface used by mobile/web clients. The bot and the
// API share the same service layer.
func Router(
	log *logrus.Logger,
	users *service.UserService,
	schedule *service.ScheduleService,
	dayOff *service.DayOffService,
	payroll *service.PayrollService,
	maintenance *service.MaintenanceService,
	report *service.ReportService,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/api/schedule/{chatID}", GetMonthMarkers(log, users, schedule))
	router.Get("/api/schedule/{chatID}/hours", GetScheduledHours(log, users, schedule))
	router.Get("/api/schedule/{chatID}/day", GetDayShifts(log, users, schedule))

	router.Post("/api/dayoff/{chatID}", CreateDayOffRequest(log, users, dayOff))
	router.Get("/api/dayoff/{chatID}", GetDayOffRequests(log, users, dayOff))
	router.Get("/api/dayoff/pending/all", GetPendingDayOffRequests(log, dayOff))
	router.Post("/api/dayoff/decision", DecideDayOffRequest(log, users, dayOff))

	router.Get("/api/payroll/{chatID}", GetPayroll(log, users, payroll))
	router.Post("/api/payroll/{chatID}/submit", SubmitHours(log, users, schedule, payroll))

	router.Get("/api/maintenance/open/all", GetOpenMaintenanceRequests(log, maintenance))
	router.Get("/api/maintenance/{chatID}", GetMaintenanceRequests(log, users, maintenance))
	router.Post("/api/maintenance/{chatID}", CreateMaintenanceRequest(log, users, maintenance))

	router.Get("/api/report/excel", GeneratePayrollReport(log, report))

	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return router
}
