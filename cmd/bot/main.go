package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"workforce-bot/internal/api"
	"workforce-bot/internal/config"
	"workforce-bot/internal/handler"
	"workforce-bot/internal/repository"
	"workforce-bot/internal/service"
	"workforce-bot/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.Info("Config initialized")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite limitation
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// Foreign key enforcement must be switched on per connection in SQLite.
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	userRepo, err := repository.NewGormUserRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create user repository")
	}

	shiftRepo, err := repository.NewGormShiftAssignmentRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create shift assignment repository")
	}

	dayOffRepo, err := repository.NewGormDayOffRequestRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create day-off request repository")
	}

	snapshotRepo, err := repository.NewGormPayrollSnapshotRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create payroll snapshot repository")
	}

	maintenanceRepo, err := repository.NewGormMaintenanceRequestRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create maintenance repository")
	}

	userService := service.NewUserService(userRepo, cfg.DefaultHourlyRate)
	scheduleService := service.NewScheduleService(shiftRepo, dayOffRepo)
	dayOffService := service.NewDayOffService(dayOffRepo, userRepo)
	payrollService := service.NewPayrollService(shiftRepo, snapshotRepo)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo)
	reportService := service.NewReportService(userRepo, payrollService)

	if err := userService.InitializeAdmin(cfg.BaseAdminChatID); err != nil {
		logrus.Infof("Warning: Failed to initialize admin: %v", err)
	} else if cfg.BaseAdminChatID != 0 {
		logrus.Infof("Admin initialized with chat ID: %d", cfg.BaseAdminChatID)
	}

	client, err := telegram.NewClient(cfg.TelegramToken, cfg.PollTimeout)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		userService,
		scheduleService,
		dayOffService,
		payrollService,
		maintenanceService,
		reportService,
		cfg,
	)

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	srv := &http.Server{
		Addr: cfg.HTTPAddress,
		Handler: api.Router(
			logrus.StandardLogger(),
			userService,
			scheduleService,
			dayOffService,
			payrollService,
			maintenanceService,
			reportService,
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	go func() {
		logrus.Infof("HTTP API listening on %s", cfg.HTTPAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("HTTP server stopped")
		}
	}()

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Infof("Error shutting down HTTP server: %v", err)
	}

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
