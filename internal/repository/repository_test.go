package repository

import (
	"testing"
	"time"
	"workforce-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestGormUserRepository(t *testing.T) {
	repo, err := NewGormUserRepository(testDB(t))
	require.NoError(t, err)

	user := &models.User{ChatID: 100, FirstName: "John", LastName: "Doe", Role: models.RoleWorker, HourlyRate: 17.20}
	require.NoError(t, repo.Create(user))

	found, err := repo.GetByChatID(100)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "John", found.FirstName)

	// Unknown chat IDs come back as nil without an error.
	missing, err := repo.GetByChatID(999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	found.SetRole(models.Role(models.RoleAdmin))
	require.NoError(t, repo.Update(found))

	admins, err := repo.GetByRole(models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.True(t, admins[0].IsAdmin())
}

func TestGormShiftAssignmentRepository(t *testing.T) {
	db := testDB(t)
	repo, err := NewGormShiftAssignmentRepository(db)
	require.NoError(t, err)

	shifts := []*models.ShiftAssignment{
		{UserID: 7, Date: "2023-11-02", ShiftStart: "09:00", ShiftEnd: "17:00", Pay: 137.60, AssignedBy: "admin"},
		{UserID: 7, Date: "2023-11-20", ShiftStart: "10:00", ShiftEnd: "14:00", Pay: 68.80, AssignedBy: "admin"},
		{UserID: 7, Date: "2023-12-01", ShiftStart: "09:00", ShiftEnd: "17:00", Pay: 137.60, AssignedBy: "admin"},
		{UserID: 9, Date: "2023-11-02", ShiftStart: "09:00", ShiftEnd: "17:00", Pay: 137.60, AssignedBy: "admin"},
	}
	for _, s := range shifts {
		require.NoError(t, repo.Create(s))
	}

	// Month is derived from the date on create.
	assert.Equal(t, "2023-11", shifts[0].Month)

	november, err := repo.GetByUserAndMonth(7, "2023-11")
	require.NoError(t, err)
	assert.Len(t, november, 2)

	december, err := repo.GetByUserAndMonth(7, "2023-12")
	require.NoError(t, err)
	assert.Len(t, december, 1)

	allNovember, err := repo.GetByMonth("2023-11")
	require.NoError(t, err)
	assert.Len(t, allNovember, 3)

	removed, err := repo.DeleteByUserAndDate(7, "2023-11-02")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = repo.DeleteByUserAndDate(7, "2023-11-02")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestGormShiftAssignmentRepository_RejectsInvalid(t *testing.T) {
	repo, err := NewGormShiftAssignmentRepository(testDB(t))
	require.NoError(t, err)

	err = repo.Create(&models.ShiftAssignment{
		UserID: 7, Date: "2023-11-02", ShiftStart: "17:00", ShiftEnd: "09:00", AssignedBy: "admin",
	})
	assert.Error(t, err)
}

func TestGormDayOffRequestRepository(t *testing.T) {
	db := testDB(t)
	_, err := NewGormUserRepository(db)
	require.NoError(t, err)
	repo, err := NewGormDayOffRequestRepository(db)
	require.NoError(t, err)

	request := &models.DayOffRequest{UserID: 7, Date: "2023-11-10", Status: models.DayOffPending, RequestedAt: time.Now()}
	require.NoError(t, repo.Create(request))

	// The worker+date pair is unique.
	dup := &models.DayOffRequest{UserID: 7, Date: "2023-11-10", Status: models.DayOffPending, RequestedAt: time.Now()}
	assert.Error(t, repo.Create(dup))

	byMonth, err := repo.GetByUserAndMonth(7, "2023-11")
	require.NoError(t, err)
	assert.Len(t, byMonth, 1)

	require.NoError(t, repo.UpdateStatus(request.ID, models.DayOffApproved))

	updated, err := repo.GetByID(request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DayOffApproved, updated.Status)

	// Statuses outside the recognized set never reach storage.
	assert.Error(t, repo.UpdateStatus(request.ID, "bogus"))

	// Updating a missing request is an error, not a silent no-op.
	assert.Error(t, repo.UpdateStatus(9999, models.DayOffRejected))
}

func TestGormPayrollSnapshotRepository_Upsert(t *testing.T) {
	repo, err := NewGormPayrollSnapshotRepository(testDB(t))
	require.NoError(t, err)

	first := &models.PayrollSnapshot{UserID: 7, Month: "2023-11", TotalHours: 150, LastUpdated: time.Now(), Status: "submitted"}
	require.NoError(t, repo.Upsert(first))

	second := &models.PayrollSnapshot{UserID: 7, Month: "2023-11", TotalHours: 162.5, LastUpdated: time.Now(), Status: "submitted"}
	require.NoError(t, repo.Upsert(second))

	stored, err := repo.GetByUserAndMonth(7, "2023-11")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 162.5, stored.TotalHours)

	all, err := repo.GetByMonth("2023-11")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGormMaintenanceRequestRepository(t *testing.T) {
	repo, err := NewGormMaintenanceRequestRepository(testDB(t))
	require.NoError(t, err)

	request := &models.MaintenanceRequest{
		UserID:      7,
		Description: "Broken pallet jack",
		Location:    "Warehouse A",
		Urgency:     models.UrgencyHigh,
		Status:      models.MaintenancePending,
		Date:        "2023-11-02",
	}
	require.NoError(t, repo.Create(request))

	open, err := repo.GetByStatus(models.MaintenancePending)
	require.NoError(t, err)
	require.Len(t, open, 1)

	require.NoError(t, repo.UpdateStatus(request.ID, models.MaintenanceResolved))
	assert.Error(t, repo.UpdateStatus(request.ID, "lost"))

	resolved, err := repo.GetByStatus(models.MaintenanceResolved)
	require.NoError(t, err)
	assert.Len(t, resolved, 1)
}
