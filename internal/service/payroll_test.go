package service

import (
	"testing"
	"time"
	"workforce-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	summary := Calculate(160, 17.20)

	assert.Equal(t, 2752.00, summary.GrossSalary)
	assert.Equal(t, 163.74, summary.CPP)
	assert.Equal(t, 45.68, summary.EI)
	assert.Equal(t, 275.20, summary.IncomeTax)
	assert.Equal(t, 2267.38, summary.NetSalary)
}

func TestCalculate_NetIdentity(t *testing.T) {
	cases := []struct {
		hours float64
		rate  float64
	}{
		{160, 17.20},
		{37.5, 22.15},
		{1, 0.01},
		{173.33, 31.70},
	}

	for _, tc := range cases {
		summary := Calculate(tc.hours, tc.rate)
		assert.InDelta(t, summary.GrossSalary-summary.CPP-summary.EI-summary.IncomeTax, summary.NetSalary, 1e-9)
	}
}

func TestCalculate_ZeroHours(t *testing.T) {
	summary := Calculate(0, 17.20)

	assert.Zero(t, summary.GrossSalary)
	assert.Zero(t, summary.CPP)
	assert.Zero(t, summary.EI)
	assert.Zero(t, summary.IncomeTax)
	assert.Zero(t, summary.NetSalary)
}

func TestCalculate_NegativeInputsClampToZero(t *testing.T) {
	summary := Calculate(-10, 17.20)
	assert.Zero(t, summary.GrossSalary)
	assert.Zero(t, summary.HoursWorked)

	summary = Calculate(40, -5)
	assert.Zero(t, summary.GrossSalary)
	assert.Zero(t, summary.HourlyRate)
}

func TestPaymentDate(t *testing.T) {
	date := PaymentDate(2023, 11)
	assert.Equal(t, 2023, date.Year())
	assert.Equal(t, time.November, date.Month())
	assert.Equal(t, 5, date.Day())
}

func TestPaymentStatus(t *testing.T) {
	paymentDate := PaymentDate(2023, 11)

	assert.Equal(t, models.PaymentPending, paymentStatus(time.Date(2023, 11, 4, 23, 59, 0, 0, time.Local), paymentDate))
	assert.Equal(t, models.PaymentPaid, paymentStatus(time.Date(2023, 11, 5, 0, 0, 0, 0, time.Local), paymentDate))
	assert.Equal(t, models.PaymentPaid, paymentStatus(time.Date(2023, 11, 20, 0, 0, 0, 0, time.Local), paymentDate))
}

func TestWeeklyEarnings(t *testing.T) {
	// November 2023 starts on a Wednesday: the 1st-4th are week 1, the
	// 5th (Sunday) opens week 2.
	shifts := []models.ShiftAssignment{
		{Date: "2023-11-01", Pay: 100},
		{Date: "2023-11-03", Pay: 50},
		{Date: "2023-11-05", Pay: 75},
		{Date: "2023-11-30", Pay: 200},
	}

	earnings := WeeklyEarnings(shifts)

	require.Len(t, earnings, 3)
	assert.Equal(t, models.WeeklyEarning{Week: "Week 1", Amount: 150}, earnings[0])
	assert.Equal(t, models.WeeklyEarning{Week: "Week 2", Amount: 75}, earnings[1])
	assert.Equal(t, models.WeeklyEarning{Week: "Week 5", Amount: 200}, earnings[2])
}

func TestWeeklyEarnings_SkipsMalformedDates(t *testing.T) {
	earnings := WeeklyEarnings([]models.ShiftAssignment{
		{Date: "garbage", Pay: 100},
	})
	assert.Empty(t, earnings)
}

func TestPayrollService_MonthlyPayroll(t *testing.T) {
	shiftRepo := new(MockShiftAssignmentRepository)
	snapshotRepo := new(MockPayrollSnapshotRepository)

	shiftRepo.On("GetByUserAndMonth", uint(7), "2023-11").Return([]models.ShiftAssignment{
		{UserID: 7, Date: "2023-11-02", ShiftStart: "09:00", ShiftEnd: "17:00", Pay: 137.60, Location: "Warehouse A"},
		{UserID: 7, Date: "2023-11-06", ShiftStart: "09:00", ShiftEnd: "17:00", Pay: 137.60, Location: "Warehouse A"},
	}, nil)

	svc := NewPayrollService(shiftRepo, snapshotRepo)
	svc.now = func() time.Time { return time.Date(2023, 11, 10, 12, 0, 0, 0, time.Local) }

	summary, err := svc.MonthlyPayroll(7, 2023, 11)

	require.NoError(t, err)
	assert.InDelta(t, 16.0, summary.HoursWorked, 1e-9)
	assert.Equal(t, 275.20, summary.GrossSalary)
	assert.InDelta(t, 17.20, summary.HourlyRate, 1e-9)
	assert.Equal(t, models.PaymentPaid, summary.PaymentStatus)
	assert.Len(t, summary.Jobs, 2)
	require.Len(t, summary.WeeklyEarnings, 2)
	assert.Equal(t, "Week 1", summary.WeeklyEarnings[0].Week)
	assert.Equal(t, "Week 2", summary.WeeklyEarnings[1].Week)

	// Deductions derive from the gross and the net matches the rounded
	// figures exactly.
	assert.Equal(t, 16.37, summary.CPP)
	assert.Equal(t, 4.57, summary.EI)
	assert.Equal(t, 27.52, summary.IncomeTax)
	assert.Equal(t, 226.74, summary.NetSalary)
	assert.InDelta(t, summary.GrossSalary-summary.TotalDeductions(), summary.NetSalary, 1e-9)
}

func TestPayrollService_MonthlyPayroll_NoShifts(t *testing.T) {
	shiftRepo := new(MockShiftAssignmentRepository)
	snapshotRepo := new(MockPayrollSnapshotRepository)

	shiftRepo.On("GetByUserAndMonth", uint(7), "2023-11").Return([]models.ShiftAssignment{}, nil)

	svc := NewPayrollService(shiftRepo, snapshotRepo)
	svc.now = func() time.Time { return time.Date(2023, 11, 1, 0, 0, 0, 0, time.Local) }

	summary, err := svc.MonthlyPayroll(7, 2023, 11)

	require.NoError(t, err)
	assert.Zero(t, summary.HoursWorked)
	assert.Zero(t, summary.GrossSalary)
	assert.Zero(t, summary.HourlyRate)
	assert.Equal(t, models.PaymentPending, summary.PaymentStatus)
	assert.Empty(t, summary.WeeklyEarnings)
}

func TestPayrollService_RatePayroll(t *testing.T) {
	svc := NewPayrollService(new(MockShiftAssignmentRepository), new(MockPayrollSnapshotRepository))
	svc.now = func() time.Time { return time.Date(2023, 11, 4, 0, 0, 0, 0, time.Local) }

	summary := svc.RatePayroll(160, 17.20, 2023, 11)

	assert.Equal(t, 2752.00, summary.GrossSalary)
	assert.Equal(t, 2267.38, summary.NetSalary)
	assert.Equal(t, models.PaymentPending, summary.PaymentStatus)
	assert.Equal(t, 5, summary.PaymentDate.Day())
}

func TestPayrollService_SubmitHours(t *testing.T) {
	snapshotRepo := new(MockPayrollSnapshotRepository)
	snapshotRepo.On("Upsert", mock.AnythingOfType("*models.PayrollSnapshot")).Return(nil)

	svc := NewPayrollService(new(MockShiftAssignmentRepository), snapshotRepo)

	snapshot, err := svc.SubmitHours(7, "2023-11", 152.5)

	require.NoError(t, err)
	assert.Equal(t, uint(7), snapshot.UserID)
	assert.Equal(t, "2023-11", snapshot.Month)
	assert.Equal(t, 152.5, snapshot.TotalHours)
	assert.Equal(t, "submitted", snapshot.Status)
	snapshotRepo.AssertExpectations(t)
}

func TestPayrollService_SubmitHours_Invalid(t *testing.T) {
	snapshotRepo := new(MockPayrollSnapshotRepository)
	svc := NewPayrollService(new(MockShiftAssignmentRepository), snapshotRepo)

	_, err := svc.SubmitHours(7, "november", 10)
	assert.Error(t, err)

	_, err = svc.SubmitHours(7, "2023-11", -1)
	assert.Error(t, err)

	snapshotRepo.AssertNotCalled(t, "Upsert")
}

func TestPayrollService_PayrollFor_UsesShifts(t *testing.T) {
	shiftRepo := new(MockShiftAssignmentRepository)
	snapshotRepo := new(MockPayrollSnapshotRepository)

	shiftRepo.On("GetByUserAndMonth", uint(7), "2023-11").Return([]models.ShiftAssignment{
		{UserID: 7, Date: "2023-11-02", ShiftStart: "09:00", ShiftEnd: "17:00", Pay: 137.60},
	}, nil)

	svc := NewPayrollService(shiftRepo, snapshotRepo)
	svc.now = func() time.Time { return time.Date(2023, 11, 1, 0, 0, 0, 0, time.Local) }

	user := &models.User{ID: 7, ChatID: 100, HourlyRate: 17.20}
	summary, err := svc.PayrollFor(user, 2023, 11)

	require.NoError(t, err)
	assert.Equal(t, 137.60, summary.GrossSalary)
	assert.Len(t, summary.Jobs, 1)
	snapshotRepo.AssertNotCalled(t, "GetByUserAndMonth")
}

func TestPayrollService_PayrollFor_SnapshotFallback(t *testing.T) {
	shiftRepo := new(MockShiftAssignmentRepository)
	snapshotRepo := new(MockPayrollSnapshotRepository)

	shiftRepo.On("GetByUserAndMonth", uint(7), "2023-11").Return([]models.ShiftAssignment{}, nil)
	snapshotRepo.On("GetByUserAndMonth", uint(7), "2023-11").Return(&models.PayrollSnapshot{
		UserID:     7,
		Month:      "2023-11",
		TotalHours: 152.5,
	}, nil)

	svc := NewPayrollService(shiftRepo, snapshotRepo)
	svc.now = func() time.Time { return time.Date(2023, 11, 1, 0, 0, 0, 0, time.Local) }

	user := &models.User{ID: 7, ChatID: 100, HourlyRate: 17.20}
	summary, err := svc.PayrollFor(user, 2023, 11)

	require.NoError(t, err)
	assert.InDelta(t, 152.5, summary.HoursWorked, 1e-9)
	assert.Equal(t, 2623.00, summary.GrossSalary)
	assert.Equal(t, 156.07, summary.CPP)
	assert.Equal(t, 43.54, summary.EI)
	assert.Equal(t, 262.30, summary.IncomeTax)
	assert.Equal(t, 2161.09, summary.NetSalary)
	assert.Equal(t, 5, summary.PaymentDate.Day())
}

func TestPayrollService_PayrollFor_NoShiftsNoSnapshot(t *testing.T) {
	shiftRepo := new(MockShiftAssignmentRepository)
	snapshotRepo := new(MockPayrollSnapshotRepository)

	shiftRepo.On("GetByUserAndMonth", uint(7), "2023-11").Return([]models.ShiftAssignment{}, nil)
	snapshotRepo.On("GetByUserAndMonth", uint(7), "2023-11").Return(nil, nil)

	svc := NewPayrollService(shiftRepo, snapshotRepo)
	svc.now = func() time.Time { return time.Date(2023, 11, 1, 0, 0, 0, 0, time.Local) }

	user := &models.User{ID: 7, ChatID: 100, HourlyRate: 17.20}
	summary, err := svc.PayrollFor(user, 2023, 11)

	require.NoError(t, err)
	assert.Zero(t, summary.HoursWorked)
	assert.Zero(t, summary.GrossSalary)
	assert.Empty(t, summary.Jobs)
}

func TestPayrollService_MonthPayrolls(t *testing.T) {
	shiftRepo := new(MockShiftAssignmentRepository)
	snapshotRepo := new(MockPayrollSnapshotRepository)

	shiftRepo.On("GetByMonth", "2023-11").Return([]models.ShiftAssignment{
		{UserID: 1, Date: "2023-11-02", ShiftStart: "09:00", ShiftEnd: "17:00", Pay: 137.60},
		{UserID: 2, Date: "2023-11-02", ShiftStart: "10:00", ShiftEnd: "14:00", Pay: 68.80},
		{UserID: 1, Date: "2023-11-06", ShiftStart: "09:00", ShiftEnd: "17:00", Pay: 137.60},
	}, nil)

	svc := NewPayrollService(shiftRepo, snapshotRepo)
	svc.now = func() time.Time { return time.Date(2023, 11, 1, 0, 0, 0, 0, time.Local) }

	summaries, err := svc.MonthPayrolls(2023, 11)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.InDelta(t, 16.0, summaries[1].HoursWorked, 1e-9)
	assert.Equal(t, 275.20, summaries[1].GrossSalary)
	assert.InDelta(t, 4.0, summaries[2].HoursWorked, 1e-9)
	assert.Equal(t, 68.80, summaries[2].GrossSalary)
}

func TestPayrollService_SnapshotsForMonth(t *testing.T) {
	shiftRepo := new(MockShiftAssignmentRepository)
	snapshotRepo := new(MockPayrollSnapshotRepository)

	snapshotRepo.On("GetByMonth", "2023-11").Return([]models.PayrollSnapshot{
		{UserID: 1, Month: "2023-11", TotalHours: 152.5},
		{UserID: 3, Month: "2023-11", TotalHours: 80},
	}, nil)

	svc := NewPayrollService(shiftRepo, snapshotRepo)
	hours, err := svc.SnapshotsForMonth("2023-11")

	require.NoError(t, err)
	assert.Equal(t, map[uint]float64{1: 152.5, 3: 80}, hours)
}
