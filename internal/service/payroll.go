package service

import (
	"fmt"
	"math"
	"sort"
	"time"
	"workforce-bot/internal/models"
	"workforce-bot/internal/repository"
	"workforce-bot/pkg/calendar"

	"github.com/sirupsen/logrus"
)

// Statutory-style deduction rates. Deliberately literal constants, not an
// imported tax table.
const (
	CPPRate       = 0.0595
	EIRate        = 0.0166
	IncomeTaxRate = 0.10
)

// Workers are paid on the 5th of the pay-period month.
const paymentDayOfMonth = 5

type PayrollService struct {
	shiftRepo    repository.ShiftAssignmentRepository
	snapshotRepo repository.PayrollSnapshotRepository
	logger       *logrus.Logger
	now          func() time.Time
}

func NewPayrollService(
	shiftRepo repository.ShiftAssignmentRepository,
	snapshotRepo repository.PayrollSnapshotRepository,
) *PayrollService {
	return &PayrollService{
		shiftRepo:    shiftRepo,
		snapshotRepo: snapshotRepo,
		logger:       logrus.New(),
		now:          time.Now,
	}
}

// round2 rounds to two decimal places, half up.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// deductions applies the three rates to a gross amount already rounded to
// cents. Each deduction is rounded to cents first and net pay is derived
// from the rounded figures, so net == gross - cpp - ei - tax holds exactly
// on the displayed amounts.
func deductions(gross float64) (cpp, ei, incomeTax, net float64) {
	cpp = round2(gross * CPPRate)
	ei = round2(gross * EIRate)
	incomeTax = round2(gross * IncomeTaxRate)
	net = round2(gross - cpp - ei - incomeTax)
	return cpp, ei, incomeTax, net
}

// Calculate converts hours worked and an hourly rate into the payroll
// breakdown. Negative inputs are clamped to zero.
func Calculate(hoursWorked, hourlyRate float64) models.PayrollSummary {
	if hoursWorked < 0 {
		hoursWorked = 0
	}
	if hourlyRate < 0 {
		hourlyRate = 0
	}

	gross := round2(hoursWorked * hourlyRate)
	cpp, ei, incomeTax, net := deductions(gross)

	return models.PayrollSummary{
		HoursWorked: hoursWorked,
		HourlyRate:  hourlyRate,
		GrossSalary: gross,
		CPP:         cpp,
		EI:          ei,
		IncomeTax:   incomeTax,
		NetSalary:   net,
	}
}

// PaymentDate returns the fixed payment date for a pay period.
func PaymentDate(year, month int) time.Time {
	return time.Date(year, time.Month(month), paymentDayOfMonth, 0, 0, 0, 0, time.Local)
}

// paymentStatus compares wall-clock time against the period's payment date.
// Two calls on either side of the date yield different results for the same
// inputs; the status is not stored anywhere.
func paymentStatus(now, paymentDate time.Time) string {
	if now.Before(paymentDate) {
		return models.PaymentPending
	}
	return models.PaymentPaid
}

// WeeklyEarnings buckets per-shift pay into week-of-month buckets, sorted
// numerically by week number.
func WeeklyEarnings(shifts []models.ShiftAssignment) []models.WeeklyEarning {
	byWeek := make(map[int]float64)
	for _, shift := range shifts {
		date, err := calendar.ParseDate(shift.Date)
		if err != nil {
			continue
		}
		byWeek[calendar.WeekOfMonth(date)] += shift.Pay
	}

	weeks := make([]int, 0, len(byWeek))
	for week := range byWeek {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	earnings := make([]models.WeeklyEarning, 0, len(weeks))
	for _, week := range weeks {
		earnings = append(earnings, models.WeeklyEarning{
			Week:   fmt.Sprintf("Week %d", week),
			Amount: byWeek[week],
		})
	}
	return earnings
}

// summarize builds the payroll breakdown for one worker's shifts: total
// hours from shift times, gross from per-shift pay, effective hourly rate,
// deductions, weekly buckets, and the payment status as of now.
func (s *PayrollService) summarize(shifts []models.ShiftAssignment, year, month int) *models.PayrollSummary {
	var totalHours, totalPay float64
	for i := range shifts {
		totalHours += shifts[i].Hours()
		totalPay += shifts[i].Pay
	}

	var rate float64
	if totalHours > 0 {
		rate = totalPay / totalHours
	}

	gross := round2(totalPay)
	cpp, ei, incomeTax, net := deductions(gross)

	paymentDate := PaymentDate(year, month)

	return &models.PayrollSummary{
		HoursWorked:    totalHours,
		HourlyRate:     rate,
		GrossSalary:    gross,
		CPP:            cpp,
		EI:             ei,
		IncomeTax:      incomeTax,
		NetSalary:      net,
		PaymentDate:    paymentDate,
		PaymentStatus:  paymentStatus(s.now(), paymentDate),
		WeeklyEarnings: WeeklyEarnings(shifts),
		Jobs:           shifts,
	}
}

// MonthlyPayroll builds the full payroll summary for a worker's month from
// the persisted shift assignments.
func (s *PayrollService) MonthlyPayroll(userID uint, year, month int) (*models.PayrollSummary, error) {
	monthKey := calendar.MonthKey(year, month)
	shifts, err := s.shiftRepo.GetByUserAndMonth(userID, monthKey)
	if err != nil {
		return nil, fmt.Errorf("fetch shifts for payroll %s: %w", monthKey, err)
	}

	summary := s.summarize(shifts, year, month)

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"month":   monthKey,
		"hours":   summary.HoursWorked,
		"gross":   summary.GrossSalary,
	}).Debug("Monthly payroll computed")

	return summary, nil
}

// PayrollFor is the payroll entry point for the bot and the API. Months with
// shift assignments are computed from them; when a month has none but the
// worker submitted hours, the breakdown falls back to those hours at the
// worker's profile rate.
func (s *PayrollService) PayrollFor(user *models.User, year, month int) (*models.PayrollSummary, error) {
	summary, err := s.MonthlyPayroll(user.ID, year, month)
	if err != nil {
		return nil, err
	}
	if len(summary.Jobs) > 0 {
		return summary, nil
	}

	snapshot, err := s.Snapshot(user.ID, calendar.MonthKey(year, month))
	if err != nil {
		return nil, fmt.Errorf("fetch payroll snapshot: %w", err)
	}
	if snapshot == nil {
		return summary, nil
	}

	rated := s.RatePayroll(snapshot.TotalHours, user.HourlyRate, year, month)
	return &rated, nil
}

// MonthPayrolls computes summaries for every worker with shifts in the
// month, from a single range query.
func (s *PayrollService) MonthPayrolls(year, month int) (map[uint]*models.PayrollSummary, error) {
	monthKey := calendar.MonthKey(year, month)
	shifts, err := s.shiftRepo.GetByMonth(monthKey)
	if err != nil {
		return nil, fmt.Errorf("fetch shifts for %s: %w", monthKey, err)
	}

	byUser := make(map[uint][]models.ShiftAssignment)
	for _, shift := range shifts {
		byUser[shift.UserID] = append(byUser[shift.UserID], shift)
	}

	summaries := make(map[uint]*models.PayrollSummary, len(byUser))
	for userID, userShifts := range byUser {
		summaries[userID] = s.summarize(userShifts, year, month)
	}
	return summaries, nil
}

// SnapshotsForMonth returns submitted hours per user for a month.
func (s *PayrollService) SnapshotsForMonth(month string) (map[uint]float64, error) {
	snapshots, err := s.snapshotRepo.GetByMonth(month)
	if err != nil {
		return nil, fmt.Errorf("fetch payroll snapshots for %s: %w", month, err)
	}

	hours := make(map[uint]float64, len(snapshots))
	for _, snapshot := range snapshots {
		hours[snapshot.UserID] = snapshot.TotalHours
	}
	return hours, nil
}

// RatePayroll is the rate-based variant: hours submitted by the worker times
// their profile hourly rate, with the period's payment date attached.
func (s *PayrollService) RatePayroll(hoursWorked, hourlyRate float64, year, month int) models.PayrollSummary {
	summary := Calculate(hoursWorked, hourlyRate)
	summary.PaymentDate = PaymentDate(year, month)
	summary.PaymentStatus = paymentStatus(s.now(), summary.PaymentDate)
	return summary
}

// SubmitHours persists a payroll snapshot for the month. Resubmitting
// overwrites the previous snapshot for the same period.
func (s *PayrollService) SubmitHours(userID uint, month string, totalHours float64) (*models.PayrollSnapshot, error) {
	if _, _, err := calendar.ParseMonth(month); err != nil {
		return nil, err
	}
	if totalHours < 0 {
		return nil, fmt.Errorf("total hours must not be negative, got %.2f", totalHours)
	}

	snapshot := &models.PayrollSnapshot{
		UserID:      userID,
		Month:       month,
		TotalHours:  totalHours,
		LastUpdated: s.now(),
		Status:      "submitted",
	}
	if err := s.snapshotRepo.Upsert(snapshot); err != nil {
		s.logger.WithError(err).Error("Failed to save payroll snapshot")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"month":   month,
		"hours":   totalHours,
	}).Info("Payroll snapshot saved")

	return snapshot, nil
}

// Snapshot returns the submitted snapshot for a month, or nil when the
// worker has not submitted hours yet.
func (s *PayrollService) Snapshot(userID uint, month string) (*models.PayrollSnapshot, error) {
	return s.snapshotRepo.GetByUserAndMonth(userID, month)
}
