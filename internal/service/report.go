package service

import (
	"fmt"
	"sort"
	"workforce-bot/internal/models"
	"workforce-bot/internal/repository"
	"workforce-bot/pkg/calendar"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ReportService builds the monthly payroll workbook for all workers.
type ReportService struct {
	userRepo repository.UserRepository
	payroll  *PayrollService
	logger   *logrus.Logger
}

func NewReportService(userRepo repository.UserRepository, payroll *PayrollService) *ReportService {
	return &ReportService{
		userRepo: userRepo,
		payroll:  payroll,
		logger:   logrus.New(),
	}
}

type payrollRow struct {
	user           *models.User
	summary        *models.PayrollSummary
	submittedHours float64
}

// MonthlyPayrollWorkbook renders one row per registered worker: the month's
// shifts and snapshots each come from a single range query, so the workbook
// costs two reads regardless of headcount.
func (s *ReportService) MonthlyPayrollWorkbook(year, month int) ([]byte, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("fetch workers: %w", err)
	}

	summaries, err := s.payroll.MonthPayrolls(year, month)
	if err != nil {
		s.logger.WithError(err).Error("Failed to aggregate payroll report")
		return nil, err
	}

	submitted, err := s.payroll.SnapshotsForMonth(calendar.MonthKey(year, month))
	if err != nil {
		s.logger.WithError(err).Error("Failed to load submitted hours")
		return nil, err
	}

	rows := make([]payrollRow, 0, len(users))
	for _, user := range users {
		summary := summaries[user.ID]
		if summary == nil {
			summary = s.payroll.summarize(nil, year, month)
		}
		rows = append(rows, payrollRow{
			user:           user,
			summary:        summary,
			submittedHours: submitted[user.ID],
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].user.FullName() < rows[j].user.FullName()
	})

	return renderWorkbook(calendar.MonthKey(year, month), rows)
}

func renderWorkbook(month string, rows []payrollRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payroll " + month
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{
		"Worker", "Chat ID", "Hours", "Submitted Hours", "Rate", "Gross",
		"CPP (5.95%)", "EI (1.66%)", "Income Tax (10%)", "Net", "Payment Status",
	}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, row := range rows {
		rowNum := rowIdx + 2
		values := []interface{}{
			row.user.FullName(),
			row.user.ChatID,
			row.summary.HoursWorked,
			row.submittedHours,
			row.summary.HourlyRate,
			row.summary.GrossSalary,
			row.summary.CPP,
			row.summary.EI,
			row.summary.IncomeTax,
			row.summary.NetSalary,
			row.summary.PaymentStatus,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
