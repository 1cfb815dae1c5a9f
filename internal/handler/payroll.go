package handler

import (
	"fmt"
	"strings"
	"workforce-bot/pkg/calendar"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) showPayroll(message *tgbotapi.Message, args string) {
	user := h.requireUser(message)
	if user == nil {
		return
	}

	month, err := monthFromArgs(args)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Invalid month. Use /payroll YYYY-MM")
		return
	}
	year, monthNum, _ := calendar.ParseMonth(month)

	summary, err := h.payrollService.PayrollFor(user, year, monthNum)
	if err != nil {
		logrus.WithError(err).Error("Failed to compute payroll")
		h.reply(message.Chat.ID, "❌ Failed to compute payroll, please try again.")
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("💰 Payroll Summary — %s\n\n", month))
	b.WriteString(fmt.Sprintf("Hours worked: %.2f\n", summary.HoursWorked))
	b.WriteString(fmt.Sprintf("Hourly rate: $%.2f\n", summary.HourlyRate))
	b.WriteString(fmt.Sprintf("Gross salary: $%.2f\n\n", summary.GrossSalary))
	b.WriteString("Deductions:\n")
	b.WriteString(fmt.Sprintf("  CPP (5.95%%): $%.2f\n", summary.CPP))
	b.WriteString(fmt.Sprintf("  EI (1.66%%): $%.2f\n", summary.EI))
	b.WriteString(fmt.Sprintf("  Income tax (~10%%): $%.2f\n", summary.IncomeTax))
	b.WriteString(fmt.Sprintf("  Total: $%.2f\n\n", summary.TotalDeductions()))
	b.WriteString(fmt.Sprintf("Net salary: $%.2f\n", summary.NetSalary))
	b.WriteString(fmt.Sprintf("Payment date: %s\n", summary.PaymentDate.Format("January 2, 2006")))
	b.WriteString(fmt.Sprintf("Status: %s\n", summary.PaymentStatus))

	if len(summary.WeeklyEarnings) > 0 {
		b.WriteString("\nWeekly earnings:\n")
		for _, week := range summary.WeeklyEarnings {
			b.WriteString(fmt.Sprintf("  %s: $%.2f\n", week.Week, week.Amount))
		}
	}

	h.reply(message.Chat.ID, b.String())
}

// submitHours totals the month's scheduled hours and writes the payroll
// snapshot for the period.
func (h *Handler) submitHours(message *tgbotapi.Message, args string) {
	user := h.requireUser(message)
	if user == nil {
		return
	}

	month, err := monthFromArgs(args)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Invalid month. Use /submithours YYYY-MM")
		return
	}

	hours, err := h.scheduleService.ScheduledHours(user.ID, month)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Failed to compute hours, please try again.")
		return
	}

	snapshot, err := h.payrollService.SubmitHours(user.ID, month, hours)
	if err != nil {
		h.reply(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf(
		"✅ Submitted %.2f hours for %s.\nUse /payroll %s to see your pay breakdown.",
		snapshot.TotalHours, snapshot.Month, snapshot.Month))
}

func (h *Handler) sendPayrollReport(message *tgbotapi.Message, args string) {
	if h.requireAdmin(message) == nil {
		return
	}

	month, err := monthFromArgs(args)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Invalid month. Use /payrollreport YYYY-MM")
		return
	}
	year, monthNum, _ := calendar.ParseMonth(month)

	workbook, err := h.reportService.MonthlyPayrollWorkbook(year, monthNum)
	if err != nil {
		logrus.WithError(err).Error("Failed to build payroll report")
		h.reply(message.Chat.ID, "❌ Failed to build the report: "+err.Error())
		return
	}

	doc := tgbotapi.NewDocument(message.Chat.ID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("payroll-%s.xlsx", month),
		Bytes: workbook,
	})
	doc.Caption = "📊 Payroll report for " + month
	h.client.Bot.Send(doc)
}
