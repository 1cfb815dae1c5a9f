package handler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"workforce-bot/internal/service"
	"workforce-bot/pkg/calendar"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// monthFromArgs parses an optional YYYY-MM argument, defaulting to the
// current month.
func monthFromArgs(args string) (string, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		now := time.Now()
		return calendar.MonthKey(now.Year(), int(now.Month())), nil
	}
	if _, _, err := calendar.ParseMonth(args); err != nil {
		return "", err
	}
	return args, nil
}

func (h *Handler) showSchedule(message *tgbotapi.Message, args string) {
	user := h.requireUser(message)
	if user == nil {
		return
	}

	month, err := monthFromArgs(args)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Invalid month. Use /schedule YYYY-MM, e.g. /schedule 2025-06")
		return
	}

	markers, err := h.scheduleService.MonthMarkers(user.ID, month)
	if err != nil {
		logrus.WithError(err).Error("Failed to load schedule")
		h.reply(message.Chat.ID, "❌ Failed to load your schedule, please try again.")
		return
	}

	year, monthNum, _ := calendar.ParseMonth(month)

	var b strings.Builder
	b.WriteString("📅 My Schedule\n\n")
	b.WriteString(calendar.RenderMonth(year, monthNum, markers))

	// Scheduled-day detail list, skipping disabled dates.
	dates := make([]string, 0, len(markers))
	for date, marker := range markers {
		if len(marker.Jobs) > 0 && !marker.Disabled {
			dates = append(dates, date)
		}
	}
	if len(dates) > 0 {
		sort.Strings(dates)
		b.WriteString("\nDays you're scheduled to work:\n")
		for _, date := range dates {
			for _, job := range markers[date].Jobs {
				b.WriteString(fmt.Sprintf("• %s  %s–%s  %s (assigned by %s)\n",
					date, job.ShiftStart, job.ShiftEnd, job.Location, job.AssignedBy))
			}
		}
		b.WriteString(fmt.Sprintf("\nTotal scheduled hours (%s): %.2f\n", month, service.HoursForPeriod(markers, month)))
	}

	h.reply(message.Chat.ID, b.String())
}

func (h *Handler) showScheduledHours(message *tgbotapi.Message, args string) {
	user := h.requireUser(message)
	if user == nil {
		return
	}

	month, err := monthFromArgs(args)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Invalid month. Use /myhours YYYY-MM")
		return
	}

	hours, err := h.scheduleService.ScheduledHours(user.ID, month)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Failed to compute hours, please try again.")
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf("⏱ Total scheduled hours for %s: %.2f", month, hours))
}

// assignShift handles /assign chatID date start end pay location...
func (h *Handler) assignShift(message *tgbotapi.Message, args string) {
	admin := h.requireAdmin(message)
	if admin == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) < 5 {
		h.replyMarkdown(message.Chat.ID,
			`🗓 *Assigning a shift*

Format:
/assign chatID date start end pay [location]

Example:
/assign 123456 2025-06-12 09:00 17:00 160 "Site A"`)
		return
	}

	targetChatID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Invalid chat ID: "+parts[0])
		return
	}
	pay, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Invalid pay amount: "+parts[4])
		return
	}
	location := strings.Trim(strings.Join(parts[5:], " "), "\"")

	target, err := h.userService.GetUser(targetChatID)
	if err != nil || target == nil {
		h.reply(message.Chat.ID, fmt.Sprintf("❌ Worker with chat ID %d not found.", targetChatID))
		return
	}

	shift, err := h.scheduleService.AssignShift(target.ID, parts[1], parts[2], parts[3], pay, location, admin.FullName())
	if err != nil {
		h.reply(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf(
		"✅ Shift assigned to %s\n📅 %s  %s–%s (%.2f h)\n💵 $%.2f\n📍 %s",
		target.FullName(), shift.Date, shift.ShiftStart, shift.ShiftEnd, shift.Hours(), shift.Pay, shift.Location))

	// Let the worker know right away.
	h.reply(target.ChatID, fmt.Sprintf(
		"🔔 New shift: %s %s–%s at %s.\nCheck /schedule for details.",
		shift.Date, shift.ShiftStart, shift.ShiftEnd, shift.Location))
}

func (h *Handler) removeShifts(message *tgbotapi.Message, args string) {
	if h.requireAdmin(message) == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.reply(message.Chat.ID, "❌ Usage: /unassign chatID date")
		return
	}

	targetChatID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Invalid chat ID: "+parts[0])
		return
	}
	target, err := h.userService.GetUser(targetChatID)
	if err != nil || target == nil {
		h.reply(message.Chat.ID, fmt.Sprintf("❌ Worker with chat ID %d not found.", targetChatID))
		return
	}

	removed, err := h.scheduleService.RemoveShifts(target.ID, parts[1])
	if err != nil {
		h.reply(message.Chat.ID, "❌ "+err.Error())
		return
	}
	if removed == 0 {
		h.reply(message.Chat.ID, fmt.Sprintf("No shifts found for %s on %s.", target.FullName(), parts[1]))
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf("✅ Removed %d shift(s) for %s on %s.", removed, target.FullName(), parts[1]))
}
