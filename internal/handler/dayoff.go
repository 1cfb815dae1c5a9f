package handler

import (
	"fmt"
	"strconv"
	"strings"
	"workforce-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) requestDayOff(message *tgbotapi.Message, args string) {
	user := h.requireUser(message)
	if user == nil {
		return
	}

	date := strings.TrimSpace(args)
	if date == "" {
		h.replyMarkdown(message.Chat.ID,
			`🏖 *Requesting a day off*

Format:
/dayoff YYYY-MM-DD

Example:
/dayoff 2025-06-20

An administrator will approve or reject the request; check /mydayoffs for the status.`)
		return
	}

	request, err := h.dayOffService.Request(user.ID, date)
	if err != nil {
		h.reply(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf("✅ Day-off request for %s submitted (pending).", request.Date))

	// Ping admins with inline approve/reject buttons.
	admins, err := h.userService.GetAdmins()
	if err != nil {
		logrus.WithError(err).Warn("Failed to notify admins about day-off request")
		return
	}
	for _, admin := range admins {
		msg := tgbotapi.NewMessage(admin.ChatID, fmt.Sprintf(
			"🔔 %s requested a day off on %s.", user.FullName(), request.Date))
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("✅ Approve", fmt.Sprintf("dayoff_approve_%d_%s", user.ID, request.Date)),
				tgbotapi.NewInlineKeyboardButtonData("🚫 Reject", fmt.Sprintf("dayoff_reject_%d_%s", user.ID, request.Date)),
			),
		)
		h.client.Bot.Send(msg)
	}
}

func (h *Handler) showMyDayOffs(message *tgbotapi.Message) {
	user := h.requireUser(message)
	if user == nil {
		return
	}

	requests, err := h.dayOffService.ForUser(user.ID)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Failed to load requests, please try again.")
		return
	}
	if len(requests) == 0 {
		h.reply(message.Chat.ID, "You have no day-off requests yet. Use /dayoff YYYY-MM-DD to file one.")
		return
	}

	var b strings.Builder
	b.WriteString("🏖 Your day-off requests:\n\n")
	for _, request := range requests {
		b.WriteString(fmt.Sprintf("%s %s — %s\n", statusEmoji(request.Status), request.Date, request.Status))
	}
	h.reply(message.Chat.ID, b.String())
}

func (h *Handler) showPendingRequests(message *tgbotapi.Message) {
	if h.requireAdmin(message) == nil {
		return
	}

	requests, err := h.dayOffService.Pending()
	if err != nil {
		h.reply(message.Chat.ID, "❌ Failed to load pending requests.")
		return
	}
	if len(requests) == 0 {
		h.reply(message.Chat.ID, "✅ No pending day-off requests.")
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🟡 Pending day-off requests (%d):\n\n", len(requests)))
	for _, request := range requests {
		b.WriteString(fmt.Sprintf("• %s — %s (requested %s)\n  /approve %d %s  ·  /reject %d %s\n",
			request.User.FullName(), request.Date,
			request.RequestedAt.Format("2006-01-02"),
			request.User.ChatID, request.Date,
			request.User.ChatID, request.Date))
	}
	h.reply(message.Chat.ID, b.String())
}

func (h *Handler) decideDayOff(message *tgbotapi.Message, args string, approve bool) {
	if h.requireAdmin(message) == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.reply(message.Chat.ID, "❌ Usage: /approve chatID date  (or /reject chatID date)")
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

	status := models.DayOffRejected
	if approve {
		status = models.DayOffApproved
	}

	request, err := h.dayOffService.Decide(message.Chat.ID, target.ID, parts[1], status)
	if err != nil {
		h.reply(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf("%s Request for %s on %s marked %s.",
		statusEmoji(status), target.FullName(), request.Date, status))
	h.reply(target.ChatID, fmt.Sprintf("%s Your day-off request for %s was %s.",
		statusEmoji(status), request.Date, status))
}

// handleDayOffDecisionCallback handles the inline approve/reject buttons.
func (h *Handler) handleDayOffDecisionCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	status := ""
	payload := ""
	switch {
	case strings.HasPrefix(data, "dayoff_approve_"):
		status = models.DayOffApproved
		payload = strings.TrimPrefix(data, "dayoff_approve_")
	case strings.HasPrefix(data, "dayoff_reject_"):
		status = models.DayOffRejected
		payload = strings.TrimPrefix(data, "dayoff_reject_")
	default:
		return
	}

	parts := strings.SplitN(payload, "_", 2)
	if len(parts) != 2 {
		return
	}
	userID, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return
	}
	date := parts[1]

	request, err := h.dayOffService.Decide(chatID, uint(userID), date, status)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("%s Request for %s marked %s.", statusEmoji(status), request.Date, status))

	if target, err := h.userService.GetUserByID(uint(userID)); err == nil && target != nil {
		h.reply(target.ChatID, fmt.Sprintf("%s Your day-off request for %s was %s.",
			statusEmoji(status), request.Date, status))
	}
}

func statusEmoji(status string) string {
	switch status {
	case models.DayOffApproved:
		return "🟢"
	case models.DayOffRejected:
		return "🔴"
	case models.DayOffPending:
		return "🟡"
	}
	return "▫️"
}
