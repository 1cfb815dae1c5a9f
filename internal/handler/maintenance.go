package handler

import (
	"fmt"
	"strconv"
	"strings"
	"workforce-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// reportIssue handles /reportissue description ; location ; urgency
func (h *Handler) reportIssue(message *tgbotapi.Message, args string) {
	user := h.requireUser(message)
	if user == nil {
		return
	}

	if strings.TrimSpace(args) == "" {
		h.replyMarkdown(message.Chat.ID,
			`🔧 *Reporting a maintenance issue*

Format:
/reportissue description ; location ; urgency

Example:
/reportissue Broken vacuum cleaner ; Storage Room ; High

Urgency is Low, Medium or High (defaults to Low).`)
		return
	}

	parts := strings.SplitN(args, ";", 3)
	description := strings.TrimSpace(parts[0])
	var location, urgency string
	if len(parts) > 1 {
		location = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		urgency = strings.TrimSpace(parts[2])
	}

	request, err := h.maintenanceService.Submit(user.ID, description, location, urgency)
	if err != nil {
		h.reply(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf(
		"✅ Issue #%d submitted.\n📍 %s\n⚠️ Urgency: %s\nStatus: %s",
		request.ID, request.Location, request.Urgency, request.Status))
}

func (h *Handler) showMyIssues(message *tgbotapi.Message) {
	user := h.requireUser(message)
	if user == nil {
		return
	}

	requests, err := h.maintenanceService.ForUser(user.ID)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Failed to load issues, please try again.")
		return
	}
	if len(requests) == 0 {
		h.reply(message.Chat.ID, "You have no maintenance issues on file.")
		return
	}

	var b strings.Builder
	b.WriteString("🔧 Your maintenance issues:\n\n")
	for _, request := range requests {
		b.WriteString(fmt.Sprintf("#%d [%s] %s — %s (%s, %s)\n",
			request.ID, request.Status, request.Description, request.Location, request.Urgency, request.Date))
	}
	h.reply(message.Chat.ID, b.String())
}

// showAllIssues lists maintenance requests for admins; "/issues open"
// narrows the list to unresolved ones.
func (h *Handler) showAllIssues(message *tgbotapi.Message, args string) {
	if h.requireAdmin(message) == nil {
		return
	}

	var requests []models.MaintenanceRequest
	var err error
	if strings.EqualFold(strings.TrimSpace(args), "open") {
		requests, err = h.maintenanceService.Open()
	} else {
		requests, err = h.maintenanceService.All()
	}
	if err != nil {
		h.reply(message.Chat.ID, "❌ Failed to load issues.")
		return
	}
	if len(requests) == 0 {
		h.reply(message.Chat.ID, "No maintenance issues on file.")
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔧 Maintenance issues (%d):\n\n", len(requests)))
	for _, request := range requests {
		b.WriteString(fmt.Sprintf("#%d [%s] %s — %s (%s, %s) by %s\n",
			request.ID, request.Status, request.Description, request.Location,
			request.Urgency, request.Date, request.User.FullName()))
	}
	b.WriteString("\nUse /resolve id status to update one.")
	h.reply(message.Chat.ID, b.String())
}

// resolveIssue handles /resolve id status.
func (h *Handler) resolveIssue(message *tgbotapi.Message, args string) {
	if h.requireAdmin(message) == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) < 2 {
		h.reply(message.Chat.ID, "❌ Usage: /resolve id status\nExample: /resolve 3 Resolved")
		return
	}

	id, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Invalid issue ID: "+parts[0])
		return
	}
	status := strings.Join(parts[1:], " ")

	request, err := h.maintenanceService.SetStatus(uint(id), status)
	if err != nil {
		h.reply(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf("✅ Issue #%d is now %s.", request.ID, request.Status))
}
