package handler

import (
	"fmt"
	"strconv"
	"strings"
	"workforce-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) createProfile(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	var username, firstName, lastName string
	if message.From != nil {
		username = message.From.UserName
		firstName = message.From.FirstName
		lastName = message.From.LastName
	}
	if firstName == "" {
		firstName = "Worker"
	}

	user, err := h.userService.CreateUser(chatID, username, firstName, lastName)
	if err != nil {
		logrus.WithError(err).Error("Failed to create profile")
		h.reply(chatID, "❌ Failed to create profile: "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Profile ready, %s!\nRole: %s\nHourly rate: $%.2f\n\nUse /schedule to see your shifts.",
		user.FullName(), user.Role, user.HourlyRate))
}

func (h *Handler) showProfile(message *tgbotapi.Message) {
	user := h.requireUser(message)
	if user == nil {
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf(
		"👤 %s\nRole: %s\nHourly rate: $%.2f\nChat ID: %d",
		user.FullName(), user.Role, user.HourlyRate, user.ChatID))
}

func (h *Handler) showAllUsers(message *tgbotapi.Message) {
	if h.requireAdmin(message) == nil {
		return
	}

	users, err := h.userService.GetAllUsers()
	if err != nil {
		h.reply(message.Chat.ID, "❌ Failed to load users: "+err.Error())
		return
	}
	if len(users) == 0 {
		h.reply(message.Chat.ID, "No users registered yet.")
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("👥 Registered users (%d):\n\n", len(users)))
	for _, user := range users {
		b.WriteString("• " + h.userService.FormatUser(user) + "\n")
	}
	h.reply(message.Chat.ID, b.String())
}

func (h *Handler) promoteToAdmin(message *tgbotapi.Message, args string) {
	h.changeRole(message, args, models.Role(models.RoleAdmin), "promoted to administrator")
}

func (h *Handler) demoteToWorker(message *tgbotapi.Message, args string) {
	h.changeRole(message, args, models.Role(models.RoleWorker), "demoted to worker")
}

func (h *Handler) changeRole(message *tgbotapi.Message, args string, role models.Role, verb string) {
	if h.requireAdmin(message) == nil {
		return
	}

	targetChatID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Usage: /promote chatID (or /demote chatID)")
		return
	}

	if err := h.userService.UpdateRole(message.Chat.ID, targetChatID, role); err != nil {
		h.reply(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf("✅ User %d %s.", targetChatID, verb))
}

func (h *Handler) removeUser(message *tgbotapi.Message, args string) {
	if h.requireAdmin(message) == nil {
		return
	}

	targetChatID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Usage: /removeuser chatID")
		return
	}

	if err := h.userService.DeleteUser(message.Chat.ID, targetChatID); err != nil {
		h.reply(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf("✅ Profile for %d removed.", targetChatID))
}

func (h *Handler) setHourlyRate(message *tgbotapi.Message, args string) {
	if h.requireAdmin(message) == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.reply(message.Chat.ID, "❌ Usage: /setrate chatID rate\nExample: /setrate 123456 18.50")
		return
	}

	targetChatID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Invalid chat ID: "+parts[0])
		return
	}
	rate, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		h.reply(message.Chat.ID, "❌ Invalid rate: "+parts[1])
		return
	}

	if err := h.userService.SetHourlyRate(message.Chat.ID, targetChatID, rate); err != nil {
		h.reply(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf("✅ Hourly rate for %d set to $%.2f.", targetChatID, rate))
}
