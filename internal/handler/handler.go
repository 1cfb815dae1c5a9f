package handler

import (
	"strings"
	"workforce-bot/internal/config"
	"workforce-bot/internal/models"
	"workforce-bot/internal/service"
	"workforce-bot/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	client             *telegram.Client
	userService        *service.UserService
	scheduleService    *service.ScheduleService
	dayOffService      *service.DayOffService
	payrollService     *service.PayrollService
	maintenanceService *service.MaintenanceService
	reportService      *service.ReportService
	config             *config.BotConfig
}

func NewHandler(
	client *telegram.Client,
	userService *service.UserService,
	scheduleService *service.ScheduleService,
	dayOffService *service.DayOffService,
	payrollService *service.PayrollService,
	maintenanceService *service.MaintenanceService,
	reportService *service.ReportService,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:             client,
		userService:        userService,
		scheduleService:    scheduleService,
		dayOffService:      dayOffService,
		payrollService:     payrollService,
		maintenanceService: maintenanceService,
		reportService:      reportService,
		config:             cfg,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.CallbackQuery != nil {
			h.handleCallbackQuery(update.CallbackQuery)
			continue
		}

		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "Use /help to see what I can do.")
	h.client.Bot.Send(msg)
}

// handleCallbackQuery handles inline approve/reject buttons on pending
// day-off requests. Callback data: dayoff_approve_<userID>_<date> or
// dayoff_reject_<userID>_<date>.
func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	// Callbacks from stale inline messages arrive without a Message.
	if callback.Message == nil {
		return
	}

	chatID := callback.Message.Chat.ID
	data := callback.Data

	editMsg := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup())
	h.client.Bot.Send(editMsg)

	if strings.HasPrefix(data, "dayoff_approve_") || strings.HasPrefix(data, "dayoff_reject_") {
		h.handleDayOffDecisionCallback(callback)
		return
	}
}

// requireUser fetches the sender's profile and replies with a hint when none
// exists.
func (h *Handler) requireUser(message *tgbotapi.Message) *models.User {
	chatID := message.Chat.ID

	user, err := h.userService.GetUser(chatID)
	if err != nil {
		logrus.WithError(err).WithField("chat_id", chatID).Error("Failed to load user")
		h.reply(chatID, "❌ Something went wrong, please try again.")
		return nil
	}
	if user == nil {
		h.reply(chatID, "❌ Profile not found.\nUse /createprofile to register first.")
		return nil
	}
	return user
}

// requireAdmin is requireUser plus an admin check.
func (h *Handler) requireAdmin(message *tgbotapi.Message) *models.User {
	user := h.requireUser(message)
	if user == nil {
		return nil
	}
	if !user.IsAdmin() {
		h.reply(message.Chat.ID, "⛔ This command is for administrators only.")
		return nil
	}
	return user
}

func (h *Handler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	h.client.Bot.Send(msg)
}

func (h *Handler) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	h.client.Bot.Send(msg)
}
