package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)
	case "helpadmin":
		h.sendAdminHelpMessage(message)

	// Profile commands
	case "createprofile":
		h.createProfile(message)
	case "myprofile":
		h.showProfile(message)

	// Schedule commands (workers)
	case "schedule":
		h.showSchedule(message, args)
	case "myhours":
		h.showScheduledHours(message, args)

	// Day-off commands (workers)
	case "dayoff":
		h.requestDayOff(message, args)
	case "mydayoffs":
		h.showMyDayOffs(message)

	// Payroll commands (workers)
	case "payroll":
		h.showPayroll(message, args)
	case "submithours":
		h.submitHours(message, args)

	// Maintenance commands (workers)
	case "reportissue":
		h.reportIssue(message, args)
	case "myissues":
		h.showMyIssues(message)

	// Admin: shifts
	case "assign":
		h.assignShift(message, args)
	case "unassign":
		h.removeShifts(message, args)

	// Admin: day-off review
	case "requests":
		h.showPendingRequests(message)
	case "approve":
		h.decideDayOff(message, args, true)
	case "reject":
		h.decideDayOff(message, args, false)

	// Admin: users and payroll
	case "users":
		h.showAllUsers(message)
	case "promote":
		h.promoteToAdmin(message, args)
	case "demote":
		h.demoteToWorker(message, args)
	case "removeuser":
		h.removeUser(message, args)
	case "setrate":
		h.setHourlyRate(message, args)
	case "payrollreport":
		h.sendPayrollReport(message, args)

	// Admin: maintenance
	case "issues":
		h.showAllIssues(message, args)
	case "resolve":
		h.resolveIssue(message, args)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, "❌ Unknown command. Use /help for the list of commands.")
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	h.reply(message.Chat.ID,
		"👋 Welcome to the workforce bot!\n\n"+
			"I keep track of your shifts, day-off requests and payroll.\n"+
			"Use /createprofile to register, then /help for the full command list.")
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	h.replyMarkdown(message.Chat.ID,
		`📖 *Commands*

*Profile*
/createprofile — register yourself
/myprofile — show your profile

*Schedule*
/schedule [YYYY-MM] — calendar with your shifts and day-off requests
/myhours [YYYY-MM] — total scheduled hours for the month

*Day off*
/dayoff YYYY-MM-DD — request a day off
/mydayoffs — your requests and their statuses

*Payroll*
/payroll [YYYY-MM] — payroll summary for the month
/submithours [YYYY-MM] — submit your scheduled hours

*Maintenance*
/reportissue description ; location ; urgency — report a facility issue
/myissues — your submitted issues

Administrators: see /helpadmin`)
}

func (h *Handler) sendAdminHelpMessage(message *tgbotapi.Message) {
	h.replyMarkdown(message.Chat.ID,
		`🛠 *Admin commands*

*Shifts*
/assign chatID date start end pay location — assign a shift
/unassign chatID date — remove all shifts on a date

*Day-off review*
/requests — pending day-off requests
/approve chatID date — approve a request
/reject chatID date — reject a request

*Users*
/users — all registered users
/promote chatID — grant admin role
/demote chatID — revoke admin role
/removeuser chatID — remove a worker's profile
/setrate chatID rate — set a worker's hourly rate

*Payroll*
/payrollreport YYYY-MM — Excel payroll report for all workers

*Maintenance*
/issues — all maintenance requests (/issues open for unresolved only)
/resolve id status — set issue status (Pending / In Progress / Resolved)`)
}
