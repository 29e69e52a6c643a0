package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"care-balance-bot/internal/config"
	"care-balance-bot/internal/service"
	"care-balance-bot/pkg/telegram"
)

type Handler struct {
	client            *telegram.Client
	userService       *service.UserService
	clientService     *service.ClientService
	assignmentService *service.AssignmentService
	holidayService    *service.HolidayService
	balanceService    *service.BalanceService
	config            *config.BotConfig
}

func NewHandler(
	client *telegram.Client,
	userService *service.UserService,
	clientService *service.ClientService,
	assignmentService *service.AssignmentService,
	holidayService *service.HolidayService,
	balanceService *service.BalanceService,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:            client,
		userService:       userService,
		clientService:     clientService,
		assignmentService: assignmentService,
		holidayService:    holidayService,
		balanceService:    balanceService,
		config:            cfg,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
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

	h.client.Reply(message.Chat.ID, "ℹ️ Я понимаю только команды. Используйте /help для списка команд.")
}
