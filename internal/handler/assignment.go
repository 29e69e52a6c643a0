package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// getAssignments показывает активные назначения клиента
func (h *Handler) getAssignments(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	clientID, _, _, err := parseClientArgs(args)
	if err != nil {
		h.client.Reply(chatID, "❌ "+err.Error()+"\nФормат: /assignments <клиент>")
		return
	}

	client, err := h.clientService.GetClient(clientID)
	if err != nil {
		logrus.WithError(err).Error("Failed to get client")
		h.client.Reply(chatID, "❌ Ошибка поиска клиента: "+err.Error())
		return
	}
	if client == nil {
		h.client.Reply(chatID, "❌ Клиент не найден.")
		return
	}

	assignments, err := h.assignmentService.GetActiveAssignments(clientID)
	if err != nil {
		logrus.WithError(err).Error("Failed to get assignments")
		h.client.Reply(chatID, "❌ Ошибка получения назначений: "+err.Error())
		return
	}

	h.client.Reply(chatID, h.assignmentService.FormatAssignments(assignments))
}
