package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// getBalance показывает баланс клиента за месяц; при отсутствии - считает
func (h *Handler) getBalance(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	clientID, year, month, err := parseClientArgs(args)
	if err != nil {
		h.client.Reply(chatID, "❌ "+err.Error()+"\nФормат: /balance <клиент> [год месяц]")
		return
	}

	balance, err := h.balanceService.GetOrRecalculate(clientID, year, month)
	if err != nil {
		logrus.WithError(err).Error("Failed to get balance")
		h.client.Reply(chatID, "❌ Ошибка получения баланса: "+err.Error())
		return
	}

	client, err := h.clientService.GetClient(clientID)
	if err != nil {
		logrus.WithError(err).Warn("Failed to get client for balance formatting")
	}

	h.client.Reply(chatID, h.balanceService.FormatBalance(client, balance))
}

// recalcBalance принудительно пересчитывает баланс клиента
func (h *Handler) recalcBalance(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	clientID, year, month, err := parseClientArgs(args)
	if err != nil {
		h.client.Reply(chatID, "❌ "+err.Error()+"\nФормат: /recalc <клиент> [год месяц]")
		return
	}

	balance, err := h.balanceService.Recalculate(clientID, year, month)
	if err != nil {
		logrus.WithError(err).Error("Failed to recalculate balance")
		h.client.Reply(chatID, "❌ Ошибка пересчёта: "+err.Error())
		return
	}

	client, err := h.clientService.GetClient(clientID)
	if err != nil {
		logrus.WithError(err).Warn("Failed to get client for balance formatting")
	}

	h.client.Reply(chatID, h.balanceService.FormatBalance(client, balance))
}

// recalcAllBalances пересчитывает балансы всех клиентов за месяц
func (h *Handler) recalcAllBalances(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if !h.requireAdmin(message) {
		return
	}

	year, month, err := parseMonthArgs(args)
	if err != nil {
		h.client.Reply(chatID, "❌ "+err.Error()+"\nФормат: /recalcall [год месяц]")
		return
	}

	summary, err := h.balanceService.RecalculateAll(year, month)
	if err != nil {
		logrus.WithError(err).Error("Failed to recalculate all balances")
		h.client.Reply(chatID, "❌ Ошибка пересчёта: "+err.Error())
		return
	}

	h.client.Reply(chatID, h.balanceService.FormatSummary(year, month, summary))
}
