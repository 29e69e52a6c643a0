package handler

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"care-balance-bot/internal/models"
)

// showClients показывает список клиентов с квотами
func (h *Handler) showClients(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if !h.requireAdmin(message) {
		return
	}

	clients, err := h.clientService.GetAllClients()
	if err != nil {
		logrus.WithError(err).Error("Failed to get clients")
		h.client.Reply(chatID, "❌ Ошибка получения клиентов: "+err.Error())
		return
	}

	h.client.Reply(chatID, h.clientService.FormatClients(clients))
}

// setClientQuota изменяет контрактную квоту часов клиента
func (h *Handler) setClientQuota(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if !h.requireAdmin(message) {
		return
	}

	fields := strings.Fields(args)
	if len(fields) != 2 {
		h.client.Reply(chatID, "❌ Формат: /setquota <клиент> <часы>")
		return
	}

	clientID, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil || clientID == 0 {
		h.client.Reply(chatID, "❌ Неверный ID клиента: "+fields[0])
		return
	}

	hours, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || hours < 0 {
		h.client.Reply(chatID, "❌ Неверное значение часов: "+fields[1])
		return
	}

	if err := h.clientService.SetMonthlyHours(uint(clientID), hours); err != nil {
		logrus.WithError(err).Error("Failed to set client quota")
		h.client.Reply(chatID, "❌ Ошибка обновления квоты: "+err.Error())
		return
	}

	h.client.Reply(chatID, fmt.Sprintf("✅ Квота клиента %d: %.1f ч/мес.\nНе забудьте пересчитать баланс: /recalc %d", clientID, hours, clientID))
}

// promoteToAdmin назначает пользователя администратором
func (h *Handler) promoteToAdmin(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	targetChatID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		h.client.Reply(chatID, "❌ Формат: /promote <chat_id>")
		return
	}

	if err := h.userService.UpdateRole(chatID, targetChatID, models.Role(models.RoleAdmin)); err != nil {
		h.client.Reply(chatID, "❌ "+err.Error())
		return
	}

	h.client.Reply(chatID, fmt.Sprintf("✅ Пользователь %d назначен администратором.", targetChatID))
}
