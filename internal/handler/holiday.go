package handler

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// getHolidays показывает праздники месяца
func (h *Handler) getHolidays(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	year, month, err := parseMonthArgs(args)
	if err != nil {
		h.client.Reply(chatID, "❌ "+err.Error()+"\nФормат: /holidays [год месяц]")
		return
	}

	list, err := h.holidayService.GetForMonth(year, month)
	if err != nil {
		logrus.WithError(err).Error("Failed to get holidays")
		h.client.Reply(chatID, "❌ Ошибка получения праздников: "+err.Error())
		return
	}

	h.client.Reply(chatID, h.holidayService.FormatMonth(year, month, list))
}

// importHolidays импортирует календарь праздников из настроенного файла
func (h *Handler) importHolidays(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if !h.requireAdmin(message) {
		return
	}

	if h.config.HolidaysFile == "" {
		h.client.Reply(chatID, "❌ Файл календаря не настроен (HOLIDAYS_FILE).")
		return
	}

	count, err := h.holidayService.ImportFromJSON(h.config.HolidaysFile)
	if err != nil {
		logrus.WithError(err).Error("Failed to import holidays")
		h.client.Reply(chatID, "❌ Ошибка импорта календаря: "+err.Error())
		return
	}

	h.client.Reply(chatID, fmt.Sprintf("✅ Импортировано праздников: %d", count))
}
