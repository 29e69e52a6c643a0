package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
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

	// Балансы (все координаторы)
	case "balance":
		h.getBalance(message, args)
	case "recalc":
		h.recalcBalance(message, args)

	// Назначения и праздники
	case "assignments":
		h.getAssignments(message, args)
	case "holidays":
		h.getHolidays(message, args)

	// Административные команды
	case "recalcall":
		h.recalcAllBalances(message, args)
	case "clients":
		h.showClients(message)
	case "setquota":
		h.setClientQuota(message, args)
	case "importholidays":
		h.importHolidays(message)
	case "promote":
		h.promoteToAdmin(message, args)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.client.Reply(message.Chat.ID, "❌ Неизвестная команда. Используйте /help для списка команд.")
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	var username, firstName, lastName string
	if message.From != nil {
		username = message.From.UserName
		firstName = message.From.FirstName
		lastName = message.From.LastName
	}

	user, err := h.userService.RegisterUser(chatID, username, firstName, lastName)
	if err != nil {
		logrus.WithError(err).Error("Failed to register user")
		h.client.Reply(chatID, "❌ Ошибка регистрации: "+err.Error())
		return
	}

	text := fmt.Sprintf(`👋 Здравствуйте, %s!

Это бот учёта часов обслуживания на дому: он сверяет запланированные по
назначениям часы с контрактной квотой каждого клиента.

Используйте /help для списка команд.`, user.FirstName)

	h.client.Reply(chatID, text)
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	text := `📋 Доступные команды:

📊 Балансы:
/balance <клиент> [год месяц] - Баланс клиента за месяц
/recalc <клиент> [год месяц] - Пересчитать баланс клиента

📋 Данные:
/assignments <клиент> - Активные назначения клиента
/holidays [год месяц] - Праздники месяца

Администраторам: /helpadmin`

	h.client.Reply(message.Chat.ID, text)
}

func (h *Handler) sendAdminHelpMessage(message *tgbotapi.Message) {
	if !h.requireAdmin(message) {
		return
	}

	text := `🔐 Команды администратора:

/recalcall [год месяц] - Пересчитать балансы всех клиентов
/clients - Список клиентов
/setquota <клиент> <часы> - Изменить квоту клиента
/importholidays - Импортировать календарь праздников из файла
/promote <chat_id> - Назначить администратора`

	h.client.Reply(message.Chat.ID, text)
}

// parseMonthArgs разбирает необязательные аргументы "[год месяц]" или
// "[месяц]"; по умолчанию - текущий месяц
func parseMonthArgs(args string) (int, int, error) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	fields := strings.Fields(args)
	switch len(fields) {
	case 0:
		return year, month, nil
	case 1:
		m, err := strconv.Atoi(fields[0])
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("неверный месяц, укажите число от 1 до 12")
		}
		return year, m, nil
	case 2:
		y, err := strconv.Atoi(fields[0])
		if err != nil || y < 2000 || y > 2100 {
			return 0, 0, fmt.Errorf("неверный год, укажите год между 2000 и 2100")
		}
		m, err := strconv.Atoi(fields[1])
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("неверный месяц, укажите число от 1 до 12")
		}
		return y, m, nil
	default:
		return 0, 0, fmt.Errorf("неверный формат, используйте: [год месяц] или [месяц]")
	}
}

// parseClientArgs разбирает "клиент [год месяц]"
func parseClientArgs(args string) (uint, int, int, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, 0, 0, fmt.Errorf("укажите ID клиента")
	}

	clientID, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil || clientID == 0 {
		return 0, 0, 0, fmt.Errorf("неверный ID клиента: %q", fields[0])
	}

	year, month, err := parseMonthArgs(strings.Join(fields[1:], " "))
	if err != nil {
		return 0, 0, 0, err
	}

	return uint(clientID), year, month, nil
}

// requireAdmin проверяет права администратора и отвечает отказом остальным
func (h *Handler) requireAdmin(message *tgbotapi.Message) bool {
	if h.userService.IsAdmin(message.Chat.ID) {
		return true
	}

	h.client.Reply(message.Chat.ID, "🚫 Команда доступна только администраторам.")
	return false
}
