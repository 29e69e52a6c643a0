package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"care-balance-bot/internal/models"
	"care-balance-bot/internal/planning"
	"care-balance-bot/internal/repository"
)

type BalanceService struct {
	balanceRepo    repository.BalanceRepository
	clientRepo     repository.ClientRepository
	assignmentRepo repository.AssignmentRepository
	holidayRepo    repository.HolidayRepository
	logger         *logrus.Logger
}

func NewBalanceService(
	balanceRepo repository.BalanceRepository,
	clientRepo repository.ClientRepository,
	assignmentRepo repository.AssignmentRepository,
	holidayRepo repository.HolidayRepository,
) *BalanceService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &BalanceService{
		balanceRepo:    balanceRepo,
		clientRepo:     clientRepo,
		assignmentRepo: assignmentRepo,
		holidayRepo:    holidayRepo,
		logger:         logger,
	}
}

// RecalcSummary - итог пересчёта балансов всех клиентов за месяц
type RecalcSummary struct {
	Total     int
	Succeeded int
	Failed    int
}

// Recalculate пересчитывает баланс клиента за месяц и сохраняет его.
// Отсутствие назначений или праздников не ошибка: расчёт идет по пустым
// входам. Повторный вызов замещает прежний баланс тем же значением.
func (s *BalanceService) Recalculate(clientID uint, year, month int) (*models.Balance, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("некорректный месяц: %d", month)
	}

	client, err := s.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска клиента: %v", err)
	}
	if client == nil {
		return nil, fmt.Errorf("клиент %d не найден", clientID)
	}

	assignments, err := s.assignmentRepo.GetActiveByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения назначений: %v", err)
	}

	calendar, err := s.holidayRepo.GetByYearMonth(year, month)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения календаря праздников: %v", err)
	}

	plan := planning.PlanMonth(year, month, assignments, calendar)
	balance := planning.BuildBalance(client, plan)

	for _, warning := range plan.Warnings {
		s.logger.WithFields(logrus.Fields{
			"client_id": clientID,
			"year":      year,
			"month":     month,
		}).Warn(warning)
	}

	if err := s.balanceRepo.Upsert(balance); err != nil {
		return nil, fmt.Errorf("ошибка сохранения баланса: %v", err)
	}

	s.logger.WithFields(logrus.Fields{
		"client_id":       clientID,
		"year":            year,
		"month":           month,
		"scheduled_hours": balance.ScheduledHours,
		"status":          balance.Status,
	}).Info("Balance recalculated")

	return balance, nil
}

// GetOrRecalculate возвращает сохраненный баланс, при его отсутствии
// считает заново
func (s *BalanceService) GetOrRecalculate(clientID uint, year, month int) (*models.Balance, error) {
	balance, err := s.balanceRepo.GetByClientAndMonth(clientID, year, month)
	if err != nil {
		return nil, err
	}
	if balance != nil {
		return balance, nil
	}

	return s.Recalculate(clientID, year, month)
}

// RecalculateAll пересчитывает балансы всех клиентов за месяц. Ошибка по
// одному клиенту логируется и не прерывает остальных.
func (s *BalanceService) RecalculateAll(year, month int) (RecalcSummary, error) {
	clients, err := s.clientRepo.GetAll()
	if err != nil {
		return RecalcSummary{}, fmt.Errorf("ошибка получения клиентов: %v", err)
	}

	summary := RecalcSummary{Total: len(clients)}
	for _, client := range clients {
		if _, err := s.Recalculate(client.ID, year, month); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"client_id": client.ID,
				"year":      year,
				"month":     month,
			}).Error("Failed to recalculate client balance")
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}

	s.logger.WithFields(logrus.Fields{
		"year":      year,
		"month":     month,
		"total":     summary.Total,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	}).Info("Monthly balances recalculated")

	return summary, nil
}

// GetClientBalances возвращает все балансы клиента
func (s *BalanceService) GetClientBalances(clientID uint) ([]*models.Balance, error) {
	return s.balanceRepo.GetByClient(clientID)
}

// FormatBalance форматирует баланс для отображения
func (s *BalanceService) FormatBalance(client *models.Client, balance *models.Balance) string {
	if balance == nil {
		return "❌ Баланс не найден"
	}

	monthName := time.Month(balance.Month).String()

	status := "✅ Идеально"
	switch balance.Status {
	case models.BalanceStatusDeficit:
		status = "⚠️ Недобор"
	case models.BalanceStatusExcess:
		status = "➕ Перебор"
	}

	name := fmt.Sprintf("клиент %d", balance.ClientID)
	if client != nil {
		name = client.FullName()
	}

	var result strings.Builder
	fmt.Fprintf(&result, "📊 Баланс: %s, %s %d\n\n", name, monthName, balance.Year)
	fmt.Fprintf(&result, "📋 По контракту: %.1f ч\n", balance.AssignedHours)
	fmt.Fprintf(&result, "🗓 Запланировано: %.1f ч\n", balance.ScheduledHours)
	fmt.Fprintf(&result, "   будни: %d дн, %.1f ч\n", balance.LaborableDays, balance.LaborableHours)
	fmt.Fprintf(&result, "   выходные и праздники: %d дн, %.1f ч\n", balance.HolidayWeekendDays, balance.HolidayHours)
	fmt.Fprintf(&result, "\n%s: %s\n", status, balance.Message)

	if len(balance.Reassignments) > 0 {
		result.WriteString("\n🔄 Замещения:\n")
		for _, r := range balance.Reassignments {
			fmt.Fprintf(&result, "• %s: %.1f ч → %.1f ч (работник %d → %d)\n",
				r.Date, r.OriginalHours, r.NewHours, r.OriginalWorkerID, r.NewWorkerID)
		}
	}

	if len(balance.Warnings) > 0 {
		result.WriteString("\n⚠️ Предупреждения:\n")
		for _, warning := range balance.Warnings {
			fmt.Fprintf(&result, "• %s\n", warning)
		}
	}

	fmt.Fprintf(&result, "\n📅 Обновлено: %s", balance.UpdatedAt.Format("02.01.2006 15:04"))

	return result.String()
}

// FormatSummary форматирует итог массового пересчёта
func (s *BalanceService) FormatSummary(year, month int, summary RecalcSummary) string {
	monthName := time.Month(month).String()

	result := fmt.Sprintf("📈 Пересчёт балансов: %s %d\n\nКлиентов: %d\nУспешно: %d",
		monthName, year, summary.Total, summary.Succeeded)

	if summary.Failed > 0 {
		result += fmt.Sprintf("\nС ошибками: %d (подробности в логах)", summary.Failed)
	}

	return result
}
