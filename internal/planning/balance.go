package planning

import (
	"fmt"
	"math"

	"care-balance-bot/internal/models"
)

// PerfectThreshold - допуск, в пределах которого баланс считается нулевым
const PerfectThreshold = 0.1

// round2 округляет часы до сотых
func round2(hours float64) float64 {
	return math.Round(hours*100) / 100
}

// BuildBalance сводит план месяца в итоговый баланс: сумма запланированных
// часов против контрактной квоты клиента.
func BuildBalance(client *models.Client, plan MonthPlan) *models.Balance {
	assigned := 0.0
	clientID := uint(0)
	if client != nil {
		assigned = client.MonthlyHours
		clientID = client.ID
	}

	scheduled := round2(plan.ScheduledHours)
	difference := round2(assigned - scheduled)

	var status, message string
	switch {
	case math.Abs(difference) < PerfectThreshold:
		status = models.BalanceStatusPerfect
		message = fmt.Sprintf("План полностью покрывает контракт: %.1f ч", scheduled)
	case difference > 0:
		status = models.BalanceStatusDeficit
		message = fmt.Sprintf("Клиенту потребуется ещё %.1f ч сверх запланированных", difference)
	default:
		status = models.BalanceStatusExcess
		message = fmt.Sprintf("%.1f ч останутся невостребованными", -difference)
	}

	return &models.Balance{
		ClientID:           clientID,
		Year:               plan.Year,
		Month:              plan.Month,
		AssignedHours:      assigned,
		ScheduledHours:     scheduled,
		Balance:            difference,
		Status:             status,
		Message:            message,
		LaborableDays:      plan.LaborableDays,
		HolidayWeekendDays: plan.HolidayWeekendDays,
		LaborableHours:     round2(plan.LaborableHours),
		HolidayHours:       round2(plan.HolidayHours),
		Planning:           plan.Planning,
		Reassignments:      plan.Reassignments,
		Warnings:           models.StringList(plan.Warnings),
	}
}
