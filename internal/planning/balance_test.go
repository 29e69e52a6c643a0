package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"care-balance-bot/internal/models"
)

func TestBuildBalanceStatusBoundaries(t *testing.T) {
	client := &models.Client{ID: 1, FirstName: "Мария", MonthlyHours: 90.5}

	tests := []struct {
		name      string
		scheduled float64
		status    string
	}{
		{"точное совпадение", 90.5, models.BalanceStatusPerfect},
		{"в пределах допуска снизу", 90.45, models.BalanceStatusPerfect},
		{"в пределах допуска сверху", 90.55, models.BalanceStatusPerfect},
		{"недобор", 90.3, models.BalanceStatusDeficit},
		{"перебор", 91.0, models.BalanceStatusExcess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := BuildBalance(client, MonthPlan{Year: 2026, Month: 7, ScheduledHours: tt.scheduled})

			assert.Equal(t, tt.status, balance.Status)
			assert.InDelta(t, 90.5-tt.scheduled, balance.Balance, 0.001)
			assert.True(t, balance.IsValid())
		})
	}
}

// Сценарий A целиком: план месяца сходится с контрактом в ноль
func TestBuildBalancePerfectMonth(t *testing.T) {
	client := &models.Client{ID: 1, FirstName: "Мария", MonthlyHours: 90.5}
	assignments := []models.Assignment{
		newAssignment(1, 10, models.WorkerTypeLaborable, weekdayTemplate()),
		newAssignment(2, 20, models.WorkerTypeHolidayWeekend, weekendTemplate()),
	}

	plan := PlanMonth(2026, 7, assignments, july2026Holidays())
	balance := BuildBalance(client, plan)

	assert.Equal(t, models.BalanceStatusPerfect, balance.Status)
	assert.InDelta(t, 90.5, balance.ScheduledHours, 0.001)
	assert.Zero(t, balance.Balance)
	assert.Equal(t, 22, balance.LaborableDays)
	assert.Equal(t, 9, balance.HolidayWeekendDays)
	require.Len(t, balance.Planning, 31)
	require.Len(t, balance.Reassignments, 1)
}

// Сценарий D: без назначений запланировано 0 часов, весь контракт в недоборе
func TestBuildBalanceNoAssignments(t *testing.T) {
	client := &models.Client{ID: 1, FirstName: "Мария", MonthlyHours: 90.5}

	plan := PlanMonth(2026, 7, nil, july2026Holidays())
	balance := BuildBalance(client, plan)

	assert.Zero(t, balance.ScheduledHours)
	assert.Equal(t, models.BalanceStatusDeficit, balance.Status)
	assert.InDelta(t, 90.5, balance.Balance, 0.001)
	assert.Contains(t, balance.Message, "90.5")
}

// Предупреждения расчёта попадают в баланс
func TestBuildBalanceCarriesWarnings(t *testing.T) {
	broken := weekdayTemplate()
	broken["monday"] = []models.TimeInterval{
		{Start: "09:30", End: "09:00"},
		{Start: "13:00", End: "15:00"},
	}
	assignments := []models.Assignment{
		newAssignment(1, 10, models.WorkerTypeLaborable, broken),
	}

	plan := PlanMonth(2026, 7, assignments, nil)
	balance := BuildBalance(&models.Client{ID: 1, FirstName: "Мария", MonthlyHours: 80}, plan)

	assert.NotEmpty(t, balance.Warnings)
	// понедельники дают только валидный интервал в 2 часа
	for _, entry := range balance.Planning {
		if entry.Date == "2026-07-13" {
			assert.InDelta(t, 2.0, entry.Hours, 0.001)
		}
	}
}

func TestBuildBalanceNilClient(t *testing.T) {
	balance := BuildBalance(nil, MonthPlan{Year: 2026, Month: 7})

	assert.Zero(t, balance.AssignedHours)
	assert.Equal(t, models.BalanceStatusPerfect, balance.Status)
}
