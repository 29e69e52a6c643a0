package planning

import (
	"time"

	"care-balance-bot/internal/models"
)

// MonthPlan - результат планирования одного месяца для одного клиента.
// Чистая функция входных данных: повторный расчёт дает идентичный результат.
type MonthPlan struct {
	Year  int
	Month int

	Planning      []models.PlanningEntry
	Reassignments []models.ReassignmentRecord

	LaborableDays      int
	HolidayWeekendDays int
	LaborableHours     float64
	HolidayHours       float64
	ScheduledHours     float64

	Warnings Warnings
}

// DaysInMonth возвращает число дней в месяце
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PlanMonth обходит все календарные дни месяца, классифицирует каждый и
// распределяет его между назначениями клиента. Каждый день получает ровно
// одну запись планирования, в том числе дни с нулевыми часами.
func PlanMonth(year, month int, assignments []models.Assignment, holidays []models.Holiday) MonthPlan {
	calendar := NewHolidayCalendar(holidays)
	days := DaysInMonth(year, month)

	plan := MonthPlan{
		Year:     year,
		Month:    month,
		Planning: make([]models.PlanningEntry, 0, days),
	}

	for day := 1; day <= days; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		class := Classify(date, calendar)
		resolution := ResolveDay(assignments, date, class, &plan.Warnings)

		entry := models.PlanningEntry{
			Date:               date.Format("2006-01-02"),
			Hours:              resolution.Hours,
			IsWeekend:          class.IsWeekend,
			IsHoliday:          class.IsHoliday,
			IsLaborableHoliday: class.IsLaborableHoliday,
		}
		if resolution.Assignment != nil {
			entry.AssignmentID = resolution.Assignment.ID
			entry.WorkerID = resolution.Assignment.WorkerID
		}
		plan.Planning = append(plan.Planning, entry)

		if class.IsWeekend || class.IsHoliday {
			plan.HolidayWeekendDays++
			plan.HolidayHours += resolution.Hours
		} else {
			plan.LaborableDays++
			plan.LaborableHours += resolution.Hours
		}
		plan.ScheduledHours += resolution.Hours

		if resolution.Reassignment != nil {
			plan.Reassignments = append(plan.Reassignments, *resolution.Reassignment)
		}
	}

	return plan
}
