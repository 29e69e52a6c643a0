package planning

import (
	"fmt"
	"time"

	"care-balance-bot/internal/models"
)

// Warnings накапливает некритичные проблемы расчёта. Битые данные одного
// интервала не должны срывать расчёт всего месяца.
type Warnings []string

// Addf добавляет предупреждение
func (w *Warnings) Addf(format string, args ...interface{}) {
	*w = append(*w, fmt.Sprintf(format, args...))
}

// parseClock разбирает время "HH:MM"
func parseClock(value string) (time.Time, error) {
	return time.Parse("15:04", value)
}

// intervalHours возвращает длительность интервала в часах (десятичных)
func intervalHours(interval models.TimeInterval) (float64, error) {
	start, err := parseClock(interval.Start)
	if err != nil {
		return 0, fmt.Errorf("некорректное время начала %q", interval.Start)
	}

	end, err := parseClock(interval.End)
	if err != nil {
		return 0, fmt.Errorf("некорректное время окончания %q", interval.End)
	}

	duration := end.Sub(start)
	if duration <= 0 {
		return 0, fmt.Errorf("окончание %q не позже начала %q", interval.End, interval.Start)
	}

	return duration.Hours(), nil
}

// SlotHours суммирует длительности интервалов одного дня шаблона.
// Интервалы независимы и просто складываются; пересечения не
// дедуплицируются - исходные расписания считаются корректными.
// Битый интервал дает 0 часов и предупреждение.
func SlotHours(intervals []models.TimeInterval, warnings *Warnings) float64 {
	total := 0.0
	for _, interval := range intervals {
		hours, err := intervalHours(interval)
		if err != nil {
			if warnings != nil {
				warnings.Addf("интервал пропущен: %v", err)
			}
			continue
		}
		total += hours
	}
	return total
}

// DayHours возвращает часы обслуживания по шаблону на дату. При
// useHolidaySlot и непустом ключе "holiday" используется праздничный
// слот, иначе - слот по названию дня недели.
func DayHours(template models.WeeklyScheduleTemplate, date time.Time, useHolidaySlot bool, warnings *Warnings) float64 {
	if useHolidaySlot {
		if slots := template[models.ScheduleKeyHoliday]; len(slots) > 0 {
			return SlotHours(slots, warnings)
		}
	}
	return SlotHours(template[models.WeekdayKey(date.Weekday())], warnings)
}
