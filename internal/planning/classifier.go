package planning

import (
	"time"

	"care-balance-bot/internal/models"
)

// DayClassification - классификация календарного дня. Вычисляется на лету,
// в БД не хранится.
type DayClassification struct {
	IsWeekend          bool
	IsHoliday          bool
	IsLaborableHoliday bool // праздник, выпавший на будний день
}

// HolidayCalendar - множество праздничных дат: ключ "2006-01-02",
// значение - название праздника. Пустой календарь валиден: все будни
// считаются рабочими.
type HolidayCalendar map[string]string

// NewHolidayCalendar строит календарь из записей праздников
func NewHolidayCalendar(holidays []models.Holiday) HolidayCalendar {
	calendar := HolidayCalendar{}
	for _, h := range holidays {
		calendar[h.Date.Format("2006-01-02")] = h.Name
	}
	return calendar
}

// Contains проверяет, есть ли дата в календаре праздников
func (c HolidayCalendar) Contains(date time.Time) bool {
	_, ok := c[date.Format("2006-01-02")]
	return ok
}

// Classify классифицирует дату относительно календаря праздников
func Classify(date time.Time, calendar HolidayCalendar) DayClassification {
	weekday := date.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday
	isHoliday := calendar.Contains(date)

	return DayClassification{
		IsWeekend:          isWeekend,
		IsHoliday:          isHoliday,
		IsLaborableHoliday: isHoliday && !isWeekend,
	}
}
