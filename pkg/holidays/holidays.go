package holidays

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// CalendarJSON - структура для парсинга исходного JSON календаря
type CalendarJSON struct {
	Year     int           `json:"year"`
	Holidays []HolidayJSON `json:"holidays"`
}

type HolidayJSON struct {
	Date string `json:"date"` // "2006-01-02"
	Name string `json:"name"`
}

// Entry - разобранная запись праздника
type Entry struct {
	Date  time.Time `json:"date"`
	Name  string    `json:"name"`
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Day   int       `json:"day"`
}

// ParseCalendarJSON парсит JSON файл календаря и возвращает записи праздников
func ParseCalendarJSON(filePath string) ([]Entry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}

	var calendar CalendarJSON
	if err := json.Unmarshal(data, &calendar); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	entries := []Entry{}
	for _, h := range calendar.Holidays {
		date, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date '%s': %w", h.Date, err)
		}

		// Год в записи должен совпадать с годом календаря
		if calendar.Year != 0 && date.Year() != calendar.Year {
			return nil, fmt.Errorf("date '%s' does not belong to calendar year %d", h.Date, calendar.Year)
		}

		entries = append(entries, Entry{
			Date:  date,
			Name:  h.Name,
			Year:  date.Year(),
			Month: int(date.Month()),
			Day:   date.Day(),
		})
	}

	return entries, nil
}

// EntriesForMonth возвращает праздники конкретного месяца
func EntriesForMonth(entries []Entry, year, month int) []Entry {
	result := []Entry{}
	for _, entry := range entries {
		if entry.Year == year && entry.Month == month {
			result = append(result, entry)
		}
	}
	return result
}

// IsHoliday проверяет, является ли дата праздником
func IsHoliday(entries []Entry, date time.Time) bool {
	for _, entry := range entries {
		if entry.Date.Year() == date.Year() &&
			entry.Date.Month() == date.Month() &&
			entry.Date.Day() == date.Day() {
			return true
		}
	}
	return false
}
