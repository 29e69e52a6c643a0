package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"care-balance-bot/internal/models"
	"care-balance-bot/internal/repository"
	"care-balance-bot/pkg/holidays"
)

type HolidayService struct {
	repo repository.HolidayRepository
}

func NewHolidayService(repo repository.HolidayRepository) *HolidayService {
	return &HolidayService{repo: repo}
}

// ImportFromJSON загружает календарь праздников из JSON файла в базу.
// Старые записи того же года удаляются, чтобы избежать дублирования.
func (s *HolidayService) ImportFromJSON(filePath string) (int, error) {
	entries, err := holidays.ParseCalendarJSON(filePath)
	if err != nil {
		return 0, err
	}

	var rows []models.Holiday
	years := map[int]bool{}
	for _, entry := range entries {
		years[entry.Year] = true
		rows = append(rows, models.Holiday{
			Date:  entry.Date,
			Name:  entry.Name,
			Year:  entry.Year,
			Month: entry.Month,
			Day:   entry.Day,
		})
	}

	for year := range years {
		if err := s.repo.DeleteByYear(year); err != nil {
			logrus.Warnf("Failed to delete old holidays for year %d: %v", year, err)
		}
	}

	if err := s.repo.BulkCreate(rows); err != nil {
		return 0, err
	}

	return len(rows), nil
}

// GetForMonth возвращает праздники указанного месяца
func (s *HolidayService) GetForMonth(year, month int) ([]models.Holiday, error) {
	return s.repo.GetByYearMonth(year, month)
}

// IsHoliday проверяет, является ли дата праздником
func (s *HolidayService) IsHoliday(date time.Time) (bool, error) {
	return s.repo.IsHoliday(date)
}

// FormatMonth форматирует список праздников месяца
func (s *HolidayService) FormatMonth(year, month int, list []models.Holiday) string {
	monthName := time.Month(month).String()

	if len(list) == 0 {
		return fmt.Sprintf("📭 В %s %d праздников нет", monthName, year)
	}

	var result strings.Builder
	fmt.Fprintf(&result, "🎉 Праздники: %s %d\n\n", monthName, year)
	for _, h := range list {
		weekday := h.Date.Weekday()
		marker := ""
		if weekday != time.Saturday && weekday != time.Sunday {
			marker = " (будний день - смены замещаются)"
		}
		fmt.Fprintf(&result, "• %02d.%02d - %s%s\n", h.Day, h.Month, h.Name, marker)
	}

	return result.String()
}
