package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"care-balance-bot/internal/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	calendar := NewHolidayCalendar([]models.Holiday{
		{Date: date(2026, time.July, 6), Name: "Городской праздник"},  // понедельник
		{Date: date(2026, time.July, 25), Name: "Областной праздник"}, // суббота
	})

	tests := []struct {
		name     string
		date     time.Time
		expected DayClassification
	}{
		{
			name:     "обычный будний день",
			date:     date(2026, time.July, 7), // вторник
			expected: DayClassification{},
		},
		{
			name:     "суббота",
			date:     date(2026, time.July, 4),
			expected: DayClassification{IsWeekend: true},
		},
		{
			name:     "воскресенье",
			date:     date(2026, time.July, 5),
			expected: DayClassification{IsWeekend: true},
		},
		{
			name: "праздник в будний день",
			date: date(2026, time.July, 6),
			expected: DayClassification{
				IsHoliday:          true,
				IsLaborableHoliday: true,
			},
		},
		{
			name: "праздник в субботу не считается будничным праздником",
			date: date(2026, time.July, 25),
			expected: DayClassification{
				IsWeekend: true,
				IsHoliday: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.date, calendar))
		})
	}
}

func TestClassifyEmptyCalendar(t *testing.T) {
	calendar := NewHolidayCalendar(nil)

	for day := 1; day <= 31; day++ {
		d := date(2026, time.July, day)
		class := Classify(d, calendar)

		assert.False(t, class.IsHoliday, "день %d", day)
		assert.False(t, class.IsLaborableHoliday, "день %d", day)

		weekday := d.Weekday()
		assert.Equal(t, weekday == time.Saturday || weekday == time.Sunday, class.IsWeekend, "день %d", day)
	}
}
