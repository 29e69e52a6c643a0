package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"care-balance-bot/internal/models"
)

func TestSlotHours(t *testing.T) {
	var warnings Warnings

	hours := SlotHours([]models.TimeInterval{
		{Start: "08:00", End: "09:30"},
		{Start: "13:00", End: "15:00"},
	}, &warnings)

	assert.InDelta(t, 3.5, hours, 0.001)
	assert.Empty(t, warnings)
}

// Сценарий C: битый интервал дает 0 часов и предупреждение, остальные
// интервалы дня считаются как обычно
func TestSlotHoursMalformedInterval(t *testing.T) {
	tests := []struct {
		name      string
		intervals []models.TimeInterval
		expected  float64
		warnCount int
	}{
		{
			name: "окончание раньше начала",
			intervals: []models.TimeInterval{
				{Start: "09:30", End: "09:00"},
				{Start: "13:00", End: "15:00"},
			},
			expected:  2.0,
			warnCount: 1,
		},
		{
			name: "нечитаемое время",
			intervals: []models.TimeInterval{
				{Start: "late", End: "10:00"},
				{Start: "08:00", End: "25:99"},
				{Start: "10:00", End: "11:00"},
			},
			expected:  1.0,
			warnCount: 2,
		},
		{
			name: "нулевая длительность",
			intervals: []models.TimeInterval{
				{Start: "09:00", End: "09:00"},
			},
			expected:  0,
			warnCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings Warnings
			hours := SlotHours(tt.intervals, &warnings)

			assert.InDelta(t, tt.expected, hours, 0.001)
			assert.Len(t, warnings, tt.warnCount)
		})
	}
}

func TestDayHours(t *testing.T) {
	template := models.WeeklyScheduleTemplate{
		"monday":  {{Start: "08:00", End: "09:30"}, {Start: "13:00", End: "15:00"}},
		"tuesday": {},
		models.ScheduleKeyHoliday: {{Start: "09:00", End: "10:30"}},
	}

	monday := time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2026, time.July, 8, 0, 0, 0, 0, time.UTC)

	t.Run("дневной слот по дню недели", func(t *testing.T) {
		assert.InDelta(t, 3.5, DayHours(template, monday, false, nil), 0.001)
	})

	t.Run("пустой ключ дает ноль", func(t *testing.T) {
		tuesday := time.Date(2026, time.July, 7, 0, 0, 0, 0, time.UTC)
		assert.Zero(t, DayHours(template, tuesday, false, nil))
	})

	t.Run("отсутствующий ключ дает ноль", func(t *testing.T) {
		assert.Zero(t, DayHours(template, wednesday, false, nil))
	})

	t.Run("праздничный слот замещает дневной", func(t *testing.T) {
		assert.InDelta(t, 1.5, DayHours(template, monday, true, nil), 0.001)
	})

	t.Run("без праздничного ключа используется дневной слот", func(t *testing.T) {
		plain := models.WeeklyScheduleTemplate{
			"monday": {{Start: "08:00", End: "12:00"}},
		}
		assert.InDelta(t, 4.0, DayHours(plain, monday, true, nil), 0.001)
	})
}
