package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"care-balance-bot/internal/models"
)

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template models.WeeklyScheduleTemplate
		problems int
	}{
		{
			name: "корректный шаблон",
			template: models.WeeklyScheduleTemplate{
				"monday":                  {{Start: "08:00", End: "09:30"}},
				"saturday":                {{Start: "09:00", End: "10:30"}},
				models.ScheduleKeyHoliday: {{Start: "09:00", End: "10:30"}},
			},
			problems: 0,
		},
		{
			name:     "пустой шаблон валиден",
			template: models.WeeklyScheduleTemplate{},
			problems: 0,
		},
		{
			name: "неизвестный ключ",
			template: models.WeeklyScheduleTemplate{
				"someday": {{Start: "08:00", End: "09:00"}},
			},
			problems: 1,
		},
		{
			name: "нечитаемое время и пустой интервал",
			template: models.WeeklyScheduleTemplate{
				"monday":  {{Start: "8am", End: "09:00"}},
				"tuesday": {{Start: "10:00", End: "09:00"}},
			},
			problems: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ValidateTemplate(tt.template), tt.problems)
		})
	}
}

func TestFormatAssignmentsEmpty(t *testing.T) {
	service := NewAssignmentService(nil, nil, nil)

	text := service.FormatAssignments(nil)
	assert.Contains(t, text, "нет активных назначений")
}

func TestFormatAssignments(t *testing.T) {
	service := NewAssignmentService(nil, nil, nil)

	text := service.FormatAssignments(testAssignments())
	assert.Contains(t, text, "Анна")
	assert.Contains(t, text, "Ольга")
	assert.Contains(t, text, "08:00-09:30")
	assert.Contains(t, text, "Праздник")
}
