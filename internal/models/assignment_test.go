package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayKey(t *testing.T) {
	assert.Equal(t, "monday", WeekdayKey(time.Monday))
	assert.Equal(t, "saturday", WeekdayKey(time.Saturday))
	assert.Equal(t, "sunday", WeekdayKey(time.Sunday))
}

func TestIsScheduleKey(t *testing.T) {
	assert.True(t, IsScheduleKey("wednesday"))
	assert.True(t, IsScheduleKey(ScheduleKeyHoliday))
	assert.False(t, IsScheduleKey("Monday"))
	assert.False(t, IsScheduleKey("someday"))
}

func TestAssignmentActiveOn(t *testing.T) {
	end := time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)
	assignment := Assignment{
		ClientID:  1,
		WorkerID:  1,
		Status:    AssignmentStatusActive,
		StartDate: time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	}

	assert.False(t, assignment.ActiveOn(time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC)))
	assert.True(t, assignment.ActiveOn(time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC)))
	assert.True(t, assignment.ActiveOn(time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, assignment.ActiveOn(time.Date(2026, time.July, 16, 0, 0, 0, 0, time.UTC)))

	assignment.Status = AssignmentStatusInactive
	assert.False(t, assignment.ActiveOn(time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)))
}

func TestWeeklyScheduleTemplateScanValue(t *testing.T) {
	template := WeeklyScheduleTemplate{
		"monday": {{Start: "08:00", End: "09:30"}},
	}

	value, err := template.Value()
	require.NoError(t, err)

	var restored WeeklyScheduleTemplate
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, template, restored)

	var empty WeeklyScheduleTemplate
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)
}
