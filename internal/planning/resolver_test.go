package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"care-balance-bot/internal/models"
)

func weekdayTemplate() models.WeeklyScheduleTemplate {
	shift := []models.TimeInterval{
		{Start: "08:00", End: "09:30"},
		{Start: "13:00", End: "15:00"},
	}
	return models.WeeklyScheduleTemplate{
		"monday":    shift,
		"tuesday":   shift,
		"wednesday": shift,
		"thursday":  shift,
		"friday":    shift,
	}
}

func weekendTemplate() models.WeeklyScheduleTemplate {
	shift := []models.TimeInterval{{Start: "09:00", End: "10:30"}}
	return models.WeeklyScheduleTemplate{
		"saturday":                shift,
		"sunday":                  shift,
		models.ScheduleKeyHoliday: shift,
	}
}

func newAssignment(id, workerID uint, workerType string, schedule models.WeeklyScheduleTemplate) models.Assignment {
	return models.Assignment{
		ID:        id,
		ClientID:  1,
		WorkerID:  workerID,
		Schedule:  schedule,
		Status:    models.AssignmentStatusActive,
		StartDate: date(2026, time.January, 1),
		CreatedAt: time.Date(2026, time.January, 1, 12, 0, int(id), 0, time.UTC),
		Worker:    models.Worker{ID: workerID, FirstName: "Работник", WorkerType: workerType},
	}
}

func TestResolveDayLaborable(t *testing.T) {
	assignments := []models.Assignment{
		newAssignment(1, 10, models.WorkerTypeLaborable, weekdayTemplate()),
		newAssignment(2, 20, models.WorkerTypeHolidayWeekend, weekendTemplate()),
	}

	res := ResolveDay(assignments, date(2026, time.July, 7), DayClassification{}, nil)

	require.NotNil(t, res.Assignment)
	assert.Equal(t, uint(1), res.Assignment.ID)
	assert.InDelta(t, 3.5, res.Hours, 0.001)
	assert.Nil(t, res.Reassignment)
}

func TestResolveDayWeekendUsesWeekendSlots(t *testing.T) {
	assignments := []models.Assignment{
		newAssignment(1, 10, models.WorkerTypeLaborable, weekdayTemplate()),
		newAssignment(2, 20, models.WorkerTypeHolidayWeekend, weekendTemplate()),
	}

	res := ResolveDay(assignments, date(2026, time.July, 4), DayClassification{IsWeekend: true}, nil)

	require.NotNil(t, res.Assignment)
	assert.Equal(t, uint(2), res.Assignment.ID)
	assert.InDelta(t, 1.5, res.Hours, 0.001)
	// на чистый выходной замещение не фиксируется
	assert.Nil(t, res.Reassignment)
}

func TestResolveDayLaborableHolidayReassignment(t *testing.T) {
	assignments := []models.Assignment{
		newAssignment(1, 10, models.WorkerTypeLaborable, weekdayTemplate()),
		newAssignment(2, 20, models.WorkerTypeHolidayWeekend, weekendTemplate()),
	}
	class := DayClassification{IsHoliday: true, IsLaborableHoliday: true}

	res := ResolveDay(assignments, date(2026, time.July, 6), class, nil)

	require.NotNil(t, res.Assignment)
	assert.Equal(t, uint(2), res.Assignment.ID)
	assert.InDelta(t, 1.5, res.Hours, 0.001)

	require.NotNil(t, res.Reassignment)
	assert.Equal(t, "2026-07-06", res.Reassignment.Date)
	assert.Equal(t, uint(10), res.Reassignment.OriginalWorkerID)
	assert.InDelta(t, 3.5, res.Reassignment.OriginalHours, 0.001)
	assert.Equal(t, uint(20), res.Reassignment.NewWorkerID)
	assert.InDelta(t, 1.5, res.Reassignment.NewHours, 0.001)
}

// Эксклюзивность замещения: без праздничного работника будничный праздник
// дает 0 часов, даже если у будничного назначения есть смена в этот день
func TestResolveDayLaborableHolidayWithoutHolidayWorker(t *testing.T) {
	assignments := []models.Assignment{
		newAssignment(1, 10, models.WorkerTypeLaborable, weekdayTemplate()),
	}
	class := DayClassification{IsHoliday: true, IsLaborableHoliday: true}

	res := ResolveDay(assignments, date(2026, time.July, 6), class, nil)

	assert.Zero(t, res.Hours)
	assert.Nil(t, res.Assignment)
	assert.Nil(t, res.Reassignment)
}

// Один работник типа both закрывает обе корзины; замещение самого себя
// не фиксируется
func TestResolveDayBothWorker(t *testing.T) {
	schedule := weekdayTemplate()
	schedule["saturday"] = []models.TimeInterval{{Start: "09:00", End: "10:30"}}
	schedule[models.ScheduleKeyHoliday] = []models.TimeInterval{{Start: "09:00", End: "10:30"}}

	assignments := []models.Assignment{
		newAssignment(1, 10, models.WorkerTypeBoth, schedule),
	}
	class := DayClassification{IsHoliday: true, IsLaborableHoliday: true}

	res := ResolveDay(assignments, date(2026, time.July, 6), class, nil)

	require.NotNil(t, res.Assignment)
	assert.InDelta(t, 1.5, res.Hours, 0.001)
	assert.Nil(t, res.Reassignment)
}

func TestResolveDayTieBreakMostRecent(t *testing.T) {
	older := newAssignment(1, 10, models.WorkerTypeBoth, weekdayTemplate())
	newer := newAssignment(2, 20, models.WorkerTypeBoth, weekdayTemplate())
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)

	res := ResolveDay([]models.Assignment{older, newer}, date(2026, time.July, 7), DayClassification{}, nil)

	require.NotNil(t, res.Assignment)
	assert.Equal(t, uint(2), res.Assignment.ID)
}

func TestResolveDaySkipsInactiveAndOutOfRange(t *testing.T) {
	inactive := newAssignment(1, 10, models.WorkerTypeLaborable, weekdayTemplate())
	inactive.Status = models.AssignmentStatusInactive

	expired := newAssignment(2, 20, models.WorkerTypeLaborable, weekdayTemplate())
	end := date(2026, time.June, 30)
	expired.EndDate = &end

	res := ResolveDay([]models.Assignment{inactive, expired}, date(2026, time.July, 7), DayClassification{}, nil)

	assert.Zero(t, res.Hours)
	assert.Nil(t, res.Assignment)
}
