package planning

import (
	"time"

	"care-balance-bot/internal/models"
)

// DayResolution - итог распределения одного дня: сколько часов и каким
// назначением он обслужен, и было ли замещение.
type DayResolution struct {
	Hours        float64
	Assignment   *models.Assignment
	Reassignment *models.ReassignmentRecord
}

// pickAssignment выбирает назначение нужной корзины, действующее на дату.
// Если подходит несколько (например два работника типа both), побеждает
// последнее созданное: по CreatedAt, при равенстве - по ID.
func pickAssignment(assignments []models.Assignment, date time.Time, covers func(*models.Worker) bool) *models.Assignment {
	var picked *models.Assignment
	for i := range assignments {
		a := &assignments[i]
		if !a.ActiveOn(date) {
			continue
		}
		if !covers(&a.Worker) {
			continue
		}
		if picked == nil {
			picked = a
			continue
		}
		if a.CreatedAt.After(picked.CreatedAt) ||
			(a.CreatedAt.Equal(picked.CreatedAt) && a.ID > picked.ID) {
			picked = a
		}
	}
	return picked
}

// ResolveDay определяет, какое назначение обслуживает клиента в указанный
// день, и применяет правило замещения:
//   - выходной или праздник обслуживает только назначение работника типа
//     holiday_weekend/both; если его нет, день дает 0 часов - шаблон
//     будничного работника в такие дни не используется;
//   - праздник в будний день берет часы из праздничного слота (или
//     дневного слота праздничного назначения) и фиксирует замещение,
//     если будничный работник в этот день должен был работать;
//   - обычный будний день обслуживает назначение работника типа
//     laborable/both.
func ResolveDay(assignments []models.Assignment, date time.Time, class DayClassification, warnings *Warnings) DayResolution {
	holidayAssignment := pickAssignment(assignments, date, (*models.Worker).CoversHolidayWeekend)
	laborableAssignment := pickAssignment(assignments, date, (*models.Worker).CoversLaborable)

	if class.IsWeekend || class.IsHoliday {
		if holidayAssignment == nil {
			return DayResolution{}
		}

		hours := DayHours(holidayAssignment.Schedule, date, class.IsLaborableHoliday, warnings)
		resolution := DayResolution{
			Hours:      hours,
			Assignment: holidayAssignment,
		}

		// Замещение фиксируется только когда будничный работник в этот
		// день действительно терял часы
		if class.IsLaborableHoliday && laborableAssignment != nil && laborableAssignment.ID != holidayAssignment.ID {
			originalHours := DayHours(laborableAssignment.Schedule, date, false, warnings)
			if originalHours > 0 {
				resolution.Reassignment = &models.ReassignmentRecord{
					Date:             date.Format("2006-01-02"),
					OriginalWorkerID: laborableAssignment.WorkerID,
					OriginalHours:    originalHours,
					NewWorkerID:      holidayAssignment.WorkerID,
					NewHours:         hours,
				}
			}
		}

		return resolution
	}

	if laborableAssignment == nil {
		return DayResolution{}
	}

	return DayResolution{
		Hours:      DayHours(laborableAssignment.Schedule, date, false, warnings),
		Assignment: laborableAssignment,
	}
}
