package models

import (
	"fmt"
	"time"
)

// Типы работников по обслуживаемым дням
const (
	WorkerTypeLaborable      = "laborable"       // только будние рабочие дни
	WorkerTypeHolidayWeekend = "holiday_weekend" // выходные и праздники
	WorkerTypeBoth           = "both"            // все типы дней
)

type Worker struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	FirstName  string    `gorm:"not null" json:"first_name"`
	LastName   string    `json:"last_name"`
	WorkerType string    `gorm:"type:varchar(20);not null;default:'laborable'" json:"worker_type"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName задает имя таблицы в БД
func (Worker) TableName() string {
	return "workers"
}

// CoversHolidayWeekend проверяет, обслуживает ли работник выходные и праздничные дни
func (w *Worker) CoversHolidayWeekend() bool {
	return w.WorkerType == WorkerTypeHolidayWeekend || w.WorkerType == WorkerTypeBoth
}

// CoversLaborable проверяет, обслуживает ли работник будние рабочие дни
func (w *Worker) CoversLaborable() bool {
	return w.WorkerType == WorkerTypeLaborable || w.WorkerType == WorkerTypeBoth
}

// FullName возвращает полное имя работника
func (w *Worker) FullName() string {
	if w.LastName == "" {
		return w.FirstName
	}
	return fmt.Sprintf("%s %s", w.FirstName, w.LastName)
}

// IsValid проверяет валидность данных
func (w *Worker) IsValid() bool {
	if w.FirstName == "" {
		return false
	}
	switch w.WorkerType {
	case WorkerTypeLaborable, WorkerTypeHolidayWeekend, WorkerTypeBoth:
		return true
	}
	return false
}
