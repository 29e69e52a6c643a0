package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Статусы назначений
const (
	AssignmentStatusActive   = "active"
	AssignmentStatusInactive = "inactive"
)

// ScheduleKeyHoliday - специальный ключ шаблона для праздничных дней,
// выпадающих на будни
const ScheduleKeyHoliday = "holiday"

// TimeInterval - один интервал обслуживания в формате "HH:MM"
type TimeInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklyScheduleTemplate - недельный шаблон обслуживания: ключ - название
// дня недели в нижнем регистре (monday..sunday) или "holiday", значение -
// список интервалов. Отсутствующий или пустой ключ означает, что в этот
// день обслуживания нет.
type WeeklyScheduleTemplate map[string][]TimeInterval

// weekdayKeys - названия дней недели в порядке time.Weekday
var weekdayKeys = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayKey возвращает ключ шаблона для дня недели
func WeekdayKey(wd time.Weekday) string {
	return weekdayKeys[int(wd)]
}

// IsScheduleKey проверяет, допустим ли ключ в недельном шаблоне
func IsScheduleKey(key string) bool {
	if key == ScheduleKeyHoliday {
		return true
	}
	for _, name := range weekdayKeys {
		if key == name {
			return true
		}
	}
	return false
}

// Value сериализует шаблон в JSON для хранения в текстовой колонке
func (t WeeklyScheduleTemplate) Value() (driver.Value, error) {
	if t == nil {
		return "{}", nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan восстанавливает шаблон из значения БД
func (t *WeeklyScheduleTemplate) Scan(value interface{}) error {
	if value == nil {
		*t = WeeklyScheduleTemplate{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("неподдерживаемый тип значения для шаблона расписания")
	}

	if len(data) == 0 {
		*t = WeeklyScheduleTemplate{}
		return nil
	}

	return json.Unmarshal(data, t)
}

type Assignment struct {
	ID        uint                   `gorm:"primarykey" json:"id"`
	ClientID  uint                   `gorm:"not null;index" json:"client_id"`
	WorkerID  uint                   `gorm:"not null;index" json:"worker_id"`
	Schedule  WeeklyScheduleTemplate `gorm:"type:text;not null" json:"schedule"`
	Status    string                 `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	StartDate time.Time              `gorm:"type:date;not null" json:"start_date"`
	EndDate   *time.Time             `gorm:"type:date" json:"end_date"`
	CreatedAt time.Time              `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time              `gorm:"autoUpdateTime" json:"updated_at"`

	Client Client `gorm:"foreignKey:ClientID" json:"client"`
	Worker Worker `gorm:"foreignKey:WorkerID" json:"worker"`
}

// TableName задает имя таблицы в БД
func (Assignment) TableName() string {
	return "assignments"
}

// IsActive проверяет, что назначение активно
func (a *Assignment) IsActive() bool {
	return a.Status == AssignmentStatusActive
}

// ActiveOn проверяет, что назначение действует на указанную дату
func (a *Assignment) ActiveOn(date time.Time) bool {
	if !a.IsActive() {
		return false
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if !a.StartDate.IsZero() {
		start := time.Date(a.StartDate.Year(), a.StartDate.Month(), a.StartDate.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(start) {
			return false
		}
	}
	if a.EndDate != nil && !a.EndDate.IsZero() {
		end := time.Date(a.EndDate.Year(), a.EndDate.Month(), a.EndDate.Day(), 0, 0, 0, 0, time.UTC)
		if day.After(end) {
			return false
		}
	}
	return true
}

// IsValid проверяет валидность данных
func (a *Assignment) IsValid() bool {
	if a.ClientID == 0 || a.WorkerID == 0 {
		return false
	}
	if a.Status != AssignmentStatusActive && a.Status != AssignmentStatusInactive {
		return false
	}
	for key := range a.Schedule {
		if !IsScheduleKey(key) {
			return false
		}
	}
	return true
}
