package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Статусы месячного баланса
const (
	BalanceStatusPerfect = "perfect" // план совпадает с контрактом
	BalanceStatusExcess  = "excess"  // запланировано больше контракта
	BalanceStatusDeficit = "deficit" // запланировано меньше контракта
)

// PlanningEntry - один день планирования месяца
type PlanningEntry struct {
	Date               string  `json:"date"` // "2006-01-02"
	Hours              float64 `json:"hours"`
	AssignmentID       uint    `json:"assignment_id,omitempty"`
	WorkerID           uint    `json:"worker_id,omitempty"`
	IsWeekend          bool    `json:"is_weekend"`
	IsHoliday          bool    `json:"is_holiday"`
	IsLaborableHoliday bool    `json:"is_laborable_holiday"`
}

// ReassignmentRecord - замещение обычной смены праздничной в будний
// праздничный день
type ReassignmentRecord struct {
	Date             string  `json:"date"`
	OriginalWorkerID uint    `json:"original_worker_id"`
	OriginalHours    float64 `json:"original_hours"`
	NewWorkerID      uint    `json:"new_worker_id"`
	NewHours         float64 `json:"new_hours"`
}

// PlanningEntries хранится в БД как JSON
type PlanningEntries []PlanningEntry

func (p PlanningEntries) Value() (driver.Value, error) {
	return jsonColumnValue(p)
}

func (p *PlanningEntries) Scan(value interface{}) error {
	return jsonColumnScan(value, p)
}

// ReassignmentRecords хранится в БД как JSON
type ReassignmentRecords []ReassignmentRecord

func (r ReassignmentRecords) Value() (driver.Value, error) {
	return jsonColumnValue(r)
}

func (r *ReassignmentRecords) Scan(value interface{}) error {
	return jsonColumnScan(value, r)
}

// StringList хранится в БД как JSON
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return jsonColumnValue(l)
}

func (l *StringList) Scan(value interface{}) error {
	return jsonColumnScan(value, l)
}

func jsonColumnValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func jsonColumnScan(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("неподдерживаемый тип значения для JSON колонки")
	}

	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, dest)
}

type Balance struct {
	ID       uint `gorm:"primarykey" json:"id"`
	ClientID uint `gorm:"not null;uniqueIndex:idx_balances_client_month" json:"client_id"`
	Year     int  `gorm:"not null;uniqueIndex:idx_balances_client_month" json:"year"`
	Month    int  `gorm:"not null;check:month >= 1 AND month <= 12;uniqueIndex:idx_balances_client_month" json:"month"`

	// Контрактные и запланированные часы
	AssignedHours  float64 `gorm:"not null;default:0" json:"assigned_hours"`
	ScheduledHours float64 `gorm:"not null;default:0" json:"scheduled_hours"`
	Balance        float64 `gorm:"not null;default:0" json:"balance"` // assigned - scheduled

	Status  string `gorm:"type:varchar(20);not null" json:"status"`
	Message string `json:"message"`

	// Разбивка по типам дней
	LaborableDays      int     `gorm:"not null;default:0" json:"laborable_days"`
	HolidayWeekendDays int     `gorm:"not null;default:0" json:"holiday_weekend_days"`
	LaborableHours     float64 `gorm:"not null;default:0" json:"laborable_hours"`
	HolidayHours       float64 `gorm:"not null;default:0" json:"holiday_hours"`

	Planning      PlanningEntries     `gorm:"type:text" json:"planning"`
	Reassignments ReassignmentRecords `gorm:"type:text" json:"reassignments"`
	Warnings      StringList          `gorm:"type:text" json:"warnings,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Client Client `gorm:"foreignKey:ClientID"`
}

// TableName задает имя таблицы в БД
func (Balance) TableName() string {
	return "balances"
}

// IsDeficit проверяет, что клиент недообслужен
func (b *Balance) IsDeficit() bool {
	return b.Status == BalanceStatusDeficit
}

// IsValid проверяет валидность данных
func (b *Balance) IsValid() bool {
	if b.ClientID == 0 {
		return false
	}
	if b.Month < 1 || b.Month > 12 {
		return false
	}
	if b.ScheduledHours < 0 || b.AssignedHours < 0 {
		return false
	}
	if b.Status != BalanceStatusPerfect && b.Status != BalanceStatusExcess && b.Status != BalanceStatusDeficit {
		return false
	}
	return true
}
