package models

import (
	"fmt"
	"time"
)

type Client struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	FirstName    string    `gorm:"not null" json:"first_name"`
	LastName     string    `json:"last_name"`
	MonthlyHours float64   `gorm:"not null;default:0" json:"monthly_hours"` // контрактная квота часов в месяц
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName задает имя таблицы в БД
func (Client) TableName() string {
	return "clients"
}

// FullName возвращает полное имя клиента
func (c *Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// IsValid проверяет валидность данных
func (c *Client) IsValid() bool {
	if c.FirstName == "" {
		return false
	}
	if c.MonthlyHours < 0 {
		return false
	}
	return true
}
