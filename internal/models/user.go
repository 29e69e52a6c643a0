package models

import (
	"time"
)

type Role string

// Роли пользователей бота
const (
	RoleCoordinator string = "coordinator"
	RoleAdmin       string = "admin"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ChatID    int64     `gorm:"uniqueIndex;not null" json:"chat_id"`
	Username  string    `json:"username"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `gorm:"default:'coordinator'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsAdmin проверяет, является ли пользователь администратором
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// SetRole устанавливает роль
func (u *User) SetRole(role Role) {
	u.Role = string(role)
}

// TableName задает имя таблицы в БД
func (User) TableName() string {
	return "users"
}
