package repository

import (
	"errors"

	"gorm.io/gorm"

	"care-balance-bot/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByChatID(chatID int64) (*models.User, error)
	Update(user *models.User) error
	UpdateRole(chatID int64, role models.Role) error
	GetAll() ([]*models.User, error)
	GetAdmins() ([]*models.User, error)
	Exists(chatID int64) (bool, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) (*GormUserRepository, error) {
	// Автомиграция - создает таблицу если ее нет
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, err
	}

	return &GormUserRepository{db: db}, nil
}

func (r *GormUserRepository) Create(user *models.User) error {
	var existing models.User
	result := r.db.Where("chat_id = ?", user.ChatID).First(&existing)
	if result.Error == nil {
		return errors.New("пользователь уже существует")
	}

	return r.db.Create(user).Error
}

func (r *GormUserRepository) GetByChatID(chatID int64) (*models.User, error) {
	var user models.User
	result := r.db.Where("chat_id = ?", chatID).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

func (r *GormUserRepository) Update(user *models.User) error {
	var existing models.User
	result := r.db.Where("chat_id = ?", user.ChatID).First(&existing)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return errors.New("пользователь не найден")
	}

	return r.db.Save(user).Error
}

func (r *GormUserRepository) UpdateRole(chatID int64, role models.Role) error {
	result := r.db.Model(&models.User{}).
		Where("chat_id = ?", chatID).
		Update("role", string(role))

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("пользователь не найден")
	}

	return nil
}

func (r *GormUserRepository) GetAll() ([]*models.User, error) {
	var users []*models.User
	result := r.db.Find(&users)

	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (r *GormUserRepository) GetAdmins() ([]*models.User, error) {
	var admins []*models.User
	result := r.db.Where("role = ?", models.RoleAdmin).Find(&admins)

	if result.Error != nil {
		return nil, result.Error
	}

	return admins, nil
}

func (r *GormUserRepository) Exists(chatID int64) (bool, error) {
	var count int64
	result := r.db.Model(&models.User{}).Where("chat_id = ?", chatID).Count(&count)

	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
