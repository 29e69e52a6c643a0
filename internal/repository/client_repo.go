package repository

import (
	"errors"

	"gorm.io/gorm"

	"care-balance-bot/internal/models"
)

type ClientRepository interface {
	Create(client *models.Client) error
	GetByID(id uint) (*models.Client, error)
	GetAll() ([]*models.Client, error)
	UpdateMonthlyHours(id uint, monthlyHours float64) error
}

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) (*GormClientRepository, error) {
	if err := db.AutoMigrate(&models.Client{}); err != nil {
		return nil, err
	}

	return &GormClientRepository{db: db}, nil
}

func (r *GormClientRepository) Create(client *models.Client) error {
	if !client.IsValid() {
		return errors.New("некорректные данные клиента")
	}
	return r.db.Create(client).Error
}

func (r *GormClientRepository) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	result := r.db.First(&client, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &client, nil
}

func (r *GormClientRepository) GetAll() ([]*models.Client, error) {
	var clients []*models.Client
	result := r.db.Order("id ASC").Find(&clients)

	if result.Error != nil {
		return nil, result.Error
	}

	return clients, nil
}

func (r *GormClientRepository) UpdateMonthlyHours(id uint, monthlyHours float64) error {
	if monthlyHours < 0 {
		return errors.New("квота часов не может быть отрицательной")
	}

	result := r.db.Model(&models.Client{}).
		Where("id = ?", id).
		Update("monthly_hours", monthlyHours)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("клиент не найден")
	}

	return nil
}
