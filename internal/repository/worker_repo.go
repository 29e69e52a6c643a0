package repository

import (
	"errors"

	"gorm.io/gorm"

	"care-balance-bot/internal/models"
)

type WorkerRepository interface {
	Create(worker *models.Worker) error
	GetByID(id uint) (*models.Worker, error)
	GetAll() ([]*models.Worker, error)
	Update(worker *models.Worker) error
}

type GormWorkerRepository struct {
	db *gorm.DB
}

func NewGormWorkerRepository(db *gorm.DB) (*GormWorkerRepository, error) {
	if err := db.AutoMigrate(&models.Worker{}); err != nil {
		return nil, err
	}

	return &GormWorkerRepository{db: db}, nil
}

func (r *GormWorkerRepository) Create(worker *models.Worker) error {
	if !worker.IsValid() {
		return errors.New("некорректные данные работника")
	}
	return r.db.Create(worker).Error
}

func (r *GormWorkerRepository) GetByID(id uint) (*models.Worker, error) {
	var worker models.Worker
	result := r.db.First(&worker, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &worker, nil
}

func (r *GormWorkerRepository) GetAll() ([]*models.Worker, error) {
	var workers []*models.Worker
	result := r.db.Order("id ASC").Find(&workers)

	if result.Error != nil {
		return nil, result.Error
	}

	return workers, nil
}

func (r *GormWorkerRepository) Update(worker *models.Worker) error {
	if !worker.IsValid() {
		return errors.New("некорректные данные работника")
	}
	return r.db.Save(worker).Error
}
