package repository

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"care-balance-bot/internal/models"
)

type AssignmentRepository interface {
	Create(assignment *models.Assignment) error
	GetByID(id uint) (*models.Assignment, error)
	GetByClient(clientID uint) ([]models.Assignment, error)
	GetActiveByClient(clientID uint) ([]models.Assignment, error)
	Deactivate(id uint) error
}

type GormAssignmentRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormAssignmentRepository(db *gorm.DB) (*GormAssignmentRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.Assignment{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate assignments table")
		return nil, err
	}

	return &GormAssignmentRepository{db: db, logger: logger}, nil
}

func (r *GormAssignmentRepository) Create(assignment *models.Assignment) error {
	r.logger.WithFields(logrus.Fields{
		"client_id": assignment.ClientID,
		"worker_id": assignment.WorkerID,
	}).Debug("Creating assignment")

	if !assignment.IsValid() {
		return errors.New("некорректные данные назначения")
	}

	result := r.db.Create(assignment)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create assignment")
		return result.Error
	}

	return nil
}

func (r *GormAssignmentRepository) GetByID(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	result := r.db.Preload("Worker").Preload("Client").First(&assignment, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get assignment by ID")
		return nil, result.Error
	}

	return &assignment, nil
}

func (r *GormAssignmentRepository) GetByClient(clientID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	result := r.db.Preload("Worker").
		Where("client_id = ?", clientID).
		Order("created_at ASC, id ASC").
		Find(&assignments)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get assignments by client")
		return nil, result.Error
	}

	return assignments, nil
}

// GetActiveByClient возвращает активные назначения клиента с подгруженными
// работниками - вход для расчёта баланса
func (r *GormAssignmentRepository) GetActiveByClient(clientID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	result := r.db.Preload("Worker").
		Where("client_id = ? AND status = ?", clientID, models.AssignmentStatusActive).
		Order("created_at ASC, id ASC").
		Find(&assignments)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get active assignments by client")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"client_id": clientID,
		"count":     len(assignments),
	}).Debug("Retrieved active assignments")

	return assignments, nil
}

func (r *GormAssignmentRepository) Deactivate(id uint) error {
	result := r.db.Model(&models.Assignment{}).
		Where("id = ?", id).
		Update("status", models.AssignmentStatusInactive)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to deactivate assignment")
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("назначение не найдено")
	}

	return nil
}
