package repository

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"care-balance-bot/internal/models"
)

type BalanceRepository interface {
	Upsert(balance *models.Balance) error
	GetByClientAndMonth(clientID uint, year, month int) (*models.Balance, error)
	GetByMonth(year, month int) ([]*models.Balance, error)
	GetByClient(clientID uint) ([]*models.Balance, error)
	DeleteByClient(clientID uint) error
	Exists(clientID uint, year, month int) (bool, error)
}

type GormBalanceRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormBalanceRepository(db *gorm.DB) (*GormBalanceRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.Balance{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate balances table")
		return nil, err
	}

	logger.Info("Balance repository initialized")

	return &GormBalanceRepository{db: db, logger: logger}, nil
}

// Upsert сохраняет баланс по ключу (client_id, year, month). Баланс -
// производное представление: существующая запись всегда замещается новой.
func (r *GormBalanceRepository) Upsert(balance *models.Balance) error {
	r.logger.WithFields(logrus.Fields{
		"client_id": balance.ClientID,
		"year":      balance.Year,
		"month":     balance.Month,
	}).Debug("Upserting balance")

	if !balance.IsValid() {
		r.logger.WithFields(logrus.Fields{
			"client_id": balance.ClientID,
			"year":      balance.Year,
			"month":     balance.Month,
		}).Warn("Invalid balance data")
		return errors.New("некорректные данные баланса")
	}

	existing, err := r.GetByClientAndMonth(balance.ClientID, balance.Year, balance.Month)
	if err != nil {
		return err
	}

	if existing == nil {
		result := r.db.Create(balance)
		if result.Error != nil {
			r.logger.WithError(result.Error).Error("Failed to create balance")
			return result.Error
		}
		return nil
	}

	balance.ID = existing.ID
	balance.CreatedAt = existing.CreatedAt
	balance.UpdatedAt = time.Now()

	result := r.db.Save(balance)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update balance")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":        balance.ID,
		"client_id": balance.ClientID,
	}).Debug("Balance upserted successfully")

	return nil
}

func (r *GormBalanceRepository) GetByClientAndMonth(clientID uint, year, month int) (*models.Balance, error) {
	var balance models.Balance
	result := r.db.Where("client_id = ? AND year = ? AND month = ?", clientID, year, month).First(&balance)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get balance by client and month")
		return nil, result.Error
	}

	return &balance, nil
}

func (r *GormBalanceRepository) GetByMonth(year, month int) ([]*models.Balance, error) {
	var balances []*models.Balance
	result := r.db.Where("year = ? AND month = ?", year, month).
		Order("client_id ASC").
		Find(&balances)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get balances by month")
		return nil, result.Error
	}

	return balances, nil
}

func (r *GormBalanceRepository) GetByClient(clientID uint) ([]*models.Balance, error) {
	var balances []*models.Balance
	result := r.db.Where("client_id = ?", clientID).
		Order("year ASC, month ASC").
		Find(&balances)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get balances by client")
		return nil, result.Error
	}

	return balances, nil
}

func (r *GormBalanceRepository) DeleteByClient(clientID uint) error {
	result := r.db.Where("client_id = ?", clientID).Delete(&models.Balance{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete balances by client")
		return result.Error
	}

	return nil
}

func (r *GormBalanceRepository) Exists(clientID uint, year, month int) (bool, error) {
	var count int64
	result := r.db.Model(&models.Balance{}).
		Where("client_id = ? AND year = ? AND month = ?", clientID, year, month).
		Count(&count)

	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
