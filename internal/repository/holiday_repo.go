package repository

import (
	"time"

	"gorm.io/gorm"

	"care-balance-bot/internal/models"
)

type HolidayRepository interface {
	Create(holiday *models.Holiday) error
	BulkCreate(holidays []models.Holiday) error
	GetByYearMonth(year, month int) ([]models.Holiday, error)
	GetAll() ([]models.Holiday, error)
	DeleteByYear(year int) error
	IsHoliday(date time.Time) (bool, error)
}

type GormHolidayRepository struct {
	db *gorm.DB
}

func NewGormHolidayRepository(db *gorm.DB) (HolidayRepository, error) {
	if err := db.AutoMigrate(&models.Holiday{}); err != nil {
		return nil, err
	}

	return &GormHolidayRepository{db: db}, nil
}

func (r *GormHolidayRepository) Create(holiday *models.Holiday) error {
	return r.db.Create(holiday).Error
}

func (r *GormHolidayRepository) BulkCreate(holidays []models.Holiday) error {
	if len(holidays) == 0 {
		return nil
	}
	return r.db.Create(&holidays).Error
}

func (r *GormHolidayRepository) GetByYearMonth(year, month int) ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.Where("year = ? AND month = ?", year, month).
		Order("day ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *GormHolidayRepository) GetAll() ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.Order("date ASC").Find(&holidays).Error
	return holidays, err
}

// DeleteByYear удаляет праздники года перед повторным импортом календаря
func (r *GormHolidayRepository) DeleteByYear(year int) error {
	return r.db.Where("year = ?", year).Delete(&models.Holiday{}).Error
}

func (r *GormHolidayRepository) IsHoliday(date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Holiday{}).
		Where("date = ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}
