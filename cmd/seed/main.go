// Команда seed наполняет базу демонстрационными данными: работники,
// клиенты, назначения и календарь праздников.
package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"care-balance-bot/internal/config"
	"care-balance-bot/internal/models"
	"care-balance-bot/internal/repository"
	"care-balance-bot/internal/service"
)

func main() {
	cfg := config.GetBotConfig()

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	workerRepo, err := repository.NewGormWorkerRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create worker repository")
	}

	clientRepo, err := repository.NewGormClientRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create client repository")
	}

	assignmentRepo, err := repository.NewGormAssignmentRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create assignment repository")
	}

	holidayRepo, err := repository.NewGormHolidayRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create holiday repository")
	}

	assignmentService := service.NewAssignmentService(assignmentRepo, workerRepo, clientRepo)
	holidayService := service.NewHolidayService(holidayRepo)

	laborable := &models.Worker{FirstName: "Анна", LastName: "Иванова", WorkerType: models.WorkerTypeLaborable}
	weekend := &models.Worker{FirstName: "Ольга", LastName: "Петрова", WorkerType: models.WorkerTypeHolidayWeekend}
	for _, worker := range []*models.Worker{laborable, weekend} {
		if err := workerRepo.Create(worker); err != nil {
			logrus.WithError(err).Fatal("Failed to create worker")
		}
	}

	client := &models.Client{FirstName: "Мария", LastName: "Смирнова", MonthlyHours: 90.5}
	if err := clientRepo.Create(client); err != nil {
		logrus.WithError(err).Fatal("Failed to create client")
	}

	weekdayShift := []models.TimeInterval{
		{Start: "08:00", End: "09:30"},
		{Start: "13:00", End: "15:00"},
	}
	weekendShift := []models.TimeInterval{{Start: "09:00", End: "10:30"}}

	start := time.Date(time.Now().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err = assignmentService.CreateAssignment(client.ID, laborable.ID, models.WeeklyScheduleTemplate{
		"monday":    weekdayShift,
		"tuesday":   weekdayShift,
		"wednesday": weekdayShift,
		"thursday":  weekdayShift,
		"friday":    weekdayShift,
	}, start)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create laborable assignment")
	}

	_, err = assignmentService.CreateAssignment(client.ID, weekend.ID, models.WeeklyScheduleTemplate{
		"saturday":                weekendShift,
		"sunday":                  weekendShift,
		models.ScheduleKeyHoliday: weekendShift,
	}, start)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create weekend assignment")
	}

	if cfg.HolidaysFile != "" {
		count, err := holidayService.ImportFromJSON(cfg.HolidaysFile)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to import holidays")
		}
		logrus.Infof("Imported %d holidays", count)
	}

	logrus.Infof("Seed completed: client %d, workers %d and %d", client.ID, laborable.ID, weekend.ID)
}
