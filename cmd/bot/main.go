package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"care-balance-bot/internal/config"
	"care-balance-bot/internal/handler"
	"care-balance-bot/internal/repository"
	"care-balance-bot/internal/service"
	"care-balance-bot/pkg/telegram"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // ограничения SQLite
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// Внешние ключи нужно включать явно (требование SQLite)
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	userRepo, err := repository.NewGormUserRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create user repository")
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

	balanceRepo, err := repository.NewGormBalanceRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create balance repository")
	}

	userService := service.NewUserService(userRepo)
	clientService := service.NewClientService(clientRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo, workerRepo, clientRepo)
	holidayService := service.NewHolidayService(holidayRepo)
	balanceService := service.NewBalanceService(balanceRepo, clientRepo, assignmentRepo, holidayRepo)

	// Назначаем администратора из конфига
	if err := userService.InitializeAdmin(cfg.BaseAdminChatID); err != nil {
		logrus.Infof("Warning: Failed to initialize admin: %v", err)
	} else if cfg.BaseAdminChatID != 0 {
		logrus.Infof("Admin initialized with chat ID: %d", cfg.BaseAdminChatID)
	}

	client, err := telegram.NewClient(cfg.TelegramToken)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		userService,
		clientService,
		assignmentService,
		holidayService,
		balanceService,
		cfg,
	)

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
