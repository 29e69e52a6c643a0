package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"care-balance-bot/internal/models"
	"care-balance-bot/internal/repository"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// RegisterUser создает пользователя с ролью coordinator по умолчанию.
// Повторный /start от уже известного чата возвращает существующий профиль.
func (s *UserService) RegisterUser(chatID int64, username, firstName, lastName string) (*models.User, error) {
	existing, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения пользователя: %v", err)
	}
	if existing != nil {
		return existing, nil
	}

	if firstName == "" {
		firstName = username
	}
	if firstName == "" {
		return nil, fmt.Errorf("имя не может быть пустым")
	}

	user := &models.User{
		ChatID:    chatID,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleCoordinator,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("ошибка создания пользователя: %v", err)
	}

	return user, nil
}

// GetUser возвращает пользователя по chatID
func (s *UserService) GetUser(chatID int64) (*models.User, error) {
	return s.repo.GetByChatID(chatID)
}

// IsAdmin проверяет, является ли чат администратором
func (s *UserService) IsAdmin(chatID int64) bool {
	user, err := s.repo.GetByChatID(chatID)
	if err != nil || user == nil {
		return false
	}
	return user.IsAdmin()
}

// UpdateRole обновляет роль пользователя (только для админов)
func (s *UserService) UpdateRole(adminChatID, targetChatID int64, role models.Role) error {
	admin, err := s.repo.GetByChatID(adminChatID)
	if err != nil {
		return fmt.Errorf("ошибка проверки админа: %v", err)
	}

	if admin == nil || !admin.IsAdmin() {
		return fmt.Errorf("доступ запрещен: только администраторы могут менять роли")
	}

	target, err := s.repo.GetByChatID(targetChatID)
	if err != nil {
		return fmt.Errorf("ошибка поиска пользователя: %v", err)
	}

	if target == nil {
		return fmt.Errorf("пользователь не найден")
	}

	return s.repo.UpdateRole(targetChatID, role)
}

// InitializeAdmin назначает администратора из конфига при старте
func (s *UserService) InitializeAdmin(chatID int64) error {
	if chatID == 0 {
		return nil
	}

	user, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return err
	}

	if user == nil {
		admin := &models.User{
			ChatID:    chatID,
			FirstName: "Администратор",
			Role:      models.RoleAdmin,
		}
		if err := s.repo.Create(admin); err != nil {
			return err
		}
		logrus.WithField("chat_id", chatID).Info("Admin user created")
		return nil
	}

	if user.IsAdmin() {
		return nil
	}

	return s.repo.UpdateRole(chatID, models.Role(models.RoleAdmin))
}
