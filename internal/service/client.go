package service

import (
	"fmt"
	"strings"

	"care-balance-bot/internal/models"
	"care-balance-bot/internal/repository"
)

type ClientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

// GetClient возвращает клиента по ID
func (s *ClientService) GetClient(id uint) (*models.Client, error) {
	return s.repo.GetByID(id)
}

// GetAllClients возвращает всех клиентов
func (s *ClientService) GetAllClients() ([]*models.Client, error) {
	return s.repo.GetAll()
}

// SetMonthlyHours обновляет контрактную квоту клиента
func (s *ClientService) SetMonthlyHours(id uint, hours float64) error {
	return s.repo.UpdateMonthlyHours(id, hours)
}

// FormatClients форматирует список клиентов
func (s *ClientService) FormatClients(clients []*models.Client) string {
	if len(clients) == 0 {
		return "📭 Клиентов пока нет"
	}

	var result strings.Builder
	result.WriteString("👥 Клиенты:\n\n")
	for _, c := range clients {
		fmt.Fprintf(&result, "• [%d] %s - %.1f ч/мес\n", c.ID, c.FullName(), c.MonthlyHours)
	}

	return result.String()
}
