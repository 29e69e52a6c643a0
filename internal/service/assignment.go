package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"care-balance-bot/internal/models"
	"care-balance-bot/internal/repository"
)

type AssignmentService struct {
	assignmentRepo repository.AssignmentRepository
	workerRepo     repository.WorkerRepository
	clientRepo     repository.ClientRepository
	logger         *logrus.Logger
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	workerRepo repository.WorkerRepository,
	clientRepo repository.ClientRepository,
) *AssignmentService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		workerRepo:     workerRepo,
		clientRepo:     clientRepo,
		logger:         logger,
	}
}

// ValidateTemplate проверяет недельный шаблон на границе ввода данных:
// допустимые ключи и разбираемые интервалы. Возвращает список проблем.
func ValidateTemplate(template models.WeeklyScheduleTemplate) []string {
	var problems []string

	for key, intervals := range template {
		if !models.IsScheduleKey(key) {
			problems = append(problems, fmt.Sprintf("неизвестный ключ шаблона %q", key))
			continue
		}

		for _, interval := range intervals {
			start, err := time.Parse("15:04", interval.Start)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s: некорректное время начала %q", key, interval.Start))
				continue
			}
			end, err := time.Parse("15:04", interval.End)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s: некорректное время окончания %q", key, interval.End))
				continue
			}
			if !end.After(start) {
				problems = append(problems, fmt.Sprintf("%s: интервал %s-%s пуст", key, interval.Start, interval.End))
			}
		}
	}

	sort.Strings(problems)
	return problems
}

// CreateAssignment создает назначение работника клиенту. Шаблон проверяется
// здесь, на входе: дальше расчёт исходит из канонического представления.
func (s *AssignmentService) CreateAssignment(clientID, workerID uint, schedule models.WeeklyScheduleTemplate, startDate time.Time) (*models.Assignment, error) {
	client, err := s.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска клиента: %v", err)
	}
	if client == nil {
		return nil, fmt.Errorf("клиент %d не найден", clientID)
	}

	worker, err := s.workerRepo.GetByID(workerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска работника: %v", err)
	}
	if worker == nil {
		return nil, fmt.Errorf("работник %d не найден", workerID)
	}

	if problems := ValidateTemplate(schedule); len(problems) > 0 {
		return nil, fmt.Errorf("некорректный шаблон расписания: %s", strings.Join(problems, "; "))
	}

	assignment := &models.Assignment{
		ClientID:  clientID,
		WorkerID:  workerID,
		Schedule:  schedule,
		Status:    models.AssignmentStatusActive,
		StartDate: startDate,
	}

	if err := s.assignmentRepo.Create(assignment); err != nil {
		s.logger.WithError(err).Error("Failed to create assignment")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"assignment_id": assignment.ID,
		"client_id":     clientID,
		"worker_id":     workerID,
	}).Info("Assignment created")

	return assignment, nil
}

// GetActiveAssignments возвращает активные назначения клиента
func (s *AssignmentService) GetActiveAssignments(clientID uint) ([]models.Assignment, error) {
	return s.assignmentRepo.GetActiveByClient(clientID)
}

// Deactivate переводит назначение в неактивные
func (s *AssignmentService) Deactivate(id uint) error {
	return s.assignmentRepo.Deactivate(id)
}

// FormatAssignments форматирует список назначений клиента
func (s *AssignmentService) FormatAssignments(assignments []models.Assignment) string {
	if len(assignments) == 0 {
		return "📭 У клиента нет активных назначений"
	}

	var result strings.Builder
	result.WriteString("📋 Активные назначения:\n")

	for i, a := range assignments {
		workerType := "будни"
		switch a.Worker.WorkerType {
		case models.WorkerTypeHolidayWeekend:
			workerType = "выходные и праздники"
		case models.WorkerTypeBoth:
			workerType = "все дни"
		}

		fmt.Fprintf(&result, "\n%d. 👩‍⚕️ %s (%s)\n", i+1, a.Worker.FullName(), workerType)

		for _, key := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday", models.ScheduleKeyHoliday} {
			intervals := a.Schedule[key]
			if len(intervals) == 0 {
				continue
			}

			var slots []string
			for _, interval := range intervals {
				slots = append(slots, fmt.Sprintf("%s-%s", interval.Start, interval.End))
			}
			fmt.Fprintf(&result, "   %s: %s\n", scheduleKeyLabel(key), strings.Join(slots, ", "))
		}
	}

	return result.String()
}

func scheduleKeyLabel(key string) string {
	labels := map[string]string{
		"monday":                  "Пн",
		"tuesday":                 "Вт",
		"wednesday":               "Ср",
		"thursday":                "Чт",
		"friday":                  "Пт",
		"saturday":                "Сб",
		"sunday":                  "Вс",
		models.ScheduleKeyHoliday: "Праздник",
	}
	if label, ok := labels[key]; ok {
		return label
	}
	return key
}
