package usecase

import (
	"context"
	"time"

	"github.com/St1cky1/taskboard/internal/entity"
	"github.com/St1cky1/taskboard/internal/repository"
)

// CalendarService - выборки задач по календарным диапазонам и перенос
// срока (drag-and-drop в календаре)
type CalendarService struct {
	taskRepo repository.ITaskRepository
}

func NewCalendarService(taskRepo repository.ITaskRepository) *CalendarService {
	return &CalendarService{
		taskRepo: taskRepo,
	}
}

// MonthTasks - задачи месяца: с первого дня 00:00:00 по последний день
// 23:59:59. Длина месяца и високосные годы берутся из time.Date.
func (s *CalendarService) MonthTasks(ctx context.Context, ownerID, year, month int) ([]entity.Task, error) {
	if month < 1 || month > 12 {
		return nil, entity.ErrInvalidDate
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	return s.taskRepo.ListByDueRange(ctx, ownerID, start, end)
}

// DayTasks - задачи одного дня: [00:00:00, 23:59:59]
func (s *CalendarService) DayTasks(ctx context.Context, ownerID, year, month, day int) ([]entity.Task, error) {
	start := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date нормализует переполнение (30 февраля станет 1 марта) -
	// такие даты отклоняем
	if start.Year() != year || start.Month() != time.Month(month) || start.Day() != day {
		return nil, entity.ErrInvalidDate
	}
	end := start.Add(24*time.Hour - time.Second)

	return s.taskRepo.ListByDueRange(ctx, ownerID, start, end)
}

// UpdateDueDate - перенос срока задачи, остальные поля не трогаем
func (s *CalendarService) UpdateDueDate(ctx context.Context, taskID, ownerID int, due time.Time) (*entity.Task, error) {
	if due.IsZero() {
		return nil, entity.ErrInvalidDate
	}

	task, err := s.taskRepo.Update(ctx, taskID, ownerID, &entity.UpdateTaskRequest{DueDate: &due})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, entity.ErrTaskNotFound
	}

	return task, nil
}
