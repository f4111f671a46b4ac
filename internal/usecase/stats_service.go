package usecase

import (
	"context"
	"time"

	"github.com/St1cky1/taskboard/internal/entity"
	"github.com/St1cky1/taskboard/internal/repository"
)

// StatsService - read-only агрегаты по задачам одного владельца.
// Вся группировка выполняется на стороне хранилища.
type StatsService struct {
	taskRepo repository.ITaskRepository
	now      func() time.Time
}

func NewStatsService(taskRepo repository.ITaskRepository) *StatsService {
	return &StatsService{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

// Overview - total/completed/pending/overdue. Просроченность считается
// сравнением полного timestamp с моментом запроса, не по календарному дню.
func (s *StatsService) Overview(ctx context.Context, ownerID int) (*entity.TaskOverview, error) {
	return s.taskRepo.CountOverview(ctx, ownerID, s.now())
}

func (s *StatsService) ByStatus(ctx context.Context, ownerID int) ([]entity.StatusCount, error) {
	return s.taskRepo.CountByStatus(ctx, ownerID)
}

func (s *StatsService) ByPriority(ctx context.Context, ownerID int) ([]entity.PriorityCount, error) {
	return s.taskRepo.CountByPriority(ctx, ownerID)
}

// ByLabel - задача с N метками учитывается в N группах
func (s *StatsService) ByLabel(ctx context.Context, ownerID int) ([]entity.LabelCount, error) {
	return s.taskRepo.CountByLabel(ctx, ownerID)
}

// WeeklyTrend - количество задач по календарным датам due_date за
// последние 7 дней, по возрастанию даты
func (s *StatsService) WeeklyTrend(ctx context.Context, ownerID int) ([]entity.DailyCount, error) {
	since := s.now().AddDate(0, 0, -7)
	return s.taskRepo.CountDailyDue(ctx, ownerID, since)
}
