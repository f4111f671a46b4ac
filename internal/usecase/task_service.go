package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/St1cky1/taskboard/internal/entity"
	"github.com/St1cky1/taskboard/internal/repository"
)

// RabbitMQPublisher интерфейс для публикации в RabbitMQ
type RabbitMQPublisher interface {
	PublishAuditMessage(ctx context.Context, message *entity.AuditMessage) error
}

type TaskService struct {
	taskRepo repository.ITaskRepository
	rabbitMQ RabbitMQPublisher
}

func NewTaskService(taskRepo repository.ITaskRepository, rabbitMQ RabbitMQPublisher) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		rabbitMQ: rabbitMQ,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID int, req *entity.CreateTaskRequest) (*entity.Task, error) {
	// 1. Валидируем до обращения к хранилищу
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. Значения по умолчанию
	if req.Priority == "" {
		req.Priority = entity.PriorityMedium
	}
	if req.Status == "" {
		req.Status = entity.StatusTodo
	}

	// 3. Создаем задачу, владелец берется только из контекста запроса
	task, err := s.taskRepo.Create(ctx, ownerID, req)
	if err != nil {
		return nil, err
	}

	// 4. Асинхронно отправляем аудит
	s.sendAuditMessage(entity.ActionCreate, ownerID, task.ID, nil, task)

	return task, nil
}

// GetTask - чужая задача неотличима от несуществующей: репозиторий
// фильтрует по владельцу, оба случая дают ErrTaskNotFound
func (s *TaskService) GetTask(ctx context.Context, taskID, ownerID int) (*entity.Task, error) {
	task, err := s.taskRepo.GetById(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, entity.ErrTaskNotFound
	}

	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID, ownerID int, req *entity.UpdateTaskRequest) (*entity.Task, error) {
	// 1. Валидируем до обращения к хранилищу
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, entity.ErrNoFieldsToUpdate
	}

	// 2. Получаем текущую задачу (для аудита)
	oldTask, err := s.taskRepo.GetById(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}
	if oldTask == nil {
		return nil, entity.ErrTaskNotFound
	}

	// 3. Обновляем задачу
	updatedTask, err := s.taskRepo.Update(ctx, taskID, ownerID, req)
	if err != nil {
		return nil, err
	}
	if updatedTask == nil {
		return nil, entity.ErrTaskNotFound
	}

	// 4. Асинхронно отправляем аудит
	s.sendAuditMessage(entity.ActionUpdate, ownerID, taskID, oldTask, updatedTask)

	return updatedTask, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID, ownerID int) error {
	// 1. Получаем задачу (для аудита и проверки владельца)
	task, err := s.taskRepo.GetById(ctx, taskID, ownerID)
	if err != nil {
		return err
	}
	if task == nil {
		return entity.ErrTaskNotFound
	}

	// 2. Удаляем задачу
	if err := s.taskRepo.Delete(ctx, taskID, ownerID); err != nil {
		return err
	}

	// 3. Асинхронно отправляем аудит
	s.sendAuditMessage(entity.ActionDelete, ownerID, taskID, task, nil)

	return nil
}

// ListTasks - отсортированный по due_date список с фильтрами из запроса
func (s *TaskService) ListTasks(ctx context.Context, filter entity.TaskFilter) ([]entity.Task, error) {
	return s.taskRepo.List(ctx, filter)
}

func taskValues(task *entity.Task) map[string]any {
	return map[string]any{
		"title":       task.Title,
		"description": task.Description,
		"due_date":    task.DueDate,
		"priority":    task.Priority,
		"status":      task.Status,
		"labels":      strings.Join(task.Labels, ","),
	}
}

// Вспомогательный метод для отправки аудита
func (s *TaskService) sendAuditMessage(
	action entity.ActionType,
	userID int,
	taskID int,
	oldTask *entity.Task,
	newTask *entity.Task,
) {
	auditMsg := &entity.AuditMessage{
		Action:    action,
		UserID:    userID,
		EntityID:  taskID,
		Timestamp: time.Now(),
	}

	if oldTask != nil {
		auditMsg.OldValues = taskValues(oldTask)
	}
	if newTask != nil {
		auditMsg.NewValues = taskValues(newTask)
	}

	// Вычисляем изменения при обновлении
	if oldTask != nil && newTask != nil {
		changes := make(map[string]any)
		oldValues, newValues := taskValues(oldTask), taskValues(newTask)
		for field, oldValue := range oldValues {
			if newValue := newValues[field]; oldValue != newValue {
				changes[field] = map[string]any{"old": oldValue, "new": newValue}
			}
		}
		auditMsg.Changes = changes
	}

	// Асинхронная отправка в RabbitMQ
	go func() {
		if err := s.rabbitMQ.PublishAuditMessage(context.Background(), auditMsg); err != nil {
			log.Printf("❌ Ошибка отправки аудита в RabbitMQ: %v", err)
		}
	}()
}
