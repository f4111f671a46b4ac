package board

import (
	"context"
	"strings"

	"github.com/St1cky1/taskboard/internal/entity"
)

// Lanes - три колонки доски по статусам
type Lanes struct {
	Todo       []entity.Task `json:"todo"`
	InProgress []entity.Task `json:"inProgress"`
	Completed  []entity.Task `json:"completed"`
}

// Filter - клиентский фильтр по уже загруженному списку. Пустое поле
// означает "не фильтровать". Семантика совпадает с серверным списком:
// условия соединяются через AND, search ищет подстроку в title или
// description без учета регистра.
type Filter struct {
	Priority entity.TaskPriority
	Status   entity.TaskStatus
	Search   string
}

func (f Filter) Match(task entity.Task) bool {
	if f.Priority != "" && task.Priority != f.Priority {
		return false
	}
	if f.Status != "" && task.Status != f.Status {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(task.Title), search) &&
			!strings.Contains(strings.ToLower(task.Description), search) {
			return false
		}
	}
	return true
}

// Apply возвращает задачи, прошедшие фильтр, в исходном порядке
func Apply(tasks []entity.Task, f Filter) []entity.Task {
	var filtered []entity.Task
	for _, task := range tasks {
		if f.Match(task) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// Partition раскладывает задачи по трем колонкам доски
func Partition(tasks []entity.Task) Lanes {
	lanes := Lanes{
		Todo:       []entity.Task{},
		InProgress: []entity.Task{},
		Completed:  []entity.Task{},
	}
	for _, task := range tasks {
		switch task.Status {
		case entity.StatusTodo:
			lanes.Todo = append(lanes.Todo, task)
		case entity.StatusInProgress:
			lanes.InProgress = append(lanes.InProgress, task)
		case entity.StatusCompleted:
			lanes.Completed = append(lanes.Completed, task)
		}
	}
	return lanes
}

// TaskUpdater - то, чем доска отправляет обновление (API клиент)
type TaskUpdater interface {
	UpdateTask(ctx context.Context, taskID int, upd *entity.UpdateTaskRequest) (*entity.Task, error)
}

// MoveTask переносит задачу в другую колонку. Хранилище не умеет
// частичный patch на этом пути, поэтому отправляется полная запись с
// замененным статусом. Перенос в ту же колонку не делает ни одного
// запроса. При ошибке возвращается исходная задача - доска остается в
// состоянии до переноса.
func MoveTask(ctx context.Context, updater TaskUpdater, task entity.Task, newStatus entity.TaskStatus) (*entity.Task, error) {
	if task.Status == newStatus {
		return &task, nil
	}

	labels := task.Labels
	if labels == nil {
		labels = []string{}
	}

	upd := &entity.UpdateTaskRequest{
		Title:       &task.Title,
		Description: &task.Description,
		DueDate:     &task.DueDate,
		Priority:    &task.Priority,
		Status:      &newStatus,
		Labels:      &labels,
	}

	updated, err := updater.UpdateTask(ctx, task.ID, upd)
	if err != nil {
		return &task, err
	}

	return updated, nil
}
