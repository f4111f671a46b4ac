package entity

import "time"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "inProgress"
	StatusCompleted  TaskStatus = "completed"
)

// Valid проверяет что статус входит в допустимый набор
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          int          `json:"id"`
	OwnerId     int          `json:"owner_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     time.Time    `json:"due_date"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	Labels      []string     `json:"labels"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// валидация
type CreateTaskRequest struct {
	Title       string       `json:"title" validate:"required, min=1, max=255"`
	Description string       `json:"description"`
	DueDate     time.Time    `json:"due_date" validate:"required"`
	Priority    TaskPriority `json:"priority" validate:"oneof=low medium high"`
	Status      TaskStatus   `json:"status" validate:"oneof=todo inProgress completed"`
	Labels      []string     `json:"labels"`
}

// Validate проверяет запрос до обращения к хранилищу.
// Пустые priority/status допустимы - сервис подставит значения по умолчанию.
func (r *CreateTaskRequest) Validate() error {
	if r.Title == "" {
		return ErrInvalidTaskData
	}
	if r.DueDate.IsZero() {
		return ErrInvalidTaskData
	}
	if r.Priority != "" && !r.Priority.Valid() {
		return ErrInvalidTaskData
	}
	if r.Status != "" && !r.Status.Valid() {
		return ErrInvalidTaskData
	}
	return nil
}

// UpdateTaskRequest - закрытый набор обновляемых полей.
// Владелец и id здесь отсутствуют намеренно: их нельзя изменить через API.
type UpdateTaskRequest struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
	Labels      *[]string     `json:"labels,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return ErrInvalidTaskData
	}
	if r.Priority != nil && !r.Priority.Valid() {
		return ErrInvalidTaskData
	}
	if r.Status != nil && !r.Status.Valid() {
		return ErrInvalidTaskData
	}
	return nil
}

// IsEmpty - true если ни одно поле не задано
func (r *UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.DueDate == nil &&
		r.Priority == nil && r.Status == nil && r.Labels == nil
}

// TaskFilter - фильтр списка задач. Владелец задается только через
// конструктор, поэтому запрос без owner-scope не собирается в принципе.
type TaskFilter struct {
	ownerID  int
	Status   TaskStatus
	Priority TaskPriority
	Label    string
	Search   string
}

func NewTaskFilter(ownerID int) TaskFilter {
	return TaskFilter{ownerID: ownerID}
}

func (f TaskFilter) OwnerID() int {
	return f.ownerID
}
