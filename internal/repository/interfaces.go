package repository

import (
	"context"
	"time"

	"github.com/St1cky1/taskboard/internal/entity"
)

// ITaskRepository - интерфейс для TaskRepository.
// Все методы принимают владельца явно: запрос без owner-scope невозможен.
type ITaskRepository interface {
	Create(ctx context.Context, ownerID int, task *entity.CreateTaskRequest) (*entity.Task, error)
	GetById(ctx context.Context, taskID, ownerID int) (*entity.Task, error)
	Update(ctx context.Context, taskID, ownerID int, upd *entity.UpdateTaskRequest) (*entity.Task, error)
	Delete(ctx context.Context, taskID, ownerID int) error
	List(ctx context.Context, filter entity.TaskFilter) ([]entity.Task, error)
	ListByDueRange(ctx context.Context, ownerID int, from, to time.Time) ([]entity.Task, error)

	CountOverview(ctx context.Context, ownerID int, now time.Time) (*entity.TaskOverview, error)
	CountByStatus(ctx context.Context, ownerID int) ([]entity.StatusCount, error)
	CountByPriority(ctx context.Context, ownerID int) ([]entity.PriorityCount, error)
	CountByLabel(ctx context.Context, ownerID int) ([]entity.LabelCount, error)
	CountDailyDue(ctx context.Context, ownerID int, since time.Time) ([]entity.DailyCount, error)
}

// IUserRepository - интерфейс для UserRepository
type IUserRepository interface {
	Create(ctx context.Context, name, username, email, passwordHash string) (*entity.User, error)
	GetById(ctx context.Context, id int) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

// IRefreshTokenRepository - интерфейс для RefreshTokenRepository
type IRefreshTokenRepository interface {
	Save(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error
	GetByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAll(ctx context.Context, userID int) error
}

// ITaskAuditRepository - интерфейс для TaskAuditRepository
type ITaskAuditRepository interface {
	Create(ctx context.Context, audit *entity.TaskAudit) error
	GetByEntityId(ctx context.Context, entityID int) ([]entity.TaskAudit, error)
}
