package repository

import (
	"context"

	"github.com/St1cky1/taskboard/internal/entity"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskAuditRepository struct {
	db *pgxpool.Pool
}

func NewTaskAuditRepository(db *pgxpool.Pool) *TaskAuditRepository {
	return &TaskAuditRepository{
		db: db,
	}
}

// Create - сохраняем запись аудита
func (r *TaskAuditRepository) Create(ctx context.Context, audit *entity.TaskAudit) error {
	query := `
	INSERT INTO task_audit (user_id, action, entity_type, entity_id, old_values, new_values, changes, changed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		audit.UserID,
		audit.Action,
		audit.EntityType,
		audit.EntityID,
		audit.OldValues,
		audit.NewValues,
		audit.Changes,
		audit.ChangedAt,
	)
	return err
}

// GetByEntityId - история изменений конкретной задачи
func (r *TaskAuditRepository) GetByEntityId(ctx context.Context, entityID int) ([]entity.TaskAudit, error) {
	query := `
	SELECT id, user_id, action, entity_type, entity_id, old_values, new_values, changes, changed_at
	FROM task_audit
	WHERE entity_id = $1
	ORDER BY changed_at DESC
	`

	rows, err := r.db.Query(ctx, query, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var audits []entity.TaskAudit
	for rows.Next() {
		var a entity.TaskAudit
		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Action,
			&a.EntityType,
			&a.EntityID,
			&a.OldValues,
			&a.NewValues,
			&a.Changes,
			&a.ChangedAt,
		)
		if err != nil {
			return nil, err
		}
		audits = append(audits, a)
	}

	return audits, rows.Err()
}
