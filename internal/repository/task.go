package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/St1cky1/taskboard/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = `id, owner_id, title, description, due_date, priority, status, labels, created_at, updated_at`

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var task entity.Task
	err := row.Scan(
		&task.ID,
		&task.OwnerId,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&task.Priority,
		&task.Status,
		&task.Labels,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, ownerID int, task *entity.CreateTaskRequest) (*entity.Task, error) {

	query := `
	INSERT INTO task (owner_id, title, description, due_date, priority, status, labels)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + taskColumns

	labels := task.Labels
	if labels == nil {
		labels = []string{}
	}

	created, err := scanTask(r.db.QueryRow(ctx, query,
		ownerID,
		task.Title,
		task.Description,
		task.DueDate,
		task.Priority,
		task.Status,
		labels,
	))
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetById - чужой владелец и несуществующий id неразличимы: в обоих
// случаях возвращается nil
func (r *TaskRepository) GetById(ctx context.Context, taskID, ownerID int) (*entity.Task, error) {

	query := `
	SELECT ` + taskColumns + `
	FROM task
	WHERE id = $1 AND owner_id = $2
	`

	task, err := scanTask(r.db.QueryRow(ctx, query, taskID, ownerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return task, nil
}

// Update - обновление задачи. SET собирается только из закрытого набора
// полей UpdateTaskRequest, произвольные имена колонок сюда не попадают.
func (r *TaskRepository) Update(ctx context.Context, taskID, ownerID int, upd *entity.UpdateTaskRequest) (*entity.Task, error) {
	setClause := ""
	args := []interface{}{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		if argIndex > 1 {
			setClause += ", "
		}
		setClause += column + " = $" + strconv.Itoa(argIndex)
		args = append(args, value)
		argIndex++
	}

	if upd.Title != nil {
		addSet("title", *upd.Title)
	}
	if upd.Description != nil {
		addSet("description", *upd.Description)
	}
	if upd.DueDate != nil {
		addSet("due_date", *upd.DueDate)
	}
	if upd.Priority != nil {
		addSet("priority", *upd.Priority)
	}
	if upd.Status != nil {
		addSet("status", *upd.Status)
	}
	if upd.Labels != nil {
		addSet("labels", *upd.Labels)
	}

	if argIndex == 1 {
		return nil, entity.ErrNoFieldsToUpdate
	}

	setClause += ", updated_at = CURRENT_TIMESTAMP"

	query := `
	UPDATE task
	SET ` + setClause + `
	WHERE id = $` + strconv.Itoa(argIndex) + ` AND owner_id = $` + strconv.Itoa(argIndex+1) + `
	RETURNING ` + taskColumns
	args = append(args, taskID, ownerID)

	task, err := scanTask(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return task, nil
}

// Delete - удаление задачи
func (r *TaskRepository) Delete(ctx context.Context, taskID, ownerID int) error {
	query := `DELETE FROM task WHERE id = $1 AND owner_id = $2`
	_, err := r.db.Exec(ctx, query, taskID, ownerID)
	return err
}

// List - список задач с фильтрацией. Все условия соединяются через AND,
// search ищет подстроку в title или description без учета регистра.
func (r *TaskRepository) List(ctx context.Context, filter entity.TaskFilter) ([]entity.Task, error) {
	query := `
	SELECT ` + taskColumns + `
	FROM task
	WHERE owner_id = $1
	`
	args := []interface{}{filter.OwnerID()}
	argIndex := 2

	if filter.Status != "" {
		query += " AND status = $" + strconv.Itoa(argIndex)
		args = append(args, filter.Status)
		argIndex++
	}
	if filter.Priority != "" {
		query += " AND priority = $" + strconv.Itoa(argIndex)
		args = append(args, filter.Priority)
		argIndex++
	}
	if filter.Label != "" {
		query += " AND $" + strconv.Itoa(argIndex) + " = ANY(labels)"
		args = append(args, filter.Label)
		argIndex++
	}
	if filter.Search != "" {
		idx := strconv.Itoa(argIndex)
		query += " AND (title ILIKE '%' || $" + idx + " || '%' OR description ILIKE '%' || $" + idx + " || '%')"
		args = append(args, filter.Search)
		argIndex++
	}

	query += " ORDER BY due_date ASC"

	return r.queryTasks(ctx, query, args...)
}

// ListByDueRange - задачи с due_date в [from, to], по возрастанию даты
func (r *TaskRepository) ListByDueRange(ctx context.Context, ownerID int, from, to time.Time) ([]entity.Task, error) {
	query := `
	SELECT ` + taskColumns + `
	FROM task
	WHERE owner_id = $1 AND due_date >= $2 AND due_date <= $3
	ORDER BY due_date ASC
	`
	return r.queryTasks(ctx, query, ownerID, from, to)
}

func (r *TaskRepository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]entity.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []entity.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

// CountOverview - сводка по владельцу одним запросом. Момент "сейчас"
// приходит параметром, признак просроченности нигде не хранится.
func (r *TaskRepository) CountOverview(ctx context.Context, ownerID int, now time.Time) (*entity.TaskOverview, error) {
	query := `
	SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE status = 'completed'),
		COUNT(*) FILTER (WHERE status <> 'completed'),
		COUNT(*) FILTER (WHERE status <> 'completed' AND due_date < $2)
	FROM task
	WHERE owner_id = $1
	`

	var overview entity.TaskOverview
	err := r.db.QueryRow(ctx, query, ownerID, now).Scan(
		&overview.TotalTasks,
		&overview.CompletedTasks,
		&overview.PendingTasks,
		&overview.OverdueTasks,
	)
	if err != nil {
		return nil, err
	}

	return &overview, nil
}

// CountByStatus - количество задач по статусам, только встречающиеся статусы
func (r *TaskRepository) CountByStatus(ctx context.Context, ownerID int) ([]entity.StatusCount, error) {
	query := `
	SELECT status, COUNT(*)
	FROM task
	WHERE owner_id = $1
	GROUP BY status
	ORDER BY status
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []entity.StatusCount
	for rows.Next() {
		var c entity.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// CountByPriority - количество задач по приоритетам
func (r *TaskRepository) CountByPriority(ctx context.Context, ownerID int) ([]entity.PriorityCount, error) {
	query := `
	SELECT priority, COUNT(*)
	FROM task
	WHERE owner_id = $1
	GROUP BY priority
	ORDER BY priority
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []entity.PriorityCount
	for rows.Next() {
		var c entity.PriorityCount
		if err := rows.Scan(&c.Priority, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// CountByLabel - разворачиваем labels через unnest: задача с N метками
// попадает в N групп
func (r *TaskRepository) CountByLabel(ctx context.Context, ownerID int) ([]entity.LabelCount, error) {
	query := `
	SELECT l.label, COUNT(*)
	FROM task t, unnest(t.labels) AS l(label)
	WHERE t.owner_id = $1
	GROUP BY l.label
	ORDER BY l.label
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []entity.LabelCount
	for rows.Next() {
		var c entity.LabelCount
		if err := rows.Scan(&c.Label, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// CountDailyDue - задачи с due_date >= since, сгруппированные по
// календарной дате due_date в зоне сессии БД, по возрастанию даты
func (r *TaskRepository) CountDailyDue(ctx context.Context, ownerID int, since time.Time) ([]entity.DailyCount, error) {
	query := `
	SELECT to_char(due_date, 'YYYY-MM-DD') AS day, COUNT(*)
	FROM task
	WHERE owner_id = $1 AND due_date >= $2
	GROUP BY day
	ORDER BY day ASC
	`

	rows, err := r.db.Query(ctx, query, ownerID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []entity.DailyCount
	for rows.Next() {
		var c entity.DailyCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
