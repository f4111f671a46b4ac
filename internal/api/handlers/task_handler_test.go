package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/St1cky1/taskboard/internal/board"
	"github.com/St1cky1/taskboard/internal/entity"
	"github.com/St1cky1/taskboard/internal/repository"
	"github.com/St1cky1/taskboard/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// stubTaskRepository - мок для ITaskRepository на уровне хендлеров
type stubTaskRepository struct {
	GetByIdFunc func(ctx context.Context, taskID, ownerID int) (*entity.Task, error)
	UpdateFunc  func(ctx context.Context, taskID, ownerID int, upd *entity.UpdateTaskRequest) (*entity.Task, error)
	ListFunc    func(ctx context.Context, filter entity.TaskFilter) ([]entity.Task, error)
}

var _ repository.ITaskRepository = (*stubTaskRepository)(nil)

func (s *stubTaskRepository) Create(ctx context.Context, ownerID int, task *entity.CreateTaskRequest) (*entity.Task, error) {
	return nil, nil
}

func (s *stubTaskRepository) GetById(ctx context.Context, taskID, ownerID int) (*entity.Task, error) {
	if s.GetByIdFunc != nil {
		return s.GetByIdFunc(ctx, taskID, ownerID)
	}
	return nil, nil
}

func (s *stubTaskRepository) Update(ctx context.Context, taskID, ownerID int, upd *entity.UpdateTaskRequest) (*entity.Task, error) {
	if s.UpdateFunc != nil {
		return s.UpdateFunc(ctx, taskID, ownerID, upd)
	}
	return nil, nil
}

func (s *stubTaskRepository) Delete(ctx context.Context, taskID, ownerID int) error {
	return nil
}

func (s *stubTaskRepository) List(ctx context.Context, filter entity.TaskFilter) ([]entity.Task, error) {
	if s.ListFunc != nil {
		return s.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (s *stubTaskRepository) ListByDueRange(ctx context.Context, ownerID int, from, to time.Time) ([]entity.Task, error) {
	return nil, nil
}

func (s *stubTaskRepository) CountOverview(ctx context.Context, ownerID int, now time.Time) (*entity.TaskOverview, error) {
	return nil, nil
}

func (s *stubTaskRepository) CountByStatus(ctx context.Context, ownerID int) ([]entity.StatusCount, error) {
	return nil, nil
}

func (s *stubTaskRepository) CountByPriority(ctx context.Context, ownerID int) ([]entity.PriorityCount, error) {
	return nil, nil
}

func (s *stubTaskRepository) CountByLabel(ctx context.Context, ownerID int) ([]entity.LabelCount, error) {
	return nil, nil
}

func (s *stubTaskRepository) CountDailyDue(ctx context.Context, ownerID int, since time.Time) ([]entity.DailyCount, error) {
	return nil, nil
}

type stubPublisher struct{}

func (stubPublisher) PublishAuditMessage(ctx context.Context, message *entity.AuditMessage) error {
	return nil
}

// роутер задач с подставленным пользователем вместо JWT middleware
func taskTestRouter(repo repository.ITaskRepository, userID int) http.Handler {
	handler := NewTaskHandler(usecase.NewTaskService(repo, stubPublisher{}))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(ContextWithUserID(req.Context(), userID)))
		})
	})
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", handler.ListTasks)
		r.Post("/", handler.CreateTask)
		r.Get("/board", handler.Board)
		r.Get("/notifications", handler.Notifications)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.GetTask)
			r.Put("/", handler.UpdateTask)
			r.Delete("/", handler.DeleteTask)
		})
	})
	return r
}

// Неизвестное поле в теле обновления отклоняет запрос целиком:
// до хранилища он не доходит
func TestUpdateTask_UnknownFieldRejected(t *testing.T) {
	updateCalls := 0
	repo := &stubTaskRepository{
		UpdateFunc: func(ctx context.Context, taskID, ownerID int, upd *entity.UpdateTaskRequest) (*entity.Task, error) {
			updateCalls++
			return &entity.Task{ID: taskID}, nil
		},
	}
	router := taskTestRouter(repo, 1)

	body := `{"title": "new title", "owner": 999}`
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/5", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", rec.Code)
	}
	if updateCalls != 0 {
		t.Errorf("update calls = %d: частичное применение недопустимо", updateCalls)
	}
}

func TestUpdateTask_KnownFields(t *testing.T) {
	var gotUpd *entity.UpdateTaskRequest
	repo := &stubTaskRepository{
		GetByIdFunc: func(ctx context.Context, taskID, ownerID int) (*entity.Task, error) {
			return &entity.Task{ID: taskID, OwnerId: ownerID, Title: "old", Status: entity.StatusTodo}, nil
		},
		UpdateFunc: func(ctx context.Context, taskID, ownerID int, upd *entity.UpdateTaskRequest) (*entity.Task, error) {
			gotUpd = upd
			return &entity.Task{ID: taskID, OwnerId: ownerID, Title: *upd.Title, Status: entity.StatusTodo}, nil
		},
	}
	router := taskTestRouter(repo, 1)

	body := `{"title": "new title", "priority": "high"}`
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/5", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	if gotUpd.Title == nil || *gotUpd.Title != "new title" {
		t.Errorf("title не дошел до хранилища: %+v", gotUpd)
	}
	if gotUpd.Priority == nil || *gotUpd.Priority != entity.PriorityHigh {
		t.Errorf("priority не дошел до хранилища: %+v", gotUpd)
	}
}

func TestGetTask_NotFoundStatus(t *testing.T) {
	router := taskTestRouter(&stubTaskRepository{}, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", rec.Code)
	}
}

func TestListTasks_InvalidStatusFilter(t *testing.T) {
	router := taskTestRouter(&stubTaskRepository{}, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?status=done", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", rec.Code)
	}
}

func TestListTasks_EmptyListIsArray(t *testing.T) {
	router := taskTestRouter(&stubTaskRepository{}, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, want []: пустой список это массив, не null", body)
	}
}

func TestBoard_Lanes(t *testing.T) {
	repo := &stubTaskRepository{
		ListFunc: func(ctx context.Context, filter entity.TaskFilter) ([]entity.Task, error) {
			return []entity.Task{
				{ID: 1, Title: "a", Status: entity.StatusTodo},
				{ID: 2, Title: "b", Status: entity.StatusInProgress},
				{ID: 3, Title: "c", Status: entity.StatusCompleted},
			}, nil
		},
	}
	router := taskTestRouter(repo, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/board", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}

	var lanes board.Lanes
	if err := json.Unmarshal(rec.Body.Bytes(), &lanes); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(lanes.Todo) != 1 || len(lanes.InProgress) != 1 || len(lanes.Completed) != 1 {
		t.Errorf("lanes = %+v", lanes)
	}
}

func TestNotifications_DerivedPerRequest(t *testing.T) {
	listCalls := 0
	repo := &stubTaskRepository{
		ListFunc: func(ctx context.Context, filter entity.TaskFilter) ([]entity.Task, error) {
			listCalls++
			return []entity.Task{
				{ID: 1, Title: "A", Status: entity.StatusTodo, DueDate: time.Now().AddDate(0, 0, -2)},
			}, nil
		},
	}
	router := taskTestRouter(repo, 1)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks/notifications", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d", rec.Code)
		}

		var notifications []struct {
			TaskID  int    `json:"task_id"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &notifications); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(notifications) != 1 || notifications[0].Message != `"A" is overdue!` {
			t.Errorf("notifications = %v", notifications)
		}
	}

	// напоминания каждый раз выводятся заново из списка
	if listCalls != 2 {
		t.Errorf("list calls = %d, want 2", listCalls)
	}
}
