package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/St1cky1/taskboard/internal/board"
	"github.com/St1cky1/taskboard/internal/entity"
	"github.com/St1cky1/taskboard/internal/notify"
	"github.com/St1cky1/taskboard/internal/usecase"
	"github.com/go-chi/chi/v5"
)

type TaskHandler struct {
	taskService *usecase.TaskService
}

func NewTaskHandler(taskService *usecase.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// создаем новую задачу
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req entity.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), ownerID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	taskID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), taskID, ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// UpdateTask принимает только закрытый набор полей: неизвестное поле в
// теле (например owner) отклоняет запрос целиком, ничего не применяется
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	taskID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req entity.UpdateTaskRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid updates")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), taskID, ownerID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	taskID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), taskID, ownerID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}

func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	filter, err := filterFromQuery(r, ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if tasks == nil {
		tasks = []entity.Task{}
	}

	writeJSON(w, http.StatusOK, tasks)
}

// Board - те же фильтры что и у списка, но результат разложен по трем
// колонкам доски
func (h *TaskHandler) Board(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	filter, err := filterFromQuery(r, ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, board.Partition(tasks))
}

// Notifications - напоминания выводятся из полного списка задач на
// каждый запрос, ничего не кешируется и не хранится
func (h *TaskHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), entity.NewTaskFilter(ownerID))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	notifications := notify.Derive(tasks, notify.Today(time.Now()))
	if notifications == nil {
		notifications = []notify.Notification{}
	}

	writeJSON(w, http.StatusOK, notifications)
}

func filterFromQuery(r *http.Request, ownerID int) (entity.TaskFilter, error) {
	filter := entity.NewTaskFilter(ownerID)

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = entity.TaskStatus(status)
		if !filter.Status.Valid() {
			return filter, entity.ErrInvalidTaskData
		}
	}
	if priority := r.URL.Query().Get("priority"); priority != "" {
		filter.Priority = entity.TaskPriority(priority)
		if !filter.Priority.Valid() {
			return filter, entity.ErrInvalidTaskData
		}
	}
	filter.Label = r.URL.Query().Get("label")
	filter.Search = r.URL.Query().Get("search")

	return filter, nil
}
