package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/St1cky1/taskboard/internal/board"
	"github.com/St1cky1/taskboard/internal/entity"
)

func TestLogin_StoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("запрос %s %s", r.Method, r.URL.Path)
		}

		var req entity.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Email != "ivan@example.com" {
			t.Errorf("email = %q", req.Email)
		}

		json.NewEncoder(w).Encode(entity.LoginResponse{
			AccessToken:  "access-token-123",
			RefreshToken: "refresh-token-456",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	if err := client.Login(context.Background(), "ivan@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if client.accessToken != "access-token-123" {
		t.Errorf("accessToken = %q", client.accessToken)
	}
}

func TestListTasks_FilterAndBearer(t *testing.T) {
	var gotAuth, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]entity.Task{{ID: 1, Title: "x", Status: entity.StatusTodo}})
	}))
	defer server.Close()

	client := New(server.URL)
	client.SetAccessToken("tok")

	filter := url.Values{}
	filter.Set("status", "todo")
	filter.Set("search", "report")

	tasks, err := client.ListTasks(context.Background(), filter)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}

	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if !strings.Contains(gotQuery, "status=todo") || !strings.Contains(gotQuery, "search=report") {
		t.Errorf("query = %q", gotQuery)
	}
	if len(tasks) != 1 || tasks[0].ID != 1 {
		t.Errorf("tasks = %v", tasks)
	}
}

func TestUpdateTask_ErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "task not found"})
	}))
	defer server.Close()

	client := New(server.URL)
	client.SetAccessToken("tok")

	status := entity.StatusCompleted
	_, err := client.UpdateTask(context.Background(), 99, &entity.UpdateTaskRequest{Status: &status})
	if err == nil {
		t.Fatal("want error")
	}
	if !strings.Contains(err.Error(), "task not found") {
		t.Errorf("err = %v: сообщение сервера должно быть видно клиенту", err)
	}
}

// Клиент реализует board.TaskUpdater - перенос по доске идет одним PUT
// с полной записью
func TestMoveTask_ThroughClient(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody entity.UpdateTaskRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode: %v", err)
		}
		json.NewEncoder(w).Encode(entity.Task{ID: 7, Title: *gotBody.Title, Status: *gotBody.Status})
	}))
	defer server.Close()

	client := New(server.URL)
	client.SetAccessToken("tok")

	task := entity.Task{
		ID:       7,
		Title:    "write report",
		Priority: entity.PriorityHigh,
		Status:   entity.StatusTodo,
		Labels:   []string{"work"},
	}

	moved, err := board.MoveTask(context.Background(), client, task, entity.StatusInProgress)
	if err != nil {
		t.Fatalf("MoveTask: %v", err)
	}

	if gotMethod != http.MethodPut || gotPath != "/api/tasks/7" {
		t.Errorf("запрос %s %s, want PUT /api/tasks/7", gotMethod, gotPath)
	}
	if gotBody.Title == nil || gotBody.Priority == nil || gotBody.Labels == nil {
		t.Errorf("тело не содержит полную запись: %+v", gotBody)
	}
	if gotBody.Status == nil || *gotBody.Status != entity.StatusInProgress {
		t.Error("статус не заменен на целевую колонку")
	}
	if moved.Status != entity.StatusInProgress {
		t.Errorf("moved.Status = %q", moved.Status)
	}
}

func TestNotifications(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tasks/notifications" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Notification{
			{TaskID: 1, Message: `"A" is overdue!`},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	client.SetAccessToken("tok")

	notifications, err := client.Notifications(context.Background())
	if err != nil {
		t.Fatalf("Notifications: %v", err)
	}
	if len(notifications) != 1 || notifications[0].Message != `"A" is overdue!` {
		t.Errorf("notifications = %v", notifications)
	}
}
