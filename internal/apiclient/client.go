// Package apiclient - Go клиент REST API сервиса. Им пользуется доска
// (board.MoveTask) и любой внешний инструмент.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/St1cky1/taskboard/internal/entity"
)

type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// SetAccessToken задает токен напрямую (например из сохраненной сессии)
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// Login получает и запоминает access token
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp entity.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", &entity.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return err
	}

	c.accessToken = resp.AccessToken
	return nil
}

// ListTasks - список задач с теми же фильтрами что и на сервере
func (c *Client) ListTasks(ctx context.Context, filter url.Values) ([]entity.Task, error) {
	path := "/api/tasks"
	if len(filter) > 0 {
		path += "?" + filter.Encode()
	}

	var tasks []entity.Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask отправляет полное обновление задачи
func (c *Client) UpdateTask(ctx context.Context, taskID int, upd *entity.UpdateTaskRequest) (*entity.Task, error) {
	var task entity.Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", taskID), upd, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Notifications - текущие напоминания
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.do(ctx, http.MethodGet, "/api/tasks/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

type Notification struct {
	TaskID  int    `json:"task_id"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("api error (%d)", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
