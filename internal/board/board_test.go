package board

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/St1cky1/taskboard/internal/entity"
)

type mockUpdater struct {
	calls      int
	updateFunc func(ctx context.Context, taskID int, upd *entity.UpdateTaskRequest) (*entity.Task, error)
}

func (m *mockUpdater) UpdateTask(ctx context.Context, taskID int, upd *entity.UpdateTaskRequest) (*entity.Task, error) {
	m.calls++
	if m.updateFunc != nil {
		return m.updateFunc(ctx, taskID, upd)
	}
	return nil, nil
}

func sampleTasks() []entity.Task {
	return []entity.Task{
		{ID: 1, Title: "write report", Status: entity.StatusTodo, Priority: entity.PriorityHigh},
		{ID: 2, Title: "review PR", Status: entity.StatusInProgress, Priority: entity.PriorityMedium},
		{ID: 3, Title: "deploy service", Status: entity.StatusCompleted, Priority: entity.PriorityHigh},
		{ID: 4, Title: "clean inbox", Description: "archive old mail", Status: entity.StatusTodo, Priority: entity.PriorityLow},
	}
}

func TestPartition(t *testing.T) {
	lanes := Partition(sampleTasks())

	if len(lanes.Todo) != 2 || lanes.Todo[0].ID != 1 || lanes.Todo[1].ID != 4 {
		t.Errorf("todo = %v", lanes.Todo)
	}
	if len(lanes.InProgress) != 1 || lanes.InProgress[0].ID != 2 {
		t.Errorf("inProgress = %v", lanes.InProgress)
	}
	if len(lanes.Completed) != 1 || lanes.Completed[0].ID != 3 {
		t.Errorf("completed = %v", lanes.Completed)
	}
}

func TestPartition_EmptyLanesPresent(t *testing.T) {
	lanes := Partition(nil)

	// колонки рендерятся всегда, даже пустые - nil здесь недопустим
	if lanes.Todo == nil || lanes.InProgress == nil || lanes.Completed == nil {
		t.Error("пустые колонки должны быть пустыми слайсами, не nil")
	}
}

func TestApply_Filters(t *testing.T) {
	tasks := sampleTasks()

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []int
	}{
		{"без фильтра", Filter{}, []int{1, 2, 3, 4}},
		{"по приоритету", Filter{Priority: entity.PriorityHigh}, []int{1, 3}},
		{"по статусу", Filter{Status: entity.StatusTodo}, []int{1, 4}},
		{"поиск в title без регистра", Filter{Search: "REPORT"}, []int{1}},
		{"поиск в description", Filter{Search: "archive"}, []int{4}},
		{"AND всех условий", Filter{Priority: entity.PriorityLow, Search: "inbox"}, []int{4}},
		{"ничего не подошло", Filter{Priority: entity.PriorityLow, Search: "report"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Apply(tasks, tt.filter)
			if len(filtered) != len(tt.wantIDs) {
				t.Fatalf("len = %d, want %d", len(filtered), len(tt.wantIDs))
			}
			for i, task := range filtered {
				if task.ID != tt.wantIDs[i] {
					t.Errorf("[%d] id = %d, want %d", i, task.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

// Перенос в ту же колонку не делает ни одного запроса
func TestMoveTask_SameLaneNoop(t *testing.T) {
	updater := &mockUpdater{}
	task := entity.Task{ID: 1, Title: "x", Status: entity.StatusTodo}

	moved, err := MoveTask(context.Background(), updater, task, entity.StatusTodo)
	if err != nil {
		t.Fatalf("MoveTask: %v", err)
	}
	if updater.calls != 0 {
		t.Errorf("calls = %d, want 0", updater.calls)
	}
	if moved.Status != entity.StatusTodo {
		t.Errorf("status = %q", moved.Status)
	}
}

// Отправляется полная запись: все поля задачи, заменен только статус
func TestMoveTask_FullRecordUpdate(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	task := entity.Task{
		ID:          7,
		Title:       "write report",
		Description: "quarterly",
		DueDate:     due,
		Priority:    entity.PriorityHigh,
		Status:      entity.StatusTodo,
		Labels:      []string{"work", "urgent"},
	}

	var gotUpd *entity.UpdateTaskRequest
	updater := &mockUpdater{
		updateFunc: func(ctx context.Context, taskID int, upd *entity.UpdateTaskRequest) (*entity.Task, error) {
			gotUpd = upd
			updated := task
			updated.Status = *upd.Status
			return &updated, nil
		},
	}

	moved, err := MoveTask(context.Background(), updater, task, entity.StatusInProgress)
	if err != nil {
		t.Fatalf("MoveTask: %v", err)
	}

	if updater.calls != 1 {
		t.Fatalf("calls = %d, want 1: перенос это один запрос", updater.calls)
	}
	if gotUpd.Title == nil || *gotUpd.Title != "write report" ||
		gotUpd.Description == nil || *gotUpd.Description != "quarterly" ||
		gotUpd.DueDate == nil || !gotUpd.DueDate.Equal(due) ||
		gotUpd.Priority == nil || *gotUpd.Priority != entity.PriorityHigh ||
		gotUpd.Labels == nil || len(*gotUpd.Labels) != 2 {
		t.Errorf("обновление не содержит полную запись: %+v", gotUpd)
	}
	if *gotUpd.Status != entity.StatusInProgress {
		t.Errorf("status = %q, want inProgress", *gotUpd.Status)
	}
	if moved.Status != entity.StatusInProgress {
		t.Errorf("moved.Status = %q", moved.Status)
	}
}

// При ошибке возвращается исходная задача - доска остается как была
func TestMoveTask_ErrorRestoresPriorState(t *testing.T) {
	task := entity.Task{ID: 1, Title: "x", Status: entity.StatusTodo}
	updater := &mockUpdater{
		updateFunc: func(ctx context.Context, taskID int, upd *entity.UpdateTaskRequest) (*entity.Task, error) {
			return nil, errors.New("store unavailable")
		},
	}

	moved, err := MoveTask(context.Background(), updater, task, entity.StatusCompleted)
	if err == nil {
		t.Fatal("want error")
	}
	if moved.Status != entity.StatusTodo {
		t.Errorf("status = %q, want todo: неподтвержденный перенос не применяется", moved.Status)
	}
}
