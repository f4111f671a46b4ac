package notify

import (
	"fmt"
	"time"

	"github.com/St1cky1/taskboard/internal/entity"
)

// Notification - напоминание по одной задаче. Не хранится: выводится
// заново из списка задач при каждом его изменении.
type Notification struct {
	TaskID  int    `json:"task_id"`
	Message string `json:"message"`
}

// Today обнуляет время, оставляя календарный день
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Derive классифицирует незавершенные задачи по календарному дню срока:
// просрочена / сегодня / завтра, остальные не попадают в выдачу.
// Сравнение идет по буквальным компонентам год-месяц-день из due_date,
// без приведения к зоне наблюдателя - это отличается от overdue в
// сводке, которая сравнивает полные timestamp'ы. Так задумано.
func Derive(tasks []entity.Task, today time.Time) []Notification {
	today = Today(today)
	tomorrow := today.AddDate(0, 0, 1)

	var notifications []Notification
	for _, task := range tasks {
		if task.Status == entity.StatusCompleted {
			continue
		}

		due := time.Date(task.DueDate.Year(), task.DueDate.Month(), task.DueDate.Day(),
			0, 0, 0, 0, today.Location())

		var message string
		switch {
		case due.Before(today):
			message = fmt.Sprintf("%q is overdue!", task.Title)
		case due.Equal(today):
			message = fmt.Sprintf("%q is due today!", task.Title)
		case due.Equal(tomorrow):
			message = fmt.Sprintf("%q is due tomorrow!", task.Title)
		default:
			continue
		}

		notifications = append(notifications, Notification{
			TaskID:  task.ID,
			Message: message,
		})
	}

	return notifications
}
