package entity

// TaskOverview - сводные счетчики дашборда. Overdue всегда вычисляется
// на момент запроса, в БД этот признак не хранится.
type TaskOverview struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	PendingTasks   int `json:"pending_tasks"`
	OverdueTasks   int `json:"overdue_tasks"`
}

// Группировки возвращают только реально встречающиеся значения,
// нули для отсутствующих статусов/приоритетов добивает вызывающая сторона.
type StatusCount struct {
	Status TaskStatus `json:"status"`
	Count  int        `json:"count"`
}

type PriorityCount struct {
	Priority TaskPriority `json:"priority"`
	Count    int          `json:"count"`
}

type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DailyCount - (календарная дата, количество) для недельного тренда.
// Дата в формате YYYY-MM-DD по зоне хранилища.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
