package domain

// TaskTypeEarnings is one row of a worker's per-task-type breakdown.
type TaskTypeEarnings struct {
	TaskType   TaskType `json:"task_type"`
	TaskCount  int      `json:"task_count"`
	TotalCents int64    `json:"total_cents"`
}

// EarningsSummary aggregates a worker's pay over a date range. Task earnings
// follow each task type's payment policy; attendance earnings are hours times
// an hourly rate derived from the worker's daily rate.
type EarningsSummary struct {
	WorkerID                string             `json:"worker_id"`
	StartDate               string             `json:"start_date"`
	EndDate                 string             `json:"end_date"`
	TaskCount               int                `json:"task_count"`
	TaskEarningsCents       int64              `json:"task_earnings_cents"`
	ByTaskType              []TaskTypeEarnings `json:"by_task_type"`
	AttendanceHours         float64            `json:"attendance_hours"`
	AttendanceEarningsCents int64              `json:"attendance_earnings_cents"`
	TotalCents              int64              `json:"total_cents"`
}
