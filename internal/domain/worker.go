package domain

// Worker is a laborer paid per task, per day, or both. A zero DailyRateCents
// means task-based pay only.
type Worker struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	DailyRateCents int64  `json:"daily_rate_cents"`
	Active         bool   `json:"active"`
	CreatedOn      string `json:"created_on"`
	UpdatedOn      string `json:"updated_on"`
}

// Attendance is one time-attendance record for a worker paid by time rather
// than task. Hours are billed at DailyRateCents / 8 per hour.
type Attendance struct {
	ID       string  `json:"id"`
	WorkerID string  `json:"worker_id"`
	Date     string  `json:"date"` // yyyy-mm-dd
	Hours    float64 `json:"hours"`
	Notes    string  `json:"notes"`
}
