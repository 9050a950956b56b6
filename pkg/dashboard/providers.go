package dashboard

import (
	"context"
	"time"
)

// TaskCounts summarizes a task collection
type TaskCounts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
	Overdue   int `json:"overdue"`
	DueToday  int `json:"due_today"`
}

// TaskSummary is one task row for dashboard display
type TaskSummary struct {
	Title    string    `json:"title"`
	Assignee string    `json:"assignee"`
	Status   string    `json:"status"`
	DueDate  time.Time `json:"due_date"`
}

// AttendanceSummary summarizes attendance records
type AttendanceSummary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Total   int `json:"total"`
}

// TaskProvider is the read-only task collaborator boundary
type TaskProvider interface {
	CountTasks(ctx context.Context) (TaskCounts, error)
	CountTasksForUser(ctx context.Context, userID string) (TaskCounts, error)
	RecentTasks(ctx context.Context, limit int) ([]TaskSummary, error)
}

// AttendanceProvider is the read-only attendance collaborator boundary
type AttendanceProvider interface {
	Summary(ctx context.Context) (AttendanceSummary, error)
	SummaryForUser(ctx context.Context, userID string) (AttendanceSummary, error)
}

// PerformanceProvider is the read-only performance collaborator boundary
type PerformanceProvider interface {
	ScoreForUser(ctx context.Context, userID string) (float64, error)
}

// OrgProvider exposes organization structure counts
type OrgProvider interface {
	DepartmentCount(ctx context.Context) (int, error)
}
