package dashboard

import (
	"github.com/tendant/simple-org/pkg/role"
)

// ActivityEntry is one audit log row formatted for display
type ActivityEntry struct {
	Action string `json:"action"`
	Actor  string `json:"actor"`
	Age    string `json:"age"`
}

// AdminStats is the admin dashboard read model. Available is false when
// an upstream collaborator failed; the zero value is the unavailable
// shape.
type AdminStats struct {
	Available      bool              `json:"available"`
	TotalUsers     int               `json:"total_users"`
	ActiveUsers    int               `json:"active_users"`
	InactiveUsers  int               `json:"inactive_users"`
	RoleCounts     map[role.Role]int `json:"role_counts"`
	RecentActivity []ActivityEntry   `json:"recent_activity"`
}

// CEOStats is the CEO dashboard read model
type CEOStats struct {
	Available         bool `json:"available"`
	Headcount         int  `json:"headcount"`
	Departments       int  `json:"departments"`
	ProductivityPct   int  `json:"productivity_pct"`
	TaskCompletionPct int  `json:"task_completion_pct"`
}

// ManagerStats is the manager dashboard read model
type ManagerStats struct {
	Available      bool          `json:"available"`
	TeamSize       int           `json:"team_size"`
	ActiveTasks    int           `json:"active_tasks"`
	OverdueTasks   int           `json:"overdue_tasks"`
	AttendanceRate float64       `json:"attendance_rate"`
	AttendancePct  int           `json:"attendance_pct"`
	RecentTasks    []TaskSummary `json:"recent_tasks"`
}

// EmployeeStats is the employee dashboard read model
type EmployeeStats struct {
	Available       bool   `json:"available"`
	TasksDueToday   int    `json:"tasks_due_today"`
	TasksCompleted  int    `json:"tasks_completed"`
	TasksOverdue    int    `json:"tasks_overdue"`
	AttendancePct   int    `json:"attendance_pct"`
	PerformanceBand string `json:"performance_band"`
}
