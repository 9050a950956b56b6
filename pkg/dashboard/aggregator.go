package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/tendant/simple-org/pkg/audit"
	"github.com/tendant/simple-org/pkg/directory"
	"github.com/tendant/simple-org/pkg/role"
)

const (
	recentActivityLimit = 5
	recentTaskLimit     = 5
)

// Aggregator computes the four role-specific dashboard read models.
//
// Every pipeline degrades gracefully: when an upstream collaborator
// fails the pipeline returns the unavailable shape (Available=false)
// instead of propagating the failure, so the caller always has a
// renderable value.
type Aggregator struct {
	directory   *directory.Service
	auditLog    *audit.Logger
	tasks       TaskProvider
	attendance  AttendanceProvider
	performance PerformanceProvider
	org         OrgProvider
	now         func() time.Time
}

// NewAggregator creates a new dashboard aggregator
func NewAggregator(
	directorySvc *directory.Service,
	auditLog *audit.Logger,
	tasks TaskProvider,
	attendance AttendanceProvider,
	performance PerformanceProvider,
	org OrgProvider,
) *Aggregator {
	return &Aggregator{
		directory:   directorySvc,
		auditLog:    auditLog,
		tasks:       tasks,
		attendance:  attendance,
		performance: performance,
		org:         org,
		now:         time.Now,
	}
}

// AdminStats computes user counts, the role histogram, and recent audit
// activity with human-relative ages.
func (a *Aggregator) AdminStats(ctx context.Context) AdminStats {
	users, err := a.directory.GetAllUsers(ctx)
	if err != nil {
		slog.Warn("Admin dashboard unavailable", "err", err)
		return AdminStats{}
	}

	stats := AdminStats{
		Available:  true,
		RoleCounts: make(map[role.Role]int, len(role.All())),
	}
	for _, r := range role.All() {
		stats.RoleCounts[r] = 0
	}
	for _, user := range users {
		stats.TotalUsers++
		if user.Active {
			stats.ActiveUsers++
		} else {
			stats.InactiveUsers++
		}
		// A malformed stored tag buckets under employee, matching the
		// resolver's default, so the histogram keys stay the closed enum.
		if user.Role.Valid() {
			stats.RoleCounts[user.Role]++
		} else {
			stats.RoleCounts[role.RoleEmployee]++
		}
	}

	entries, err := a.auditLog.Recent(ctx, recentActivityLimit)
	if err != nil {
		slog.Warn("Admin dashboard unavailable", "err", err)
		return AdminStats{}
	}
	now := a.now()
	stats.RecentActivity = make([]ActivityEntry, 0, len(entries))
	for _, entry := range entries {
		stats.RecentActivity = append(stats.RecentActivity, ActivityEntry{
			Action: entry.Action,
			Actor:  entry.ActorEmail,
			Age:    relativeAge(entry.Timestamp, now),
		})
	}

	return stats
}

// CEOStats computes headcount, department count, attendance-derived
// productivity, and the task completion percentage.
func (a *Aggregator) CEOStats(ctx context.Context) CEOStats {
	users, err := a.directory.GetAllUsers(ctx)
	if err != nil {
		slog.Warn("CEO dashboard unavailable", "err", err)
		return CEOStats{}
	}

	headcount := 0
	for _, user := range users {
		if user.Active {
			headcount++
		}
	}

	departments, err := a.org.DepartmentCount(ctx)
	if err != nil {
		slog.Warn("CEO dashboard unavailable", "err", err)
		return CEOStats{}
	}

	attendanceSummary, err := a.attendance.Summary(ctx)
	if err != nil {
		slog.Warn("CEO dashboard unavailable", "err", err)
		return CEOStats{}
	}

	taskCounts, err := a.tasks.CountTasks(ctx)
	if err != nil {
		slog.Warn("CEO dashboard unavailable", "err", err)
		return CEOStats{}
	}

	return CEOStats{
		Available:         true,
		Headcount:         headcount,
		Departments:       departments,
		ProductivityPct:   percent(attendanceSummary.Present, attendanceSummary.Total),
		TaskCompletionPct: percent(taskCounts.Completed, taskCounts.Total),
	}
}

// ManagerStats computes team size, task counts, the attendance
// fraction, and a bounded list of recent tasks.
func (a *Aggregator) ManagerStats(ctx context.Context) ManagerStats {
	users, err := a.directory.GetAllUsers(ctx)
	if err != nil {
		slog.Warn("Manager dashboard unavailable", "err", err)
		return ManagerStats{}
	}

	teamSize := 0
	for _, user := range users {
		if user.Active {
			teamSize++
		}
	}

	taskCounts, err := a.tasks.CountTasks(ctx)
	if err != nil {
		slog.Warn("Manager dashboard unavailable", "err", err)
		return ManagerStats{}
	}

	attendanceSummary, err := a.attendance.Summary(ctx)
	if err != nil {
		slog.Warn("Manager dashboard unavailable", "err", err)
		return ManagerStats{}
	}

	recent, err := a.tasks.RecentTasks(ctx, recentTaskLimit)
	if err != nil {
		slog.Warn("Manager dashboard unavailable", "err", err)
		return ManagerStats{}
	}

	var rate float64
	denominator := attendanceSummary.Present + attendanceSummary.Total
	if denominator > 0 {
		rate = float64(attendanceSummary.Present) / float64(denominator)
	}

	return ManagerStats{
		Available:      true,
		TeamSize:       teamSize,
		ActiveTasks:    taskCounts.Active,
		OverdueTasks:   taskCounts.Overdue,
		AttendanceRate: rate,
		AttendancePct:  percent(attendanceSummary.Present, denominator),
		RecentTasks:    recent,
	}
}

// EmployeeStats computes the personal task totals, attendance
// percentage, and performance band for one user.
func (a *Aggregator) EmployeeStats(ctx context.Context, userID string) EmployeeStats {
	taskCounts, err := a.tasks.CountTasksForUser(ctx, userID)
	if err != nil {
		slog.Warn("Employee dashboard unavailable", "userId", userID, "err", err)
		return EmployeeStats{}
	}

	attendanceSummary, err := a.attendance.SummaryForUser(ctx, userID)
	if err != nil {
		slog.Warn("Employee dashboard unavailable", "userId", userID, "err", err)
		return EmployeeStats{}
	}

	score, err := a.performance.ScoreForUser(ctx, userID)
	if err != nil {
		slog.Warn("Employee dashboard unavailable", "userId", userID, "err", err)
		return EmployeeStats{}
	}

	return EmployeeStats{
		Available:       true,
		TasksDueToday:   taskCounts.DueToday,
		TasksCompleted:  taskCounts.Completed,
		TasksOverdue:    taskCounts.Overdue,
		AttendancePct:   percent(attendanceSummary.Present, attendanceSummary.Present+attendanceSummary.Absent),
		PerformanceBand: performanceBand(score),
	}
}
