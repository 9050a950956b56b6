package dashboard

import (
	"context"
	"sync"
	"time"
)

// StaticTask is one seeded task record for the in-memory providers.
type StaticTask struct {
	Title     string
	Assignee  string
	UserID    string
	Status    string
	DueDate   time.Time
	Completed bool
}

// StaticProviders is an in-memory implementation of all four provider
// boundaries, used for demo wiring and tests. Zero value is usable.
type StaticProviders struct {
	mu          sync.RWMutex
	tasks       []StaticTask
	attendance  map[string]AttendanceSummary
	scores      map[string]float64
	departments int
	now         func() time.Time
}

// NewStaticProviders creates empty in-memory providers
func NewStaticProviders() *StaticProviders {
	return &StaticProviders{
		attendance: make(map[string]AttendanceSummary),
		scores:     make(map[string]float64),
		now:        time.Now,
	}
}

// AddTask seeds one task record
func (p *StaticProviders) AddTask(task StaticTask) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tasks = append(p.tasks, task)
}

// SetAttendance seeds the attendance summary for one user
func (p *StaticProviders) SetAttendance(userID string, summary AttendanceSummary) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attendance[userID] = summary
}

// SetScore seeds the performance score for one user
func (p *StaticProviders) SetScore(userID string, score float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scores[userID] = score
}

// SetDepartments seeds the department count
func (p *StaticProviders) SetDepartments(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.departments = count
}

func (p *StaticProviders) countTasks(filter func(StaticTask) bool) TaskCounts {
	now := p.now()
	today := now.Truncate(24 * time.Hour)
	var counts TaskCounts
	for _, task := range p.tasks {
		if filter != nil && !filter(task) {
			continue
		}
		counts.Total++
		if task.Completed {
			counts.Completed++
			continue
		}
		counts.Active++
		if !task.DueDate.IsZero() && task.DueDate.Before(now) {
			counts.Overdue++
		}
		if !task.DueDate.IsZero() && task.DueDate.Truncate(24*time.Hour).Equal(today) {
			counts.DueToday++
		}
	}
	return counts
}

func (p *StaticProviders) CountTasks(ctx context.Context) (TaskCounts, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.countTasks(nil), nil
}

func (p *StaticProviders) CountTasksForUser(ctx context.Context, userID string) (TaskCounts, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.countTasks(func(t StaticTask) bool { return t.UserID == userID }), nil
}

func (p *StaticProviders) RecentTasks(ctx context.Context, limit int) ([]TaskSummary, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	summaries := make([]TaskSummary, 0, limit)
	for i := len(p.tasks) - 1; i >= 0 && len(summaries) < limit; i-- {
		task := p.tasks[i]
		summaries = append(summaries, TaskSummary{
			Title:    task.Title,
			Assignee: task.Assignee,
			Status:   task.Status,
			DueDate:  task.DueDate,
		})
	}
	return summaries, nil
}

func (p *StaticProviders) Summary(ctx context.Context) (AttendanceSummary, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var total AttendanceSummary
	for _, summary := range p.attendance {
		total.Present += summary.Present
		total.Absent += summary.Absent
		total.Total += summary.Total
	}
	return total, nil
}

func (p *StaticProviders) SummaryForUser(ctx context.Context, userID string) (AttendanceSummary, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.attendance[userID], nil
}

func (p *StaticProviders) ScoreForUser(ctx context.Context, userID string) (float64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.scores[userID], nil
}

func (p *StaticProviders) DepartmentCount(ctx context.Context) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.departments, nil
}
