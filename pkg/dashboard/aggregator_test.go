package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-org/pkg/audit"
	"github.com/tendant/simple-org/pkg/directory"
	"github.com/tendant/simple-org/pkg/docstore"
	"github.com/tendant/simple-org/pkg/identity"
	"github.com/tendant/simple-org/pkg/role"
)

// failingRepository breaks the user directory read path
type failingRepository struct{}

func (f *failingRepository) CreateUser(ctx context.Context, user directory.User) error {
	return errors.New("store unavailable")
}

func (f *failingRepository) GetUser(ctx context.Context, id uuid.UUID) (directory.User, error) {
	return directory.User{}, errors.New("store unavailable")
}

func (f *failingRepository) ListUsers(ctx context.Context) ([]directory.User, error) {
	return nil, errors.New("store unavailable")
}

func (f *failingRepository) SaveUser(ctx context.Context, user directory.User) error {
	return errors.New("store unavailable")
}

type aggregatorFixture struct {
	aggregator *Aggregator
	directory  *directory.Service
	store      docstore.Store
	auditRepo  *audit.InMemoryRepository
	providers  *StaticProviders
}

func setupAggregator(t *testing.T) *aggregatorFixture {
	store := docstore.NewInMemoryStore()
	auditRepo := audit.NewInMemoryRepository()
	auditLogger := audit.NewLogger(auditRepo)
	directoryService := directory.NewService(
		directory.NewDocStoreRepository(store),
		identity.NewLocalProvider(),
		auditLogger,
	)
	providers := NewStaticProviders()
	aggregator := NewAggregator(directoryService, auditLogger, providers, providers, providers, providers)
	return &aggregatorFixture{
		aggregator: aggregator,
		directory:  directoryService,
		store:      store,
		auditRepo:  auditRepo,
		providers:  providers,
	}
}

func seedUser(t *testing.T, svc *directory.Service, email string, userRole role.Role, active bool) directory.User {
	ctx := context.Background()
	user, err := svc.CreateUser(ctx, audit.SystemActor, directory.CreateUserParams{
		Email:    email,
		Password: "password123",
		Role:     userRole,
	})
	require.NoError(t, err)
	if !active {
		require.NoError(t, svc.DeactivateUser(ctx, audit.SystemActor, user.ID))
	}
	return user
}

func TestAggregator_AdminStats(t *testing.T) {
	ctx := context.Background()

	t.Run("CountsAndHistogram", func(t *testing.T) {
		f := setupAggregator(t)
		seedUser(t, f.directory, "admin@example.com", role.RoleAdmin, true)
		seedUser(t, f.directory, "a@example.com", role.RoleEmployee, true)
		seedUser(t, f.directory, "b@example.com", role.RoleEmployee, false)
		seedUser(t, f.directory, "m@example.com", role.RoleManager, true)

		stats := f.aggregator.AdminStats(ctx)
		require.True(t, stats.Available)
		assert.Equal(t, 4, stats.TotalUsers)
		assert.Equal(t, 3, stats.ActiveUsers)
		assert.Equal(t, 1, stats.InactiveUsers)
		assert.Equal(t, 1, stats.RoleCounts[role.RoleAdmin])
		assert.Equal(t, 2, stats.RoleCounts[role.RoleEmployee])
		assert.Equal(t, 1, stats.RoleCounts[role.RoleManager])
		assert.Equal(t, 0, stats.RoleCounts[role.RoleCEO])
	})

	t.Run("RecentActivityWithAges", func(t *testing.T) {
		f := setupAggregator(t)
		seedUser(t, f.directory, "a@example.com", role.RoleEmployee, true)

		now := time.Now().UTC()
		f.aggregator.now = func() time.Time { return now.Add(90 * time.Second) }

		stats := f.aggregator.AdminStats(ctx)
		require.True(t, stats.Available)
		require.NotEmpty(t, stats.RecentActivity)
		assert.Equal(t, audit.ActionUserCreated, stats.RecentActivity[0].Action)
		assert.Equal(t, "System", stats.RecentActivity[0].Actor)
		assert.Equal(t, "1 mins ago", stats.RecentActivity[0].Age)
	})

	t.Run("MalformedRoleTagBucketsUnderEmployee", func(t *testing.T) {
		f := setupAggregator(t)
		user := seedUser(t, f.directory, "a@example.com", role.RoleManager, true)

		// A hand-edited record can carry a tag outside the enum
		require.NoError(t, f.store.Merge(ctx, role.UserCollection, user.ID.String(), docstore.Document{"role": "superuser"}))

		stats := f.aggregator.AdminStats(ctx)
		require.True(t, stats.Available)
		assert.Equal(t, 1, stats.RoleCounts[role.RoleEmployee])
		assert.Equal(t, 0, stats.RoleCounts[role.RoleManager])
		assert.Len(t, stats.RoleCounts, 4, "histogram keys stay the closed enum")
	})

	t.Run("DirectoryFailureMarksUnavailable", func(t *testing.T) {
		f := setupAggregator(t)
		broken := directory.NewService(&failingRepository{}, identity.NewLocalProvider(), audit.NewLogger(f.auditRepo))
		aggregator := NewAggregator(broken, audit.NewLogger(f.auditRepo), f.providers, f.providers, f.providers, f.providers)

		stats := aggregator.AdminStats(ctx)
		assert.False(t, stats.Available)
		assert.Zero(t, stats.TotalUsers)
	})
}

func TestAggregator_CEOStats(t *testing.T) {
	ctx := context.Background()

	t.Run("ComputesPercentages", func(t *testing.T) {
		f := setupAggregator(t)
		seedUser(t, f.directory, "ceo@example.com", role.RoleCEO, true)
		seedUser(t, f.directory, "a@example.com", role.RoleEmployee, true)
		seedUser(t, f.directory, "gone@example.com", role.RoleEmployee, false)

		f.providers.SetDepartments(3)
		f.providers.SetAttendance("u1", AttendanceSummary{Present: 8, Absent: 2, Total: 10})
		f.providers.AddTask(StaticTask{Title: "Done", Completed: true})
		f.providers.AddTask(StaticTask{Title: "Open", Status: "open"})

		stats := f.aggregator.CEOStats(ctx)
		require.True(t, stats.Available)
		assert.Equal(t, 2, stats.Headcount, "only active users count")
		assert.Equal(t, 3, stats.Departments)
		assert.Equal(t, 80, stats.ProductivityPct)
		assert.Equal(t, 50, stats.TaskCompletionPct)
	})

	t.Run("NoTasksYieldsZeroCompletion", func(t *testing.T) {
		f := setupAggregator(t)
		stats := f.aggregator.CEOStats(ctx)
		require.True(t, stats.Available)
		assert.Equal(t, 0, stats.TaskCompletionPct)
	})
}

func TestAggregator_ManagerStats(t *testing.T) {
	ctx := context.Background()
	f := setupAggregator(t)
	seedUser(t, f.directory, "m@example.com", role.RoleManager, true)
	seedUser(t, f.directory, "a@example.com", role.RoleEmployee, true)

	yesterday := time.Now().Add(-24 * time.Hour)
	f.providers.AddTask(StaticTask{Title: "Late", Status: "open", DueDate: yesterday})
	f.providers.AddTask(StaticTask{Title: "Done", Completed: true})
	f.providers.AddTask(StaticTask{Title: "Fresh", Status: "open"})

	stats := f.aggregator.ManagerStats(ctx)
	require.True(t, stats.Available)
	assert.Equal(t, 2, stats.TeamSize)
	assert.Equal(t, 2, stats.ActiveTasks)
	assert.Equal(t, 1, stats.OverdueTasks)
	require.NotEmpty(t, stats.RecentTasks)
	assert.Equal(t, "Fresh", stats.RecentTasks[0].Title, "newest task first")
}

func TestAggregator_EmployeeStats(t *testing.T) {
	ctx := context.Background()

	t.Run("PersonalTotals", func(t *testing.T) {
		f := setupAggregator(t)
		userID := uuid.New().String()

		f.providers.AddTask(StaticTask{Title: "Mine", UserID: userID, Completed: true})
		f.providers.AddTask(StaticTask{Title: "Mine too", UserID: userID, Status: "open", DueDate: time.Now().Add(-time.Hour)})
		f.providers.AddTask(StaticTask{Title: "Someone else's", UserID: "other"})
		f.providers.SetAttendance(userID, AttendanceSummary{Present: 18, Absent: 2, Total: 20})
		f.providers.SetScore(userID, 84)

		stats := f.aggregator.EmployeeStats(ctx, userID)
		require.True(t, stats.Available)
		assert.Equal(t, 1, stats.TasksCompleted)
		assert.Equal(t, 1, stats.TasksOverdue)
		assert.Equal(t, 90, stats.AttendancePct)
		assert.Equal(t, "Above Target", stats.PerformanceBand)
	})

	t.Run("NoAttendanceRecordsYieldsZero", func(t *testing.T) {
		f := setupAggregator(t)
		stats := f.aggregator.EmployeeStats(ctx, uuid.New().String())
		require.True(t, stats.Available)
		assert.Equal(t, 0, stats.AttendancePct)
		assert.Equal(t, "Below Target", stats.PerformanceBand)
	})
}
