package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"
	"github.com/tendant/simple-org/pkg/audit"
	"github.com/tendant/simple-org/pkg/config"
	"github.com/tendant/simple-org/pkg/dashboard"
	dashboardapi "github.com/tendant/simple-org/pkg/dashboard/api"
	"github.com/tendant/simple-org/pkg/directory"
	directoryapi "github.com/tendant/simple-org/pkg/directory/api"
	"github.com/tendant/simple-org/pkg/docstore"
	"github.com/tendant/simple-org/pkg/identity"
	"github.com/tendant/simple-org/pkg/notification"
	"github.com/tendant/simple-org/pkg/role"
	"github.com/tendant/simple-org/pkg/session"
	sessionapi "github.com/tendant/simple-org/pkg/session/api"
	"github.com/tendant/simple-org/pkg/token"
)

func main() {
	// Load .env file if present, environment takes precedence
	godotenv.Load()

	cfg := config.Config{}
	cleanenv.ReadEnv(&cfg)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting simple-org service", "persistence", cfg.PersistenceType, "port", cfg.Server.Port)

	ctx := context.Background()

	// Persistence
	storeConfig := docstore.StoreConfig{DataDir: cfg.DataDir}
	auditConfig := audit.RepositoryConfig{DataDir: cfg.DataDir}
	if cfg.PersistenceType == "postgres" || cfg.PersistenceType == "postgresql" {
		pool, err := dbutils.NewDbPool(ctx, cfg.Database.ToDbConfig())
		if err != nil {
			slog.Error("Failed creating dbpool", "db", cfg.Database.Database, "host", cfg.Database.Host, "err", err)
			os.Exit(-1)
		}
		storeConfig.Pool = pool
		auditConfig.Pool = pool
	}

	store, err := docstore.NewStore(cfg.PersistenceType, storeConfig)
	if err != nil {
		slog.Error("Failed creating document store", "err", err)
		os.Exit(-1)
	}

	auditRepo, err := audit.NewRepository(cfg.PersistenceType, auditConfig)
	if err != nil {
		slog.Error("Failed creating audit repository", "err", err)
		os.Exit(-1)
	}
	auditLogger := audit.NewLogger(auditRepo)

	// Notifications
	notificationManager := notification.NewNotificationManager(cfg.BaseURL)
	registerNotifications(notificationManager, cfg)

	// Identity provider
	provider := identity.NewLocalProvider(
		identity.WithNotificationManager(notificationManager),
	)

	// Core services
	resolver := role.NewResolver(store)
	directoryService := directory.NewService(directory.NewDocStoreRepository(store), provider, auditLogger)
	sessionManager := session.NewManager(provider, resolver, directoryService)
	sessionManager.Start(ctx)
	defer sessionManager.Close()

	// Token services
	tokenService := token.NewService(cfg.JWT.Secret, cfg.JWT.Issuer)
	if expiry, err := cfg.JWT.ParseAccessTokenExpiry(); err == nil {
		tokenService.AccessTokenExpiry = expiry
	}
	cookieSetter := token.NewCookieSetter(cfg.JWT.CookieHttpOnly, cfg.JWT.CookieSecure)

	// Dashboard providers (in-memory placeholders until the task and
	// attendance services are integrated)
	providers := dashboard.NewStaticProviders()
	aggregator := dashboard.NewAggregator(directoryService, auditLogger, providers, providers, providers, providers)

	if cfg.SeedDemoData && (cfg.PersistenceType == "inmem" || cfg.PersistenceType == "memory") {
		seedDemoData(ctx, directoryService, providers)
	}

	// HTTP server
	appConfig := app.DefaultAppConfig()
	appConfig.Port = int(cfg.Server.Port)
	server := app.NewApp(app.WithAppConfig(appConfig))
	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	tokenAuth := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil)

	authHandle := sessionapi.NewHandle(sessionManager, tokenService, cookieSetter)
	server.R.Route("/api/auth", authHandle.RegisterRoutes)

	server.R.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(tokenAuth))
		r.Use(jwtauth.Authenticator(tokenAuth))

		directoryHandle := directoryapi.NewHandle(directoryService)
		r.Route("/api/users", func(r chi.Router) {
			r.Use(token.RequireRoles(role.RoleAdmin))
			directoryHandle.RegisterRoutes(r)
		})

		dashboardHandle := dashboardapi.NewHandle(aggregator)
		r.Route("/api/dashboard", dashboardHandle.RegisterRoutes)
	})

	server.Run()
}

func registerNotifications(nm *notification.NotificationManager, cfg config.Config) {
	emailNotifier, err := notification.NewEmailNotifier(cfg.Email.ToSMTPConfig())
	if err != nil {
		slog.Warn("Email notifier unavailable, password reset emails disabled", "err", err)
		return
	}
	nm.RegisterNotifier(notification.EmailSystem, emailNotifier)
	nm.RegisterNotification(notification.PasswordResetNotice, notification.EmailSystem, notification.NoticeTemplate{
		Subject: "Reset your password",
		Text:    "Click the link below to reset your password:\n{{.Link}}\n\nIf you did not request this, you can ignore this email.",
	})
	nm.RegisterNotification(notification.WelcomeNotice, notification.EmailSystem, notification.NoticeTemplate{
		Subject: "Welcome",
		Text:    "Your account has been created. You can sign in at {{.Link}}.",
	})
}

func seedDemoData(ctx context.Context, directoryService *directory.Service, providers *dashboard.StaticProviders) {
	slog.Info("Seeding demo data...")

	seedUsers := []directory.CreateUserParams{
		{Email: "admin@example.com", Password: "password123", DisplayName: "Admin User", Role: role.RoleAdmin},
		{Email: "ceo@example.com", Password: "password123", DisplayName: "Pat Chief", Role: role.RoleCEO},
		{Email: "manager@example.com", Password: "password123", DisplayName: "Morgan Lead", Role: role.RoleManager},
		{Email: "employee@example.com", Password: "password123", DisplayName: "Sam Worker", Role: role.RoleEmployee},
	}

	for _, params := range seedUsers {
		user, err := directoryService.CreateUser(ctx, audit.SystemActor, params)
		if err != nil {
			slog.Error("Failed seeding user", "email", params.Email, "err", err)
			continue
		}
		slog.Info("Seeded user", "email", user.Email, "role", user.Role, "id", user.ID)

		if params.Role == role.RoleEmployee {
			providers.SetAttendance(user.ID.String(), dashboard.AttendanceSummary{Present: 18, Absent: 2, Total: 20})
			providers.SetScore(user.ID.String(), 84)
		}
	}

	providers.SetDepartments(4)
	slog.Info("Demo data seeded successfully")
	slog.Info("Test credentials: admin@example.com / password123")
}
