package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/coupon-api/internal/api/middleware"
	"github.com/phrazzld/coupon-api/internal/config"
	"github.com/phrazzld/coupon-api/internal/platform/postgres"
	"github.com/phrazzld/coupon-api/internal/service"
	"github.com/phrazzld/coupon-api/internal/service/auth"
	"github.com/phrazzld/coupon-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

// application holds the shared dependencies of the server so they can be
// wired once and released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	couponStore store.CouponStore
	userStore   store.UserStore

	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
	couponService  service.CouponService
	userService    service.UserService

	registry *prometheus.Registry
	metrics  *middleware.Metrics
}

// newApplication wires the Postgres stores over db and builds everything
// above them.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app, err := buildApplication(
		cfg,
		logger,
		postgres.NewPostgresCouponStore(db, logger),
		postgres.NewPostgresUserStore(db, logger),
	)
	if err != nil {
		return nil, err
	}
	app.db = db
	return app, nil
}

// buildApplication wires services, auth and metrics on top of the given
// stores.
func buildApplication(
	cfg *config.Config,
	logger *slog.Logger,
	coupons store.CouponStore,
	users store.UserStore,
) (*application, error) {
	app := &application{
		config:      cfg,
		logger:      logger,
		couponStore: coupons,
		userStore:   users,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BCryptCost)

	app.couponService, err = service.NewCouponService(coupons, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create coupon service: %w", err)
	}

	app.userService, err = service.NewUserService(users, app.passwordHasher, app.jwtService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics, err = middleware.NewMetrics(app.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}

// runServe loads configuration, connects to the database and serves until
// the command's context is cancelled.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}
	logConfig(cfg, logger)

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// runMigrate applies a single migration command against the configured
// database.
func runMigrate(cmd *cobra.Command, command string) error {
	ctx := cmd.Context()

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	logger.Info("Executing migrations", "command", command)
	return postgres.Migrate(ctx, db, command, logger)
}
