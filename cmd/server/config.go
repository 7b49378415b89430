package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/coupon-api/internal/config"
)

// loadAppConfig loads and validates the configuration.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfig records the loaded settings without exposing secrets.
func logConfig(cfg *config.Config, logger *slog.Logger) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	logger.Debug("Database configuration",
		"url_present", cfg.Database.URL != "",
		"max_open_conns", cfg.Database.MaxOpenConns)
	logger.Debug("Auth configuration",
		"jwt_secret_present", cfg.Auth.JWTSecret != "",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"admin_role", cfg.Auth.AdminRole)
}
