package ciutil

import (
	"log/slog"
	"os"

	"github.com/phrazzld/coupon-api/internal/redact"
)

// Environment variable names read by this package.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCircleCI      = "CIRCLECI"

	// EnvTestDBURL is the preferred variable for the integration test database.
	EnvTestDBURL = "COUPONAPI_TEST_DB_URL"
	// EnvDatabaseURL is accepted as a fallback for EnvTestDBURL.
	EnvDatabaseURL = "DATABASE_URL"
)

var ciVars = []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI}

// IsCI reports whether any well-known CI provider variable is set.
func IsCI() bool {
	for _, name := range ciVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// GetEnvWithFallbacks returns the value of the first non-empty variable in
// envVars, or defaultValue when none is set. Using anything but the first
// name logs a warning with the value redacted.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, envVar := range envVars {
		val := os.Getenv(envVar)
		if val == "" {
			continue
		}
		if i > 0 && logger != nil {
			logger.Warn("Using fallback environment variable",
				"used_var", envVar,
				"preferred_var", envVars[0],
				"value", redact.String(val),
			)
		}
		return val
	}
	return defaultValue
}

// TestDatabaseURL returns the integration test database URL, or "" when
// none is configured.
func TestDatabaseURL(logger *slog.Logger) string {
	return GetEnvWithFallbacks([]string{EnvTestDBURL, EnvDatabaseURL}, "", logger)
}
