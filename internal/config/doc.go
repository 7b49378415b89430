// Package config loads, parses and validates the service configuration from
// environment variables and an optional config file, giving the rest of the
// application typed access to its settings.
package config
