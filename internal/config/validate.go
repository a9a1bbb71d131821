package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.App.validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	c.Database.RequireSSL = c.App.IsProduction()

	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.RateLimit.SubmissionsPerMinute < 0 {
		return fmt.Errorf("ratelimit.submissions_per_minute must be >= 0 (got %d)", c.RateLimit.SubmissionsPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("ratelimit.cleanup_interval must be positive (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (a *AppConfig) validate() error {
	u, err := url.Parse(a.PublicURL)
	if err != nil {
		return fmt.Errorf("public_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("public_url must be an http(s) URL (got %q)", a.PublicURL)
	}
	if u.Host == "" {
		return fmt.Errorf("public_url must include a host (got %q)", a.PublicURL)
	}
	a.PublicURL = strings.TrimRight(a.PublicURL, "/")
	return nil
}
