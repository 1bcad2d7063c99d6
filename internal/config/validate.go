package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/langy-backend/internal/domain"
)

// DefaultSQLitePath is used when the sqlite driver is selected without a DSN.
const DefaultSQLitePath = "langy.db"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if c.RateLimit.AuthPerMinute < 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be >= 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))

	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", d.Driver)
		}
	case DriverSQLite:
		if d.DSN == "" {
			d.DSN = DefaultSQLitePath
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, d.Driver)
	}
	return nil
}

func (s *SRSConfig) validate() error {
	if s.MinEaseFactor < domain.MinEaseFactor {
		return fmt.Errorf("min_ease_factor must be >= %v (got %v)", domain.MinEaseFactor, s.MinEaseFactor)
	}
	if s.DefaultEaseFactor < s.MinEaseFactor {
		return fmt.Errorf("default_ease_factor must be >= min_ease_factor (got %v < %v)", s.DefaultEaseFactor, s.MinEaseFactor)
	}
	if s.FirstInterval < 1 {
		return fmt.Errorf("first_interval must be >= 1 (got %d)", s.FirstInterval)
	}
	if s.SecondInterval < s.FirstInterval {
		return fmt.Errorf("second_interval must be >= first_interval (got %d < %d)", s.SecondInterval, s.FirstInterval)
	}
	return nil
}
