package config

import (
	"errors"
	"time"

	"github.com/agenthub/hub/internal/constants"
	"github.com/agenthub/hub/internal/errs"
)

var (
	ErrConfigurationValuesError = errors.New("configuration value error")
	ErrEmptyDatabaseName        = errors.New("database name must be specified")
	ErrEmptyDatabaseHost        = errors.New("database host must be specified")
	ErrEmptyJWTSecret           = errors.New("auth signing secret must be specified")
	ErrInvalidResolverTTL       = errors.New("resolver cache TTL must be positive")
)

// Config holds all application configuration parameters
type Config struct {
	Database         Database   `mapstructure:"database"`
	DatabaseReplicas []Database `mapstructure:"databaseReplicas"`
	HTTP             HTTPServer `mapstructure:"http"`
	Auth             Auth       `mapstructure:"auth"`
	Resolver         Resolver   `mapstructure:"resolver"`
	Logging          Logging    `mapstructure:"logging"`
}

func (c *Config) Validate() error {
	err := c.Database.Validate()
	if err != nil {
		return errs.Wrap(ErrConfigurationValuesError, err)
	}

	for _, r := range c.DatabaseReplicas {
		err = r.Validate()
		if err != nil {
			return errs.Wrap(ErrConfigurationValuesError, err)
		}
	}

	err = c.Auth.Validate()
	if err != nil {
		return errs.Wrap(ErrConfigurationValuesError, err)
	}

	return c.Resolver.Validate()
}

// Database holds database config
type Database struct {
	Name     string `mapstructure:"name"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslMode"`
}

func (d *Database) Validate() error {
	if d.Name == "" {
		return ErrEmptyDatabaseName
	}

	if d.Host == "" {
		return ErrEmptyDatabaseHost
	}

	return nil
}

// HTTPServer holds the listener config
type HTTPServer struct {
	Address           string        `mapstructure:"address"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
}

// Auth holds the bearer-token verification config
type Auth struct {
	SigningSecret string `mapstructure:"signingSecret"`
	Issuer        string `mapstructure:"issuer"`
}

func (a *Auth) Validate() error {
	if a.SigningSecret == "" {
		return ErrEmptyJWTSecret
	}

	return nil
}

// Resolver holds tenant resolver config
type Resolver struct {
	// CacheTTL bounds how long a tenant row may be served from the
	// per-process cache. Entries are also evicted on every tenant mutation.
	CacheTTL  time.Duration `mapstructure:"cacheTTL"`
	CacheSize int           `mapstructure:"cacheSize"`
	// BaseDomain is the suffix stripped from the request host when the
	// tenant is discriminated by subdomain, e.g. "agenthub.dev".
	BaseDomain string `mapstructure:"baseDomain"`
}

func (r *Resolver) Validate() error {
	if r.CacheTTL <= 0 {
		return ErrInvalidResolverTTL
	}

	return nil
}

// Logging holds log output config
type Logging struct {
	Level constants.LogLevel `mapstructure:"level"`
}
