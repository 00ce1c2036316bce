package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// DriverSQLite selects the embedded SQLite store.
	DriverSQLite = "sqlite"
	// DriverMySQL selects a MySQL server.
	DriverMySQL = "mysql"
	// DriverPostgres selects a PostgreSQL server.
	DriverPostgres = "postgres"

	minBcryptCost = 10
	maxBcryptCost = 31
)

// Config holds application level configuration loaded from environment variables.
// It is built once at startup and must not be mutated afterwards.
type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"3000"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBURI    string `env:"DB_URI" envDefault:"contactbook.db"`
	ResetDB  bool   `env:"RESET_DB" envDefault:"false"`

	JWTSecret  string        `env:"SECRET_KEY"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"0s"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	SwaggerHost string `env:"SWAGGER_HOST"`
}

// Load reads an optional .env file and builds Config from the environment.
// Variables already present in the environment take precedence over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds Config from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks invariants that struct tags cannot express.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("SECRET_KEY must be set")
	}
	switch c.DBDriver {
	case DriverSQLite, DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.BcryptCost < minBcryptCost || c.BcryptCost > maxBcryptCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", minBcryptCost, maxBcryptCost, c.BcryptCost)
	}
	if c.TokenTTL < 0 {
		return errors.New("TOKEN_TTL must not be negative")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.ServerPort
}
