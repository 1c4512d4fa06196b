package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database  *Database
	HTTP      *HTTP
	Auth      *Auth
	Reconcile *Reconcile
	App       *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN      string `env:"DATABASE_URI"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Auth struct {
	TokenTTL time.Duration `env:"TOKEN_TTL"`
	// SymmetricKey is a hex encoded paseto v4 local key. A random key is used when empty.
	SymmetricKey string `env:"TOKEN_KEY"`
}

type Reconcile struct {
	Workers     int           `env:"RECONCILE_WORKERS"`
	QueueSize   int           `env:"RECONCILE_QUEUE"`
	RetryDelay  time.Duration `env:"RECONCILE_RETRY"`
	StrictRates bool          `env:"STRICT_RATES"`
}

func defaults() (Database, HTTP, Auth, Reconcile, App) {
	return Database{},
		HTTP{HostString: "localhost:8080"},
		Auth{TokenTTL: 12 * time.Hour},
		Reconcile{Workers: 4, QueueSize: 64, RetryDelay: 3 * time.Second},
		App{LogLevel: "error", Mode: AppModeDevelop}
}

// NewConfig reads command line flags and lets the environment override them.
func NewConfig() (*Config, error) {
	db, http, auth, rec, app := defaults()

	flag.StringVar(&db.DSN, "d", db.DSN, "Database string")
	flag.StringVar(&http.HostString, "a", http.HostString, "HTTP server endpoint")
	flag.DurationVar(&auth.TokenTTL, "t", auth.TokenTTL, "Access token lifetime")
	flag.IntVar(&rec.Workers, "w", rec.Workers, "Reconciliation workers")
	flag.BoolVar(&rec.StrictRates, "strict", rec.StrictRates, "Reject payments in currencies without a rate")
	flag.StringVar(&app.LogLevel, "l", app.LogLevel, "Log level")
	flag.StringVar(&app.Mode, "m", app.Mode, "PROD / DEV")
	flag.Parse()

	return parseEnv(db, http, auth, rec, app)
}

// NewConfigFromEnv skips flag parsing, for binaries that own their flags.
func NewConfigFromEnv() (*Config, error) {
	return parseEnv(defaults())
}

func parseEnv(db Database, http HTTP, auth Auth, rec Reconcile, app App) (*Config, error) {
	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&auth)
	if err != nil {
		return nil, fmt.Errorf("error parsing auth config: %w", err)
	}
	err = env.Parse(&rec)
	if err != nil {
		return nil, fmt.Errorf("error parsing reconcile config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	if rec.Workers < 1 {
		return nil, fmt.Errorf("reconcile workers must be positive, got %d", rec.Workers)
	}
	// workers each hold a connection while reconciling; leave room for requests
	if db.MaxConns > 0 && int(db.MaxConns) <= rec.Workers {
		return nil, fmt.Errorf("DATABASE_MAX_CONNS %d must exceed RECONCILE_WORKERS %d",
			db.MaxConns, rec.Workers)
	}

	config := Config{
		Database:  &db,
		HTTP:      &http,
		Auth:      &auth,
		Reconcile: &rec,
		App:       &app,
	}

	return &config, nil
}
