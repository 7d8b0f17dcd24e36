package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN"`
	Backend       string `env:"ROSTER_BACKEND" envDefault:"json"`
	RosterPath    string `env:"ROSTER_PATH"    envDefault:"data/employees.json"`
	DBPath        string `env:"DB_PATH"        envDefault:"payroll-bot.db"`
	Workers       int    `env:"WORKERS"        envDefault:"4"`
	QueueSize     int    `env:"QUEUE_SIZE"     envDefault:"32"`
	LogLevel      string `env:"LOG_LEVEL"      envDefault:"info"`
	LogFilePath   string `env:"LOG_FILE_PATH"`
	SaveOnExit    bool   `env:"SAVE_ON_EXIT"   envDefault:"true"`
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TelegramToken == "" {
		return nil, ErrNoToken{}
	}
	if cfg.Backend != BackendJSON && cfg.Backend != BackendSQLite {
		return nil, fmt.Errorf("ROSTER_BACKEND must be %q or %q, got %q", BackendJSON, BackendSQLite, cfg.Backend)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 0 {
		cfg.QueueSize = 0
	}
	return &cfg, nil
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN is not set"
}
