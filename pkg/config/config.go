package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV" default:"local"`
	Port         int    `envconfig:"PORT" default:"8080"`
	Debug        bool   `envconfig:"DEBUG" default:"false"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`

	DB              DB              `envconfig:"DB"`
	Redis           Redis           `envconfig:"REDIS"`
	Events          Events          `envconfig:"EVENTS"`
	NotificationHub NotificationHub `envconfig:"NOTIFICATION_HUB"`
}

type DB struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     int    `envconfig:"PORT" default:"5432"`
	User     string `envconfig:"USER" default:"postgres"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME" default:"customers"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
	// InMemory swaps postgres for a throwaway sqlite database.
	InMemory bool `envconfig:"IN_MEMORY" default:"false"`
}

type Redis struct {
	Addr     string `envconfig:"ADDR"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
	Channel  string `envconfig:"CHANNEL" default:"customers.events"`
}

type NotificationHub struct {
	Endpoint string `envconfig:"ENDPOINT"`
	Token    string `envconfig:"TOKEN"`
}

type Events struct {
	IsolateFailures bool `envconfig:"ISOLATE_FAILURES" default:"false"`
}

func (d DB) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("cannot process config: %w", err)
	}

	return &cfg, nil
}
