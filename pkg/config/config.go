package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV" default:"local"`
	Port         int    `envconfig:"PORT" default:"8080"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`
	RateLimit    int    `envconfig:"RATE_LIMIT" default:"20"`

	DB struct {
		Driver     string `envconfig:"DB_DRIVER" default:"postgres"`
		Name       string `envconfig:"DB_NAME"`
		Host       string `envconfig:"DB_HOST"`
		Port       int    `envconfig:"DB_PORT" default:"5432"`
		User       string `envconfig:"DB_USER"`
		Pass       string `envconfig:"DB_PASS"`
		EnableSSL  bool   `envconfig:"ENABLE_SSL"`
		SQLitePath string `envconfig:"SQLITE_PATH" default:"contacts.db"`
	}
}

// Origins splits ALLOW_ORIGINS into a list, dropping blank entries.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	switch cfg.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("load config error: unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	return cfg, nil
}
