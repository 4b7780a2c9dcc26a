package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Store and notification drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config holds all application configuration
type Config struct {
	ServerAddress      string `mapstructure:"SERVER_ADDRESS"`
	StoreDriver        string `mapstructure:"STORE_DRIVER"`
	PostgresConn       string `mapstructure:"POSTGRES_CONN"`
	MigrationURL       string `mapstructure:"MIGRATION_URL"`
	NotificationDriver string `mapstructure:"NOTIFICATION_DRIVER"`
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisDB            int    `mapstructure:"REDIS_DB"`
	NotificationKey    string `mapstructure:"NOTIFICATION_KEY"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	LogFormat          string `mapstructure:"LOG_FORMAT"`
	SeedDemoData       bool   `mapstructure:"SEED_DEMO_DATA"`
}

var keys = []string{
	"SERVER_ADDRESS", "STORE_DRIVER", "POSTGRES_CONN", "MIGRATION_URL",
	"NOTIFICATION_DRIVER", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"NOTIFICATION_KEY", "LOG_LEVEL", "LOG_FORMAT", "SEED_DEMO_DATA",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("STORE_DRIVER", DriverMemory)
	v.SetDefault("POSTGRES_CONN", "")
	v.SetDefault("MIGRATION_URL", "file://db/migration")
	v.SetDefault("NOTIFICATION_DRIVER", DriverMemory)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("NOTIFICATION_KEY", "notifications")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SEED_DEMO_DATA", false)
}

// LoadConfig reads app.env from path when present, then lets the environment override it
func LoadConfig(path string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Unmarshal only sees env values for keys viper knows about
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return cfg, fmt.Errorf("config: bind %s: %w", k, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("config: read app.env: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks driver names and the settings each driver needs
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.PostgresConn == "" {
			return errors.New("config: POSTGRES_CONN is required for the postgres store")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.NotificationDriver {
	case DriverMemory:
	case DriverRedis:
		if c.RedisAddr == "" {
			return errors.New("config: REDIS_ADDR is required for the redis notification store")
		}
	default:
		return fmt.Errorf("config: unknown NOTIFICATION_DRIVER %q", c.NotificationDriver)
	}

	if c.ServerAddress == "" {
		return errors.New("config: SERVER_ADDRESS must not be empty")
	}
	return nil
}
