package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Env            string  `mapstructure:"ENV"`
	Port           string  `mapstructure:"PORT"`
	WebPort        string  `mapstructure:"WEB_PORT"`
	StoreDriver    string  `mapstructure:"STORE_DRIVER"`
	DatabaseURL    string  `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32   `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32   `mapstructure:"DB_MIN_CONNS"`
	MigrationsDir  string  `mapstructure:"MIGRATIONS_DIR"`
	LogLevel       string  `mapstructure:"LOG_LEVEL"`
	LogFormat      string  `mapstructure:"LOG_FORMAT"`
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`
	ServiceName    string  `mapstructure:"SERVICE_NAME"`
}

var keys = []string{
	"ENV", "PORT", "WEB_PORT", "STORE_DRIVER", "DATABASE_URL",
	"DB_MAX_CONNS", "DB_MIN_CONNS", "MIGRATIONS_DIR", "LOG_LEVEL",
	"LOG_FORMAT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SERVICE_NAME",
}

// Load reads .env if present, then the process environment. Environment
// variables win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "50051")
	v.SetDefault("WEB_PORT", "8080")
	v.SetDefault("STORE_DRIVER", DriverPostgres)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("SERVICE_NAME", "hospital")

	// bind explicitly so Unmarshal sees env-only keys
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER is %q", DriverPostgres)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMemory, c.StoreDriver)
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive, got %v rps burst %d", c.RateLimitRPS, c.RateLimitBurst)
	}
	return nil
}
