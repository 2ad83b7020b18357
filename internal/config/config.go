package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/robertromore/budget-sub015/internal/detection"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server    ServerConfig       `mapstructure:"server"`
	Database  DatabaseConfig     `mapstructure:"database"`
	Detection detection.Criteria `mapstructure:"detection"`
	Worker    WorkerConfig       `mapstructure:"worker"`
	RateLimit RateLimitConfig    `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port             string        `mapstructure:"port"`
	Host             string        `mapstructure:"host"`
	Environment      string        `mapstructure:"environment"`
	ReadTimeout      time.Duration `mapstructure:"read_timeout"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
	CORSAllowOrigins []string      `mapstructure:"cors_allow_origins"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConnections  int           `mapstructure:"max_connections"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	Seed            bool          `mapstructure:"seed"`
	MigrationsPath  string        `mapstructure:"migrations_path"`
	SeedsPath       string        `mapstructure:"seeds_path"`
}

// WorkerConfig controls the background detection sweep.
type WorkerConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Interval   time.Duration `mapstructure:"interval"`
	MaxWorkers int           `mapstructure:"max_workers"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Load reads configuration from defaults, an optional config file and the
// environment. A .env file in the working directory is loaded first when
// present. Env var overrides use prefix BUDGET_, e.g. BUDGET_DATABASE_DRIVER.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")

	if cfgPath := os.Getenv("BUDGET_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("budget")
		// config file is optional
		_ = v.ReadInConfig()
	}

	v.SetEnvPrefix("BUDGET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.cors_allow_origins", []string{"*"})

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", filepath.Join("data", "budget.db"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "budget")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "budget")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_connections", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.seed", false)
	v.SetDefault("database.migrations_path", filepath.Join("db", "migrations"))
	v.SetDefault("database.seeds_path", filepath.Join("db", "seeds"))

	defaults := detection.DefaultCriteria()
	v.SetDefault("detection.lookback_months", defaults.LookbackMonths)
	v.SetDefault("detection.min_occurrences", defaults.MinOccurrences)
	v.SetDefault("detection.amount_variance_percent", defaults.AmountVariancePercent)
	v.SetDefault("detection.min_confidence_score", defaults.MinConfidenceScore)
	v.SetDefault("detection.tolerances.daily", defaults.Tolerances.Daily)
	v.SetDefault("detection.tolerances.weekly", defaults.Tolerances.Weekly)
	v.SetDefault("detection.tolerances.monthly", defaults.Tolerances.Monthly)
	v.SetDefault("detection.tolerances.yearly", defaults.Tolerances.Yearly)
	v.SetDefault("detection.stale_after_days", defaults.StaleAfterDays)

	v.SetDefault("worker.enabled", false)
	v.SetDefault("worker.interval", 24*time.Hour)
	v.SetDefault("worker.max_workers", 4)

	v.SetDefault("rate_limit.requests_per_second", 20.0)
	v.SetDefault("rate_limit.burst", 40)
}

// Validate rejects configurations the server cannot start with
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the %s driver", DriverSQLite)
		}
	case DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if err := c.Detection.Validate(); err != nil {
		return fmt.Errorf("detection config: %w", err)
	}

	if c.Worker.Enabled && (c.Worker.Interval <= 0 || c.Worker.MaxWorkers <= 0) {
		return fmt.Errorf("worker.interval and worker.max_workers must be positive when the worker is enabled")
	}

	return nil
}

// DSN returns the connection string for the configured driver
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	}
	return c.Path + "?_foreign_keys=on"
}

// DetectionCriteria returns the configured detection defaults
func (c *Config) DetectionCriteria() detection.Criteria {
	return c.Detection
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}
