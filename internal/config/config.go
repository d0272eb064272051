package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Environment names recognised in NODE_ENV
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds the environment-derived settings of both binaries
type Config struct {
	Env      string
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Features FeatureConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Seed     SeedConfig

	missing []string
}

type ServerConfig struct {
	Port int
}

type CORSConfig struct {
	Origin string
}

type LogConfig struct {
	Level string
}

type FeatureConfig struct {
	Metrics bool
}

type DatabaseConfig struct {
	URL    string
	Driver string
}

type RedisConfig struct {
	URL string
}

type SeedConfig struct {
	Password string
}

// keys maps viper keys to the environment variables they are read from
var keys = map[string]string{
	"env":            "NODE_ENV",
	"port":           "PORT",
	"cors_origin":    "CORS_ORIGIN",
	"log_level":      "LOG_LEVEL",
	"enable_metrics": "ENABLE_METRICS",
	"database_url":   "DATABASE_URL",
	"db_driver":      "DB_DRIVER",
	"redis_url":      "REDIS_URL",
	"seed_password":  "SEED_PASSWORD",
}

// expectedInProduction lists variables that should be set explicitly in production
var expectedInProduction = []string{"port", "cors_origin"}

// Load reads configuration from the process environment. A YAML file named by
// CONFIG_FILE is merged underneath the environment when present.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("port", 3000)
	v.SetDefault("cors_origin", "*")
	v.SetDefault("log_level", "info")
	v.SetDefault("enable_metrics", false)
	v.SetDefault("database_url", "")
	v.SetDefault("db_driver", "")
	v.SetDefault("redis_url", "")
	v.SetDefault("seed_password", "changeme123")

	for key, env := range keys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	v.AutomaticEnv()
	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	port, err := parsePort(v.GetString("port"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:      strings.ToLower(strings.TrimSpace(v.GetString("env"))),
		Server:   ServerConfig{Port: port},
		CORS:     CORSConfig{Origin: v.GetString("cors_origin")},
		Log:      LogConfig{Level: v.GetString("log_level")},
		Features: FeatureConfig{Metrics: v.GetBool("enable_metrics")},
		Database: DatabaseConfig{
			URL:    v.GetString("database_url"),
			Driver: v.GetString("db_driver"),
		},
		Redis: RedisConfig{URL: v.GetString("redis_url")},
		Seed:  SeedConfig{Password: v.GetString("seed_password")},
	}
	if cfg.Env == "" {
		cfg.Env = EnvDevelopment
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverFromURL(cfg.Database.URL)
	}

	for _, key := range expectedInProduction {
		if _, ok := os.LookupEnv(keys[key]); !ok && !v.InConfig(key) {
			cfg.missing = append(cfg.missing, keys[key])
		}
	}

	return cfg, nil
}

func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("invalid PORT %q", raw)
	}
	return port, nil
}

// DriverFromURL infers the database driver from a connection URL scheme.
// URLs without a recognised scheme are treated as MySQL DSNs.
func DriverFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		if strings.HasSuffix(raw, ".db") || strings.HasPrefix(raw, "file:") || raw == ":memory:" {
			return "sqlite"
		}
		return "mysql"
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		return "postgres"
	case "sqlite", "sqlite3", "file":
		return "sqlite"
	default:
		return "mysql"
	}
}

// IsProduction reports whether NODE_ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// IsDevelopment reports whether NODE_ENV is development
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment || c.Env == "dev"
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// Warnings returns non-fatal configuration problems. Only production mode
// produces warnings.
func (c *Config) Warnings() []string {
	if !c.IsProduction() {
		return nil
	}
	var warnings []string
	for _, env := range c.missing {
		warnings = append(warnings, fmt.Sprintf("%s is not set, using default", env))
	}
	if c.CORS.Origin == "*" {
		warnings = append(warnings, "CORS_ORIGIN allows any origin")
	}
	return warnings
}
