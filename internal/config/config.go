package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	HTTPAddr        string        `mapstructure:"HTTP_ADDR"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	DBSlowThreshold time.Duration `mapstructure:"DB_SLOW_THRESHOLD"`
	MigrateOnStart  bool          `mapstructure:"MIGRATE_ON_START"`
	RateLimitRPS    float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst  int           `mapstructure:"RATE_LIMIT_BURST"`
}

var defaults = map[string]interface{}{
	"DATABASE_URL":      "",
	"HTTP_ADDR":         ":8080",
	"GIN_MODE":          "release",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "text",
	"REQUEST_TIMEOUT":   "5s",
	"SHUTDOWN_TIMEOUT":  "10s",
	"DB_SLOW_THRESHOLD": "200ms",
	"MIGRATE_ON_START":  true,
	"RATE_LIMIT_RPS":    0,
	"RATE_LIMIT_BURST":  20,
}

// LoadConfig loads the configuration from a .env file in dir (if present)
// and environment variables, which take precedence.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Defaults double as the key list AutomaticEnv binds on Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate performs validation on the loaded configuration.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.DatabaseURL) == "" {
		problems = append(problems, "DATABASE_URL is required")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		problems = append(problems, "LOG_FORMAT must be one of: text, json")
	}
	if c.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}
	if c.RateLimitRPS < 0 {
		problems = append(problems, "RATE_LIMIT_RPS must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// NewLogger builds the process logger described by the configuration.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
