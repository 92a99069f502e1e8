// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Classifier    ClassifierConfig    `yaml:"classifier"`
	Intake        IntakeConfig        `yaml:"intake"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// BaseURL prefixes links sent in notifications.
	BaseURL string `yaml:"base_url"`
	// UploadDir stores images submitted with individual pickups.
	UploadDir string `yaml:"upload_dir"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// ClassifierConfig defines the hosted inference backend. A blank APIKey
// leaves only the offline heuristic.
type ClassifierConfig struct {
	Endpoint  string          `yaml:"endpoint"`
	Model     string          `yaml:"model"`
	APIKey    string          `yaml:"api_key"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig bounds outbound inference calls.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// IntakeConfig bounds bulk uploads.
type IntakeConfig struct {
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	CertificateInterval time.Duration `yaml:"certificate_interval"`
	CertificateBatch    int           `yaml:"certificate_batch"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// TelemetryConfig defines OTLP export. A blank Endpoint disables it.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyClassifierDefaults(&cfg.Classifier)
	applyIntakeDefaults(&cfg.Intake)
	applyScheduleDefaults(&cfg.Schedule)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.UploadDir == "" {
		s.UploadDir = "uploads"
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyClassifierDefaults(c *ClassifierConfig) {
	if c.Endpoint == "" {
		c.Endpoint = "https://detect.roboflow.com"
	}
	if c.Model == "" {
		c.Model = "e-waste-dataset-r0ojc/43"
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("ROBOFLOW_API_KEY")
	}
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	if c.RateLimit.PerSecond == 0 {
		c.RateLimit.PerSecond = 2
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 4
	}
}

func applyIntakeDefaults(i *IntakeConfig) {
	if i.MaxUploadBytes == 0 {
		i.MaxUploadBytes = 10 << 20
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.CertificateInterval == 0 {
		s.CertificateInterval = 15 * time.Minute
	}
	if s.CertificateBatch == 0 {
		s.CertificateBatch = 50
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "ecycle"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	if cfg.Server.BaseURL != "" {
		if u, err := url.Parse(cfg.Server.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("server.base_url must be an absolute URL (got %q)", cfg.Server.BaseURL))
		}
	}

	if cfg.Classifier.Timeout < 0 {
		errs = append(errs, errors.New("classifier.timeout must not be negative"))
	}
	if cfg.Classifier.RateLimit.PerSecond < 0 {
		errs = append(errs, errors.New("classifier.rate_limit.per_second must not be negative"))
	}
	if cfg.Intake.MaxUploadBytes < 0 {
		errs = append(errs, errors.New("intake.max_upload_bytes must not be negative"))
	}
	if cfg.Schedule.CertificateInterval < time.Minute {
		errs = append(errs, fmt.Errorf(
			"schedule.certificate_interval must be at least 1m (got %s)",
			cfg.Schedule.CertificateInterval,
		))
	}
	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, errors.New("notifications.discord.webhook_url is required when discord is enabled"))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
