package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDatabase = `
database:
  host: localhost
  name: ecycle
  user: ecycle
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalDatabase,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "ecycle", cfg.Database.Name)
				assert.Equal(t, "ecycle", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalDatabase,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "uploads", cfg.Server.UploadDir)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "https://detect.roboflow.com", cfg.Classifier.Endpoint)
				assert.Equal(t, "e-waste-dataset-r0ojc/43", cfg.Classifier.Model)
				assert.Equal(t, 10*time.Second, cfg.Classifier.Timeout)
				assert.InDelta(t, 2.0, cfg.Classifier.RateLimit.PerSecond, 1e-9)
				assert.Equal(t, 4, cfg.Classifier.RateLimit.Burst)
				assert.Equal(t, int64(10<<20), cfg.Intake.MaxUploadBytes)
				assert.Equal(t, 15*time.Minute, cfg.Schedule.CertificateInterval)
				assert.Equal(t, 50, cfg.Schedule.CertificateBatch)
				assert.Equal(t, "ecycle", cfg.Telemetry.ServiceName)
				assert.Empty(t, cfg.Telemetry.Endpoint)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: minimalDatabase + `  password: "${TEST_DB_PASSWORD}"
`,
			envVars: map[string]string{"TEST_DB_PASSWORD": "secret123"},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
			},
		},
		{
			name:    "api key falls back to environment",
			yaml:    minimalDatabase,
			envVars: map[string]string{"ROBOFLOW_API_KEY": "rf-key"},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "rf-key", cfg.Classifier.APIKey)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: ecycle
  user: ecycle
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: ecycle
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: ecycle
`,
			wantErr: "database.user is required",
		},
		{
			name: "errors are joined",
			yaml: `
database:
  host: localhost
logging:
  format: xml
`,
			wantErr: "database.name is required\ndatabase.user is required\nlogging.format must be one of: text, json",
		},
		{
			name: "relative base url",
			yaml: minimalDatabase + `server:
  base_url: ecycle.example
`,
			wantErr: `server.base_url must be an absolute URL (got "ecycle.example")`,
		},
		{
			name: "certificate interval too short",
			yaml: minimalDatabase + `schedule:
  certificate_interval: 10s
`,
			wantErr: "schedule.certificate_interval must be at least 1m (got 10s)",
		},
		{
			name: "discord enabled without webhook",
			yaml: minimalDatabase + `notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required when discord is enabled",
		},
		{
			name: "negative upload limit",
			yaml: minimalDatabase + `intake:
  max_upload_bytes: -1
`,
			wantErr: "intake.max_upload_bytes must not be negative",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
  base_url: https://ecycle.example
  upload_dir: /var/lib/ecycle/uploads
database:
  host: db.example.com
  port: 5433
  name: ecycle_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
classifier:
  endpoint: http://inference:9001
  model: e-waste/7
  api_key: abc
  timeout: 3s
  rate_limit:
    per_second: 5
    burst: 10
intake:
  max_upload_bytes: 1048576
schedule:
  certificate_interval: 1h
  certificate_batch: 200
notifications:
  discord:
    enabled: true
    webhook_url: https://discord.com/api/webhooks/123
telemetry:
  endpoint: otel-collector:4317
  service_name: ecycle-api
  insecure: true
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "https://ecycle.example", cfg.Server.BaseURL)
				assert.Equal(t, "/var/lib/ecycle/uploads", cfg.Server.UploadDir)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, "http://inference:9001", cfg.Classifier.Endpoint)
				assert.Equal(t, "abc", cfg.Classifier.APIKey)
				assert.Equal(t, 3*time.Second, cfg.Classifier.Timeout)
				assert.Equal(t, 10, cfg.Classifier.RateLimit.Burst)
				assert.Equal(t, int64(1<<20), cfg.Intake.MaxUploadBytes)
				assert.Equal(t, time.Hour, cfg.Schedule.CertificateInterval)
				assert.Equal(t, 200, cfg.Schedule.CertificateBatch)
				assert.True(t, cfg.Notifications.Discord.Enabled)
				assert.Equal(t, "otel-collector:4317", cfg.Telemetry.Endpoint)
				assert.True(t, cfg.Telemetry.Insecure)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		Name:     "ecycle",
		User:     "admin",
		Password: "s3cret",
		SSLMode:  "require",
		PoolSize: 20,
	}
	assert.Equal(t,
		"host=db.example.com port=5433 dbname=ecycle user=admin password=s3cret sslmode=require pool_max_conns=20",
		cfg.DSN(),
	)
}
