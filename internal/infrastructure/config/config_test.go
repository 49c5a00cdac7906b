package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testJWTSecret = "test-secret-key-at-least-32-chars!"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
site:
  id: "loft"
device:
  url: "http://192.168.1.50"
  password: "helios"
  poll_interval: 15
  pages: ["werte8", "info3"]
database:
  path: "/tmp/test.db"
mqtt:
  broker:
    host: "broker.local"
security:
  jwt:
    secret: "test-secret-key-at-least-32-chars!"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Site.ID != "loft" {
		t.Errorf("Site.ID = %q, want %q", cfg.Site.ID, "loft")
	}
	if cfg.Device.URL != "http://192.168.1.50" || cfg.Device.Password != "helios" {
		t.Errorf("Device = %+v", cfg.Device)
	}
	if cfg.Device.GetPollInterval() != 15*time.Second {
		t.Errorf("GetPollInterval() = %v, want 15s", cfg.Device.GetPollInterval())
	}
	if len(cfg.Device.Pages) != 2 || cfg.Device.Pages[1] != "info3" {
		t.Errorf("Device.Pages = %v", cfg.Device.Pages)
	}
	// Defaults survive for keys the file omits.
	if cfg.Device.RequestTimeout != 10 {
		t.Errorf("Device.RequestTimeout = %d, want default 10", cfg.Device.RequestTimeout)
	}
	if cfg.MQTT.Broker.Host != "broker.local" || cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("MQTT.Broker = %+v", cfg.MQTT.Broker)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yaml"); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "invalid: [yaml: content")); err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	_, err := Load(writeConfig(t, `
site:
  id: "loft"
security:
  jwt:
    secret: "test-secret-key-at-least-32-chars!"
`))
	if err == nil || !strings.Contains(err.Error(), "device.url") {
		t.Errorf("Load() error = %v, want device.url validation error", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
device:
  url: "http://10.0.0.1"
`)
	t.Setenv("EASYCONTROLS_DEVICE_URL", "http://10.0.0.2")
	t.Setenv("EASYCONTROLS_JWT_SECRET", testJWTSecret)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Device.URL != "http://10.0.0.2" {
		t.Errorf("Device.URL = %q, want env override", cfg.Device.URL)
	}
}

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Device.URL = "http://192.168.1.50"
	cfg.Security.JWT.Secret = testJWTSecret
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid config", func(*Config) {}, ""},
		{"missing site ID", func(c *Config) { c.Site.ID = "" }, "site.id"},
		{"site ID with wildcard", func(c *Config) { c.Site.ID = "a/#" }, "site.id"},
		{"missing device URL", func(c *Config) { c.Device.URL = "" }, "device.url"},
		{"relative device URL", func(c *Config) { c.Device.URL = "192.168.1.50" }, "device.url"},
		{"ftp device URL", func(c *Config) { c.Device.URL = "ftp://unit" }, "device.url"},
		{"zero poll interval", func(c *Config) { c.Device.PollInterval = 0 }, "device.poll_interval"},
		{"zero request timeout", func(c *Config) { c.Device.RequestTimeout = 0 }, "device.request_timeout"},
		{"no pages", func(c *Config) { c.Device.Pages = nil }, "device.pages"},
		{"missing database path", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"negative retention", func(c *Config) { c.History.RetentionDays = -1 }, "history.retention_days"},
		{"invalid QoS", func(c *Config) { c.MQTT.QoS = 3 }, "mqtt.qos"},
		{"invalid port low", func(c *Config) { c.API.Port = 0 }, "api.port"},
		{"invalid port high", func(c *Config) { c.API.Port = 70000 }, "api.port"},
		{"missing JWT secret", func(c *Config) { c.Security.JWT.Secret = "" }, "security.jwt.secret"},
		{"JWT secret too short", func(c *Config) { c.Security.JWT.Secret = "short" }, "security.jwt.secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Device.URL = ""
	cfg.API.Port = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	for _, want := range []string{"device.url", "api.port"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %s", err, want)
		}
	}
}

func TestConfig_Durations(t *testing.T) {
	cfg := &Config{
		API: APIConfig{
			Timeouts: APITimeoutConfig{Read: 30, Write: 45, Idle: 60},
		},
		Device: DeviceConfig{RequestTimeout: 7},
	}

	if got := cfg.API.Timeouts.ReadDuration().Seconds(); got != 30 {
		t.Errorf("ReadDuration() = %v, want 30", got)
	}
	if got := cfg.API.Timeouts.WriteDuration().Seconds(); got != 45 {
		t.Errorf("WriteDuration() = %v, want 45", got)
	}
	if got := cfg.API.Timeouts.IdleDuration().Seconds(); got != 60 {
		t.Errorf("IdleDuration() = %v, want 60", got)
	}
	if got := cfg.Device.GetRequestTimeout(); got != 7*time.Second {
		t.Errorf("GetRequestTimeout() = %v, want 7s", got)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := defaultConfig()

	t.Setenv("EASYCONTROLS_DEVICE_URL", "http://unit.lan")
	t.Setenv("EASYCONTROLS_DEVICE_PASSWORD", "pw")
	t.Setenv("EASYCONTROLS_DATABASE_PATH", "/custom/path.db")
	t.Setenv("EASYCONTROLS_MQTT_HOST", "mqtt.example.com")
	t.Setenv("EASYCONTROLS_MQTT_USERNAME", "testuser")
	t.Setenv("EASYCONTROLS_MQTT_PASSWORD", "testpass")
	t.Setenv("EASYCONTROLS_API_HOST", "192.168.1.1")
	t.Setenv("EASYCONTROLS_INFLUXDB_TOKEN", "secret-token")
	t.Setenv("EASYCONTROLS_JWT_SECRET", "jwt-secret")

	applyEnvOverrides(cfg)

	checks := []struct {
		field string
		got   string
		want  string
	}{
		{"Device.URL", cfg.Device.URL, "http://unit.lan"},
		{"Device.Password", cfg.Device.Password, "pw"},
		{"Database.Path", cfg.Database.Path, "/custom/path.db"},
		{"MQTT.Broker.Host", cfg.MQTT.Broker.Host, "mqtt.example.com"},
		{"MQTT.Auth.Username", cfg.MQTT.Auth.Username, "testuser"},
		{"MQTT.Auth.Password", cfg.MQTT.Auth.Password, "testpass"},
		{"API.Host", cfg.API.Host, "192.168.1.1"},
		{"InfluxDB.Token", cfg.InfluxDB.Token, "secret-token"},
		{"Security.JWT.Secret", cfg.Security.JWT.Secret, "jwt-secret"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Site.ID == "" {
		t.Error("defaultConfig should have non-empty Site.ID")
	}
	if cfg.Device.PollInterval != 30 {
		t.Errorf("defaultConfig Device.PollInterval = %d, want 30", cfg.Device.PollInterval)
	}
	if len(cfg.Device.Pages) == 0 {
		t.Error("defaultConfig should list device pages")
	}
	if cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("defaultConfig MQTT.Broker.Port = %d, want 1883", cfg.MQTT.Broker.Port)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("defaultConfig API.Port = %d, want 8080", cfg.API.Port)
	}
}
