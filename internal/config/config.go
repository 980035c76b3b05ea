package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultHTTPPort             = 8080
	DefaultInterval             = 30 * time.Second
	DefaultCPUThreshold         = 95.0
	DefaultMemoryThreshold      = 90.0
	DefaultDiskSpaceThreshold   = 90.0
	DefaultTemperatureThreshold = 80.0
	DefaultNotifyBufferSize     = 64
	DefaultAPIHeader            = "x-api-key"
)

// Config is the top-level configuration for vegliad.
// Fields map 1:1 to config.example.yaml.
type Config struct {
	Server     ServerConfig `yaml:"server"`
	Source     SourceConfig `yaml:"source"`
	Monitoring Monitoring   `yaml:"monitoring"`
	Notify     NotifyConfig `yaml:"notify"`
	Log        LogConfig    `yaml:"log"`
}

// ServerConfig holds the HTTP surface settings.
type ServerConfig struct {
	// HTTPPort is the port the REST API, WebSocket hub and metrics
	// endpoint listen on.
	HTTPPort int `yaml:"http_port"`

	// Auth configures how incoming REST and WebSocket requests
	// authenticate.
	Auth AuthConfig `yaml:"auth"`

	// UIDir is an optional directory of static dashboard assets served
	// at the root path.
	UIDir string `yaml:"ui_dir"`
}

// AuthConfig configures REST API and WebSocket authentication.
type AuthConfig struct {
	// Mode is one of: apikey | none.
	Mode string `yaml:"mode"`

	// Header is the HTTP header name clients send the key in.
	Header string `yaml:"header"`

	// KeyEnv is the name of the environment variable holding the expected
	// API key.
	KeyEnv string `yaml:"key_env"`
}

// Key returns the API key resolved from the environment.
// Returns empty string if KeyEnv is unset or the variable is not found.
func (a AuthConfig) Key() string {
	if a.KeyEnv == "" {
		return ""
	}
	return os.Getenv(a.KeyEnv)
}

// EffectiveHeader returns the configured header name, or the default
// "x-api-key" when none is set.
func (a AuthConfig) EffectiveHeader() string {
	if a.Header == "" {
		return DefaultAPIHeader
	}
	return a.Header
}

// SourceConfig selects where health metrics come from.
type SourceConfig struct {
	// Type is the source implementation: local | prometheus.
	// "local" reads the host the daemon runs on; "prometheus" scrapes a
	// Prometheus-format metrics endpoint such as node_exporter.
	Type string `yaml:"type"`

	// Endpoint is the full metrics URL, required for the prometheus type.
	Endpoint string `yaml:"endpoint"`

	// Auth configures how the poller authenticates to the endpoint.
	Auth SourceAuth `yaml:"auth"`

	// TLS holds optional TLS dial options for the prometheus type.
	TLS TLSConfig `yaml:"tls"`
}

// SourceAuth specifies the authentication mode for the metrics endpoint.
type SourceAuth struct {
	// Mode is one of: mtls | apikey | bearer | basic | none.
	Mode string `yaml:"mode"`

	// mTLS fields, used when Mode == "mtls".
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
	CAFile   string `yaml:"ca_file"`

	// API key fields, used when Mode == "apikey".
	// Header is the HTTP header name to send the key in.
	Header string `yaml:"header"`
	// KeyEnv is the name of the environment variable that holds the key value.
	KeyEnv string `yaml:"key_env"`

	// Bearer token fields, used when Mode == "bearer".
	// TokenEnv is the name of the environment variable that holds the token.
	TokenEnv string `yaml:"token_env"`

	// Basic auth fields, used when Mode == "basic".
	// Username is the literal username (safe to store in config).
	Username string `yaml:"username"`
	// PasswordEnv is the name of the environment variable that holds the password.
	PasswordEnv string `yaml:"password_env"`
}

// Key returns the API key value resolved from the environment.
// Returns empty string if KeyEnv is unset or the variable is not found.
func (a SourceAuth) Key() string {
	if a.KeyEnv == "" {
		return ""
	}
	return os.Getenv(a.KeyEnv)
}

// Token returns the bearer token value resolved from the environment.
func (a SourceAuth) Token() string {
	if a.TokenEnv == "" {
		return ""
	}
	return os.Getenv(a.TokenEnv)
}

// Password returns the basic-auth password resolved from the environment.
func (a SourceAuth) Password() string {
	if a.PasswordEnv == "" {
		return ""
	}
	return os.Getenv(a.PasswordEnv)
}

// TLSConfig holds TLS dial options for the metrics endpoint.
type TLSConfig struct {
	// InsecureSkipVerify disables TLS certificate verification.
	// Only use this for internal CAs in development environments.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`
}

// Monitoring holds the health-check settings. This is the only section
// that can change at runtime, through the REST API or by editing the
// config file.
type Monitoring struct {
	// Enabled turns the health checks on or off. When false the
	// scheduler keeps ticking but each tick returns immediately.
	Enabled bool `yaml:"enabled"`

	// AlertsEnabled controls whether snapshots are evaluated for alerts.
	// When false the monitor still samples and records snapshots.
	AlertsEnabled bool `yaml:"alerts_enabled"`

	// PerformanceMonitoring gates the CPU and memory usage checks.
	PerformanceMonitoring bool `yaml:"performance_monitoring"`

	// SystemHealthChecks gates the temperature checks.
	SystemHealthChecks bool `yaml:"system_health_checks"`

	// DiskSpaceThreshold is a disk usage percentage ceiling. Parsed and
	// kept for config round-trips; no current check reads it.
	DiskSpaceThreshold float64 `yaml:"disk_space_threshold"`

	// MemoryThreshold is the memory usage percentage above which a
	// warning alert is raised.
	MemoryThreshold float64 `yaml:"memory_threshold"`

	// CPUThreshold is the CPU usage percentage above which a warning
	// alert is raised.
	CPUThreshold float64 `yaml:"cpu_threshold"`

	// TemperatureThreshold is a temperature ceiling in degrees Celsius.
	// Parsed and kept for config round-trips; the temperature checks use
	// fixed per-device cutoffs instead.
	TemperatureThreshold float64 `yaml:"temperature_threshold"`

	// Interval is the pause between health checks.
	Interval time.Duration `yaml:"interval"`
}

// MonitoringPatch is a partial update to Monitoring. Nil fields keep
// their current values.
type MonitoringPatch struct {
	Enabled               *bool
	AlertsEnabled         *bool
	PerformanceMonitoring *bool
	SystemHealthChecks    *bool
	DiskSpaceThreshold    *float64
	MemoryThreshold       *float64
	CPUThreshold          *float64
	TemperatureThreshold  *float64
	Interval              *time.Duration
}

// Merge returns a copy of m with every non-nil patch field applied.
func (m Monitoring) Merge(p MonitoringPatch) Monitoring {
	if p.Enabled != nil {
		m.Enabled = *p.Enabled
	}
	if p.AlertsEnabled != nil {
		m.AlertsEnabled = *p.AlertsEnabled
	}
	if p.PerformanceMonitoring != nil {
		m.PerformanceMonitoring = *p.PerformanceMonitoring
	}
	if p.SystemHealthChecks != nil {
		m.SystemHealthChecks = *p.SystemHealthChecks
	}
	if p.DiskSpaceThreshold != nil {
		m.DiskSpaceThreshold = *p.DiskSpaceThreshold
	}
	if p.MemoryThreshold != nil {
		m.MemoryThreshold = *p.MemoryThreshold
	}
	if p.CPUThreshold != nil {
		m.CPUThreshold = *p.CPUThreshold
	}
	if p.TemperatureThreshold != nil {
		m.TemperatureThreshold = *p.TemperatureThreshold
	}
	if p.Interval != nil {
		m.Interval = *p.Interval
	}
	return m
}

// AsPatch expresses the full settings as a patch that sets every field.
// The file watcher uses it to push a reloaded config through the same
// path API updates take.
func (m Monitoring) AsPatch() MonitoringPatch {
	return MonitoringPatch{
		Enabled:               &m.Enabled,
		AlertsEnabled:         &m.AlertsEnabled,
		PerformanceMonitoring: &m.PerformanceMonitoring,
		SystemHealthChecks:    &m.SystemHealthChecks,
		DiskSpaceThreshold:    &m.DiskSpaceThreshold,
		MemoryThreshold:       &m.MemoryThreshold,
		CPUThreshold:          &m.CPUThreshold,
		TemperatureThreshold:  &m.TemperatureThreshold,
		Interval:              &m.Interval,
	}
}

// Validate checks the monitoring settings for values the engine cannot
// run with.
func (m Monitoring) Validate() error {
	if m.Interval <= 0 {
		return fmt.Errorf("monitoring.interval must be positive")
	}
	if m.CPUThreshold < 0 || m.CPUThreshold > 100 {
		return fmt.Errorf("monitoring.cpu_threshold must be between 0 and 100")
	}
	if m.MemoryThreshold < 0 || m.MemoryThreshold > 100 {
		return fmt.Errorf("monitoring.memory_threshold must be between 0 and 100")
	}
	if m.DiskSpaceThreshold < 0 || m.DiskSpaceThreshold > 100 {
		return fmt.Errorf("monitoring.disk_space_threshold must be between 0 and 100")
	}
	if m.TemperatureThreshold < 0 {
		return fmt.Errorf("monitoring.temperature_threshold must not be negative")
	}
	return nil
}

// NotifyConfig holds alert delivery settings.
type NotifyConfig struct {
	// BufferSize is the maximum number of alerts queued for delivery
	// before the oldest are dropped.
	BufferSize int `yaml:"buffer_size"`

	// Webhooks is the list of webhook delivery targets.
	Webhooks []WebhookConfig `yaml:"webhooks"`
}

// WebhookConfig defines one webhook delivery target.
type WebhookConfig struct {
	// Type is one of: slack | teams | http.
	Type string `yaml:"type"`

	// URLEnv is the name of the environment variable holding the webhook URL.
	URLEnv string `yaml:"url_env"`

	// MinSeverity suppresses alerts below this severity: info | warning |
	// critical. Empty delivers everything.
	MinSeverity string `yaml:"min_severity"`
}

// URL returns the webhook URL resolved from the environment.
func (w WebhookConfig) URL() string {
	if w.URLEnv == "" {
		return ""
	}
	return os.Getenv(w.URLEnv)
}

// LogConfig controls daemon logging.
type LogConfig struct {
	// Level is the minimum log level: debug | info | warn | error.
	Level string `yaml:"level"`
}

// SlogLevel maps the configured level onto a slog.Level. Empty and
// unknown values fall back to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with sensible defaults; a missing
// file yields the pure defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort: DefaultHTTPPort,
		},
		Source: SourceConfig{
			Type: "local",
		},
		Monitoring: Monitoring{
			Enabled:               true,
			AlertsEnabled:         true,
			PerformanceMonitoring: true,
			SystemHealthChecks:    true,
			DiskSpaceThreshold:    DefaultDiskSpaceThreshold,
			MemoryThreshold:       DefaultMemoryThreshold,
			CPUThreshold:          DefaultCPUThreshold,
			TemperatureThreshold:  DefaultTemperatureThreshold,
			Interval:              DefaultInterval,
		},
		Notify: NotifyConfig{
			BufferSize: DefaultNotifyBufferSize,
		},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be between 1 and 65535")
	}
	switch cfg.Server.Auth.Mode {
	case "apikey", "none", "":
	default:
		return fmt.Errorf("server.auth: unknown mode %q", cfg.Server.Auth.Mode)
	}
	switch cfg.Source.Type {
	case "local", "prometheus":
	default:
		return fmt.Errorf("source: unknown type %q", cfg.Source.Type)
	}
	if cfg.Source.Type == "prometheus" && cfg.Source.Endpoint == "" {
		return fmt.Errorf("source: endpoint is required for the prometheus type")
	}
	switch cfg.Source.Auth.Mode {
	case "mtls", "apikey", "bearer", "basic", "none", "":
	default:
		return fmt.Errorf("source.auth: unknown mode %q", cfg.Source.Auth.Mode)
	}
	if err := cfg.Monitoring.Validate(); err != nil {
		return err
	}
	if cfg.Notify.BufferSize <= 0 {
		return fmt.Errorf("notify.buffer_size must be positive")
	}
	for i, wh := range cfg.Notify.Webhooks {
		switch wh.Type {
		case "slack", "teams", "http":
		default:
			return fmt.Errorf("notify.webhooks[%d]: unknown type %q", i, wh.Type)
		}
		if wh.URLEnv == "" {
			return fmt.Errorf("notify.webhooks[%d]: url_env is required", i)
		}
		switch wh.MinSeverity {
		case "info", "warning", "critical", "":
		default:
			return fmt.Errorf("notify.webhooks[%d]: unknown min_severity %q", i, wh.MinSeverity)
		}
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("log: unknown level %q", cfg.Log.Level)
	}
	return nil
}
