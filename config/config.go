package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	obs "github.com/Black-And-White-Club/anleague/internal/observability"
)

// ServiceName identifies the process in logs and traces.
const ServiceName = "anleague"

// Version is overridden at build time with -ldflags.
var Version = "dev"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	HTTP          HTTPConfig          `yaml:"http"`
	JWT           JWTConfig           `yaml:"jwt"`
	Admin         AdminConfig         `yaml:"admin"`
	SMTP          SMTPConfig          `yaml:"smtp"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Assets        AssetsConfig        `yaml:"assets"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration. An empty URL selects the in-process bus.
type NATSConfig struct {
	URL       string `yaml:"url"`
	JetStream bool   `yaml:"jetstream"`
}

// HTTPConfig holds the API server settings.
type HTTPConfig struct {
	Address        string   `yaml:"address"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

// AdminConfig is the administrator account ensured at startup.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Email    string `yaml:"email"`
}

// SMTPConfig holds outbound mail settings. Mail is only sent when host,
// port, user and password are all present.
type SMTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	From string `yaml:"from"`
}

// Enabled reports whether mail delivery is configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Port != 0 && c.User != "" && c.Pass != ""
}

// OpenAIConfig configures the commentary collaborator. An empty key
// disables generated commentary.
type OpenAIConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// AssetsConfig locates the static celebration media.
type AssetsConfig struct {
	// RootDir contains the static/ tree served to clients.
	RootDir string `yaml:"root_dir"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	Environment    string `yaml:"environment"`
	LogLevel       string `yaml:"log_level"`
	MetricsAddress string `yaml:"metrics_address"`
}

// LoadConfig loads the configuration from a YAML file, then applies
// environment overrides and defaults. A missing file falls back to the
// environment alone.
func LoadConfig(filename string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides file values with environment variables when present.
func applyEnv(cfg *Config) error {
	str := map[string]*string{
		"DATABASE_URL":    &cfg.Postgres.DSN,
		"NATS_URL":        &cfg.NATS.URL,
		"HTTP_ADDRESS":    &cfg.HTTP.Address,
		"JWT_SECRET":      &cfg.JWT.Secret,
		"ADMIN_USERNAME":  &cfg.Admin.Username,
		"ADMIN_PASSWORD":  &cfg.Admin.Password,
		"ADMIN_EMAIL":     &cfg.Admin.Email,
		"SMTP_HOST":       &cfg.SMTP.Host,
		"SMTP_USER":       &cfg.SMTP.User,
		"SMTP_PASS":       &cfg.SMTP.Pass,
		"SMTP_FROM":       &cfg.SMTP.From,
		"OPENAI_API_KEY":  &cfg.OpenAI.APIKey,
		"OPENAI_BASE_URL": &cfg.OpenAI.BaseURL,
		"OPENAI_MODEL":    &cfg.OpenAI.Model,
		"ASSETS_ROOT_DIR": &cfg.Assets.RootDir,
		"ENV":             &cfg.Observability.Environment,
		"LOG_LEVEL":       &cfg.Observability.LogLevel,
		"METRICS_ADDRESS": &cfg.Observability.MetricsAddress,
	}
	for key, dst := range str {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("NATS_JETSTREAM"); v != "" {
		cfg.NATS.JetStream = v == "true"
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SMTP_PORT: %v", ErrInvalidConfig, err)
		}
		cfg.SMTP.Port = port
	}
	if v := os.Getenv("JWT_DEFAULT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: JWT_DEFAULT_TTL: %v", ErrInvalidConfig, err)
		}
		cfg.JWT.DefaultTTL = d
	}
	if v := os.Getenv("OPENAI_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: OPENAI_TIMEOUT: %v", ErrInvalidConfig, err)
		}
		cfg.OpenAI.Timeout = d
	}
	return nil
}

func (cfg *Config) applyDefaults() {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":5000"
	}
	if cfg.JWT.DefaultTTL == 0 {
		cfg.JWT.DefaultTTL = 12 * time.Hour
	}
	if cfg.Admin.Username == "" {
		cfg.Admin.Username = "admin"
	}
	if cfg.Admin.Password == "" {
		cfg.Admin.Password = "adminpass"
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}
	if cfg.Assets.RootDir == "" {
		cfg.Assets.RootDir = "."
	}
	if cfg.Observability.Environment == "" {
		cfg.Observability.Environment = "production"
	}
}

// Validate reports the settings the service cannot start without.
func (cfg *Config) Validate() error {
	var missing []string
	if cfg.Postgres.DSN == "" {
		missing = append(missing, "postgres.dsn (DATABASE_URL)")
	}
	if cfg.JWT.Secret == "" {
		missing = append(missing, "jwt.secret (JWT_SECRET)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}
	if cfg.JWT.DefaultTTL < 0 {
		return fmt.Errorf("%w: jwt.default_ttl must be positive", ErrInvalidConfig)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ToObsConfig maps the observability section onto the telemetry settings.
func ToObsConfig(appCfg *Config) obs.Config {
	level := slog.LevelInfo
	if appCfg.Observability.LogLevel != "" {
		if err := level.UnmarshalText([]byte(appCfg.Observability.LogLevel)); err != nil {
			level = slog.LevelInfo
		}
	}
	return obs.Config{
		ServiceName: ServiceName,
		Environment: appCfg.Observability.Environment,
		Version:     Version,
		LogLevel:    level,
	}
}
