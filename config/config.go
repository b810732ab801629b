package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/football-dashboard/storage"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort           = 8080
	defaultDevUserID      = "1"
	defaultRequestTimeout = 15 * time.Second
	defaultRolloverCron   = "0 0 * * *"
	defaultEnvironment    = "development"
)

// Config holds every setting of the dashboard server. Secrets only come from
// the environment; the YAML file carries non-secret defaults.
type Config struct {
	APIBaseURL     string        `yaml:"api_base_url"`
	DevUserID      string        `yaml:"dev_user_id"`
	ServerPort     int           `yaml:"server_port"`
	Environment    string        `yaml:"environment"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	AllowedOrigins []string      `yaml:"cors_allowed_origins"`
	RolloverCron   string        `yaml:"rollover_cron"`
	// Timezone decides which calendar day counts as "today" for match status.
	Timezone string `yaml:"timezone"`

	JWTSecretKey string           `yaml:"-"`
	R2           storage.R2Config `yaml:"-"`
}

// Load reads an optional .env file, then the YAML file named by CONFIG_FILE
// if set, then applies environment overrides and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		DevUserID:      defaultDevUserID,
		ServerPort:     defaultPort,
		Environment:    defaultEnvironment,
		RequestTimeout: defaultRequestTimeout,
		RolloverCron:   defaultRolloverCron,
		Timezone:       "Local",
	}
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("API_BASE_URL", &c.APIBaseURL)
	str("DEV_USER_ID", &c.DevUserID)
	str("ENVIRONMENT", &c.Environment)
	str("ROLLOVER_CRON", &c.RolloverCron)
	str("TIMEZONE", &c.Timezone)
	str("JWT_SECRET_KEY", &c.JWTSecretKey)
	str("R2_ACCOUNT_ID", &c.R2.AccountID)
	str("R2_ACCESS_KEY_ID", &c.R2.AccessKeyID)
	str("R2_SECRET_ACCESS_KEY", &c.R2.SecretAccessKey)
	str("R2_BUCKET_NAME", &c.R2.BucketName)
	str("R2_PUBLIC_BASE_URL", &c.R2.PublicBaseURL)

	if v, ok := lookup("SERVER_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
		}
		c.ServerPort = port
	}

	if v, ok := lookup("REQUEST_TIMEOUT_SECONDS"); ok && v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REQUEST_TIMEOUT_SECONDS environment variable: %w", err)
		}
		c.RequestTimeout = time.Duration(secs) * time.Second
	}

	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok && v != "" {
		c.AllowedOrigins = splitList(v)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("API_BASE_URL is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", c.APIBaseURL)
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if strings.TrimSpace(c.DevUserID) == "" {
		return errors.New("DEV_USER_ID must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	if c.R2.Enabled() {
		if err := c.R2.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Location resolves Timezone. An empty value means the server's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "" || c.Environment == defaultEnvironment
}
