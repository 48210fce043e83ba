package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"profix/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Backend    BackendConfig    `yaml:"backend"`
	Redis      RedisConfig      `yaml:"redis"`
	Session    SessionConfig    `yaml:"session"`
	Tracking   TrackingConfig   `yaml:"tracking"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
	Exports    ExportConfig     `yaml:"exports"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

// DefaultChatURL is the hosted chat-reply service.
const DefaultChatURL = "https://profix-chatbot.onrender.com/"

// BackendConfig describes the PHP REST backend and the separate chat-reply service.
type BackendConfig struct {
	BaseURL      string          `yaml:"base_url"`
	ChatURL      string          `yaml:"chat_url"`
	Timeout      time.Duration   `yaml:"timeout"`
	UserAgent    string          `yaml:"user_agent"`
	APIKey       string          `yaml:"api_key"`
	HeaderAPIKey string          `yaml:"header_api_key"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
	CatalogTTL   time.Duration   `yaml:"catalog_ttl"`
}

// RateLimitConfig paces outgoing calls. RPS 0 disables pacing.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type SessionConfig struct {
	Store string        `yaml:"store"` // memory | redis | sqlite
	Path  string        `yaml:"path"`
	TTL   time.Duration `yaml:"ttl"`
}

type TrackingConfig struct {
	PollInterval  time.Duration `yaml:"poll_interval"`
	ShareInterval time.Duration `yaml:"share_interval"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
	PrometheusPort    int  `yaml:"prometheus_port"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
	SessionStoreSQLite = "sqlite"
)

func Load(configPath string) (*Config, error) {
	// .env is optional
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	expandedData := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expandedData, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return errors.New("backend base_url is required")
	}
	if err := validateAbsURL(c.Backend.BaseURL); err != nil {
		return fmt.Errorf("backend base_url: %w", err)
	}
	if c.Backend.ChatURL != "" {
		if err := validateAbsURL(c.Backend.ChatURL); err != nil {
			return fmt.Errorf("backend chat_url: %w", err)
		}
	}

	switch c.Session.Store {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if c.Redis.Address == "" {
			return errors.New("session store redis requires redis.address")
		}
	case SessionStoreSQLite:
		if c.Session.Path == "" {
			return errors.New("session store sqlite requires session.path")
		}
	default:
		return fmt.Errorf("unknown session store %q", c.Session.Store)
	}

	if c.Backend.RateLimit.RPS < 0 {
		return errors.New("backend rate_limit.rps must not be negative")
	}
	return nil
}

func validateAbsURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not an absolute URL", raw)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "profix"
	}
	if c.Backend.BaseURL != "" && !strings.HasSuffix(c.Backend.BaseURL, "/") {
		c.Backend.BaseURL += "/"
	}
	if c.Backend.ChatURL == "" {
		c.Backend.ChatURL = DefaultChatURL
	}
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = 30 * time.Second
	}
	if c.Backend.HeaderAPIKey == "" {
		c.Backend.HeaderAPIKey = "x-api-key"
	}
	if c.Backend.UserAgent == "" {
		c.Backend.UserAgent = c.App.Name + "/" + c.App.Version
	}
	if c.Backend.RateLimit.RPS > 0 && c.Backend.RateLimit.Burst <= 0 {
		c.Backend.RateLimit.Burst = 5
	}
	if c.Backend.CatalogTTL == 0 {
		c.Backend.CatalogTTL = 30 * time.Minute
	}

	if c.Session.Store == "" {
		c.Session.Store = SessionStoreSQLite
	}
	if c.Session.Store == SessionStoreSQLite && c.Session.Path == "" {
		c.Session.Path = "data/session.db"
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = 30 * 24 * time.Hour
	}

	if c.Tracking.PollInterval == 0 {
		c.Tracking.PollInterval = models.DefaultTrackingInterval * time.Second
	}
	if c.Tracking.ShareInterval == 0 {
		c.Tracking.ShareInterval = 10 * time.Second
	}

	if c.Monitoring.PrometheusEnabled && c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}
	if c.Exports.Path == "" {
		c.Exports.Path = "exports"
	}
}
