package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	t.Setenv("PROFIX_BACKEND", "https://api.example.com/profix")

	yamlContent := `
app:
  name: "profix"
  version: "1.2.0"
backend:
  base_url: "${PROFIX_BACKEND}"
  chat_url: "https://chat.example.com/"
  timeout: 5s
session:
  store: memory
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/profix/", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "profix/1.2.0", cfg.Backend.UserAgent)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, 5*time.Second, cfg.Tracking.PollInterval)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Backend: BackendConfig{BaseURL: "https://api.example.com/"},
				Session: SessionConfig{Store: SessionStoreMemory},
			},
			wantErr: false,
		},
		{
			name:    "missing base url",
			cfg:     Config{Session: SessionConfig{Store: SessionStoreMemory}},
			wantErr: true,
		},
		{
			name: "relative base url",
			cfg: Config{
				Backend: BackendConfig{BaseURL: "api/"},
				Session: SessionConfig{Store: SessionStoreMemory},
			},
			wantErr: true,
		},
		{
			name: "redis store without address",
			cfg: Config{
				Backend: BackendConfig{BaseURL: "https://api.example.com/"},
				Session: SessionConfig{Store: SessionStoreRedis},
			},
			wantErr: true,
		},
		{
			name: "unknown store",
			cfg: Config{
				Backend: BackendConfig{BaseURL: "https://api.example.com/"},
				Session: SessionConfig{Store: "etcd"},
			},
			wantErr: true,
		},
		{
			name: "negative rps",
			cfg: Config{
				Backend: BackendConfig{BaseURL: "https://api.example.com/", RateLimit: RateLimitConfig{RPS: -1}},
				Session: SessionConfig{Store: SessionStoreMemory},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Backend: BackendConfig{RateLimit: RateLimitConfig{RPS: 2}}}
	cfg.applyDefaults()

	if cfg.Session.Store != SessionStoreSQLite {
		t.Errorf("expected default session store sqlite, got %s", cfg.Session.Store)
	}
	if cfg.Session.Path != "data/session.db" {
		t.Errorf("expected default session path, got %s", cfg.Session.Path)
	}
	if cfg.Backend.RateLimit.Burst != 5 {
		t.Errorf("expected default burst 5, got %d", cfg.Backend.RateLimit.Burst)
	}
	if cfg.Backend.HeaderAPIKey != "x-api-key" {
		t.Errorf("expected default api key header, got %s", cfg.Backend.HeaderAPIKey)
	}
	if cfg.Backend.ChatURL != DefaultChatURL {
		t.Errorf("expected default chat url, got %s", cfg.Backend.ChatURL)
	}
	if cfg.Tracking.ShareInterval != 10*time.Second {
		t.Errorf("expected default share interval 10s, got %s", cfg.Tracking.ShareInterval)
	}
}
