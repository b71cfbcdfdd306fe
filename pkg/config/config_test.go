package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("GRUPO_GARCONS_IDS", "-1001,-1002")
	t.Setenv("GRUPO_COZINHA_IDS", "-2001")
	t.Setenv("API_BASE_URL", "http://localhost:8000/")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != ModeAPI {
		t.Fatalf("expected api mode, got %q", cfg.Mode)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %v", cfg.APITimeout)
	}
	if len(cfg.WaiterChats) != 2 || cfg.WaiterChats[1] != -1002 {
		t.Fatalf("unexpected waiter chats %v", cfg.WaiterChats)
	}
	if cfg.PollTimeout != 60 || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadMissingToken(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestLoadInvalidChatID(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("GRUPO_GARCONS_IDS", "-1001,garcons")

	if _, err := Load(); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "memory needs no backend",
			cfg:  Config{Mode: ModeMemory, WaiterChats: []int64{1}, APITimeout: time.Second},
		},
		{
			name:    "wizard needs backend",
			cfg:     Config{Mode: ModeWizard, WaiterChats: []int64{1}, APITimeout: time.Second},
			wantErr: "API_BASE_URL",
		},
		{
			name:    "api needs kitchen",
			cfg:     Config{Mode: ModeAPI, APIBaseURL: "http://x", WaiterChats: []int64{1}, APITimeout: time.Second},
			wantErr: "GRUPO_COZINHA_IDS",
		},
		{
			name:    "waiters always required",
			cfg:     Config{Mode: ModeMemory, APITimeout: time.Second},
			wantErr: "GRUPO_GARCONS_IDS",
		},
		{
			name:    "unknown mode",
			cfg:     Config{Mode: "legacy", WaiterChats: []int64{1}, APITimeout: time.Second},
			wantErr: "unknown BOT_MODE",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.env")
	if err := os.WriteFile(path, []byte("GARCOMBOT_DOTENV_TEST=from-file\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("GARCOMBOT_DOTENV_TEST", "")
	os.Unsetenv("GARCOMBOT_DOTENV_TEST")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := os.Getenv("GARCOMBOT_DOTENV_TEST"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing file should be ignored, got %v", err)
	}
}
