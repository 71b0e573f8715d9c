package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "GIN_MODE", "ADMIN_USERNAME", "ADMIN_PASSWORD"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	// Run from an empty dir so a developer's .env is not picked up.
	t.Chdir(t.TempDir())
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Server.Port != want.Server.Port || cfg.Chat != want.Chat || cfg.Storage != want.Storage {
		t.Errorf("Load without file = %+v, want defaults", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "portfolio.yml")
	data := []byte(`server:
  port: 9000
  mode: release
chat:
  min_delay: 500ms
  max_delay: 900ms
storage:
  data_dir: /tmp/portfolio
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORTFOLIO_CHAT__MAX_DELAY", "1s")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9000 || cfg.Server.Mode != "release" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Chat.MinDelay != 500*time.Millisecond {
		t.Errorf("min_delay = %v, want 500ms", cfg.Chat.MinDelay)
	}
	if cfg.Chat.MaxDelay != time.Second {
		t.Errorf("max_delay = %v, want env override 1s", cfg.Chat.MaxDelay)
	}
	if cfg.Storage.DataDir != "/tmp/portfolio" {
		t.Errorf("data_dir = %q", cfg.Storage.DataDir)
	}
	if cfg.Admin.Password != "s3cret" {
		t.Errorf("admin password not taken from ADMIN_PASSWORD")
	}
}

func TestLegacyPortWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Addr() != ":3000" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }},
		{"mode", func(c *Config) { c.Server.Mode = "verbose" }},
		{"delays", func(c *Config) { c.Chat.MinDelay, c.Chat.MaxDelay = time.Second, time.Millisecond }},
		{"submit delay", func(c *Config) { c.Contact.SubmitDelay = -time.Second }},
		{"data dir", func(c *Config) { c.Storage.DataDir = "" }},
		{"admin", func(c *Config) { c.Admin.Password = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestUsingDefaultAdmin(t *testing.T) {
	cfg := Default()
	if !cfg.UsingDefaultAdmin() {
		t.Error("defaults should report default admin")
	}
	cfg.Admin = AdminConfig{Username: "amon", Password: "long-random-password"}
	if cfg.UsingDefaultAdmin() {
		t.Error("custom credentials reported as default")
	}
}
