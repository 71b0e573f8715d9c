// Package config loads portfolio settings from defaults, an optional YAML
// file, a .env file and the environment, in that order of precedence.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces environment overrides: PORTFOLIO_CHAT__MIN_DELAY -> chat.min_delay.
const EnvPrefix = "PORTFOLIO_"

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Chat    ChatConfig    `koanf:"chat"`
	Contact ContactConfig `koanf:"contact"`
	Storage StorageConfig `koanf:"storage"`
	Admin   AdminConfig   `koanf:"admin"`
}

type ServerConfig struct {
	Port int `koanf:"port"`
	// Mode is a gin mode: debug, release or test.
	Mode            string        `koanf:"mode"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type ChatConfig struct {
	MinDelay time.Duration `koanf:"min_delay"`
	MaxDelay time.Duration `koanf:"max_delay"`
}

type ContactConfig struct {
	SubmitDelay time.Duration `koanf:"submit_delay"`
}

type StorageConfig struct {
	DataDir          string        `koanf:"data_dir"`
	VisitorRetention time.Duration `koanf:"visitor_retention"`
	CleanupInterval  time.Duration `koanf:"cleanup_interval"`
	// TrackVisitors turns hashed-IP page view tracking on.
	TrackVisitors bool `koanf:"track_visitors"`
}

type AdminConfig struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Mode:            "debug",
			ShutdownTimeout: 10 * time.Second,
		},
		Chat: ChatConfig{
			MinDelay: 1000 * time.Millisecond,
			MaxDelay: 2500 * time.Millisecond,
		},
		Contact: ContactConfig{SubmitDelay: 2 * time.Second},
		Storage: StorageConfig{
			DataDir:          "data",
			VisitorRetention: 365 * 24 * time.Hour,
			CleanupInterval:  24 * time.Hour,
			TrackVisitors:    true,
		},
		Admin: AdminConfig{Username: "admin", Password: "admin123"},
	}
}

// Load builds the configuration. A missing YAML file or .env file is not an
// error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env: %v", err)
	}

	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	applyLegacyEnv(cfg)
	return cfg, nil
}

// applyLegacyEnv honours the plain variable names the site has always read.
func applyLegacyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		} else {
			log.Printf("Warning: ignoring invalid PORT %q", v)
		}
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Server.Mode = v
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		cfg.Admin.Username = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
}

var validModes = map[string]bool{"debug": true, "release": true, "test": true}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if !validModes[c.Server.Mode] {
		return fmt.Errorf("invalid server.mode %q: must be one of debug, release, test", c.Server.Mode)
	}
	if c.Chat.MinDelay < 0 || c.Chat.MaxDelay < c.Chat.MinDelay {
		return fmt.Errorf("chat delays must satisfy 0 <= min_delay <= max_delay, got %v..%v", c.Chat.MinDelay, c.Chat.MaxDelay)
	}
	if c.Contact.SubmitDelay < 0 {
		return fmt.Errorf("contact.submit_delay must be non-negative")
	}
	if c.Storage.DataDir == "" {
		return fmt.Errorf("storage.data_dir is required")
	}
	if c.Admin.Username == "" || c.Admin.Password == "" {
		return fmt.Errorf("admin credentials are required")
	}
	return nil
}

// UsingDefaultAdmin reports whether the built-in development credentials are
// still in effect.
func (c *Config) UsingDefaultAdmin() bool {
	d := Default().Admin
	return c.Admin.Username == d.Username || c.Admin.Password == d.Password
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
