package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "x.db"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Expected to bind all interfaces, got %q", cfg.Server.Host)
	}
	if cfg.Server.IndexFile != "index.html" || cfg.Server.StaticDir != "." {
		t.Errorf("Unexpected static defaults: %+v", cfg.Server)
	}
	if cfg.Storage.SessionTTL != 24*time.Hour {
		t.Errorf("Expected 24h session TTL, got %v", cfg.Storage.SessionTTL)
	}
	if cfg.Sound.Output != SoundOutputNone || cfg.Sound.SampleRate != 44100 {
		t.Errorf("Unexpected sound defaults: %+v", cfg.Sound)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("STATIC_DIR", "/srv/games")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("DB_PATH", "/tmp/games.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.ServerAddress() != "127.0.0.1:8081" {
		t.Errorf("Unexpected address %s", cfg.ServerAddress())
	}
	if cfg.IndexPath() != filepath.Join("/srv/games", "index.html") {
		t.Errorf("Unexpected index path %s", cfg.IndexPath())
	}
	if cfg.Storage.SessionTTL != 30*time.Minute {
		t.Errorf("Expected 30m TTL, got %v", cfg.Storage.SessionTTL)
	}
	if cfg.Storage.DBPath != "/tmp/games.db" {
		t.Errorf("Expected DB path from env, got %s", cfg.Storage.DBPath)
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Error("Expected an error for a non-numeric port")
	}
}

func TestDefaultDBPath(t *testing.T) {
	if p := defaultDBPath(); !strings.HasSuffix(p, storageDBName) {
		t.Errorf("Expected path ending in %s, got %s", storageDBName, p)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Host: "localhost", Port: 3000, IndexFile: "index.html"},
			Sound:  SoundConfig{Output: SoundOutputNone, SampleRate: 44100},
		}
	}

	testCases := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"port too large", func(c *Config) { c.Server.Port = 99999 }, true},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"missing index", func(c *Config) { c.Server.IndexFile = "" }, true},
		{"unknown sound output", func(c *Config) { c.Sound.Output = "alsa" }, true},
		{"ebiten output", func(c *Config) { c.Sound.Output = SoundOutputEbiten }, false},
		{"zero sample rate", func(c *Config) { c.Sound.SampleRate = 0 }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.expectErr && err == nil {
				t.Error("Expected an error, got none")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
