// Package config loads the process configuration from the environment.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	appConfigDirName = "surgery-games"
	storageDBName    = "local_storage.db"
)

// Sound outputs.
const (
	SoundOutputNone   = "none"
	SoundOutputEbiten = "ebiten"
)

// Config holds every setting of the server.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Sound   SoundConfig
}

// ServerConfig is the HTTP listener and static site.
type ServerConfig struct {
	Host         string        `env:"HOST"          envDefault:"0.0.0.0"`
	Port         int           `env:"PORT"          envDefault:"3000"`
	StaticDir    string        `env:"STATIC_DIR"    envDefault:"."`
	IndexFile    string        `env:"INDEX_FILE"    envDefault:"index.html"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT"  envDefault:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
}

// StorageConfig locates persistent storage and bounds session lifetime.
type StorageConfig struct {
	DBPath       string        `env:"DB_PATH"`
	SessionTTL   time.Duration `env:"SESSION_TTL"   envDefault:"24h"`
	SessionSweep time.Duration `env:"SESSION_SWEEP" envDefault:"5m"`
}

// SoundConfig selects where host-side tones go.
type SoundConfig struct {
	Output     string `env:"SOUND_OUTPUT" envDefault:"none"`
	SampleRate int    `env:"SAMPLE_RATE"  envDefault:"44100"`
}

// Load parses the environment, fills derived defaults and validates.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = defaultDBPath()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the values Load cannot repair.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.IndexFile == "" {
		return fmt.Errorf("index file is required")
	}
	switch c.Sound.Output {
	case SoundOutputNone, SoundOutputEbiten:
	default:
		return fmt.Errorf("invalid sound output %q: must be none or ebiten", c.Sound.Output)
	}
	if c.Sound.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", c.Sound.SampleRate)
	}
	return nil
}

// ServerAddress returns the host:port the server listens on.
func (c *Config) ServerAddress() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// IndexPath is the file served for the root route.
func (c *Config) IndexPath() string {
	return filepath.Join(c.Server.StaticDir, c.Server.IndexFile)
}

// defaultDBPath places the database in an OS-appropriate writable directory,
// falling back to the working directory.
func defaultDBPath() string {
	base := appDataDir()
	if err := os.MkdirAll(base, 0o755); err != nil {
		return filepath.Join(".", storageDBName)
	}
	return filepath.Join(base, storageDBName)
}

func appDataDir() string {
	if d, err := os.UserConfigDir(); err == nil && d != "" {
		return filepath.Join(d, appConfigDirName)
	}
	if h, err := os.UserHomeDir(); err == nil && h != "" {
		return filepath.Join(h, "."+appConfigDirName)
	}
	return "."
}
