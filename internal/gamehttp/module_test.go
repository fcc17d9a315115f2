package gamehttp

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/MJE43/surgery-games/internal/config"
)

func TestModuleLifecycle(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         0,
			StaticDir:    t.TempDir(),
			IndexFile:    "index.html",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		Storage: config.StorageConfig{
			DBPath:       filepath.Join(t.TempDir(), "games.db"),
			SessionTTL:   time.Hour,
			SessionSweep: time.Minute,
		},
		Sound: config.SoundConfig{Output: config.SoundOutputNone, SampleRate: 8000},
	}

	m, err := NewModule(cfg)
	if err != nil {
		t.Fatalf("Failed to build module: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := m.Startup(ctx); err != nil {
		t.Fatalf("Failed to start module: %v", err)
	}

	sweepDone := make(chan error, 1)
	go func() { sweepDone <- m.RunSweeper(ctx) }()
	waitDone := make(chan error, 1)
	go func() { waitDone <- m.Wait(ctx) }()

	resp, err := http.Get("http://" + m.Addr() + "/health")
	if err != nil {
		t.Fatalf("Health request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	cancel()
	if err := <-sweepDone; err != nil {
		t.Errorf("Sweeper returned %v", err)
	}
	if err := <-waitDone; err != nil {
		t.Errorf("Wait returned %v", err)
	}

	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := m.Shutdown(shutdownCtx); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
}
