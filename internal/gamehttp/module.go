package gamehttp

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/MJE43/surgery-games/internal/config"
	"github.com/MJE43/surgery-games/internal/session"
	"github.com/MJE43/surgery-games/internal/sound"
	"github.com/MJE43/surgery-games/internal/store"
)

// Module owns the persistent store, the session registry, the sound manager
// and the HTTP server. Build it with NewModule, then call Startup.
type Module struct {
	cfg      *config.Config
	store    *store.SQLite
	sessions *session.Registry
	sound    *sound.Manager
	server   *Server
	logger   *log.Logger
}

// NewModule opens the database and prepares the server without binding it.
func NewModule(cfg *config.Config) (*Module, error) {
	st, err := store.New(cfg.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	m := &Module{
		cfg:      cfg,
		store:    st,
		sessions: session.NewRegistry(cfg.Storage.SessionTTL),
		sound:    sound.New(),
		logger:   log.New(os.Stdout, "[MAIN] ", log.LstdFlags),
	}
	m.sound.Init(m.soundOutput())
	m.server = NewServer(cfg, st, m.sessions, m.sound)
	return m, nil
}

// soundOutput builds the configured host output. An ebiten context that
// cannot start falls back to discarding tones.
func (m *Module) soundOutput() sound.Output {
	if m.cfg.Sound.Output != config.SoundOutputEbiten {
		return sound.NewDiscard()
	}
	out, err := sound.NewEbitenOutput(m.cfg.Sound.SampleRate)
	if err != nil {
		m.logger.Printf("sound_output_unavailable output=%s err=%v", m.cfg.Sound.Output, err)
		return sound.NewDiscard()
	}
	return out
}

// Startup binds the HTTP server.
func (m *Module) Startup(ctx context.Context) error {
	if err := m.store.Ping(ctx); err != nil {
		return err
	}
	return m.server.Start(m.cfg.ServerAddress())
}

// RunSweeper expires idle sessions until ctx is cancelled.
func (m *Module) RunSweeper(ctx context.Context) error {
	return m.sessions.Run(ctx, m.cfg.Storage.SessionSweep)
}

// Wait returns when ctx is done, or with the error that stopped the server.
func (m *Module) Wait(ctx context.Context) error { return m.server.Wait(ctx) }

// Addr returns the address the server is bound to.
func (m *Module) Addr() string { return m.server.Addr() }

// Handler exposes the router without binding a socket.
func (m *Module) Handler() http.Handler { return m.server.Routes() }

// Shutdown stops the HTTP server and closes the DB.
func (m *Module) Shutdown(ctx context.Context) error {
	return errors.Join(m.server.Shutdown(ctx), m.store.Close())
}
