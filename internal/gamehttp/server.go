// Package gamehttp serves the game pages and the storage, score and sound API
// the pages call.
package gamehttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MJE43/surgery-games/internal/config"
	"github.com/MJE43/surgery-games/internal/scores"
	"github.com/MJE43/surgery-games/internal/session"
	"github.com/MJE43/surgery-games/internal/sound"
	"github.com/MJE43/surgery-games/internal/store"
)

// Persistent is the durable storage area behind the score API.
type Persistent interface {
	store.Storage
	Ping(ctx context.Context) error
}

// Server handles HTTP requests
type Server struct {
	staticDir  string
	indexPath  string
	sampleRate int

	persistent Persistent
	scores     *scores.Manager
	sessions   *session.Registry
	sound      *sound.Manager

	errorHandler *ErrorHandler
	logger       *log.Logger
	startTime    time.Time

	httpServer   *http.Server
	listener     net.Listener
	serveErr     chan error
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// NewServer wires the handlers to their storage and sound backends.
func NewServer(cfg *config.Config, persistent Persistent, sessions *session.Registry, snd *sound.Manager) *Server {
	logger := log.New(os.Stdout, "[HTTP] ", log.LstdFlags)
	return &Server{
		staticDir:    cfg.Server.StaticDir,
		indexPath:    cfg.IndexPath(),
		sampleRate:   cfg.Sound.SampleRate,
		persistent:   persistent,
		scores:       scores.New(persistent),
		sessions:     sessions,
		sound:        snd,
		errorHandler: NewErrorHandler(logger),
		logger:       logger,
		startTime:    time.Now(),
		readTimeout:  cfg.Server.ReadTimeout,
		writeTimeout: cfg.Server.WriteTimeout,
	}
}

// Routes sets up the HTTP routes with proper middleware
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequest)
	r.Use(s.errorHandler.RecoveryHandler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/scores", func(r chi.Router) {
			r.Delete("/", s.handleResetAllScores)
			r.Get("/{gameID}", s.handleGetScore)
			r.Post("/{gameID}", s.handleSaveScore)
			r.Delete("/{gameID}", s.handleResetScore)
			r.Get("/{gameID}/badge.png", s.handleScoreBadge)
		})
		r.Route("/state/{gameID}", func(r chi.Router) {
			r.Get("/", s.handleLoadState)
			r.Put("/", s.handleSaveState)
			r.Delete("/", s.handleClearState)
		})
		r.Get("/storage/keys", s.handleListKeys)
		r.Get("/sound", s.handleSoundStatus)
		r.Post("/sound/toggle", s.handleSoundToggle)
		r.Post("/sound/play/{effect}", s.handleSoundPlay)
		r.Get("/sfx/{effect}.wav", s.handleSFX)
	})

	r.Get("/", s.handleIndex)
	r.Handle("/*", newStaticFiles(s.staticDir))

	return r
}

// Start binds the listener and serves in a goroutine. It returns once the
// socket is bound.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.serveErr = make(chan error, 1)
	s.logger.Printf("server_listening addr=%s static_dir=%s index=%s", ln.Addr(), s.staticDir, s.indexPath)

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Printf("server_error err=%v", err)
			s.serveErr <- err
		}
	}()
	return nil
}

// Wait blocks until ctx is done or the server stops serving on its own,
// returning the serve error in the latter case.
func (s *Server) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case err := <-s.serveErr:
		return fmt.Errorf("serve: %w", err)
	}
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, s.indexPath)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
