package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MJE43/surgery-games/internal/config"
	"github.com/MJE43/surgery-games/internal/gamehttp"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger := log.New(os.Stdout, "[MAIN] ", log.LstdFlags)
	logger.Printf("Starting Surgery Games server (Go %s, version %s)...", runtime.Version(), gamehttp.Version)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config load failed: %v", err)
	}

	mod, err := gamehttp.NewModule(cfg)
	if err != nil {
		logger.Fatalf("module init failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mod.Startup(ctx); err != nil {
		logger.Fatalf("server failed to start: %v", err)
	}
	logger.Printf("Serving %s at http://%s (db %s, sound %s)", cfg.IndexPath(), mod.Addr(), cfg.Storage.DBPath, cfg.Sound.Output)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return mod.RunSweeper(gctx)
	})
	g.Go(func() error {
		return mod.Wait(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return mod.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatalf("shutdown error: %v", err)
	}
	logger.Println("Server exited normally")
}
