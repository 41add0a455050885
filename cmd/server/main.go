// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
	"go-core-defense/internal/journal"
	"go-core-defense/internal/logger"
	"go-core-defense/internal/loop"
	"go-core-defense/internal/transport/ws"
)

func main() {
	seed := flag.Int64("seed", 0, "world seed (0 = from clock)")
	flag.Parse()

	cfg, err := config.LoadServerConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	log := slog.With("component", "server")

	tuning, err := app.LoadTuning(cfg.TuningPath)
	if err != nil {
		log.Error("Failed to load tuning", "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		tuning.Seed = *seed
	}
	if tuning.Seed == 0 {
		tuning.Seed = time.Now().UnixNano()
	}

	game := app.NewGame(tuning)
	game.EventDispatcher.SubscribeAll(app.NewLogListener())
	if cfg.JournalDir != "" {
		j := journal.New(cfg.JournalDir, "events")
		defer func() {
			if err := j.Close(); err != nil {
				log.Error("Journal close failed", "error", err)
			}
		}()
		game.EventDispatcher.SubscribeAll(j)
		log.Info("Event journal enabled", "dir", cfg.JournalDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := loop.New(game, loop.WithSnapshotEvery(cfg.SnapshotEvery))
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		_ = l.Run(ctx)
	}()

	srv := ws.NewServer(l, ws.Config{
		CommandsPerSec: cfg.CommandsPerSec,
		CommandBurst:   cfg.CommandBurst,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.NewHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Listening", "addr", cfg.Addr, "seed", tuning.Seed)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown failed", "error", err)
	}
	<-loopDone
}
