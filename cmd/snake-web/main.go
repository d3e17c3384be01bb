// Command snake-web serves the game to browsers over a websocket.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brensch/gridsnake/config"
	"github.com/brensch/gridsnake/game"
	"github.com/brensch/gridsnake/logging"
	"github.com/brensch/gridsnake/server"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	}, os.Stderr)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closeLog()

	rows, cols := cfg.GridOr(config.DefaultRows, config.DefaultColumns)
	session := game.NewSession(game.New(rows, cols, cfg.GameOptions()...))
	srv := server.New(cfg, session, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpSrv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()
	go func() {
		_ = srv.Run(ctx)
	}()

	logger.Info("snake server listening", "addr", cfg.Listen, "rows", rows, "columns", cols,
		"tick", cfg.Tick, "cell_size", cfg.CellSize, "autopilot", cfg.Autopilot)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("listen: %v", err)
	}
	logger.Info("snake server stopped")
}
