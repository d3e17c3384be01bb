// Command snake plays the game in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/brensch/gridsnake/config"
	"github.com/brensch/gridsnake/game"
	"github.com/brensch/gridsnake/logging"
	"github.com/brensch/gridsnake/render"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The terminal belongs to the UI, so logs only go somewhere when a file
	// is configured.
	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	}, io.Discard)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closeLog()

	rows, cols := cfg.GridOr(config.DefaultRows, config.DefaultColumns)
	session := game.NewSession(game.New(rows, cols, cfg.GameOptions()...))

	logger.Info("starting", "rows", rows, "columns", cols, "tick", cfg.Tick, "autopilot", cfg.Autopilot)

	p := tea.NewProgram(initialModel(cfg, session, render.NewBoard(render.DefaultStyles()), logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}

	snap := session.Snapshot()
	logger.Info("exiting", "score", snap.Score, "turn", snap.Turn)
}
