package main

import (
	"log/slog"
	"time"

	"github.com/brensch/gridsnake/config"
	"github.com/brensch/gridsnake/game"
	"github.com/brensch/gridsnake/input"
	"github.com/brensch/gridsnake/render"
	"github.com/brensch/gridsnake/rules"
	tea "github.com/charmbracelet/bubbletea"
)

const helpLine = "arrows/wasd move · p pause · r restart · q quit"

type model struct {
	cfg     config.Config
	session *game.Session
	board   *render.Board
	logger  *slog.Logger
	snap    game.Snapshot
}

func initialModel(cfg config.Config, session *game.Session, board *render.Board, logger *slog.Logger) model {
	return model{
		cfg:     cfg,
		session: session,
		board:   board,
		logger:  logger,
		snap:    session.Snapshot(),
	}
}

type TickMsg time.Time

func tickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.cfg.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key == "q" || key == "ctrl+c" || key == "esc" {
			return m, tea.Quit
		}
		cmd, ok := input.FromKey(key)
		if !ok {
			return m, nil
		}
		changed, snap := m.session.Apply(cmd)
		m.snap = snap
		if _, steering := cmd.Direction(); changed && !steering {
			m.logger.Info("command", "cmd", cmd.String(), "status", snap.Status().String())
		}
		return m, nil

	case tea.WindowSizeMsg:
		if m.cfg.FixedGrid() {
			return m, nil
		}
		rows, cols := render.ViewportGrid(
			(msg.Width-render.BoardChromeColumns)/render.TerminalCellWidth,
			msg.Height-render.BoardChromeRows-1, // help line
			render.TerminalCellHeight,
		)
		rows, cols = m.cfg.GridOr(config.ClampGrid(rows, cols))
		m.snap = m.session.Resize(rows, cols)
		m.logger.Debug("resized", "rows", rows, "columns", cols)
		return m, nil

	case TickMsg:
		if m.cfg.Autopilot {
			m.session.Steer(rules.Autopilot)
		}
		res, snap := m.session.Tick()
		m.snap = snap
		if res.Died {
			m.logger.Info("game over", "score", snap.Score, "length", snap.Len(), "turn", snap.Turn)
		}
		return m, tickCmd(m.cfg.Tick)
	}
	return m, nil
}

func (m model) View() string {
	return m.board.Render(m.snap) + "\n" + helpLine + "\n"
}
