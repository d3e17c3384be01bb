package main

import (
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/brensch/gridsnake/config"
	"github.com/brensch/gridsnake/game"
	"github.com/brensch/gridsnake/render"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(cfg config.Config) model {
	g := game.New(10, 10, game.WithRand(rand.New(rand.NewSource(1))))
	g.Item = game.Point{X: 9, Y: 9}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return initialModel(cfg, game.NewSession(g), render.NewBoard(render.PlainStyles()), logger)
}

func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_SteerAndTick(t *testing.T) {
	m := newTestModel(config.Default())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := send(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("tick did not schedule the next tick")
	}
	if head := m.snap.Head(); head != (game.Point{X: 4, Y: 3}) {
		t.Fatalf("head=%v want (4,3)", head)
	}
	if m.snap.Turn != 1 {
		t.Fatalf("turn=%d want=1", m.snap.Turn)
	}
}

func TestModel_PauseAndRestart(t *testing.T) {
	m := newTestModel(config.Default())

	m, _ = send(t, m, runeKey('p'))
	if !m.snap.Paused || !strings.Contains(m.View(), render.PausedText) {
		t.Fatalf("p did not pause:\n%s", m.View())
	}
	m, _ = send(t, m, TickMsg(time.Now()))
	if m.snap.Turn != 0 {
		t.Fatalf("paused game ticked")
	}
	m, _ = send(t, m, runeKey('P'))
	if m.snap.Paused {
		t.Fatalf("P did not resume")
	}

	// Drive into the right wall: from x=4 on a 10-wide grid.
	for i := 0; i < 6; i++ {
		m, _ = send(t, m, TickMsg(time.Now()))
	}
	if !m.snap.GameOver || !strings.Contains(m.View(), render.GameOverText) {
		t.Fatalf("expected game over, head=%v\n%s", m.snap.Head(), m.View())
	}

	m, _ = send(t, m, runeKey('r'))
	if m.snap.GameOver || m.snap.Len() != 1 || m.snap.Head() != game.DefaultStart {
		t.Fatalf("r did not restart: %+v", m.snap)
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(config.Default())
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 62, Height: 25})
	if m.snap.Columns != 30 || m.snap.Rows != 20 {
		t.Fatalf("grid=%dx%d want 20x30", m.snap.Rows, m.snap.Columns)
	}

	fixed := config.Default()
	fixed.Rows, fixed.Columns = 10, 10
	m = newTestModel(fixed)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 80})
	if m.snap.Columns != 10 || m.snap.Rows != 10 {
		t.Fatalf("fixed grid resized to %dx%d", m.snap.Rows, m.snap.Columns)
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(config.Default())
	for _, key := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := send(t, m, key)
		if cmd == nil {
			t.Fatalf("%q did not quit", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%q returned %T", key.String(), cmd())
		}
	}
}

func TestModel_Autopilot(t *testing.T) {
	cfg := config.Default()
	cfg.Autopilot = true
	m := newTestModel(cfg)
	for i := 0; i < 5; i++ {
		m, _ = send(t, m, TickMsg(time.Now()))
	}
	// Item is at (9,9); the autopilot must be closing in, not idling right.
	if m.snap.GameOver {
		t.Fatalf("autopilot crashed: %+v", m.snap)
	}
	if d := abs(9-m.snap.Head().X) + abs(9-m.snap.Head().Y); d != 10-5 {
		t.Fatalf("distance to item=%d want 5 after 5 ticks, head=%v", d, m.snap.Head())
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
