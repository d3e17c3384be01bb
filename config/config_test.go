package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/brensch/gridsnake/game"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CellSize != DefaultCellSize || cfg.Tick != DefaultTick {
		t.Fatalf("cell=%d tick=%s", cfg.CellSize, cfg.Tick)
	}
	if cfg.FixedGrid() {
		t.Fatalf("default grid should follow the viewport")
	}
	if cfg.Listen != ":8080" || cfg.LogFormat != "text" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load(newFlagSet(), []string{
		"-rows", "10", "-columns", "12", "-tick", "50ms", "-seed", "9", "-avoid-snake", "-autopilot",
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.FixedGrid() || cfg.Rows != 10 || cfg.Columns != 12 {
		t.Fatalf("grid=%dx%d", cfg.Rows, cfg.Columns)
	}
	if cfg.Tick != 50*time.Millisecond || cfg.Seed != 9 || !cfg.AvoidSnake || !cfg.Autopilot {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SNAKE_CELL_SIZE", "30")
	t.Setenv("SNAKE_TICK", "200ms")
	t.Setenv("SNAKE_AUTOPILOT", "TRUE")
	t.Setenv("SNAKE_AVOID_SNAKE", "maybe")
	t.Setenv("SNAKE_ROWS", "not-a-number")

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CellSize != 30 || cfg.Tick != 200*time.Millisecond || !cfg.Autopilot {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.Rows != 0 {
		t.Fatalf("bad SNAKE_ROWS should fall back to 0, got %d", cfg.Rows)
	}
	if cfg.AvoidSnake {
		t.Fatalf("bad SNAKE_AVOID_SNAKE should fall back to false")
	}
}

func TestGetEnvBoolOrDefault(t *testing.T) {
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"1", false, true},
		{"True", false, true},
		{"FALSE", true, false},
		{"0", true, false},
		{"nope", true, true},
		{"nope", false, false},
	}
	for _, tc := range tests {
		t.Setenv("SNAKE_TEST_BOOL", tc.val)
		if got := getEnvBoolOrDefault("SNAKE_TEST_BOOL", tc.def); got != tc.want {
			t.Fatalf("val=%q def=%v got=%v want=%v", tc.val, tc.def, got, tc.want)
		}
	}
}

func TestClampGrid(t *testing.T) {
	rows, cols := ClampGrid(40_000_000, 12)
	if rows != MaxRows || cols != 12 {
		t.Fatalf("ClampGrid=%dx%d want %dx12", rows, cols, MaxRows)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := [][]string{
		{"-cell-size", "0"},
		{"-tick", "0s"},
		{"-rows", "-1"},
		{"-rows", "10", "-columns", "501"},
		{"-no-such-flag"},
	}
	for _, args := range tests {
		if _, err := Load(newFlagSet(), args); err == nil {
			t.Fatalf("Load(%v) succeeded", args)
		}
	}
}

func TestGridOr(t *testing.T) {
	c := Config{Rows: 7}
	rows, cols := c.GridOr(30, 40)
	if rows != 7 || cols != 40 {
		t.Fatalf("GridOr=%dx%d want=7x40", rows, cols)
	}
}

func TestGameOptions_SeedIsDeterministic(t *testing.T) {
	c := Config{Seed: 42, AvoidSnake: true}
	a := game.New(30, 30, c.GameOptions()...)
	b := game.New(30, 30, c.GameOptions()...)
	if a.Item != b.Item {
		t.Fatalf("same seed gave items %v and %v", a.Item, b.Item)
	}
	if a.Item == game.DefaultStart {
		t.Fatalf("avoid-snake placed the item on the snake")
	}
}
