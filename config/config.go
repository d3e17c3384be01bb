// Package config holds the settings shared by the terminal and browser hosts.
// Every flag falls back to an environment variable so containers can be
// configured without arguments.
package config

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/brensch/gridsnake/game"
)

const (
	// DefaultCellSize is the edge of one grid cell in surface units (pixels
	// in the browser).
	DefaultCellSize = 50
	DefaultTick     = 120 * time.Millisecond
	DefaultRows     = 20
	DefaultColumns  = 20

	// MaxRows and MaxColumns cap any grid, whether fixed by flags or derived
	// from a client viewport.
	MaxRows    = 500
	MaxColumns = 500
)

type Config struct {
	// Rows and Columns fix the grid. Zero means derive it from the viewport.
	Rows     int
	Columns  int
	CellSize int
	Tick     time.Duration
	Seed     int64 // 0 picks a time-based seed

	AvoidSnake bool // spawn items only on free cells
	Autopilot  bool

	Listen string

	LogLevel  string
	LogFormat string
	LogFile   string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		CellSize:  DefaultCellSize,
		Tick:      DefaultTick,
		Listen:    ":8080",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load registers the flags on fs, parses args and validates the result.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	def := Default()
	cfg := Config{}

	fs.IntVar(&cfg.Rows, "rows", getEnvIntOrDefault("SNAKE_ROWS", def.Rows), "Grid rows (0 = fit the viewport)")
	fs.IntVar(&cfg.Columns, "columns", getEnvIntOrDefault("SNAKE_COLUMNS", def.Columns), "Grid columns (0 = fit the viewport)")
	fs.IntVar(&cfg.CellSize, "cell-size", getEnvIntOrDefault("SNAKE_CELL_SIZE", def.CellSize), "Cell edge in surface units")
	fs.DurationVar(&cfg.Tick, "tick", getEnvDurationOrDefault("SNAKE_TICK", def.Tick), "Simulation tick period")
	fs.Int64Var(&cfg.Seed, "seed", getEnvInt64OrDefault("SNAKE_SEED", def.Seed), "Random seed for item placement (0 = time based)")
	fs.BoolVar(&cfg.AvoidSnake, "avoid-snake", getEnvBoolOrDefault("SNAKE_AVOID_SNAKE", def.AvoidSnake), "Never spawn the item under the snake")
	fs.BoolVar(&cfg.Autopilot, "autopilot", getEnvBoolOrDefault("SNAKE_AUTOPILOT", def.Autopilot), "Let the built-in autopilot steer")
	fs.StringVar(&cfg.Listen, "listen", getEnvOrDefault("SNAKE_LISTEN", def.Listen), "HTTP listen address (browser host)")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnvOrDefault("SNAKE_LOG_LEVEL", def.LogLevel), "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", getEnvOrDefault("SNAKE_LOG_FORMAT", def.LogFormat), "Log format: text, json, pretty")
	fs.StringVar(&cfg.LogFile, "log-file", getEnvOrDefault("SNAKE_LOG_FILE", def.LogFile), "Write logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no host can run with.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", c.Tick)
	}
	if c.Rows < 0 || c.Columns < 0 {
		return fmt.Errorf("grid must not be negative, got %dx%d", c.Rows, c.Columns)
	}
	if c.Rows > MaxRows || c.Columns > MaxColumns {
		return fmt.Errorf("grid %dx%d exceeds the %dx%d maximum", c.Rows, c.Columns, MaxRows, MaxColumns)
	}
	return nil
}

// FixedGrid reports whether rows and columns were both set explicitly.
func (c Config) FixedGrid() bool {
	return c.Rows > 0 && c.Columns > 0
}

// GridOr returns the configured grid, filling unset sides from fallback.
func (c Config) GridOr(rows, columns int) (int, int) {
	if c.Rows > 0 {
		rows = c.Rows
	}
	if c.Columns > 0 {
		columns = c.Columns
	}
	return rows, columns
}

// ClampGrid limits a derived grid to MaxRows x MaxColumns.
func ClampGrid(rows, columns int) (int, int) {
	return min(rows, MaxRows), min(columns, MaxColumns)
}

// GameOptions translates the settings into game construction options.
func (c Config) GameOptions() []game.Option {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []game.Option{game.WithRand(rand.New(rand.NewSource(seed)))}
	if c.AvoidSnake {
		opts = append(opts, game.WithSpawnPolicy(game.SpawnFree))
	}
	return opts
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvInt64OrDefault(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
