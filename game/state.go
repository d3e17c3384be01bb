// Package game defines the core state and rules for a single-player snake.
//
// A GameState owns the snake body, the item and the scoring flags. Hosts
// advance it once per tick with Update and feed player input through
// SetDirection, TogglePause and Reset (or Apply with a Command). Renderers
// read a Snapshot, which is a value copy safe to keep across ticks.
package game

import (
	"math/rand"
	"time"
)

// Point is a grid cell. (0,0) is the top-left cell; Y grows downward.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// DefaultStart is where a fresh snake is placed.
var DefaultStart = Point{X: 4, Y: 4}

type Snake struct {
	Body []Point
	Dir  Direction
}

// Head returns the first body cell.
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Status is the coarse state of a game.
type Status uint8

const (
	Running Status = iota
	Paused
	GameOver
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TickResult reports what a single Update did.
type TickResult struct {
	Moved bool
	Ate   bool
	Died  bool
}

// GameState is the authoritative simulation. It is not safe for concurrent
// use; see Session.
type GameState struct {
	Rows     int
	Columns  int
	Snake    Snake
	Item     Point
	Score    int
	Turn     int
	GameOver bool
	Paused   bool

	start  Point
	policy SpawnPolicy
	rng    *rand.Rand
}

// Option configures a GameState at construction.
type Option func(*GameState)

// WithRand sets the random source used for item placement.
func WithRand(rng *rand.Rand) Option {
	return func(g *GameState) { g.rng = rng }
}

// WithStart sets the cell a new or reset snake starts on.
func WithStart(p Point) Option {
	return func(g *GameState) { g.start = p }
}

// WithSpawnPolicy selects how items are placed.
func WithSpawnPolicy(p SpawnPolicy) Option {
	return func(g *GameState) { g.policy = p }
}

// New initializes a game on a rows x columns grid.
func New(rows, columns int, opts ...Option) *GameState {
	g := &GameState{start: DefaultStart}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.Resize(rows, columns)
	g.Reset()
	return g
}

// Reset puts the snake back on its start cell facing right, clears score and
// flags and spawns a new item. Grid dimensions are kept.
func (g *GameState) Reset() {
	g.Snake = Snake{Body: []Point{g.start}, Dir: Right}
	g.Score = 0
	g.Turn = 0
	g.GameOver = false
	g.Paused = false
	g.spawnItem()
}

// Resize changes the grid bounds only. Snake and item stay where they are,
// even when that is now out of bounds; the next Update catches it.
func (g *GameState) Resize(rows, columns int) {
	g.Rows = max(rows, 1)
	g.Columns = max(columns, 1)
}

// Status returns the current state machine state.
func (g *GameState) Status() Status {
	switch {
	case g.GameOver:
		return GameOver
	case g.Paused:
		return Paused
	default:
		return Running
	}
}

// SetDirection requests a new heading for the next Update. It returns false
// when the game is paused or over, or when d reverses the current heading.
// A turn that would put the head back onto the neck is also refused, so two
// quick turns within one tick cannot fold the snake onto itself.
func (g *GameState) SetDirection(d Direction) bool {
	if g.GameOver || g.Paused {
		return false
	}
	if !canTurn(g.Snake.Body, g.Snake.Dir, d) {
		return false
	}
	g.Snake.Dir = d
	return true
}

func canTurn(body []Point, cur, d Direction) bool {
	if !d.Valid() || d == cur.Opposite() {
		return false
	}
	if len(body) > 1 && body[0].Add(d.Delta()) == body[1] {
		return false
	}
	return true
}

// TogglePause flips the paused flag. On a finished game it resets instead.
func (g *GameState) TogglePause() {
	if g.GameOver {
		g.Reset()
		return
	}
	g.Paused = !g.Paused
}

// Update advances the game by one tick.
//
// The head is prepended first and the tail dropped unless the item was eaten;
// bounds and self-collision are then checked against the moved body. A fatal
// move is left in place so renderers show where the snake died.
func (g *GameState) Update() TickResult {
	if g.GameOver || g.Paused {
		return TickResult{}
	}

	newHead := g.Snake.Head().Add(g.Snake.Dir.Delta())
	body := make([]Point, 0, len(g.Snake.Body)+1)
	body = append(body, newHead)
	body = append(body, g.Snake.Body...)

	res := TickResult{Moved: true}
	if newHead == g.Item {
		g.Score++
		res.Ate = true
		g.Snake.Body = body
		g.spawnItem()
	} else {
		g.Snake.Body = body[:len(body)-1]
	}
	g.Turn++

	if !g.InBounds(newHead) || hitsBody(newHead, g.Snake.Body[1:]) {
		g.GameOver = true
		res.Died = true
	}
	return res
}

// InBounds reports whether p lies on the grid.
func (g *GameState) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Columns && p.Y < g.Rows
}

func hitsBody(p Point, body []Point) bool {
	for _, b := range body {
		if b == p {
			return true
		}
	}
	return false
}

// Clone performs a deep copy of the game state. The clone shares the random
// source.
func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}
	out := *g
	out.Snake.Body = make([]Point, len(g.Snake.Body))
	copy(out.Snake.Body, g.Snake.Body)
	return &out
}
