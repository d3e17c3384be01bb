// food.go implements item placement.

package game

import "fmt"

// SpawnPolicy controls where a new item may land.
type SpawnPolicy uint8

const (
	// SpawnUniform picks any cell on the grid, including cells under the
	// snake.
	SpawnUniform SpawnPolicy = iota
	// SpawnFree picks uniformly among cells the snake does not occupy and
	// falls back to SpawnUniform when there are none.
	SpawnFree
)

func (p SpawnPolicy) String() string {
	switch p {
	case SpawnUniform:
		return "uniform"
	case SpawnFree:
		return "free"
	default:
		return fmt.Sprintf("SpawnPolicy(%d)", uint8(p))
	}
}

func (g *GameState) spawnItem() {
	if g.policy == SpawnFree {
		if p, ok := g.freeCell(); ok {
			g.Item = p
			return
		}
	}
	g.Item = Point{X: g.rng.Intn(g.Columns), Y: g.rng.Intn(g.Rows)}
}

// Grids with more cells than this are sampled instead of scanned.
const maxScanCells = 1 << 20

// sampleTries bounds the random draws on a grid too large to scan.
const sampleTries = 64

// freeCell draws a random unoccupied cell.
func (g *GameState) freeCell() (Point, bool) {
	occupied := make(map[Point]bool, len(g.Snake.Body))
	for _, p := range g.Snake.Body {
		occupied[p] = true
	}

	if g.Rows > maxScanCells/g.Columns {
		for i := 0; i < sampleTries; i++ {
			p := Point{X: g.rng.Intn(g.Columns), Y: g.rng.Intn(g.Rows)}
			if !occupied[p] {
				return p, true
			}
		}
		return Point{}, false
	}

	freeSpots := make([]Point, 0, max(g.Rows*g.Columns-len(occupied), 0))
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Columns; x++ {
			p := Point{X: x, Y: y}
			if !occupied[p] {
				freeSpots = append(freeSpots, p)
			}
		}
	}
	if len(freeSpots) == 0 {
		return Point{}, false
	}
	return freeSpots[g.rng.Intn(len(freeSpots))], true
}
