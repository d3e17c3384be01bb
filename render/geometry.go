// Package render turns game snapshots into something a player can see: a
// styled terminal board, and the surface geometry a canvas client needs.
package render

import "github.com/brensch/gridsnake/game"

// Vec is a point on a drawing surface, in surface units.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned box on a drawing surface.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// CellRect returns the surface box covered by cell p.
func CellRect(p game.Point, scale float64) Rect {
	return Rect{X: float64(p.X) * scale, Y: float64(p.Y) * scale, W: scale, H: scale}
}

// TailTriangle returns the triangle drawn over the tail cell. The apex sits
// on the middle of the cell edge facing dir; the base spans the opposite
// edge.
func TailTriangle(tail game.Point, dir game.Direction, scale float64) [3]Vec {
	r := CellRect(tail, scale)
	left, top := r.X, r.Y
	right, bottom := r.X+scale, r.Y+scale
	midX, midY := r.X+scale/2, r.Y+scale/2

	switch dir {
	case game.Up:
		return [3]Vec{{midX, top}, {left, bottom}, {right, bottom}}
	case game.Down:
		return [3]Vec{{midX, bottom}, {left, top}, {right, top}}
	case game.Left:
		return [3]Vec{{left, midY}, {right, top}, {right, bottom}}
	default:
		return [3]Vec{{right, midY}, {left, top}, {left, bottom}}
	}
}

// ViewportGrid converts a surface size into whole grid cells. Both results
// are at least 1.
func ViewportGrid(width, height, cellSize int) (rows, columns int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	return max(height/cellSize, 1), max(width/cellSize, 1)
}
