package server

import (
	"github.com/brensch/gridsnake/game"
	"github.com/brensch/gridsnake/render"
)

// Frame is what a browser client draws for one tick.
type Frame struct {
	game.Snapshot
	CellSize int        `json:"cell_size"`
	Status   string     `json:"status"`
	Banner   string     `json:"banner,omitempty"`
	Tail     *TailShape `json:"tail,omitempty"`
}

// TailShape is the triangle painted over the last segment.
type TailShape struct {
	Dir    game.Direction `json:"dir"`
	Points [3]render.Vec  `json:"points"`
}

// NewFrame decorates a snapshot with the surface geometry a canvas needs.
func NewFrame(s game.Snapshot, cellSize int) Frame {
	f := Frame{
		Snapshot: s,
		CellSize: cellSize,
		Status:   s.Status().String(),
		Banner:   render.StatusText(s),
	}
	if dir, ok := game.TailDirection(s.Body); ok {
		f.Tail = &TailShape{
			Dir:    dir,
			Points: render.TailTriangle(s.Tail(), dir, float64(cellSize)),
		}
	}
	return f
}

// Message is a client-to-server event.
type Message struct {
	Type   string `json:"type"` // key, button or resize
	Key    string `json:"key,omitempty"`
	ID     string `json:"id,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}
