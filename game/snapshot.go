package game

// Snapshot is a read-only copy of a GameState for renderers. The body slice
// is owned by the snapshot.
type Snapshot struct {
	Rows     int       `json:"rows"`
	Columns  int       `json:"columns"`
	Body     []Point   `json:"body"`
	Dir      Direction `json:"dir"`
	Item     Point     `json:"item"`
	Score    int       `json:"score"`
	Turn     int       `json:"turn"`
	GameOver bool      `json:"game_over"`
	Paused   bool      `json:"paused"`
}

// Snapshot copies the renderable parts of g.
func (g *GameState) Snapshot() Snapshot {
	body := make([]Point, len(g.Snake.Body))
	copy(body, g.Snake.Body)
	return Snapshot{
		Rows:     g.Rows,
		Columns:  g.Columns,
		Body:     body,
		Dir:      g.Snake.Dir,
		Item:     g.Item,
		Score:    g.Score,
		Turn:     g.Turn,
		GameOver: g.GameOver,
		Paused:   g.Paused,
	}
}

func (s Snapshot) Head() Point {
	return s.Body[0]
}

func (s Snapshot) Tail() Point {
	return s.Body[len(s.Body)-1]
}

func (s Snapshot) Len() int {
	return len(s.Body)
}

func (s Snapshot) Status() Status {
	switch {
	case s.GameOver:
		return GameOver
	case s.Paused:
		return Paused
	default:
		return Running
	}
}

// InBounds reports whether p lies on the snapshot's grid.
func (s Snapshot) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Columns && p.Y < s.Rows
}

// CanTurn reports whether the game would accept d as the next heading,
// ignoring the paused and game over flags.
func (s Snapshot) CanTurn(d Direction) bool {
	return canTurn(s.Body, s.Dir, d)
}
