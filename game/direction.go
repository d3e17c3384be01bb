package game

import "fmt"

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in a stable order.
var Directions = [...]Direction{Up, Down, Left, Right}

var opposites = [...]Direction{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

var deltas = [...]Point{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

var directionNames = [...]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) Valid() bool {
	return d <= Right
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Delta returns the unit step for d.
func (d Direction) Delta() Point {
	return deltas[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection accepts the names produced by String.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if directionNames[d] == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MarshalText encodes d by name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(directionNames[d]), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TailDirection reports which way the tail points: the heading of the step
// from the second-to-last segment to the last one. ok is false when the body
// has a single segment or the last two segments are not adjacent.
func TailDirection(body []Point) (dir Direction, ok bool) {
	if len(body) < 2 {
		return 0, false
	}
	pre, last := body[len(body)-2], body[len(body)-1]
	step := Point{X: last.X - pre.X, Y: last.Y - pre.Y}
	for _, d := range Directions {
		if deltas[d] == step {
			return d, true
		}
	}
	return 0, false
}
