package rules

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/brensch/gridsnake/game"
)

func dumpSnapshot(s game.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Turn=%d Size=%dx%d Dir=%s Item=(%d,%d)\n", s.Turn, s.Columns, s.Rows, s.Dir, s.Item.X, s.Item.Y)
	occ := make(map[game.Point]byte, s.Len())
	for i, p := range s.Body {
		if i == 0 {
			occ[p] = 'H'
		} else {
			occ[p] = 's'
		}
	}
	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Columns; x++ {
			p := game.Point{X: x, Y: y}
			switch {
			case occ[p] != 0:
				b.WriteByte(occ[p])
			case p == s.Item:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func snapshot(rows, columns int, dir game.Direction, item game.Point, body ...game.Point) game.Snapshot {
	return game.Snapshot{Rows: rows, Columns: columns, Dir: dir, Item: item, Body: body}
}

func TestSafeDirections(t *testing.T) {
	tests := []struct {
		name string
		snap game.Snapshot
		want []game.Direction
	}{
		{
			name: "open board excludes reverse",
			snap: snapshot(5, 5, game.Right, game.Point{X: 0, Y: 0}, game.Point{X: 2, Y: 2}),
			want: []game.Direction{game.Up, game.Down, game.Right},
		},
		{
			name: "top-left corner",
			snap: snapshot(5, 5, game.Up, game.Point{X: 4, Y: 4}, game.Point{X: 0, Y: 0}, game.Point{X: 0, Y: 1}),
			want: []game.Direction{game.Right},
		},
		{
			name: "tail cell is free",
			snap: snapshot(5, 5, game.Down, game.Point{X: 4, Y: 4},
				game.Point{X: 1, Y: 1}, game.Point{X: 2, Y: 1}, game.Point{X: 2, Y: 2}, game.Point{X: 1, Y: 2}),
			want: []game.Direction{game.Down, game.Left},
		},
		{
			name: "tail cell blocked when eating",
			snap: snapshot(5, 5, game.Down, game.Point{X: 1, Y: 2},
				game.Point{X: 1, Y: 1}, game.Point{X: 2, Y: 1}, game.Point{X: 2, Y: 2}, game.Point{X: 1, Y: 2}),
			want: []game.Direction{game.Left},
		},
		{
			name: "pending turn keeps the neck off limits",
			snap: snapshot(5, 5, game.Up, game.Point{X: 4, Y: 4}, game.Point{X: 2, Y: 2}, game.Point{X: 1, Y: 2}),
			want: []game.Direction{game.Up, game.Right},
		},
		{
			name: "game over",
			snap: game.Snapshot{Rows: 5, Columns: 5, Body: []game.Point{{X: -1, Y: 0}}, GameOver: true},
			want: []game.Direction{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SafeDirections(tc.snap)
			if fmt.Sprint(got) != fmt.Sprint(tc.want) {
				t.Fatalf("SafeDirections=%v want=%v\n%s", got, tc.want, dumpSnapshot(tc.snap))
			}
		})
	}
}

func TestAutopilot_HeadsForItem(t *testing.T) {
	s := snapshot(10, 10, game.Right, game.Point{X: 4, Y: 8}, game.Point{X: 4, Y: 4})
	d, ok := Autopilot(s)
	if !ok || d != game.Down {
		t.Fatalf("Autopilot=%s,%v want=down\n%s", d, ok, dumpSnapshot(s))
	}
}

func TestAutopilot_PrefersCurrentOnTie(t *testing.T) {
	// Item diagonal: up and right are equally close.
	s := snapshot(10, 10, game.Right, game.Point{X: 6, Y: 2}, game.Point{X: 4, Y: 4})
	d, ok := Autopilot(s)
	if !ok || d != game.Right {
		t.Fatalf("Autopilot=%s,%v want=right", d, ok)
	}
}

func TestAutopilot_NoSafeMove(t *testing.T) {
	s := snapshot(1, 2, game.Right, game.Point{X: 0, Y: 0}, game.Point{X: 1, Y: 0})
	if d, ok := Autopilot(s); ok {
		t.Fatalf("Autopilot=%s, want no move\n%s", d, dumpSnapshot(s))
	}
}

func TestAutopilot_ShortSnakeSurvives(t *testing.T) {
	// A body of four or fewer cells cannot block itself, so the autopilot
	// must never die before reaching score 3.
	g := game.New(12, 12, game.WithRand(rand.New(rand.NewSource(11))), game.WithSpawnPolicy(game.SpawnFree))
	sess := game.NewSession(g)
	for i := 0; i < 500; i++ {
		sess.Steer(Autopilot)
		_, snap := sess.Tick()
		if snap.GameOver {
			t.Fatalf("autopilot died on turn %d with score %d\n%s", snap.Turn, snap.Score, dumpSnapshot(snap))
		}
		if snap.Score >= 3 {
			return
		}
	}
}
