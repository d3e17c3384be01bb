// Package rules answers questions about a snapshot without mutating a game:
// which headings are safe next tick and which one an autopilot would take.
package rules

import (
	"github.com/brensch/gridsnake/game"
)

// SafeDirections returns the headings that keep the snake alive for one more
// tick, in game.Directions order. Turns the game would refuse are never
// listed. The tail cell counts as free unless the next head lands on the
// item, because a growing snake keeps its tail.
func SafeDirections(s game.Snapshot) []game.Direction {
	if s.GameOver || s.Len() == 0 {
		return []game.Direction{}
	}

	head := s.Head()
	moves := make([]game.Direction, 0, len(game.Directions))
	for _, d := range game.Directions {
		if !s.CanTurn(d) {
			continue
		}
		if isSafe(s, head.Add(d.Delta())) {
			moves = append(moves, d)
		}
	}
	return moves
}

func isSafe(s game.Snapshot, p game.Point) bool {
	// 1. Check bounds
	if !s.InBounds(p) {
		return false
	}

	// 2. Check own body; the tail moves away unless we grow this tick.
	body := s.Body[1:]
	if p != s.Item && len(body) > 0 {
		body = body[:len(body)-1]
	}
	for _, bp := range body {
		if p == bp {
			return false
		}
	}
	return true
}

// Autopilot picks the safe heading that brings the head closest to the item.
// Ties prefer the current heading, then game.Directions order. ok is false
// when no heading is safe.
func Autopilot(s game.Snapshot) (dir game.Direction, ok bool) {
	safe := SafeDirections(s)
	if len(safe) == 0 {
		return 0, false
	}

	head := s.Head()
	best := safe[0]
	bestDist := manhattan(head.Add(best.Delta()), s.Item)
	for _, d := range safe[1:] {
		dist := manhattan(head.Add(d.Delta()), s.Item)
		if dist < bestDist {
			best, bestDist = d, dist
		}
	}
	for _, d := range safe {
		if d == s.Dir && manhattan(head.Add(d.Delta()), s.Item) == bestDist {
			return d, true
		}
	}
	return best, true
}

func manhattan(a, b game.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
