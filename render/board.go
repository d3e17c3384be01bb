package render

import (
	"fmt"
	"strings"

	"github.com/brensch/gridsnake/game"
	"github.com/charmbracelet/lipgloss"
)

const (
	PausedText   = "Paused"
	GameOverText = `Game Over! Press "R" to Restart.`
)

// Each grid cell is two terminal columns wide so the board looks square.
const cellWidth = 2

// TerminalCellWidth and TerminalCellHeight are the terminal size of one grid
// cell, for ViewportGrid.
const (
	TerminalCellWidth  = cellWidth
	TerminalCellHeight = 1
)

// BoardChrome is how many terminal rows and columns the board adds around
// the grid: border plus the score and status lines.
const (
	BoardChromeRows    = 4
	BoardChromeColumns = 2
)

var tailGlyphs = [...]string{
	game.Up:    "▲",
	game.Down:  "▼",
	game.Left:  "◀",
	game.Right: "▶",
}

type Styles struct {
	Head   lipgloss.Style
	Body   lipgloss.Style
	Item   lipgloss.Style
	Empty  lipgloss.Style
	Frame  lipgloss.Style
	Score  lipgloss.Style
	Banner lipgloss.Style
}

// DefaultStyles matches the colours of the canvas client.
func DefaultStyles() Styles {
	green := lipgloss.Color("#75b74c")
	return Styles{
		Head:   lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e36e")).Bold(true),
		Body:   lipgloss.NewStyle().Foreground(green),
		Item:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e0413a")),
		Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("#3a3a3a")),
		Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(green),
		Score:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
		Banner: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
	}
}

// PlainStyles renders without colour, for logs and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Head:   plain,
		Body:   plain,
		Item:   plain,
		Empty:  plain,
		Frame:  plain.Border(lipgloss.NormalBorder()),
		Score:  plain,
		Banner: plain,
	}
}

// Board draws a snapshot for a terminal.
type Board struct {
	styles Styles
}

func NewBoard(styles Styles) *Board {
	return &Board{styles: styles}
}

// Render draws the grid, the score line and any status banner. Segments
// outside the current bounds (a head that just left the grid, or cells left
// behind by a resize) are not drawn.
func (b *Board) Render(s game.Snapshot) string {
	cells := make([][]string, s.Rows)
	for y := range cells {
		cells[y] = make([]string, s.Columns)
		for x := range cells[y] {
			cells[y][x] = b.styles.Empty.Render("·")
		}
	}

	if s.InBounds(s.Item) {
		cells[s.Item.Y][s.Item.X] = b.styles.Item.Render("●")
	}

	tailDir, hasTail := game.TailDirection(s.Body)
	for i := len(s.Body) - 1; i >= 0; i-- {
		p := s.Body[i]
		if !s.InBounds(p) {
			continue
		}
		switch {
		case i == 0:
			cells[p.Y][p.X] = b.styles.Head.Render("■")
		case i == len(s.Body)-1 && hasTail:
			cells[p.Y][p.X] = b.styles.Body.Render(tailGlyphs[tailDir])
		default:
			cells[p.Y][p.X] = b.styles.Body.Render("□")
		}
	}

	var grid strings.Builder
	for y, row := range cells {
		if y > 0 {
			grid.WriteByte('\n')
		}
		for _, c := range row {
			grid.WriteString(c)
			grid.WriteString(strings.Repeat(" ", cellWidth-1))
		}
	}

	lines := []string{
		b.styles.Score.Render(fmt.Sprintf("Score: %d", s.Score)),
		b.styles.Frame.Render(grid.String()),
	}
	if banner := StatusText(s); banner != "" {
		lines = append(lines, b.styles.Banner.Render(banner))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// StatusText is the overlay for a snapshot, or "" while running.
func StatusText(s game.Snapshot) string {
	switch s.Status() {
	case game.Paused:
		return PausedText
	case game.GameOver:
		return GameOverText
	default:
		return ""
	}
}

// TailGlyph returns the arrow drawn on the tail cell, or "" when the tail
// has no direction.
func TailGlyph(body []game.Point) string {
	d, ok := game.TailDirection(body)
	if !ok {
		return ""
	}
	return tailGlyphs[d]
}
