package game

import "fmt"

// Command is a player action produced by an input adapter.
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdTogglePause
	CmdReset
)

func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdTogglePause:
		return "toggle_pause"
	case CmdReset:
		return "reset"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}

// DirectionCommand maps a heading to its steering command.
func DirectionCommand(d Direction) Command {
	switch d {
	case Up:
		return CmdUp
	case Down:
		return CmdDown
	case Left:
		return CmdLeft
	default:
		return CmdRight
	}
}

// Direction returns the heading a steering command asks for.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CmdUp:
		return Up, true
	case CmdDown:
		return Down, true
	case CmdLeft:
		return Left, true
	case CmdRight:
		return Right, true
	}
	return 0, false
}

// Apply runs a command against the game and reports whether it changed
// anything. Reset is only honoured once the game is over.
func (g *GameState) Apply(c Command) bool {
	if d, ok := c.Direction(); ok {
		return g.SetDirection(d)
	}
	switch c {
	case CmdTogglePause:
		g.TogglePause()
		return true
	case CmdReset:
		if !g.GameOver {
			return false
		}
		g.Reset()
		return true
	}
	return false
}
