// Package input maps raw key and button events to game commands. Keyboard
// keys and on-screen buttons share the same semantics.
package input

import "github.com/brensch/gridsnake/game"

var keyCommands = map[string]game.Command{
	// bubbletea key names
	"up":    game.CmdUp,
	"down":  game.CmdDown,
	"left":  game.CmdLeft,
	"right": game.CmdRight,

	// browser KeyboardEvent.key names
	"ArrowUp":    game.CmdUp,
	"ArrowDown":  game.CmdDown,
	"ArrowLeft":  game.CmdLeft,
	"ArrowRight": game.CmdRight,

	"w": game.CmdUp,
	"s": game.CmdDown,
	"a": game.CmdLeft,
	"d": game.CmdRight,

	"p": game.CmdTogglePause,
	"P": game.CmdTogglePause,
	" ": game.CmdTogglePause,
	"r": game.CmdReset,
	"R": game.CmdReset,
}

var buttonCommands = map[string]game.Command{
	"up":    game.CmdUp,
	"down":  game.CmdDown,
	"left":  game.CmdLeft,
	"right": game.CmdRight,
	"pause": game.CmdTogglePause,
}

// FromKey returns the command bound to key. Unbound keys report false.
func FromKey(key string) (game.Command, bool) {
	c, ok := keyCommands[key]
	return c, ok
}

// FromButton returns the command for an on-screen button id.
func FromButton(id string) (game.Command, bool) {
	c, ok := buttonCommands[id]
	return c, ok
}

// Buttons lists the on-screen button ids a client should offer.
func Buttons() []string {
	return []string{"up", "down", "left", "right", "pause"}
}
