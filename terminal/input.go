package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// ActionKind classifies a key press
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionPreset     // Select preset Action.Index
	ActionNextPreset // Cycle to the following preset
	ActionRedraw
)

// Action is the scene command bound to a key
type Action struct {
	Kind  ActionKind
	Index int
}

// KeyAction maps a key event: 1-9 select presets, n cycles, q/Esc/Ctrl-C quit,
// Ctrl-L forces a redraw
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActionQuit}
	case tcell.KeyCtrlL:
		return Action{Kind: ActionRedraw}
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == 'q' || r == 'Q':
			return Action{Kind: ActionQuit}
		case r == 'n' || r == 'N':
			return Action{Kind: ActionNextPreset}
		case r >= '1' && r <= '9':
			return Action{Kind: ActionPreset, Index: int(r - '1')}
		}
	}
	return Action{Kind: ActionNone}
}
