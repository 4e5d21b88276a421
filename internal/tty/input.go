// internal/tty/input.go
package tty

import (
	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/component"
)

// Action is what a key asks the run loop to do besides steering.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
)

// DefaultHold is how many ticks a key press counts as held.
const DefaultHold = 4

// KeyState turns key presses into held keys. Terminals report presses and
// auto-repeats but never releases, so every press keeps its key down for
// Hold ticks and a repeat refreshes the window.
type KeyState struct {
	Hold    int
	left    int
	right   int
	fire    int
	restart bool
}

func NewKeyState(hold int) *KeyState {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyState{Hold: hold}
}

// Press records one key event.
func (k *KeyState) Press(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyLeft:
		k.left, k.right = k.Hold, 0
	case tcell.KeyRight:
		k.right, k.left = k.Hold, 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			k.left, k.right = k.Hold, 0
		case 'd', 'D':
			k.right, k.left = k.Hold, 0
		case ' ':
			k.fire = k.Hold
		case 'r', 'R':
			k.restart = true
		case 'p', 'P':
			return ActionPause
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// Next returns the input for the coming tick and ages every held key by one tick.
func (k *KeyState) Next() component.Input {
	in := component.Input{
		Left:    k.left > 0,
		Right:   k.right > 0,
		Fire:    k.fire > 0,
		Restart: k.restart,
	}
	k.left = max(k.left-1, 0)
	k.right = max(k.right-1, 0)
	k.fire = max(k.fire-1, 0)
	k.restart = false
	return in
}
