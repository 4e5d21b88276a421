// internal/component/player.go
package component

// Input is the per-tick intent read from whichever front end is running.
type Input struct {
	Left    bool
	Right   bool
	Fire    bool
	Restart bool // only honoured while the game is over
}
