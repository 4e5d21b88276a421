// internal/interfaces/game_context.go
package interfaces

import "go-space-invaders/internal/component"

// HUD is what the front ends show next to the playfield.
type HUD struct {
	Score     int
	Health    int
	MaxHealth int
	Level     int
	Phase     component.Phase
	Best      int
}

// GameContext is the part of the game the front ends drive. It keeps
// state, ui and tty from depending on the app package.
type GameContext interface {
	Update(in component.Input) error
	Sprites() []component.Sprite
	HUD() HUD
}
