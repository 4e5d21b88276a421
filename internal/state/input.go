// internal/state/input.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/component"
)

// PollInput reads the held movement and fire keys.
func PollInput() component.Input {
	return component.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}
