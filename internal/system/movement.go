// internal/system/movement.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/entity"
)

// MovementSystem обновляет позиции сущностей
type MovementSystem struct {
	rng entity.Rand
}

func NewMovementSystem(rng entity.Rand) *MovementSystem {
	return &MovementSystem{rng: rng}
}

// Update moves the player by input, then every live projectile, then every live enemy.
func (s *MovementSystem) Update(world *entity.World, in component.Input) {
	if world.Player != nil {
		world.Player.Move(in)
	}
	for _, p := range world.Projectiles {
		p.Move()
	}
	for _, e := range world.Enemies {
		e.Move(s.rng)
	}
}
