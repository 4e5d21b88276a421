// internal/system/combat.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
)

// CombatSystem сталкивает снаряды с целями и начисляет очки.
type CombatSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{eventDispatcher: eventDispatcher}
}

// Resolve runs one collision pass over world and returns the score awarded.
//
// Player projectiles are tested against every live enemy; the first hit
// consumes the projectile. Enemy projectiles are tested against the player
// and then against the player's projectiles. Dead entities are left in place
// for the caller to sweep.
func (s *CombatSystem) Resolve(world *entity.World) int {
	award := 0
	for _, p := range world.Projectiles {
		if !p.Alive() || p.Owner != component.OwnerPlayer {
			continue
		}
		for _, e := range world.Enemies {
			hit := p.CheckCollision(e)
			if !hit.Collided {
				continue
			}
			if hit.Killed {
				award += hit.Score
				s.eventDispatcher.Emit(event.EnemyDestroyed, event.EnemyDestroyedData{
					Rarity: e.Kind,
					Points: hit.Score,
				})
			}
			break
		}
	}

	for _, p := range world.Projectiles {
		if !p.Alive() || p.Owner != component.OwnerEnemy {
			continue
		}
		if world.Player != nil {
			damage := p.Damage
			if hit := p.CheckCollision(world.Player); hit.Collided {
				s.eventDispatcher.Emit(event.PlayerHit, event.PlayerHitData{
					Damage: damage,
					Health: world.Player.Health.Value,
				})
				continue
			}
		}
		for _, other := range world.Projectiles {
			if hit := p.CheckCollision(other); hit.Intercepted {
				s.eventDispatcher.Emit(event.ProjectilesIntercepted, nil)
				break
			}
		}
	}
	return award
}
