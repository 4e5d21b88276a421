// internal/system/projectile.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
)

// ProjectileSystem решает, кто и когда стреляет.
type ProjectileSystem struct {
	rng          entity.Rand
	cooldown     int
	baseInterval int
}

func NewProjectileSystem(cfg *config.Settings, rng entity.Rand) *ProjectileSystem {
	return &ProjectileSystem{
		rng:          rng,
		cooldown:     cfg.PlayerFireCooldown,
		baseInterval: cfg.EnemyFireInterval,
	}
}

// EnemyFireInterval returns how many ticks pass between enemy volleys at level.
// There is no enemy fire below level 1; an interval that rounds down to 0 is raised to 1.
func EnemyFireInterval(base, level int) (int, bool) {
	if level < 1 || base <= 0 {
		return 0, false
	}
	return max(base/level, 1), true
}

// PlayerFire adds the player's shot when fire is held and the cooldown allows it.
func (s *ProjectileSystem) PlayerFire(world *entity.World, tick int, in component.Input) bool {
	if !in.Fire || world.Player == nil || !world.Player.Alive() {
		return false
	}
	if tick%s.cooldown != 0 {
		return false
	}
	world.AddProjectiles(world.Player.Shoot())
	return true
}

// EnemyFire lets one randomly chosen live enemy fire its volley on interval ticks.
// It returns the number of projectiles added.
func (s *ProjectileSystem) EnemyFire(world *entity.World, tick, level int) int {
	interval, ok := EnemyFireInterval(s.baseInterval, level)
	if !ok || tick%interval != 0 {
		return 0
	}
	live := make([]*entity.Enemy, 0, len(world.Enemies))
	for _, e := range world.Enemies {
		if e.Alive() {
			live = append(live, e)
		}
	}
	if len(live) == 0 {
		return 0
	}
	shots := live[s.rng.Intn(len(live))].Shoot()
	world.AddProjectiles(shots...)
	return len(shots)
}
