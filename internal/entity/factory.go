// internal/entity/factory.go
package entity

import (
	"fmt"
	"image"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
)

// Rand is the randomness an entity needs. utils.PRNGService satisfies it.
type Rand interface {
	Intn(n int) int
	IntRange(lo, hi int) int
}

// Factory builds entities from validated settings.
type Factory struct {
	cfg     *config.Settings
	enemies map[defs.Rarity]defs.EnemyDefinition
}

// NewFactory resolves every enemy definition up front so that a missing
// rarity entry fails at startup rather than mid-game.
func NewFactory(cfg *config.Settings) (*Factory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil settings", config.ErrInvalid)
	}
	f := &Factory{
		cfg:     cfg,
		enemies: make(map[defs.Rarity]defs.EnemyDefinition, len(defs.Rarities())),
	}
	for _, r := range defs.Rarities() {
		def, err := cfg.Enemy(r)
		if err != nil {
			return nil, err
		}
		f.enemies[r] = def
	}
	return f, nil
}

// Settings returns the settings the factory was built from.
func (f *Factory) Settings() *config.Settings {
	return f.cfg
}

// NewPlayer creates a full-health player at the configured spawn point.
func (f *Factory) NewPlayer() *Player {
	p := &Player{
		Health: component.NewHealth(f.cfg.PlayerHealth),
		f:      f,
	}
	p.Bounds = f.playerSpawn()
	return p
}

// NewEnemy creates an enemy of rarity r whose mid-bottom sits at (x, y).
func (f *Factory) NewEnemy(r defs.Rarity, x, y int) (*Enemy, error) {
	def, ok := f.enemies[r]
	if !ok {
		return nil, fmt.Errorf("new enemy: %w: %d", defs.ErrUnknownRarity, int(r))
	}
	e := &Enemy{
		Kind:   r,
		Bounds: component.MidBottom(x, y, def.Width, def.Height),
		Health: component.NewHealth(def.Health),
		def:    def,
		f:      f,
	}
	switch r {
	case defs.Common:
		e.Oscillation = &component.Oscillation{Band: f.cfg.CommonBand, Speed: def.Speed}
	case defs.Rare:
		e.Patrol = &component.Patrol{Max: f.cfg.RarePatrol, Speed: def.Speed}
	case defs.UltraRare:
		e.Drift = &component.Drift{MaxStep: def.Speed}
	}
	return e, nil
}

// NewProjectile creates a projectile whose mid-bottom sits at (x, y).
func (f *Factory) NewProjectile(owner component.Owner, damage, x, y int) *Projectile {
	size := f.cfg.Sizes.EnemyShot
	if owner == component.OwnerPlayer {
		size = f.cfg.Sizes.PlayerShot
	}
	return &Projectile{
		Owner:  owner,
		Damage: damage,
		Bounds: component.MidBottom(x, y, size.W, size.H),
		speed:  f.cfg.ProjectileSpeed,
		floor:  f.cfg.ScreenHeight,
	}
}

func (f *Factory) playerSpawn() image.Rectangle {
	size := f.cfg.Sizes.Player
	return component.MidBottom(f.cfg.PlayerStart.X, f.cfg.PlayerStart.Y, size.W, size.H)
}
