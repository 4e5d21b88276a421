// internal/entity/player.go
package entity

import (
	"image"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
)

// Player is the ship controlled by the user.
type Player struct {
	ID     EntityID
	Bounds image.Rectangle
	Health component.Health
	f      *Factory
}

// Move shifts the ship by one speed step per held direction.
// A step that would leave [0, screenWidth-width] is not taken.
func (p *Player) Move(in component.Input) {
	speed := p.f.cfg.PlayerSpeed
	maxX := p.f.cfg.ScreenWidth - p.Bounds.Dx()
	if in.Left && p.Bounds.Min.X-speed >= 0 {
		p.Bounds = p.Bounds.Add(image.Pt(-speed, 0))
	}
	if in.Right && p.Bounds.Min.X+speed <= maxX {
		p.Bounds = p.Bounds.Add(image.Pt(speed, 0))
	}
}

// Shoot fires a single projectile from the top of the ship.
func (p *Player) Shoot() *Projectile {
	c := component.Center(p.Bounds)
	return p.f.NewProjectile(component.OwnerPlayer, p.f.cfg.PlayerDamage, c.X, c.Y-config.ProjectileSpawnDY)
}

func (p *Player) TakeDamage(amount int) {
	p.Health.TakeDamage(amount)
}

func (p *Player) Alive() bool {
	return !p.Health.Depleted()
}

func (p *Player) Rect() image.Rectangle {
	return p.Bounds
}

// Reset puts the ship back on its spawn point at full health.
func (p *Player) Reset() {
	p.Health.Reset()
	p.Bounds = p.f.playerSpawn()
}

func (p *Player) Sprite() component.Sprite {
	return component.Sprite{ID: component.SpritePlayer, Bounds: p.Bounds}
}
