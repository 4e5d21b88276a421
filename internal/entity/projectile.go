// internal/entity/projectile.go
package entity

import (
	"image"

	"go-space-invaders/internal/component"
)

// Target is anything a projectile can hit.
type Target interface {
	Rect() image.Rectangle
	Alive() bool
	TakeDamage(amount int)
}

// Hit reports the outcome of one collision check.
type Hit struct {
	Collided    bool
	Intercepted bool // both projectiles were destroyed, nothing took damage
	Killed      bool
	Score       int
}

// Projectile travels straight up (player) or down (enemy) until it leaves
// the screen or hits something.
type Projectile struct {
	ID     EntityID
	Owner  component.Owner
	Damage int
	Bounds image.Rectangle
	speed  int
	floor  int
	dead   bool
}

// Move advances the projectile and destroys it once its top edge leaves the screen.
func (p *Projectile) Move() {
	if p.dead {
		return
	}
	p.Bounds = p.Bounds.Add(image.Pt(0, p.Owner.Direction()*p.speed))
	if p.Bounds.Min.Y < 0 || p.Bounds.Min.Y > p.floor {
		p.Destroy()
	}
}

// CheckCollision tests p against target and applies the result.
// Dead participants and same-side projectiles never collide.
func (p *Projectile) CheckCollision(target Target) Hit {
	if p.dead || target == nil || !target.Alive() {
		return Hit{}
	}
	if !p.Bounds.Overlaps(target.Rect()) {
		return Hit{}
	}

	var hit Hit
	switch t := target.(type) {
	case *Projectile:
		if !p.Owner.Opposes(t.Owner) {
			return Hit{}
		}
		t.Destroy()
		hit.Intercepted = true
	default:
		target.TakeDamage(p.Damage)
		if e, ok := target.(*Enemy); ok && !e.Alive() {
			hit.Killed = true
			hit.Score = e.Points()
		}
	}
	p.Destroy()
	hit.Collided = true
	return hit
}

// TakeDamage destroys a projectile outright; projectiles have no health.
func (p *Projectile) TakeDamage(int) {
	p.Destroy()
}

func (p *Projectile) Destroy() {
	p.dead = true
}

func (p *Projectile) Alive() bool {
	return !p.dead
}

func (p *Projectile) Rect() image.Rectangle {
	return p.Bounds
}

func (p *Projectile) Sprite() component.Sprite {
	id := component.SpriteEnemyProjectile
	if p.Owner == component.OwnerPlayer {
		id = component.SpritePlayerProjectile
	}
	return component.Sprite{ID: id, Bounds: p.Bounds}
}
