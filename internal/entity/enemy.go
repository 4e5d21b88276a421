// internal/entity/enemy.go
package entity

import (
	"image"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
)

const spread = config.ProjectileSpawnDY

// volleys holds the spawn offsets of each rarity's shots, relative to the enemy's centre.
var volleys = map[defs.Rarity][]image.Point{
	defs.Common:    {{0, -spread}},
	defs.Rare:      {{0, -spread}, {0, spread}},
	defs.UltraRare: {{-spread, -spread}, {0, -spread}, {spread, -spread}},
}

// Enemy is a hostile ship. Kind is fixed at construction and selects which
// of the motion components is set and which volley it fires.
type Enemy struct {
	ID     EntityID
	Kind   defs.Rarity
	Bounds image.Rectangle
	Health component.Health

	Oscillation *component.Oscillation // Common
	Patrol      *component.Patrol      // Rare
	Drift       *component.Drift       // UltraRare

	def defs.EnemyDefinition
	f   *Factory
}

// Move advances the enemy one tick along its pattern. Only the drift pattern uses rng.
func (e *Enemy) Move(rng Rand) {
	if !e.Alive() {
		return
	}
	switch e.Kind {
	case defs.Common:
		e.Bounds = e.Bounds.Add(image.Pt(0, oscillate(e.Oscillation)))
	case defs.Rare:
		e.Bounds = e.Bounds.Add(image.Pt(patrol(e.Patrol), 0))
	case defs.UltraRare:
		e.Bounds = drift(e.Drift, e.Bounds, e.f.cfg.ScreenWidth, rng)
	}
}

// Shoot returns this enemy's volley. Dead enemies do not fire.
func (e *Enemy) Shoot() []*Projectile {
	if !e.Alive() {
		return nil
	}
	c := component.Center(e.Bounds)
	offsets := volleys[e.Kind]
	shots := make([]*Projectile, 0, len(offsets))
	for _, off := range offsets {
		shots = append(shots, e.f.NewProjectile(component.OwnerEnemy, e.def.ProjectileDamage, c.X+off.X, c.Y+off.Y))
	}
	return shots
}

func (e *Enemy) TakeDamage(amount int) {
	e.Health.TakeDamage(amount)
}

func (e *Enemy) Alive() bool {
	return !e.Health.Depleted()
}

func (e *Enemy) Rect() image.Rectangle {
	return e.Bounds
}

// Points is the score awarded for destroying this enemy.
func (e *Enemy) Points() int {
	return e.def.Points
}

func (e *Enemy) Sprite() component.Sprite {
	id := component.SpriteCommonEnemy
	switch e.Kind {
	case defs.Rare:
		id = component.SpriteRareEnemy
	case defs.UltraRare:
		id = component.SpriteUltraRareEnemy
	}
	return component.Sprite{ID: id, Bounds: e.Bounds}
}

// oscillate returns the vertical step and flips direction at 0 and at the band edge.
func oscillate(o *component.Oscillation) int {
	if o == nil {
		return 0
	}
	var dy int
	if o.Up {
		dy = -min(o.Speed, o.Offset)
	} else {
		dy = min(o.Speed, o.Band-o.Offset)
	}
	o.Offset += dy
	if o.Offset <= 0 || o.Offset >= o.Band {
		o.Up = !o.Up
	}
	return dy
}

// patrol returns the horizontal step. The tick that reaches a bound only turns around.
func patrol(p *component.Patrol) int {
	if p == nil {
		return 0
	}
	if p.Leftward {
		if p.Offset > 0 {
			dx := min(p.Speed, p.Offset)
			p.Offset -= dx
			return -dx
		}
		p.Leftward = false
		return 0
	}
	if p.Offset < p.Max {
		dx := min(p.Speed, p.Max-p.Offset)
		p.Offset += dx
		return dx
	}
	p.Leftward = true
	return 0
}

// drift moves r by a random step and reverses at the screen edges.
func drift(d *component.Drift, r image.Rectangle, screenWidth int, rng Rand) image.Rectangle {
	if d == nil || rng == nil {
		return r
	}
	step := rng.IntRange(0, d.MaxStep)
	if d.Leftward {
		step = -step
	}
	r = r.Add(image.Pt(step, 0))
	if r.Max.X > screenWidth {
		r = r.Add(image.Pt(screenWidth-r.Max.X, 0))
	}
	if r.Min.X < 0 {
		r = r.Add(image.Pt(-r.Min.X, 0))
	}
	if r.Max.X >= screenWidth {
		d.Leftward = true
	} else if r.Min.X <= 0 {
		d.Leftward = false
	}
	return r
}
