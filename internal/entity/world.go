// internal/entity/world.go
package entity

import "go-space-invaders/internal/component"

// EntityID identifies an entity for the lifetime of a game session.
type EntityID int

// World owns every live entity of a session. Collections keep insertion order;
// dead members are skipped by the systems and compacted by Sweep.
type World struct {
	NextID      EntityID
	Player      *Player
	Enemies     []*Enemy
	Projectiles []*Projectile
}

func NewWorld() *World {
	return &World{
		NextID:      1,
		Enemies:     make([]*Enemy, 0, 128),
		Projectiles: make([]*Projectile, 0, 64),
	}
}

func (w *World) NewEntity() EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// SetPlayer installs p as the session's player.
func (w *World) SetPlayer(p *Player) {
	if p != nil && p.ID == 0 {
		p.ID = w.NewEntity()
	}
	w.Player = p
}

// AddEnemy registers e and assigns it an ID.
func (w *World) AddEnemy(e *Enemy) {
	if e == nil {
		return
	}
	e.ID = w.NewEntity()
	w.Enemies = append(w.Enemies, e)
}

// AddProjectiles registers every non-nil projectile.
func (w *World) AddProjectiles(ps ...*Projectile) {
	for _, p := range ps {
		if p == nil {
			continue
		}
		p.ID = w.NewEntity()
		w.Projectiles = append(w.Projectiles, p)
	}
}

// Sweep drops dead enemies and projectiles. It returns how many were removed.
func (w *World) Sweep() int {
	removed := 0
	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Alive() {
			enemies = append(enemies, e)
		} else {
			removed++
		}
	}
	clear(w.Enemies[len(enemies):])
	w.Enemies = enemies

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Alive() {
			projectiles = append(projectiles, p)
		} else {
			removed++
		}
	}
	clear(w.Projectiles[len(projectiles):])
	w.Projectiles = projectiles
	return removed
}

// Clear removes every enemy and projectile and restarts ID allocation.
// The player is kept but gets a fresh ID.
func (w *World) Clear() {
	clear(w.Enemies)
	clear(w.Projectiles)
	w.Enemies = w.Enemies[:0]
	w.Projectiles = w.Projectiles[:0]
	w.NextID = 1
	if w.Player != nil {
		w.Player.ID = w.NewEntity()
	}
}

// PlayerHealth returns the player's health, or false when there is no player.
func (w *World) PlayerHealth() (int, bool) {
	if w.Player == nil {
		return 0, false
	}
	return w.Player.Health.Value, true
}

// LiveEnemies counts enemies that have not been destroyed yet.
func (w *World) LiveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Sprites returns the frame's draw list: player, projectiles, then enemies.
func (w *World) Sprites() []component.Sprite {
	out := make([]component.Sprite, 0, 1+len(w.Projectiles)+len(w.Enemies))
	if w.Player != nil {
		out = append(out, w.Player.Sprite())
	}
	for _, p := range w.Projectiles {
		if p.Alive() {
			out = append(out, p.Sprite())
		}
	}
	for _, e := range w.Enemies {
		if e.Alive() {
			out = append(out, e.Sprite())
		}
	}
	return out
}
