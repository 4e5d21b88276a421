package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/utils"
)

type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.got = append(r.got, e) }

func newGame(t *testing.T, tweak func(*config.Settings)) *Game {
	t.Helper()
	cfg := config.Default()
	if tweak != nil {
		tweak(cfg)
	}
	g, err := NewGame(cfg, utils.NewPRNGService(42))
	require.NoError(t, err)
	return g
}

func TestNewGameRejectsBadSettings(t *testing.T) {
	_, err := NewGame(nil, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)

	cfg := config.Default()
	cfg.PlayerHealth = 0
	_, err = NewGame(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewGameDefaultsRng(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 99
	g, err := NewGame(cfg, nil)
	require.NoError(t, err)
	prng, ok := g.Rng.(*utils.PRNGService)
	require.True(t, ok)
	assert.Equal(t, int64(99), prng.Seed())
	assert.Equal(t, int64(99), g.Seed())

	cfg.Seed = 0
	g, err = NewGame(cfg, nil)
	require.NoError(t, err)
	assert.NotZero(t, g.Seed(), "a zero seed is replaced by the clock")
}

func TestFirstTickSpawnsWaveOne(t *testing.T) {
	g := newGame(t, nil)
	assert.Equal(t, 0, g.Level())
	assert.Empty(t, g.World.Enemies)

	require.NoError(t, g.Update(component.Input{}))
	assert.Equal(t, 1, g.Level())
	assert.Len(t, g.World.Enemies, 78)
	assert.Equal(t, 1, g.Tick())
	assert.Equal(t, component.Playing, g.Phase())
}

func TestClearedWaveIsReplenished(t *testing.T) {
	g := newGame(t, nil)
	require.NoError(t, g.Update(component.Input{}))

	for _, e := range g.World.Enemies {
		e.TakeDamage(1000)
	}
	require.NoError(t, g.Update(component.Input{}))
	assert.Equal(t, 2, g.Level(), "level grows by exactly one")
	assert.Equal(t, 78, g.World.LiveEnemies())
	assert.Zero(t, g.Score(), "enemies removed outside a collision award nothing")
}

func TestScoreFromCollisions(t *testing.T) {
	g := newGame(t, func(s *config.Settings) {
		s.EnemyHealth[defs.Common] = 2
	})
	require.NoError(t, g.Update(component.Input{}))

	target := g.World.Enemies[len(g.World.Enemies)-1]
	require.Equal(t, defs.Common, target.Kind)
	shoot := func() {
		c := component.Center(target.Bounds)
		g.World.AddProjectiles(g.Factory.NewProjectile(component.OwnerPlayer, 1, c.X, target.Bounds.Max.Y))
	}

	shoot()
	require.NoError(t, g.Update(component.Input{}))
	assert.Equal(t, 1, target.Health.Value)
	assert.Zero(t, g.Score())

	shoot()
	require.NoError(t, g.Update(component.Input{}))
	assert.Equal(t, 10, g.Score())
	assert.Equal(t, 77, len(g.World.Enemies), "the destroyed enemy is swept")
	assert.Equal(t, 10, g.HUD().Best)
}

func TestGameOverFreezesTheWorld(t *testing.T) {
	g := newGame(t, nil)
	rec := &recorder{}
	g.EventDispatcher.Subscribe(rec, event.GameOver)
	require.NoError(t, g.Update(component.Input{}))

	g.World.Player.TakeDamage(1000)
	before := g.Sprites()
	tick := g.Tick()

	require.NoError(t, g.Update(component.Input{Left: true, Fire: true}))
	assert.Equal(t, component.GameOver, g.Phase())
	assert.Equal(t, tick, g.Tick())
	assert.Equal(t, before, g.Sprites(), "nothing moves on the tick the player dies")
	require.Len(t, rec.got, 1)
	assert.Equal(t, event.GameOverData{Score: 0, Level: 1, Tick: tick}, rec.got[0].Data)

	for i := 0; i < 5; i++ {
		require.NoError(t, g.Update(component.Input{Right: true}))
	}
	assert.Equal(t, before, g.Sprites())
	assert.Len(t, rec.got, 1)
	assert.Equal(t, 1, g.PlayerSystem.GamesFinished)
}

func TestRestartResetsEverything(t *testing.T) {
	g := newGame(t, nil)
	for i := 0; i < 20; i++ {
		require.NoError(t, g.Update(component.Input{Right: true, Fire: true}))
	}
	g.score = 120
	g.World.Player.TakeDamage(1000)
	require.NoError(t, g.Update(component.Input{}))
	require.Equal(t, component.GameOver, g.Phase())

	require.NoError(t, g.Update(component.Input{Restart: true}))
	assert.Equal(t, component.Playing, g.Phase())
	assert.Zero(t, g.Score())
	assert.Zero(t, g.Level())
	assert.Zero(t, g.Tick())
	assert.Empty(t, g.World.Enemies)
	assert.Empty(t, g.World.Projectiles)
	health, ok := g.PlayerHealth()
	require.True(t, ok)
	assert.Equal(t, config.PlayerHealth, health)
	assert.Equal(t, config.PlayerStartY, g.World.Player.Bounds.Max.Y)
	assert.Equal(t, config.PlayerStartX, component.Center(g.World.Player.Bounds).X)

	hud := g.HUD()
	assert.Equal(t, 120, hud.Best, "the session best survives a restart")
	assert.Zero(t, hud.Score)

	require.NoError(t, g.Update(component.Input{}))
	assert.Equal(t, 1, g.Level())
	assert.Len(t, g.World.Enemies, 78)
}

func TestPlayerFiresOnCooldown(t *testing.T) {
	g := newGame(t, nil)
	fire := component.Input{Fire: true}
	seen := map[*entity.Projectile]bool{}
	for i := 0; i < 2*config.PlayerFireCooldown; i++ {
		require.NoError(t, g.Update(fire))
		for _, p := range g.World.Projectiles {
			if p.Owner == component.OwnerPlayer {
				seen[p] = true
			}
		}
	}
	assert.Len(t, seen, 2)
}

func TestSeededGamesAreDeterministic(t *testing.T) {
	a := newGame(t, nil)
	b := newGame(t, nil)
	inputs := []component.Input{{Fire: true}, {Left: true}, {Right: true, Fire: true}, {}}
	for i := 0; i < 300; i++ {
		in := inputs[i%len(inputs)]
		require.NoError(t, a.Update(in))
		require.NoError(t, b.Update(in))
	}
	assert.Equal(t, a.Sprites(), b.Sprites())
	assert.Equal(t, a.HUD(), b.HUD())
}

func TestHUD(t *testing.T) {
	g := newGame(t, nil)
	require.NoError(t, g.Update(component.Input{}))
	hud := g.HUD()
	assert.Equal(t, config.PlayerHealth, hud.Health)
	assert.Equal(t, config.PlayerHealth, hud.MaxHealth)
	assert.Equal(t, 1, hud.Level)
	assert.Equal(t, component.Playing, hud.Phase)
}
