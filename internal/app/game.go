// internal/app/game.go
package app

import (
	"fmt"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/utils"
)

// Game holds the main game state and logic.
type Game struct {
	Settings         *config.Settings
	World            *entity.World
	Factory          *entity.Factory
	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	MovementSystem   *system.MovementSystem
	StateSystem      *system.StateSystem
	PlayerSystem     *system.PlayerSystem
	EventDispatcher  *event.Dispatcher
	Rng              entity.Rand

	score int
	level int
	tick  int
}

var _ interfaces.GameContext = (*Game)(nil)

// NewGame validates cfg and builds a game in the Playing phase with no wave yet;
// the first Update spawns wave 1. A nil rng means a PRNGService seeded from cfg.Seed.
func NewGame(cfg *config.Settings, rng entity.Rand) (*Game, error) {
	if cfg == nil {
		return nil, fmt.Errorf("new game: %w: nil settings", config.ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	factory, err := entity.NewFactory(cfg)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if rng == nil {
		rng = utils.NewPRNGService(cfg.Seed)
	}

	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Settings:         cfg,
		World:            entity.NewWorld(),
		Factory:          factory,
		WaveSystem:       system.NewWaveSystem(factory, eventDispatcher),
		CombatSystem:     system.NewCombatSystem(eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(cfg, rng),
		MovementSystem:   system.NewMovementSystem(rng),
		StateSystem:      system.NewStateSystem(eventDispatcher),
		PlayerSystem:     system.NewPlayerSystem(eventDispatcher),
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
	}
	if cfg.Verbose {
		system.NewLogListener(nil, eventDispatcher)
	}
	g.World.SetPlayer(factory.NewPlayer())
	return g, nil
}

// Update advances the game by one tick.
func (g *Game) Update(in component.Input) error {
	if g.StateSystem.Current() == component.GameOver {
		if in.Restart {
			g.Restart()
		}
		return nil
	}

	// Проверка смерти до любых движений: в этот тик ничего не обновляется.
	if health, ok := g.World.PlayerHealth(); ok && health <= 0 {
		g.StateSystem.SwitchToGameOver(event.GameOverData{Score: g.score, Level: g.level, Tick: g.tick})
		return nil
	}

	if g.World.LiveEnemies() == 0 {
		g.level++
		if _, err := g.WaveSystem.Generate(g.World, g.level); err != nil {
			return err
		}
	}

	g.score += g.CombatSystem.Resolve(g.World)
	g.World.Sweep()

	g.ProjectileSystem.PlayerFire(g.World, g.tick, in)
	g.ProjectileSystem.EnemyFire(g.World, g.tick, g.level)
	g.MovementSystem.Update(g.World, in)
	g.World.Sweep()

	g.tick++
	return nil
}

// Restart starts a fresh game: score, level and tick go back to 0, every
// enemy and projectile is removed and the player respawns at full health.
// The session record in PlayerSystem is kept.
func (g *Game) Restart() {
	g.score = 0
	g.level = 0
	g.tick = 0
	g.World.Clear()
	if g.World.Player == nil {
		g.World.SetPlayer(g.Factory.NewPlayer())
	} else {
		g.World.Player.Reset()
	}
	g.StateSystem.SwitchToPlaying()
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Level() int {
	return g.level
}

func (g *Game) Tick() int {
	return g.tick
}

// Seed reports the seed of the game's PRNGService, or 0 for an injected rng
// of another kind. Logging it lets a session be replayed with INVADERS_SEED.
func (g *Game) Seed() int64 {
	if p, ok := g.Rng.(*utils.PRNGService); ok {
		return p.Seed()
	}
	return 0
}

func (g *Game) Phase() component.Phase {
	return g.StateSystem.Current()
}

// PlayerHealth returns the player's health, or false when there is no player.
func (g *Game) PlayerHealth() (int, bool) {
	return g.World.PlayerHealth()
}

// Sprites returns the current draw list.
func (g *Game) Sprites() []component.Sprite {
	return g.World.Sprites()
}

// HUD returns a snapshot for the front ends.
func (g *Game) HUD() interfaces.HUD {
	hud := interfaces.HUD{
		Score: g.score,
		Level: g.level,
		Phase: g.StateSystem.Current(),
		Best:  max(g.PlayerSystem.Best, g.score),
	}
	if p := g.World.Player; p != nil {
		hud.Health = p.Health.Value
		hud.MaxHealth = p.Health.Max
	}
	return hud
}
