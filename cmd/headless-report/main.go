package main

import (
	"flag"
	"fmt"
	"log"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/utils"
)

// dodgeWindow is how far above the ship an enemy shot is considered a threat.
const dodgeWindow = 120

type runStats struct {
	runIndex int
	seed     int64

	score      int
	level      int
	ticks      int
	gameOver   bool
	kills      map[defs.Rarity]int
	totalKills int
	waves      int
	waveSize   int
	hitsTaken  int
	damage     int
	intercepts int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 9000, "max ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	cfg, err := config.FromEnvironment()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Verbose = false

	fmt.Printf("=== Headless Invaders Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, err := runAutopilot(cfg, i+1, seed, ticks)
		if err != nil {
			log.Fatalf("run %d: %v", i+1, err)
		}
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

func runAutopilot(base *config.Settings, runIndex int, seed int64, ticks int) (runStats, error) {
	cfg := *base
	cfg.Seed = seed
	g, err := app.NewGame(&cfg, utils.NewPRNGService(seed))
	if err != nil {
		return runStats{}, err
	}
	for i := 0; i < ticks && g.Phase() == component.Playing; i++ {
		if err := g.Update(decide(g.World, cfg.ScreenWidth)); err != nil {
			return runStats{}, err
		}
	}
	// A lethal hit on the last tick is only noticed by the next Update.
	health, _ := g.PlayerHealth()

	ps := g.PlayerSystem
	kills := make(map[defs.Rarity]int, len(ps.Kills))
	for r, n := range ps.Kills {
		kills[r] = n
	}
	return runStats{
		runIndex:   runIndex,
		seed:       seed,
		score:      g.Score(),
		level:      g.Level(),
		ticks:      g.Tick(),
		gameOver:   ps.GamesFinished > 0 || health <= 0,
		kills:      kills,
		totalKills: ps.TotalKills(),
		waves:      ps.Waves,
		waveSize:   g.WaveSystem.Size(),
		hitsTaken:  ps.HitsTaken,
		damage:     ps.DamageTaken,
		intercepts: ps.Intercepts,
	}, nil
}

// decide steers the ship: dodge the nearest threatening enemy shot, otherwise
// line up under the closest live enemy. It always holds fire.
func decide(w *entity.World, screenWidth int) component.Input {
	in := component.Input{Fire: true}
	if w.Player == nil {
		return in
	}
	ship := w.Player.Bounds
	cx := component.Center(ship).X

	if threat := incoming(w); threat != nil {
		tx := component.Center(threat.Bounds).X
		// Уходим в сторону, где больше места.
		if tx > cx || (tx == cx && cx > screenWidth/2) {
			in.Left = true
		} else {
			in.Right = true
		}
		return in
	}

	target, best, found := 0, 0, false
	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		x := component.Center(e.Bounds).X
		if d := utils.Abs(x - cx); !found || d < best {
			target, best, found = x, d, true
		}
	}
	if !found {
		return in
	}
	switch {
	case target < cx-ship.Dx()/4:
		in.Left = true
	case target > cx+ship.Dx()/4:
		in.Right = true
	}
	return in
}

// incoming returns the lowest enemy shot that is above the ship, within
// dodgeWindow and horizontally overlapping it.
func incoming(w *entity.World) *entity.Projectile {
	ship := w.Player.Bounds
	var threat *entity.Projectile
	for _, p := range w.Projectiles {
		if !p.Alive() || p.Owner != component.OwnerEnemy {
			continue
		}
		b := p.Bounds
		if b.Max.X <= ship.Min.X || b.Min.X >= ship.Max.X {
			continue
		}
		if b.Max.Y > ship.Min.Y || ship.Min.Y-b.Max.Y > dodgeWindow {
			continue
		}
		if threat == nil || b.Max.Y > threat.Bounds.Max.Y {
			threat = p
		}
	}
	return threat
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome: score=%d level=%d ticks=%d game_over=%t\n", rs.score, rs.level, rs.ticks, rs.gameOver)
	fmt.Printf("waves: started=%d size=%d\n", rs.waves, rs.waveSize)
	fmt.Printf("kills: %s total=%d\n", formatKills(rs.kills), rs.totalKills)
	fmt.Printf("defense: hits_taken=%d damage_taken=%d intercepts=%d\n\n", rs.hitsTaken, rs.damage, rs.intercepts)
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	sumScore, sumLevel, best, deaths := 0, 0, 0, 0
	for _, rs := range all {
		sumScore += rs.score
		sumLevel += rs.level
		best = max(best, rs.score)
		if rs.gameOver {
			deaths++
		}
	}
	n := float64(len(all))
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("mean_score=%.1f best_score=%d mean_level=%.2f deaths=%d/%d\n",
		float64(sumScore)/n, best, float64(sumLevel)/n, deaths, len(all))
}

func formatKills(kills map[defs.Rarity]int) string {
	out := ""
	for i, r := range defs.Rarities() {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%q=%d", r.String(), kills[r])
	}
	return out
}
