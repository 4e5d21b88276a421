// internal/system/player_system.go
package system

import (
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/event"
)

// PlayerSystem ведёт статистику игрока за сессию: убийства, попадания, рекорд.
// Nothing is persisted; the record lives as long as the process.
type PlayerSystem struct {
	Kills         map[defs.Rarity]int
	Intercepts    int
	HitsTaken     int
	DamageTaken   int
	Waves         int
	GamesFinished int
	Best          int
}

func NewPlayerSystem(eventDispatcher *event.Dispatcher) *PlayerSystem {
	ps := &PlayerSystem{Kills: make(map[defs.Rarity]int, len(defs.Rarities()))}
	eventDispatcher.Subscribe(ps,
		event.EnemyDestroyed,
		event.PlayerHit,
		event.ProjectilesIntercepted,
		event.WaveStarted,
		event.GameOver,
	)
	return ps
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		if d, ok := e.Data.(event.EnemyDestroyedData); ok {
			s.Kills[d.Rarity]++
		}
	case event.PlayerHit:
		if d, ok := e.Data.(event.PlayerHitData); ok {
			s.HitsTaken++
			s.DamageTaken += d.Damage
		}
	case event.ProjectilesIntercepted:
		s.Intercepts++
	case event.WaveStarted:
		s.Waves++
	case event.GameOver:
		s.GamesFinished++
		if d, ok := e.Data.(event.GameOverData); ok {
			s.Observe(d.Score)
		}
	}
}

// Observe raises the best score to score if it is higher.
func (s *PlayerSystem) Observe(score int) {
	if score > s.Best {
		s.Best = score
	}
}

// TotalKills sums kills over all rarities.
func (s *PlayerSystem) TotalKills() int {
	n := 0
	for _, k := range s.Kills {
		n += k
	}
	return n
}
