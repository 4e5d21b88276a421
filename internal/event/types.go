// internal/event/types.go
package event

import "go-space-invaders/internal/defs"

const (
	WaveStarted            EventType = "WaveStarted"    // Новая волна
	EnemyDestroyed         EventType = "EnemyDestroyed" // Враг уничтожен
	PlayerHit              EventType = "PlayerHit"
	ProjectilesIntercepted EventType = "ProjectilesIntercepted"
	GameOver               EventType = "GameOver" // Игрок погиб
	GameRestarted          EventType = "GameRestarted"
)

// All lists every event type, for listeners that want everything.
var All = []EventType{
	WaveStarted,
	EnemyDestroyed,
	PlayerHit,
	ProjectilesIntercepted,
	GameOver,
	GameRestarted,
}

type WaveStartedData struct {
	Level   int
	Enemies int
}

type EnemyDestroyedData struct {
	Rarity defs.Rarity
	Points int
}

type PlayerHitData struct {
	Damage int
	Health int
}

type GameOverData struct {
	Score int
	Level int
	Tick  int
}
