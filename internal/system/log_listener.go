// internal/system/log_listener.go
package system

import (
	"log"

	"go-space-invaders/internal/event"
)

// LogListener пишет доменные события в лог. Подключается при verbose.
type LogListener struct {
	logger *log.Logger
}

// NewLogListener subscribes a listener for every event type. A nil logger means the standard logger.
func NewLogListener(logger *log.Logger, eventDispatcher *event.Dispatcher) *LogListener {
	if logger == nil {
		logger = log.Default()
	}
	l := &LogListener{logger: logger}
	eventDispatcher.Subscribe(l, event.All...)
	return l
}

func (l *LogListener) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.WaveStartedData:
		l.logger.Printf("wave %d started with %d enemies", d.Level, d.Enemies)
	case event.EnemyDestroyedData:
		l.logger.Printf("%s enemy destroyed (+%d)", d.Rarity, d.Points)
	case event.PlayerHitData:
		l.logger.Printf("player hit for %d, health %d", d.Damage, d.Health)
	case event.GameOverData:
		l.logger.Printf("game over: score %d, level %d, tick %d", d.Score, d.Level, d.Tick)
	default:
		l.logger.Println(e.Type)
	}
}
