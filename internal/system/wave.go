// internal/system/wave.go
package system

import (
	"fmt"

	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
)

// WaveSystem заполняет мир врагами по фиксированной раскладке.
type WaveSystem struct {
	factory         *entity.Factory
	layout          defs.WaveLayout
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(factory *entity.Factory, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		factory:         factory,
		layout:          factory.Settings().Wave,
		eventDispatcher: eventDispatcher,
	}
}

// Generate spawns one wave into world. The layout does not depend on level;
// level is only reported in the WaveStarted event.
func (s *WaveSystem) Generate(world *entity.World, level int) (int, error) {
	slots := s.layout.Slots()
	spawned := make([]*entity.Enemy, 0, len(slots))
	for _, slot := range slots {
		e, err := s.factory.NewEnemy(slot.Rarity, slot.X, slot.Y)
		if err != nil {
			return 0, fmt.Errorf("generate wave %d: %w", level, err)
		}
		spawned = append(spawned, e)
	}
	// Всё или ничего: мир меняется только после успешного создания всей волны.
	for _, e := range spawned {
		world.AddEnemy(e)
	}
	s.eventDispatcher.Emit(event.WaveStarted, event.WaveStartedData{Level: level, Enemies: len(spawned)})
	return len(spawned), nil
}

// Size is the number of enemies every wave spawns.
func (s *WaveSystem) Size() int {
	return s.layout.Size()
}
