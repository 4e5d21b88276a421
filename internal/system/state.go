// internal/system/state.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/event"
)

// StateSystem хранит фазу игры и объявляет переходы.
type StateSystem struct {
	phase           component.Phase
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		phase:           component.Playing,
		eventDispatcher: eventDispatcher,
	}
}

// SwitchToGameOver ends the session. Calling it twice reports the game over only once.
func (s *StateSystem) SwitchToGameOver(data event.GameOverData) {
	if s.phase == component.GameOver {
		return
	}
	s.phase = component.GameOver
	s.eventDispatcher.Emit(event.GameOver, data)
}

func (s *StateSystem) SwitchToPlaying() {
	s.phase = component.Playing
	s.eventDispatcher.Emit(event.GameRestarted, nil)
}

func (s *StateSystem) Current() component.Phase {
	return s.phase
}
