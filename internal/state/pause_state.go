// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-invaders/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру: тики не идут, картинка предыдущего состояния остаётся.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	res := s.previousState.res
	w, h := res.Settings.ScreenWidth, res.Settings.ScreenHeight
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), res.Palette.Overlay, false)
	render.DrawCentered(screen, "PAUSED", res.Text.HUD, float64(w)/2, float64(h)/2, res.Palette.Text)
}

func (s *PauseState) Exit() {}
