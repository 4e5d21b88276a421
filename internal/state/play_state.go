// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/ui"
	"go-space-invaders/pkg/render"
)

const helpLine = "A/D or arrows: move   SPACE: fire   P: pause   ESC: quit"

// Убеждаемся, что PlayState соответствует интерфейсу State
var _ State = (*PlayState)(nil)

// PlayState основное игровое состояние
type PlayState struct {
	sm   *StateMachine
	game interfaces.GameContext
	res  *Resources
	hud  *ui.HUD
}

func NewPlayState(sm *StateMachine, game interfaces.GameContext, res *Resources) *PlayState {
	return &PlayState{
		sm:   sm,
		game: game,
		res:  res,
		hud:  ui.NewHUD(res.Settings.ScreenWidth, res.Settings.ScreenHeight),
	}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return nil
	}
	if err := s.game.Update(PollInput()); err != nil {
		return err
	}
	if s.game.HUD().Phase == component.GameOver {
		s.sm.SetState(NewGameOverState(s.sm, s))
	}
	return nil
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(s.res.Palette.Background)
	s.res.Sprites.Draw(screen, s.game.Sprites())
	s.hud.Draw(screen, s.res.Text, s.game.HUD())
	w, h := s.res.Settings.ScreenWidth, s.res.Settings.ScreenHeight
	render.DrawCentered(screen, helpLine, s.res.Text.Small, float64(w)/2, float64(h-12), render.DarkenColor(s.res.Palette.Text))
}

func (s *PlayState) Exit() {}
