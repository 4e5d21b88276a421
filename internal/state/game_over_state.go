// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/ui"
	"go-space-invaders/pkg/render"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итоговый счёт и кнопку "Play Again".
type GameOverState struct {
	sm     *StateMachine
	play   *PlayState
	button *ui.Button
}

func NewGameOverState(sm *StateMachine, play *PlayState) *GameOverState {
	return &GameOverState{
		sm:     sm,
		play:   play,
		button: ui.NewButton(play.res.Settings.RestartButton(), "Play Again", play.res.Palette.Text),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !s.button.IsClicked() && !inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return nil
	}
	if err := s.play.game.Update(component.Input{Restart: true}); err != nil {
		return err
	}
	s.sm.SetState(s.play)
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	res := s.play.res
	screen.Fill(res.Palette.Background)

	hud := s.play.game.HUD()
	cx := float64(res.Settings.ScreenWidth) / 2
	cy := float64(res.Settings.ScreenHeight) / 2
	render.DrawCentered(screen, "Game Over", res.Text.Title, cx, cy-config.GameOverOffsetY, res.Palette.GameOver)
	render.DrawCentered(screen, fmt.Sprintf("Final Score: %d", hud.Score), res.Text.HUD, cx, cy-config.FinalScoreOffset, res.Palette.Text)
	render.DrawCentered(screen, fmt.Sprintf("Best: %d   Level reached: %d", hud.Best, hud.Level), res.Text.Small, cx, cy+12, render.DarkenColor(res.Palette.Text))

	s.button.Draw(screen, res.Sprites, res.Text)
}

func (s *GameOverState) Exit() {}
