// internal/tty/run.go
package tty

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/interfaces"
)

// Run drives game on screen at tps ticks per second until the user quits,
// ctx is cancelled or the game returns an error. The caller owns screen and
// must have initialised it.
func Run(ctx context.Context, screen tcell.Screen, game interfaces.GameContext, tps, worldW, worldH int) error {
	if tps <= 0 {
		tps = 30
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	keys := NewKeyState(DefaultHold)
	renderer := NewRenderer(screen, worldW, worldH)
	paused := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keys.Press(ev) {
				case ActionQuit:
					return nil
				case ActionPause:
					paused = !paused
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			in := keys.Next()
			if !paused {
				if err := game.Update(in); err != nil {
					return err
				}
			}
			renderer.Draw(game.Sprites(), game.HUD(), paused)
			screen.Show()
		}
	}
}
