// cmd/game/main.go
package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
	width        int
	height       int
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	cfg, err := config.FromEnvironment()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	game, err := app.NewGame(cfg, nil)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("rng seed %d", game.Seed())
	res, err := state.LoadResources(cfg)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewPlayState(sm, game, res))
	a := &AppGame{
		stateMachine: sm,
		width:        cfg.ScreenWidth,
		height:       cfg.ScreenHeight,
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetTPS(cfg.TicksPerSecond)
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("session over: best score %d", game.PlayerSystem.Best)
}
