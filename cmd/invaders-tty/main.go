// cmd/invaders-tty/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/tty"
)

func main() {
	cfg, err := config.FromEnvironment()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	// The terminal owns stdout while the game runs.
	cfg.Verbose = false

	game, err := app.NewGame(cfg, nil)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := tty.Run(ctx, screen, game, cfg.TicksPerSecond, cfg.ScreenWidth, cfg.ScreenHeight)
	stop()
	screen.Fini()

	if runErr != nil {
		log.Fatal(runErr)
	}
	log.Printf("final score %d, best %d (seed %d)", game.Score(), game.HUD().Best, game.Seed())
}
