// internal/state/resources.go
package state

import (
	"fmt"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/render"
)

// Resources are shared by every screen state.
type Resources struct {
	Settings *config.Settings
	Sprites  *render.SpriteRenderer
	Text     *render.TextRenderer
	Palette  render.Palette
}

// LoadResources decodes sprites (built-in or from settings.AssetsDir) and fonts.
func LoadResources(cfg *config.Settings) (*Resources, error) {
	lib, err := assets.Load(cfg.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}
	fonts, err := assets.LoadFonts()
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}
	palette := render.Palette{
		Background: config.BackgroundColor,
		Text:       config.TextLightColor,
		GameOver:   config.GameOverColor,
		Health:     config.HealthyColor,
		Level:      config.LevelColor,
		Overlay:    config.PauseOverlay,
		Fallback:   config.ButtonColor,
	}
	return &Resources{
		Settings: cfg,
		Sprites:  render.NewSpriteRenderer(lib, palette),
		Text:     render.NewTextRenderer(fonts.HUD, fonts.Title),
		Palette:  palette,
	}, nil
}
