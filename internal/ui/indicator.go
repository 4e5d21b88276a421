// internal/ui/indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/utils"
	"go-space-invaders/pkg/render"
)

// ScoreIndicator рисует счёт в левом нижнем углу.
type ScoreIndicator struct {
	X, Y  float64
	Color color.RGBA
}

func NewScoreIndicator(screenHeight int) *ScoreIndicator {
	return &ScoreIndicator{
		X:     config.HUDMargin,
		Y:     float64(screenHeight - config.HUDMargin),
		Color: config.TextLightColor,
	}
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image, faces *render.TextRenderer, score int) {
	render.DrawLeft(screen, strconv.Itoa(score), faces.HUD, i.X, i.Y, i.Color)
}

// PlayerHealthIndicator отображает здоровье игрока в правом нижнем углу.
// The number fades from green to red as health drops.
type PlayerHealthIndicator struct {
	X, Y  float64
	Color color.RGBA
}

func NewPlayerHealthIndicator(screenWidth, screenHeight int) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		X:     float64(screenWidth - config.HUDMargin),
		Y:     float64(screenHeight - config.HUDMargin),
		Color: config.HealthyColor,
	}
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, faces *render.TextRenderer, health, maxHealth int) {
	clr := render.HealthColor(i.Color, health, maxHealth)
	render.DrawRight(screen, strconv.Itoa(health), faces.HUD, i.X, i.Y, clr)
}

// LevelIndicator отображает номер уровня римскими цифрами сверху по центру.
type LevelIndicator struct {
	X, Y         float64
	Color        color.RGBA
	OutlineColor color.RGBA
}

func NewLevelIndicator(screenWidth int) *LevelIndicator {
	return &LevelIndicator{
		X:            float64(screenWidth) / 2,
		Y:            config.HUDMargin,
		Color:        config.LevelColor,
		OutlineColor: render.DarkenColor(config.TextLightColor),
	}
}

func (i *LevelIndicator) Draw(screen *ebiten.Image, faces *render.TextRenderer, level int) {
	if level <= 0 {
		return
	}
	text := utils.ToRoman(level)
	// Рисуем обводку
	for _, d := range [][2]float64{{-2, 0}, {2, 0}, {0, -2}, {0, 2}} {
		render.DrawCentered(screen, text, faces.HUD, i.X+d[0], i.Y+d[1], i.OutlineColor)
	}
	render.DrawCentered(screen, text, faces.HUD, i.X, i.Y, i.Color)
}

// HUD groups the in-game indicators.
type HUD struct {
	Score  *ScoreIndicator
	Health *PlayerHealthIndicator
	Level  *LevelIndicator
}

func NewHUD(screenWidth, screenHeight int) *HUD {
	return &HUD{
		Score:  NewScoreIndicator(screenHeight),
		Health: NewPlayerHealthIndicator(screenWidth, screenHeight),
		Level:  NewLevelIndicator(screenWidth),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, faces *render.TextRenderer, s interfaces.HUD) {
	h.Score.Draw(screen, faces, s.Score)
	h.Health.Draw(screen, faces, s.Health, s.MaxHealth)
	h.Level.Draw(screen, faces, s.Level)
}
