// pkg/render/color.go
package render

import "image/color"

// Palette holds the colors the playfield and HUD are drawn with.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	GameOver   color.RGBA
	Health     color.RGBA
	Level      color.RGBA
	Overlay    color.RGBA
	// Fallback fills a sprite whose image is missing.
	Fallback color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// HealthColor fades from the healthy color towards red as health drops.
func HealthColor(healthy color.RGBA, health, maxHealth int) color.RGBA {
	if maxHealth <= 0 || health >= maxHealth {
		return healthy
	}
	if health < 0 {
		health = 0
	}
	f := float64(health) / float64(maxHealth)
	return color.RGBA{
		R: uint8(255 - float64(255-int(healthy.R))*f),
		G: uint8(float64(healthy.G) * f),
		B: uint8(float64(healthy.B) * f),
		A: healthy.A,
	}
}
