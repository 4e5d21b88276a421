// internal/assets/fonts.go
package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-space-invaders/internal/config"
)

// Fonts are the faces the HUD and the game-over screen are drawn with.
type Fonts struct {
	HUD   font.Face
	Title font.Face
}

// LoadFonts parses the bundled Go Regular font at the HUD and title sizes.
func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	hud, err := newFace(tt, config.HUDFontSize)
	if err != nil {
		return nil, err
	}
	title, err := newFace(tt, config.TitleFontSize)
	if err != nil {
		return nil, err
	}
	return &Fonts{HUD: hud, Title: title}, nil
}

func newFace(tt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %.0fpt: %w", size, err)
	}
	return face, nil
}
