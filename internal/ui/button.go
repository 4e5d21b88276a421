// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-invaders/internal/component"
	"go-space-invaders/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.RGBA
	HoverColor color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string, textColor color.RGBA) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  textColor,
		HoverColor: color.RGBA{255, 255, 255, 48},
	}
}

// Contains reports whether p lies inside the button.
func (b *Button) Contains(p image.Point) bool {
	return p.In(b.Rect)
}

// IsClicked проверяет, был ли в этом кадре клик левой кнопкой по кнопке.
func (b *Button) IsClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return b.Contains(image.Pt(ebiten.CursorPosition()))
}

// Draw отрисовывает кнопку: картинку, подсветку при наведении и подпись.
func (b *Button) Draw(screen *ebiten.Image, sprites *render.SpriteRenderer, faces *render.TextRenderer) {
	sprites.DrawSprite(screen, component.SpriteButton, b.Rect)
	if b.Contains(image.Pt(ebiten.CursorPosition())) {
		vector.DrawFilledRect(screen, float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
			float32(b.Rect.Dx()), float32(b.Rect.Dy()), b.HoverColor, false)
	}
	c := component.Center(b.Rect)
	render.DrawCentered(screen, b.Text, faces.HUD, float64(c.X), float64(c.Y), b.TextColor)
}
