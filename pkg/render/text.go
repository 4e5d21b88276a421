// pkg/render/text.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
)

// TextRenderer draws the HUD and the game-over texts.
type TextRenderer struct {
	HUD   text.Face
	Title text.Face
	Small text.Face // bitmap font for the help line
}

// NewTextRenderer wraps the given faces; Small is always the bundled bitmap font.
func NewTextRenderer(hud, title font.Face) *TextRenderer {
	return &TextRenderer{
		HUD:   text.NewGoXFace(hud),
		Title: text.NewGoXFace(title),
		Small: text.NewGoXFace(bitmapfont.Face),
	}
}

// DrawCentered draws s with its center at (x, y).
func DrawCentered(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	drawAligned(screen, s, face, x, y, text.AlignCenter, clr)
}

// DrawLeft draws s starting at x, vertically centered on y.
func DrawLeft(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	drawAligned(screen, s, face, x, y, text.AlignStart, clr)
}

// DrawRight draws s ending at x, vertically centered on y.
func DrawRight(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	drawAligned(screen, s, face, x, y, text.AlignEnd, clr)
}

func drawAligned(screen *ebiten.Image, s string, face text.Face, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
