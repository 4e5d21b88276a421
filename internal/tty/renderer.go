// internal/tty/renderer.go
package tty

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/utils"
)

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = [component.SpriteCount]glyph{
	component.SpritePlayer:           {'A', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)},
	component.SpritePlayerProjectile: {'|', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	component.SpriteEnemyProjectile:  {'!', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	component.SpriteCommonEnemy:      {'w', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	component.SpriteRareEnemy:        {'W', tcell.StyleDefault.Foreground(tcell.ColorBlue)},
	component.SpriteUltraRareEnemy:   {'@', tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)},
	component.SpriteButton:           {'#', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
}

// Renderer draws a frame of the game onto a terminal.
type Renderer struct {
	canvas Canvas
	worldW int
	worldH int
}

func NewRenderer(canvas Canvas, worldW, worldH int) *Renderer {
	return &Renderer{canvas: canvas, worldW: worldW, worldH: worldH}
}

// Draw clears the canvas, draws every sprite and the status line.
func (r *Renderer) Draw(sprites []component.Sprite, hud interfaces.HUD, paused bool) {
	cols, rows := r.canvas.Size()
	m := NewMapper(cols, rows, r.worldW, r.worldH)

	blank := tcell.StyleDefault
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.canvas.SetContent(x, y, ' ', nil, blank)
		}
	}

	if hud.Phase != component.GameOver {
		for _, s := range sprites {
			if s.ID < 0 || int(s.ID) >= len(glyphs) {
				continue
			}
			g := glyphs[s.ID]
			c0, r0, c1, r1 := m.Cells(s.Bounds)
			for y := r0; y <= r1; y++ {
				for x := c0; x <= c1; x++ {
					r.canvas.SetContent(x, y, g.r, nil, g.style)
				}
			}
		}
	}

	switch {
	case hud.Phase == component.GameOver:
		mid := m.FieldRows() / 2
		r.centered(cols, mid-1, "GAME OVER", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		r.centered(cols, mid, fmt.Sprintf("Final Score: %d", hud.Score), tcell.StyleDefault)
		r.centered(cols, mid+2, "press r to play again, esc to quit", tcell.StyleDefault.Foreground(tcell.ColorYellow))
	case paused:
		r.centered(cols, m.FieldRows()/2, "PAUSED", tcell.StyleDefault.Bold(true))
	}

	status := fmt.Sprintf(" Score %d  Health %d/%d  Level %s  Best %d", hud.Score, hud.Health, hud.MaxHealth, utils.ToRoman(hud.Level), hud.Best)
	r.text(0, rows-1, status, tcell.StyleDefault.Reverse(true), cols)
}

func (r *Renderer) centered(cols, y int, s string, style tcell.Style) {
	x := (cols - len(s)) / 2
	r.text(max(x, 0), y, s, style, cols)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style, cols int) {
	if y < 0 {
		return
	}
	for _, ch := range s {
		if x >= cols {
			return
		}
		r.canvas.SetContent(x, y, ch, nil, style)
		x++
	}
}
