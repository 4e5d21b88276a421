// pkg/render/sprites.go
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-invaders/internal/component"
)

// ImageSource yields the decoded image of a sprite. assets.Library satisfies it.
type ImageSource interface {
	Image(id component.SpriteID) image.Image
}

// SpriteRenderer рисует список спрайтов, масштабируя картинки под их прямоугольники.
type SpriteRenderer struct {
	images   [component.SpriteCount]*ebiten.Image
	fallback Palette
}

func NewSpriteRenderer(src ImageSource, palette Palette) *SpriteRenderer {
	r := &SpriteRenderer{fallback: palette}
	for i := range r.images {
		if img := src.Image(component.SpriteID(i)); img != nil {
			r.images[i] = ebiten.NewImageFromImage(img)
		}
	}
	return r
}

// Draw draws sprites in order, later entries on top.
func (r *SpriteRenderer) Draw(screen *ebiten.Image, sprites []component.Sprite) {
	for _, s := range sprites {
		r.DrawSprite(screen, s.ID, s.Bounds)
	}
}

// DrawSprite stretches the image of id over bounds.
func (r *SpriteRenderer) DrawSprite(screen *ebiten.Image, id component.SpriteID, bounds image.Rectangle) {
	if bounds.Empty() {
		return
	}
	var img *ebiten.Image
	if id >= 0 && int(id) < len(r.images) {
		img = r.images[id]
	}
	if img == nil {
		vector.DrawFilledRect(screen, float32(bounds.Min.X), float32(bounds.Min.Y),
			float32(bounds.Dx()), float32(bounds.Dy()), r.fallback.Fallback, false)
		return
	}
	size := img.Bounds().Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx())/float64(size.X), float64(bounds.Dy())/float64(size.Y))
	op.GeoM.Translate(float64(bounds.Min.X), float64(bounds.Min.Y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}
