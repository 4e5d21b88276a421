package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, got)
}

func TestHealthColor(t *testing.T) {
	green := color.RGBA{0, 255, 0, 255}
	assert.Equal(t, green, HealthColor(green, 16, 16))
	assert.Equal(t, green, HealthColor(green, 5, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, HealthColor(green, 0, 16))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, HealthColor(green, -3, 16))

	half := HealthColor(green, 8, 16)
	assert.Equal(t, uint8(127), half.R)
	assert.Equal(t, uint8(127), half.G)
}
