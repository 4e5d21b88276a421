package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-invaders/internal/component"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadBuiltins(t *testing.T) {
	lib, err := Load("")
	require.NoError(t, err)

	want := map[component.SpriteID]image.Point{
		component.SpritePlayer:           {60, 48},
		component.SpritePlayerProjectile: {6, 18},
		component.SpriteEnemyProjectile:  {6, 18},
		component.SpriteCommonEnemy:      {40, 30},
		component.SpriteRareEnemy:        {40, 30},
		component.SpriteUltraRareEnemy:   {64, 40},
		component.SpriteButton:           {240, 64},
	}
	for id, size := range want {
		img := lib.Image(id)
		require.NotNil(t, img, id.String())
		assert.Equal(t, size, img.Bounds().Size(), id.String())
	}
	assert.Nil(t, lib.Image(component.SpriteID(-1)))
	assert.Nil(t, lib.Image(component.SpriteID(component.SpriteCount)))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "spaceship.png", FileName(component.SpritePlayer))
	assert.Equal(t, "ultra_rare_enemy.png", FileName(component.SpriteUltraRareEnemy))
	assert.Equal(t, "button.png", FileName(component.SpriteButton))
}

func TestOverrideReplacesOnlyPresentFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rare_enemy.png"), encodePNG(t, 8, 4), 0o644))

	lib, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(8, 4), lib.Image(component.SpriteRareEnemy).Bounds().Size())
	assert.Equal(t, image.Pt(40, 30), lib.Image(component.SpriteCommonEnemy).Bounds().Size())
}

func TestCorruptAssetIsAnError(t *testing.T) {
	builtin := fstest.MapFS{}
	for i := 0; i < component.SpriteCount; i++ {
		builtin[FileName(component.SpriteID(i))] = &fstest.MapFile{Data: encodePNG(t, 2, 2)}
	}
	_, err := load(builtin, nil)
	require.NoError(t, err)

	override := fstest.MapFS{"button.png": &fstest.MapFile{Data: []byte("not a png")}}
	_, err = load(builtin, override)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "button")

	delete(builtin, "spaceship.png")
	_, err = load(builtin, nil)
	assert.Error(t, err, "a missing built-in is fatal")
}

func TestLoadRejectsBadDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.png")
	require.NoError(t, os.WriteFile(file, encodePNG(t, 1, 1), 0o644))
	_, err = Load(file)
	assert.Error(t, err)
}

func TestLoadFonts(t *testing.T) {
	fonts, err := LoadFonts()
	require.NoError(t, err)
	hud := fonts.HUD.Metrics().Height.Ceil()
	title := fonts.Title.Metrics().Height.Ceil()
	assert.Greater(t, hud, 0)
	assert.Greater(t, title, hud)
}
