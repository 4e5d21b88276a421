// internal/assets/images.go
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // регистрирует декодер PNG
	"io/fs"
	"os"

	"go-space-invaders/internal/component"
)

//go:embed images/*.png
var embedded embed.FS

// Library holds one decoded image per sprite.
type Library struct {
	images [component.SpriteCount]image.Image
}

// FileName is the asset file a sprite is loaded from.
func FileName(id component.SpriteID) string {
	if id == component.SpritePlayer {
		return "spaceship.png"
	}
	return id.String() + ".png"
}

// Load decodes every sprite. Files found in dir replace the built-in ones;
// an empty dir means built-ins only. Any decode failure is returned.
func Load(dir string) (*Library, error) {
	builtin, err := fs.Sub(embedded, "images")
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	var override fs.FS
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("assets dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("assets dir %s: not a directory", dir)
		}
		override = os.DirFS(dir)
	}
	return load(builtin, override)
}

func load(builtin, override fs.FS) (*Library, error) {
	lib := &Library{}
	for i := 0; i < component.SpriteCount; i++ {
		id := component.SpriteID(i)
		name := FileName(id)
		img, err := decode(override, name)
		if errors.Is(err, fs.ErrNotExist) {
			img, err = decode(builtin, name)
		}
		if err != nil {
			return nil, fmt.Errorf("load sprite %s: %w", id, err)
		}
		lib.images[id] = img
	}
	return lib, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	if fsys == nil {
		return nil, fs.ErrNotExist
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Image returns the decoded image of id, or nil for an unknown id.
func (l *Library) Image(id component.SpriteID) image.Image {
	if id < 0 || int(id) >= len(l.images) {
		return nil
	}
	return l.images[id]
}
