package engine

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ReferenceTextureSize is the edge length wall texture coordinates are expressed in.
const ReferenceTextureSize = 512

var ErrNoTexture = errors.New("texture has no pixels")

// ResourcePaths names the image files to load. An empty path selects the built-in texture.
type ResourcePaths struct {
	Wall   string
	Goal   string
	Sprite string
	Start  string
	Lost   string
}

// Resources is the texture registry built once at startup and shared read-only by the renderer.
type Resources struct {
	Wall   Texture
	Goal   Texture // nil when goal cells reuse the wall texture
	Sprite Texture
	Start  Texture
	Lost   Texture
}

// LoadResources decodes every configured texture from fsys.
// Wall and goal images are resampled to ReferenceTextureSize squared.
func LoadResources(fsys fs.FS, paths ResourcePaths) (*Resources, error) {
	res := &Resources{}
	var err error

	if res.Wall, err = loadOr(fsys, paths.Wall, true, func() Texture {
		return NewWallpaperTexture(ReferenceTextureSize)
	}); err != nil {
		return nil, fmt.Errorf("wall texture: %w", err)
	}
	if paths.Goal != "" {
		if res.Goal, err = loadTexture(fsys, paths.Goal, true); err != nil {
			return nil, fmt.Errorf("goal texture: %w", err)
		}
	}
	if res.Sprite, err = loadOr(fsys, paths.Sprite, false, func() Texture {
		return NewFaceTexture(128)
	}); err != nil {
		return nil, fmt.Errorf("sprite texture: %w", err)
	}
	if res.Start, err = loadOr(fsys, paths.Start, false, func() Texture {
		return NewSolidTexture(1, 1, Hex(0x7F5A1B))
	}); err != nil {
		return nil, fmt.Errorf("start screen: %w", err)
	}
	if res.Lost, err = loadOr(fsys, paths.Lost, false, func() Texture {
		return NewSolidTexture(1, 1, Hex(0x3A0A0A))
	}); err != nil {
		return nil, fmt.Errorf("lost screen: %w", err)
	}

	return res, nil
}

func loadOr(fsys fs.FS, path string, reference bool, fallback func() Texture) (Texture, error) {
	if path == "" {
		return fallback(), nil
	}
	return loadTexture(fsys, path, reference)
}

func loadTexture(fsys fs.FS, path string, reference bool) (Texture, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%s: %w", path, ErrNoTexture)
	}

	if reference && (img.Bounds().Dx() != ReferenceTextureSize || img.Bounds().Dy() != ReferenceTextureSize) {
		dst := image.NewRGBA(image.Rect(0, 0, ReferenceTextureSize, ReferenceTextureSize))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = dst
	}

	return NewImageTexture(img), nil
}
