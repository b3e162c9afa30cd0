package engine

import (
	"image"
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Texture is an immutable pixel source shared read-only between frames.
type Texture interface {
	Width() int
	Height() int
	// Sample returns the pixel at x, y. Coordinates outside the texture are
	// clamped to the nearest edge, so callers never index past the data.
	Sample(x, y int) color.RGBA
}

// ImageTexture keeps decoded pixels in a flat RGBA slice.
type ImageTexture struct {
	pixels []color.RGBA
	width  int
	height int
}

// NewImageTexture copies img into a texture. Premultiplied colors are
// converted the same way image/color does for RGBAModel.
func NewImageTexture(img image.Image) *ImageTexture {
	b := img.Bounds()
	t := &ImageTexture{
		pixels: make([]color.RGBA, b.Dx()*b.Dy()),
		width:  b.Dx(),
		height: b.Dy(),
	}
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			t.pixels[y*t.width+x] = color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
		}
	}
	return t
}

func (t *ImageTexture) Width() int  { return t.width }
func (t *ImageTexture) Height() int { return t.height }

func (t *ImageTexture) Sample(x, y int) color.RGBA {
	if len(t.pixels) == 0 {
		return color.RGBA{}
	}
	x = clampIndex(x, t.width)
	y = clampIndex(y, t.height)
	return t.pixels[y*t.width+x]
}

// clampIndex pins i into [0, n).
func clampIndex(i, n int) int {
	return int(geom.Clamp(float64(i), 0, float64(n-1)))
}

// ProceduralTexture computes each pixel from a function of its coordinates.
type ProceduralTexture struct {
	width  int
	height int
	fn     func(x, y int) color.RGBA
}

func NewProceduralTexture(width, height int, fn func(x, y int) color.RGBA) *ProceduralTexture {
	return &ProceduralTexture{width: width, height: height, fn: fn}
}

func (t *ProceduralTexture) Width() int  { return t.width }
func (t *ProceduralTexture) Height() int { return t.height }

func (t *ProceduralTexture) Sample(x, y int) color.RGBA {
	if t.width <= 0 || t.height <= 0 {
		return color.RGBA{}
	}
	return t.fn(clampIndex(x, t.width), clampIndex(y, t.height))
}

// NewSolidTexture returns a one-color texture.
func NewSolidTexture(width, height int, c color.RGBA) *ProceduralTexture {
	return NewProceduralTexture(width, height, func(int, int) color.RGBA { return c })
}

// NewWallpaperTexture draws yellowed striped wallpaper with a dark skirting band.
func NewWallpaperTexture(size int) *ProceduralTexture {
	base := Hex(0xC9B76A)
	stripe := Hex(0xB3A152)
	skirt := Hex(0x6B5A22)
	band := max(size/16, 1)
	return NewProceduralTexture(size, size, func(x, y int) color.RGBA {
		if y >= size-size/12 {
			return skirt
		}
		if (x/band)%2 == 1 {
			return stripe
		}
		return base
	})
}

// NewFaceTexture draws a pale face on a black (key color) background.
func NewFaceTexture(size int) *ProceduralTexture {
	half := float64(size) / 2
	skin := Hex(0xE8E2D0)
	eye := Hex(0x1A1A1A)
	mouth := Hex(0x5A0E0E)
	return NewProceduralTexture(size, size, func(x, y int) color.RGBA {
		fx := (float64(x) - half) / half
		fy := (float64(y) - half) / half
		if fx*fx+fy*fy*0.8 > 0.8 {
			return color.RGBA{A: 0xFF}
		}
		if math.Hypot(math.Abs(fx)-0.35, fy+0.25) < 0.14 {
			return eye
		}
		if math.Abs(fx) < 0.4 && fy > 0.35 && fy < 0.5 {
			return mouth
		}
		return skin
	})
}
