package engine

import (
	"image"
	"image/color"
	"math"
)

// Framebuffer is a CPU pixel surface in RGBA byte order, the layout ebiten's WritePixels expects.
// It implements draw.Image so it can be the destination of x/image/draw scalers.
//
// Writes to disjoint pixels may happen from different goroutines; anything else needs a single writer.
type Framebuffer struct {
	pixels []byte
	width  int
	height int
	clear  color.RGBA
}

func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		pixels: make([]byte, width*height*4),
		width:  width,
		height: height,
		clear:  color.RGBA{0, 0, 0, 0xFF},
	}
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }

// SetClearColor changes the color Clear fills with.
func (fb *Framebuffer) SetClearColor(c color.RGBA) {
	fb.clear = c
}

// Clear fills the whole buffer with the clear color.
func (fb *Framebuffer) Clear() {
	if len(fb.pixels) == 0 {
		return
	}
	fb.pixels[0] = fb.clear.R
	fb.pixels[1] = fb.clear.G
	fb.pixels[2] = fb.clear.B
	fb.pixels[3] = fb.clear.A
	// double the filled prefix until the buffer is covered
	for filled := 4; filled < len(fb.pixels); filled *= 2 {
		copy(fb.pixels[filled:], fb.pixels[:filled])
	}
}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// SetPixel writes one pixel, out of range coordinates are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if !fb.inBounds(x, y) {
		return
	}
	i := (y*fb.width + x) * 4
	fb.pixels[i] = c.R
	fb.pixels[i+1] = c.G
	fb.pixels[i+2] = c.B
	fb.pixels[i+3] = c.A
}

// Pixel returns the color at x, y or transparent black when out of range.
func (fb *Framebuffer) Pixel(x, y int) color.RGBA {
	if !fb.inBounds(x, y) {
		return color.RGBA{}
	}
	i := (y*fb.width + x) * 4
	return color.RGBA{fb.pixels[i], fb.pixels[i+1], fb.pixels[i+2], fb.pixels[i+3]}
}

// FillRect fills the rectangle clipped to the buffer.
func (fb *Framebuffer) FillRect(x, y, w, h int, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, fb.width), min(y+h, fb.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	// fill the first row, then copy it down
	first := (y0*fb.width + x0) * 4
	rowLen := (x1 - x0) * 4
	for i := first; i < first+rowLen; i += 4 {
		fb.pixels[i] = c.R
		fb.pixels[i+1] = c.G
		fb.pixels[i+2] = c.B
		fb.pixels[i+3] = c.A
	}
	row := fb.pixels[first : first+rowLen]
	for yy := y0 + 1; yy < y1; yy++ {
		start := (yy*fb.width + x0) * 4
		copy(fb.pixels[start:start+rowLen], row)
	}
}

// DrawFilledCircle fills a disc centered on x, y.
func (fb *Framebuffer) DrawFilledCircle(x, y, radius float64, c color.RGBA) {
	rSquared := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= rSquared {
				fb.SetPixel(int(math.Floor(x+dx)), int(math.Floor(y+dy)), c)
			}
		}
	}
}

// StrokeLine draws a line by stamping discs of the given thickness along it.
func (fb *Framebuffer) StrokeLine(x1, y1, x2, y2, thickness float64, c color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	distance := math.Hypot(dx, dy)
	if distance == 0 {
		return
	}
	dx /= distance
	dy /= distance

	for i := 0.0; i < distance; i++ {
		fb.DrawFilledCircle(x1+dx*i, y1+dy*i, thickness/2, c)
	}
}

// Pixels exposes the raw RGBA bytes, row-major, 4 bytes per pixel.
// The slice aliases the buffer and is only valid until the next write.
func (fb *Framebuffer) Pixels() []byte {
	return fb.pixels
}

func (fb *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

func (fb *Framebuffer) At(x, y int) color.Color {
	return fb.Pixel(x, y)
}

func (fb *Framebuffer) Set(x, y int, c color.Color) {
	fb.SetPixel(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}
