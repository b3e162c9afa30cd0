package render

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"backrooms/engine"
	"backrooms/model"
)

// TileOutside is reported as the impact when a ray leaves the grid.
const TileOutside = model.TileCorner

var rayPlotColor = engine.Hex(0xFF33DD)

// Intersect is the first wall a ray reaches.
type Intersect struct {
	Distance float64    // pixels marched
	Impact   model.Tile // tile that stopped the ray
	TX       int        // wall texture column in [0, engine.ReferenceTextureSize)
	Outside  bool       // the ray left the grid instead of hitting a tile
}

// Plotter receives every sample point of a ray when visualizing.
type Plotter interface {
	SetPixel(x, y int, c color.RGBA)
}

// CastRay marches one pixel at a time from pos (cell units) along angle until
// the sample lands on a non-empty tile. Goal cells stop rays like walls do.
// Leaving the grid counts as a hit on an implicit wall.
// plot may be nil.
func CastRay(grid *model.Grid, pos geom.Vector2, angle float64, blockSize int, plot Plotter) Intersect {
	if blockSize <= 0 || math.IsNaN(angle) || math.IsInf(angle, 0) {
		return Intersect{Impact: TileOutside, Outside: true}
	}

	bs := float64(blockSize)
	originX, originY := pos.X*bs, pos.Y*bs
	cos, sin := math.Cos(angle), math.Sin(angle)

	for d := 0.0; ; d++ {
		x := int(math.Floor(originX + d*cos))
		y := int(math.Floor(originY + d*sin))

		i := floorDiv(x, blockSize)
		j := floorDiv(y, blockSize)

		if plot != nil {
			plot.SetPixel(x, y, rayPlotColor)
		}

		tile, ok := grid.At(i, j)
		if ok && tile == model.TileEmpty {
			continue
		}
		if !ok {
			tile = TileOutside
		}

		hitx := x - i*blockSize
		hity := y - j*blockSize
		maxhit := hity
		if 1 < hitx && hitx < blockSize-1 {
			maxhit = hitx
		}

		return Intersect{
			Distance: d,
			Impact:   tile,
			TX:       textureColumn(maxhit, blockSize),
			Outside:  !ok,
		}
	}
}

// textureColumn scales an in-cell offset to the reference texture width.
func textureColumn(offset, blockSize int) int {
	tx := offset * engine.ReferenceTextureSize / blockSize
	return int(geom.Clamp(float64(tx), 0, engine.ReferenceTextureSize-1))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
