package model

// Blocker reports whether a continuous cell-space position is impassable.
type Blocker interface {
	IsBlocked(x, y float64) bool
}

// CollisionGrid answers walkability and goal queries against a grid.
// Positions are in cell units; BlockSize is only used so the cell
// rounding matches the pixel rounding of the ray caster.
type CollisionGrid struct {
	grid      *Grid
	blockSize int
}

func NewCollisionGrid(grid *Grid, blockSize int) *CollisionGrid {
	return &CollisionGrid{grid: grid, blockSize: blockSize}
}

// CellIndex maps a coordinate to its cell by truncating the pixel position
// and dividing by the block size. Negative coordinates map to -1.
func CellIndex(v float64, blockSize int) int {
	px := v * float64(blockSize)
	if px < 0 || blockSize <= 0 {
		return -1
	}
	return int(px) / blockSize
}

func (c *CollisionGrid) tileAt(x, y float64) (Tile, bool) {
	return c.grid.At(CellIndex(x, c.blockSize), CellIndex(y, c.blockSize))
}

// IsBlocked is true outside the grid and on every wall tile. Goal cells are walkable.
func (c *CollisionGrid) IsBlocked(x, y float64) bool {
	t, ok := c.tileAt(x, y)
	if !ok {
		return true
	}
	return t.IsWall()
}

// IsGoal is true only when the position lies in a goal cell.
func (c *CollisionGrid) IsGoal(x, y float64) bool {
	t, ok := c.tileAt(x, y)
	return ok && t == TileGoal
}
