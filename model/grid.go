package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/harbdog/raycaster-go/geom"
)

// Tile is one maze symbol as it appears in a text maze.
type Tile rune

const (
	TileEmpty      Tile = ' '
	TileGoal       Tile = 'g'
	TileCorner     Tile = '+'
	TileHorizontal Tile = '-'
	TileVertical   Tile = '|'
)

// spawn markers, replaced by empty cells when parsed
const (
	markerPlayer  = 'p'
	markerPursuer = 'e'
)

type TileKind int

const (
	KindEmpty TileKind = iota
	KindGoal
	KindWall
)

// Kind classifies the tile. Every symbol that is neither empty nor goal is a wall.
func (t Tile) Kind() TileKind {
	switch t {
	case TileEmpty:
		return KindEmpty
	case TileGoal:
		return KindGoal
	default:
		return KindWall
	}
}

func (t Tile) IsWall() bool { return t.Kind() == KindWall }

var (
	ErrEmptyGrid  = errors.New("grid has no cells")
	ErrRaggedGrid = errors.New("grid rows differ in length")
	ErrOpenBorder = errors.New("grid border is not sealed")
)

// Grid is an immutable rectangular tile map indexed as [row][col].
type Grid struct {
	rows [][]Tile
}

// NewGrid copies rows into a grid. It does not validate; see Validate.
func NewGrid(rows [][]Tile) *Grid {
	g := &Grid{rows: make([][]Tile, len(rows))}
	for i, r := range rows {
		g.rows[i] = append([]Tile(nil), r...)
	}
	return g
}

func (g *Grid) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

func (g *Grid) Height() int { return len(g.rows) }

// At returns the tile in column col of row row. ok is false outside the grid.
func (g *Grid) At(col, row int) (t Tile, ok bool) {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return 0, false
	}
	return g.rows[row][col], true
}

// Validate checks the grid is non-empty, rectangular and enclosed by walls.
func (g *Grid) Validate() error {
	h := g.Height()
	w := g.Width()
	if h == 0 || w == 0 {
		return ErrEmptyGrid
	}
	for j, r := range g.rows {
		if len(r) != w {
			return fmt.Errorf("row %d has %d cells, expected %d: %w", j, len(r), w, ErrRaggedGrid)
		}
	}
	for i := 0; i < w; i++ {
		if !g.rows[0][i].IsWall() || !g.rows[h-1][i].IsWall() {
			return fmt.Errorf("column %d: %w", i, ErrOpenBorder)
		}
	}
	for j := 0; j < h; j++ {
		if !g.rows[j][0].IsWall() || !g.rows[j][w-1].IsWall() {
			return fmt.Errorf("row %d: %w", j, ErrOpenBorder)
		}
	}
	return nil
}

func (g *Grid) String() string {
	var sb strings.Builder
	for _, r := range g.rows {
		for _, t := range r {
			sb.WriteRune(rune(t))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Level is a parsed grid plus any spawn points the source file marked.
type Level struct {
	Grid    *Grid
	Player  *geom.Vector2 // nil when the file has no player marker
	Pursuer *geom.Vector2 // nil when the file has no pursuer marker
}

// ParseGrid reads a text maze, one row per line. Trailing carriage returns
// are dropped, blank trailing lines are ignored and the result is validated.
func ParseGrid(r io.Reader) (*Level, error) {
	var rows [][]Tile
	level := &Level{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		// one cell per symbol, so multi-byte glyphs take a single column
		row := make([]Tile, 0, len(line))
		for _, ch := range line {
			switch ch {
			case markerPlayer:
				level.Player = cellCenter(len(row), len(rows))
				row = append(row, TileEmpty)
			case markerPursuer:
				level.Pursuer = cellCenter(len(row), len(rows))
				row = append(row, TileEmpty)
			default:
				row = append(row, Tile(ch))
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}

	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	level.Grid = &Grid{rows: rows}
	if err := level.Grid.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}

func cellCenter(col, row int) *geom.Vector2 {
	return &geom.Vector2{X: float64(col) + 0.5, Y: float64(row) + 0.5}
}
