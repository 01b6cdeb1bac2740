package entity

import "math"

// TileCode is the semantic code stored in one grid cell
type TileCode uint8

const (
	TileEmpty TileCode = iota
	TileSolid
	TileLadder
	TileSpike
	TileCheckpoint
	TileGoal
	TilePickup
)

// String returns the tile code name
func (c TileCode) String() string {
	switch c {
	case TileEmpty:
		return "empty"
	case TileSolid:
		return "solid"
	case TileLadder:
		return "ladder"
	case TileSpike:
		return "spike"
	case TileCheckpoint:
		return "checkpoint"
	case TileGoal:
		return "goal"
	case TilePickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Grid is the level's tile map. Cells are stored row-major.
type Grid struct {
	Cols     int
	Rows     int
	TileSize int
	cells    []TileCode
}

// NewGrid creates an all-empty grid
func NewGrid(cols, rows, tileSize int) *Grid {
	return &Grid{
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		cells:    make([]TileCode, cols*rows),
	}
}

// Clone returns a deep copy. Sessions mutate their own copy.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = append([]TileCode(nil), g.cells...)
	return &c
}

// InBounds reports whether (col, row) addresses a cell
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// Cell returns the code at tile coordinates; out of range is empty
func (g *Grid) Cell(col, row int) TileCode {
	if !g.InBounds(col, row) {
		return TileEmpty
	}
	return g.cells[row*g.Cols+col]
}

// Set writes a cell. Out-of-range writes are ignored.
func (g *Grid) Set(col, row int, code TileCode) {
	if !g.InBounds(col, row) {
		return
	}
	g.cells[row*g.Cols+col] = code
}

// CellOf converts world pixels to tile coordinates by floor division
func (g *Grid) CellOf(wx, wy float64) (col, row int) {
	ts := float64(g.TileSize)
	return int(math.Floor(wx / ts)), int(math.Floor(wy / ts))
}

// TileAt returns the code under the world pixel (wx, wy)
func (g *Grid) TileAt(wx, wy float64) TileCode {
	col, row := g.CellOf(wx, wy)
	return g.Cell(col, row)
}

// IsSolid checks if the tile at pixel coordinates is solid
func (g *Grid) IsSolid(wx, wy float64) bool {
	return g.TileAt(wx, wy) == TileSolid
}

// IsLadder checks if the tile at pixel coordinates is a ladder
func (g *Grid) IsLadder(wx, wy float64) bool {
	return g.TileAt(wx, wy) == TileLadder
}

// IsSpike checks if the tile at pixel coordinates is a spike
func (g *Grid) IsSpike(wx, wy float64) bool {
	return g.TileAt(wx, wy) == TileSpike
}

// Consume turns a pickup cell into an empty one.
// Returns false when the cell holds no pickup, so repeated calls are no-ops.
func (g *Grid) Consume(col, row int) bool {
	if g.Cell(col, row) != TilePickup {
		return false
	}
	g.Set(col, row, TileEmpty)
	return true
}

// PixelWidth returns the level width in pixels
func (g *Grid) PixelWidth() float64 {
	return float64(g.Cols * g.TileSize)
}

// PixelHeight returns the level height in pixels
func (g *Grid) PixelHeight() float64 {
	return float64(g.Rows * g.TileSize)
}

// Count returns how many cells hold the given code
func (g *Grid) Count(code TileCode) int {
	n := 0
	for _, c := range g.cells {
		if c == code {
			n++
		}
	}
	return n
}

// Vec is a world-space point in pixels
type Vec struct {
	X, Y float64
}

// EnemySpawn describes one enemy of a level's batch
type EnemySpawn struct {
	X, Y       float64
	LeftBound  float64
	RightBound float64
}

// Level is a validated level: the grid, the player start and the ordered enemy spawns
type Level struct {
	ID      string
	Name    string
	Grid    *Grid
	Start   Vec
	Enemies []EnemySpawn
}
