/*
Package maze provides the grid model shared by the generator and the solvers.

It defines the closed set of tile kinds (`Wall`, `Path`, `Start`, `End`,
`Teleport`, `Penalty`), the `Grid` structure addressed by (column, row), and
utilities for reachability analysis and the plain-text grid format.

A Grid is mutable only while it is being generated or parsed; afterwards each
consumer works on its own `Clone`.
*/
package maze

import "fmt"

// TileKind is the closed category a grid cell belongs to.
type TileKind byte

const (
	Wall TileKind = iota
	Path
	Start
	End
	Teleport
	Penalty
)

// String returns the human-readable name of the tile kind.
func (k TileKind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Path:
		return "Path"
	case Start:
		return "Start"
	case End:
		return "End"
	case Teleport:
		return "Teleport"
	case Penalty:
		return "Penalty"
	default:
		return fmt.Sprintf("TileKind(%d)", byte(k))
	}
}

// Position identifies a cell by column (X) and row (Y), origin at the
// top-left corner of the grid.
type Position struct {
	X int `json:"x"` // Column index of the cell
	Y int `json:"y"` // Row index of the cell
}

// Directions lists the four orthogonal moves in the fixed expansion order
// used everywhere: up, down, left, right. Diagonal movement does not exist.
var Directions = [4]Position{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// Add returns the position offset by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid is a fixed-size rectangle of tiles.
type Grid struct {
	width  int
	height int
	tiles  [][]TileKind // indexed [row][col]
}

// NewGrid creates a width × height grid with every tile set to Wall.
func NewGrid(width, height int) *Grid {
	tiles := make([][]TileKind, height)
	for y := range tiles {
		tiles[y] = make([]TileKind, width)
	}
	return &Grid{width: width, height: height, tiles: tiles}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the tile kind at p. Out-of-bounds positions read as Wall so
// callers never walk off the grid.
func (g *Grid) At(p Position) TileKind {
	if !g.InBounds(p) {
		return Wall
	}
	return g.tiles[p.Y][p.X]
}

// SetTile overwrites the tile kind at p. Intended for the generator and the
// parser only; a solved-over grid is never mutated.
func (g *Grid) SetTile(p Position, k TileKind) {
	if g.InBounds(p) {
		g.tiles[p.Y][p.X] = k
	}
}

// Clone returns a deep copy of the grid. Every solver instance works on its
// own clone so concurrent runs never share mutable state.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for y := range g.tiles {
		copy(c.tiles[y], g.tiles[y])
	}
	return c
}

// FindTile returns the first position holding kind k in row-major order,
// and false if the grid contains none.
func (g *Grid) FindTile(k TileKind) (Position, bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y][x] == k {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// Tiles returns every position holding kind k in row-major order.
func (g *Grid) Tiles(k TileKind) []Position {
	var result []Position
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y][x] == k {
				result = append(result, Position{X: x, Y: y})
			}
		}
	}
	return result
}

// TeleportPair returns the position of the teleport tile matched with p:
// the unique other cell of kind Teleport. Returns false when p is not a
// teleport tile or the grid holds no counterpart.
func (g *Grid) TeleportPair(p Position) (Position, bool) {
	if g.At(p) != Teleport {
		return Position{}, false
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			other := Position{X: x, Y: y}
			if other != p && g.tiles[y][x] == Teleport {
				return other, true
			}
		}
	}
	return Position{}, false
}
