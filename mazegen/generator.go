/*
Package mazegen builds random, always-solvable mazes.

Generation is a randomized Prim's-style carving pass over a grid of walls,
followed by special-tile placement (start, end, a teleport pair and penalty
tiles) constrained so that every placed tile stays reachable from the start.

The whole process is driven by a single seeded rand.Rand, so a given
(width, height, seed) triple always yields an identical maze.
*/
package mazegen

import (
	"errors"
	"math/rand"

	"github.com/beka-birhanu/maze-solver-api/maze"
)

// ErrInvalidDimensions is returned when the requested grid leaves no interior
// to carve: carving needs at least one cell inside the outer wall border.
var ErrInvalidDimensions = errors.New("mazegen: width and height must be at least 3")

// Teleport tiles come in matched pairs, never alone.
const teleportTiles = 2

// penaltyShare is the divisor applied to the remaining plain path cells when
// deciding how many penalty tiles to place (about 5%, at least one).
const penaltyShare = 20

// Generate builds a width × height maze from the given seed. The outer border
// is always Wall, the carved interior forms a spanning tree, and the placed
// start, end, teleport and penalty tiles are all reachable from the start.
func Generate(width, height int, seed int64) (*maze.Grid, error) {
	if width < 3 || height < 3 {
		return nil, ErrInvalidDimensions
	}

	rng := rand.New(rand.NewSource(seed))
	grid := maze.NewGrid(width, height)
	carve(grid, rng)
	placeSpecialTiles(grid, rng)
	return grid, nil
}

// carve runs the randomized Prim's-style pass: starting from a random
// interior cell, walls adjacent to the carved region are drawn uniformly at
// random and opened only when they touch exactly one carved cell. Opening a
// wall with two or more carved neighbors would merge already-connected
// regions into a cycle, so those are discarded; the result is a spanning tree
// of the carved cells.
func carve(grid *maze.Grid, rng *rand.Rand) {
	width, height := grid.Width(), grid.Height()
	interior := func(p maze.Position) bool {
		return p.X > 0 && p.X < width-1 && p.Y > 0 && p.Y < height-1
	}

	first := maze.Position{X: rng.Intn(width-2) + 1, Y: rng.Intn(height-2) + 1}
	grid.SetTile(first, maze.Path)

	var frontier []maze.Position
	for _, d := range maze.Directions {
		if next := first.Add(d); interior(next) {
			frontier = append(frontier, next)
		}
	}

	for len(frontier) > 0 {
		// Removal is by random index; the order of the list carries no meaning.
		idx := rng.Intn(len(frontier))
		cell := frontier[idx]
		frontier = append(frontier[:idx], frontier[idx+1:]...)

		if grid.At(cell) != maze.Wall {
			continue
		}

		carved := 0
		for _, d := range maze.Directions {
			if grid.At(cell.Add(d)) == maze.Path {
				carved++
			}
		}
		if carved != 1 {
			continue
		}

		grid.SetTile(cell, maze.Path)
		for _, d := range maze.Directions {
			if next := cell.Add(d); interior(next) && grid.At(next) == maze.Wall {
				frontier = append(frontier, next)
			}
		}
	}
}

// placeSpecialTiles marks the start, end, teleport pair and penalty tiles on
// a freshly carved grid.
func placeSpecialTiles(grid *maze.Grid, rng *rand.Rand) {
	pathCells := grid.Tiles(maze.Path)
	if len(pathCells) == 0 {
		return
	}

	// The carving pass guarantees a single connected component, but placement
	// only ever trusts the reachable set; if the flood fill somehow comes up
	// empty, fall back to every path cell.
	_, component := maze.HopDistances(grid, pathCells[0])
	if len(component) == 0 {
		component = pathCells
	}

	start := takeRandom(&component, rng)

	// The end goes on the cell farthest from the start, ties broken by
	// first-found order of the distance sweep so the choice is stable for a
	// given seed.
	end := start
	distances, order := maze.HopDistances(grid, start)
	if len(order) > 0 {
		bestDist := -1
		for _, cell := range order {
			if d := distances[cell]; d > bestDist {
				bestDist = d
				end = cell
			}
		}
	} else if len(component) > 0 {
		end = takeRandom(&component, rng)
	}

	grid.SetTile(start, maze.Start)
	grid.SetTile(end, maze.End)

	remaining := grid.Tiles(maze.Path)
	if len(remaining) >= teleportTiles {
		for i := 0; i < teleportTiles; i++ {
			grid.SetTile(takeRandom(&remaining, rng), maze.Teleport)
		}
	}

	penaltyCount := len(remaining) / penaltyShare
	if penaltyCount < 1 {
		penaltyCount = 1
	}
	for i := 0; i < penaltyCount && len(remaining) > 0; i++ {
		grid.SetTile(takeRandom(&remaining, rng), maze.Penalty)
	}
}

// takeRandom removes and returns a uniformly random element of *cells.
func takeRandom(cells *[]maze.Position, rng *rand.Rand) maze.Position {
	idx := rng.Intn(len(*cells))
	picked := (*cells)[idx]
	*cells = append((*cells)[:idx], (*cells)[idx+1:]...)
	return picked
}
