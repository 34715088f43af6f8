/*
Package solver implements step-by-step maze search under a single resumable
contract, with three interchangeable frontier strategies: breadth-first,
depth-first and best-first (A* over hop count with a Manhattan heuristic).

A Solver advances only when Step is called, one frontier expansion at a time,
so multiple solvers over the same maze can be interleaved and observed by any
front end. Each Solver works on a private clone of the grid and holds no
external resources; abandoning one is simply a matter of not stepping it
again.
*/
package solver

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/maze-solver-api/maze"
)

// Strategy selects the frontier discipline of a Solver.
type Strategy byte

const (
	BFS Strategy = iota
	DFS
	AStar
)

// String returns the conventional short name of the strategy.
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Strategy(%d)", byte(s))
	}
}

// ParseStrategy maps a strategy name to its selector.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "astar":
		return AStar, nil
	default:
		return 0, ErrUnknownStrategy
	}
}

// StepResult is the outcome of a single Step call.
type StepResult byte

const (
	// InProgress means the search advanced and has not yet terminated.
	InProgress StepResult = iota
	// Found means the end tile was reached; the path is available.
	Found
	// Exhausted means the frontier emptied without reaching the end.
	// No path exists; this is a result, not a fault.
	Exhausted
)

// String returns the result name.
func (r StepResult) String() string {
	switch r {
	case InProgress:
		return "in_progress"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("StepResult(%d)", byte(r))
	}
}

var (
	// ErrMissingEndpoints is returned when the supplied grid lacks a start
	// or an end tile.
	ErrMissingEndpoints = errors.New("solver: maze must have both start and end tiles")

	// ErrUnknownStrategy is returned for a strategy selector outside the
	// known set.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")
)

// Solver carries the full run state of one search: the frontier, the visited
// set, predecessor links for path reconstruction, and the step counter.
type Solver struct {
	grid     *maze.Grid
	strategy Strategy
	start    maze.Position
	end      maze.Position

	frontier  frontier
	visited   map[maze.Position]struct{}
	expanded  map[maze.Position]struct{}
	parent    map[maze.Position]maze.Position
	gScore    map[maze.Position]int
	teleports map[maze.Position]maze.Position

	current    maze.Position
	hasCurrent bool
	stepCount  int
	result     StepResult
	path       []maze.Position
}

// New constructs a Solver over its own clone of g. It fails with
// ErrMissingEndpoints when g has no start or no end tile. The start is
// pre-marked visited and seeded into the frontier, so the first Step expands
// it.
func New(g *maze.Grid, strategy Strategy) (*Solver, error) {
	start, hasStart := g.FindTile(maze.Start)
	end, hasEnd := g.FindTile(maze.End)
	if !hasStart || !hasEnd {
		return nil, ErrMissingEndpoints
	}

	var f frontier
	switch strategy {
	case BFS:
		f = &fifoFrontier{}
	case DFS:
		f = &lifoFrontier{}
	case AStar:
		f = newPriorityFrontier()
	default:
		return nil, ErrUnknownStrategy
	}

	s := &Solver{
		grid:      g.Clone(),
		strategy:  strategy,
		start:     start,
		end:       end,
		frontier:  f,
		visited:   make(map[maze.Position]struct{}),
		expanded:  make(map[maze.Position]struct{}),
		parent:    make(map[maze.Position]maze.Position),
		gScore:    map[maze.Position]int{start: 0},
		teleports: pairTeleports(g),
		result:    InProgress,
	}

	s.visited[start] = struct{}{}
	s.frontier.push(start, s.heuristic(start))
	return s, nil
}

// pairTeleports precomputes the teleport pairing once so Step does not
// rescan the grid on every encounter. The cached map leaves observable
// behavior unchanged.
func pairTeleports(g *maze.Grid) map[maze.Position]maze.Position {
	pairs := make(map[maze.Position]maze.Position)
	tiles := g.Tiles(maze.Teleport)
	if len(tiles) == 2 {
		pairs[tiles[0]] = tiles[1]
		pairs[tiles[1]] = tiles[0]
	}
	return pairs
}

// Step advances the search by exactly one frontier expansion. Once a
// terminal result is reached it is sticky: further calls return the same
// result without touching any state.
func (s *Solver) Step() StepResult {
	if s.result != InProgress {
		return s.result
	}

	// Best-first may hold stale duplicates of a cell that was re-pushed with
	// a better g; the fresher entry popped first, so anything already
	// expanded is discarded here without consuming the turn.
	var cell maze.Position
	for {
		var ok bool
		cell, ok = s.frontier.pop()
		if !ok {
			s.result = Exhausted
			return s.result
		}
		if _, dup := s.expanded[cell]; !dup {
			break
		}
	}

	s.current = cell
	s.hasCurrent = true
	s.expanded[cell] = struct{}{}

	if cell == s.end {
		s.path = s.reconstructPath(cell)
		s.result = Found
		return s.result
	}

	// A pure pass-through: stepping onto a teleport routes straight to its
	// counterpart instead of the ordinary neighbors, and consumes the turn
	// without crediting a step. Once the pair is visited -- which includes
	// the cell a jump arrived at -- the tile expands like any other floor.
	if pair, ok := s.teleports[cell]; ok {
		if _, seen := s.visited[pair]; !seen {
			s.passThrough(cell, pair)
			return s.result
		}
	}

	s.expandNeighbors(cell)
	s.stepCount++
	return s.result
}

// passThrough routes a teleport tile to its unvisited counterpart. Both
// tiles are marked visited immediately, which is what prevents the search
// from bouncing between the pair forever. The jump contributes one hop to
// the pair's path cost, exactly like a normal move.
func (s *Solver) passThrough(cell, pair maze.Position) {
	s.visited[cell] = struct{}{}
	s.visited[pair] = struct{}{}

	s.parent[pair] = cell
	s.gScore[pair] = s.gScore[cell] + 1
	s.frontier.push(pair, s.gScore[pair]+s.heuristic(pair))
}

// expandNeighbors discovers the orthogonal neighbors of cell. Walls are
// skipped outright. For breadth- and depth-first, a cell is discovered at
// most once; best-first additionally re-pushes a neighbor whenever a strictly
// better hop count is found, updating its predecessor so the path reflects
// the best g known at the last push.
func (s *Solver) expandNeighbors(cell maze.Position) {
	for _, d := range maze.Directions {
		next := cell.Add(d)
		if !s.grid.InBounds(next) || s.grid.At(next) == maze.Wall {
			continue
		}

		if s.strategy != AStar {
			if _, seen := s.visited[next]; seen {
				continue
			}
			s.visited[next] = struct{}{}
			s.parent[next] = cell
			s.frontier.push(next, 0)
			continue
		}

		// Relaxation is driven by the hop count alone: a cell already in the
		// frontier is pushed again when a strictly better g turns up, and a
		// cell already expanded holds its optimal g, so the comparison
		// rejects it.
		tentative := s.gScore[cell] + 1
		if known, ok := s.gScore[next]; ok && tentative >= known {
			continue
		}
		s.gScore[next] = tentative
		s.parent[next] = cell
		s.visited[next] = struct{}{}
		s.frontier.push(next, tentative+s.heuristic(next))
	}
}

// heuristic is the Manhattan distance to the end tile.
func (s *Solver) heuristic(p maze.Position) int {
	return abs(p.X-s.end.X) + abs(p.Y-s.end.Y)
}

// reconstructPath follows predecessor links backward from cell to the start
// and reverses the result. The links form a tree rooted at the start, so the
// walk always terminates.
func (s *Solver) reconstructPath(cell maze.Position) []maze.Position {
	path := []maze.Position{cell}
	for cell != s.start {
		prev, ok := s.parent[cell]
		if !ok {
			break
		}
		path = append(path, prev)
		cell = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Strategy returns the frontier discipline this solver runs.
func (s *Solver) Strategy() Strategy {
	return s.strategy
}

// Result returns the outcome of the most recent Step, or InProgress before
// the search terminates.
func (s *Solver) Result() StepResult {
	return s.result
}

// CurrentPosition returns the most recently expanded cell. The second return
// value is false before the first Step.
func (s *Solver) CurrentPosition() (maze.Position, bool) {
	return s.current, s.hasCurrent
}

// VisitedPositions returns a copy of the visited set.
func (s *Solver) VisitedPositions() map[maze.Position]struct{} {
	visited := make(map[maze.Position]struct{}, len(s.visited))
	for p := range s.visited {
		visited[p] = struct{}{}
	}
	return visited
}

// ReconstructedPath returns the ordered cells from start to end inclusive.
// It is nil until Step has returned Found.
func (s *Solver) ReconstructedPath() []maze.Position {
	if s.result != Found {
		return nil
	}
	return append([]maze.Position(nil), s.path...)
}

// StepCount returns the number of ordinary expansions performed so far.
// Teleport pass-throughs and the final terminal check are not counted.
func (s *Solver) StepCount() int {
	return s.stepCount
}

// Start returns the start tile position.
func (s *Solver) Start() maze.Position {
	return s.start
}

// End returns the end tile position.
func (s *Solver) End() maze.Position {
	return s.end
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
