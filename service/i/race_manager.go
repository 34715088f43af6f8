package i

import (
	"context"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/google/uuid"
)

// SolverView is the observable state of one solver inside a race: what a
// front end needs to draw a panel.
type SolverView struct {
	Strategy  string          `json:"strategy"`
	Result    string          `json:"result"`
	StepCount int             `json:"step_count"`
	Current   *maze.Position  `json:"current,omitempty"`
	Visited   []maze.Position `json:"visited"`
	Path      []maze.Position `json:"path,omitempty"`
}

// RaceView is a snapshot of a whole race.
type RaceView struct {
	ID      uuid.UUID    `json:"id"`
	MazeID  uuid.UUID    `json:"maze_id"`
	Done    bool         `json:"done"`
	Solvers []SolverView `json:"solvers"`
}

// RaceManager runs interleaved solver races over stored mazes.
type RaceManager interface {
	// NewRace clones the maze into one solver per requested strategy
	// (all three when none are named) and returns the initial snapshot.
	NewRace(ctx context.Context, mazeID uuid.UUID, strategies []string) (*RaceView, error)

	// Advance steps every unfinished solver of the race up to `steps` times
	// and returns the resulting snapshot. Finished runs are reported to the
	// leaderboard.
	Advance(ctx context.Context, raceID uuid.UUID, steps int) (*RaceView, error)

	// Snapshot returns the current state of a race without advancing it.
	Snapshot(raceID uuid.UUID) (*RaceView, error)

	// Remove drops a race and its solvers.
	Remove(raceID uuid.UUID)

	// Leaderboard returns up to n of the best finished runs on a maze,
	// fewest steps first.
	Leaderboard(ctx context.Context, mazeID uuid.UUID, n int64) ([]BoardEntry, error)
}
