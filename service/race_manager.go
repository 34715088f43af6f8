package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/beka-birhanu/maze-solver-api/config"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/google/uuid"
)

const (
	// maxStepsPerAdvance bounds how far a single Advance call may run a
	// race, so one request cannot monopolize the manager lock.
	maxStepsPerAdvance = 1000

	boardKeyFmt    = "leaderboard:%s" // per-maze board, keyed by maze ID
	boardMemberFmt = "%s:%s"          // strategy:raceID
)

// ErrRaceNotFound is returned for race IDs the manager does not know.
var ErrRaceNotFound = errors.New("race not found")

// race is one live comparison run: independent solvers over private clones
// of the same maze.
type race struct {
	id       uuid.UUID
	mazeID   uuid.UUID
	solvers  []*solver.Solver
	reported map[solver.Strategy]bool
}

// RaceManager keeps the live races in memory and reports finished runs to
// the leaderboard.
type RaceManager struct {
	mazeRepo i.MazeRepo
	board    i.ScoreBoard
	logger   *log.Logger
	races    map[uuid.UUID]*race
	sync.RWMutex
}

// RaceManagerConfig holds the dependencies of a RaceManager.
type RaceManagerConfig struct {
	MazeRepo i.MazeRepo
	Board    i.ScoreBoard
	Logger   *log.Logger
}

// NewRaceManager creates a RaceManager from its configuration.
func NewRaceManager(c *RaceManagerConfig) (*RaceManager, error) {
	return &RaceManager{
		mazeRepo: c.MazeRepo,
		board:    c.Board,
		logger:   c.Logger,
		races:    make(map[uuid.UUID]*race),
	}, nil
}

// NewRace loads the maze, clones it into one solver per requested strategy
// (all three when none are named) and returns the initial snapshot.
func (m *RaceManager) NewRace(ctx context.Context, mazeID uuid.UUID, strategyNames []string) (*i.RaceView, error) {
	record, err := m.mazeRepo.ByID(mazeID)
	if err != nil {
		return nil, err
	}

	grid, err := record.Parse()
	if err != nil {
		return nil, err
	}

	strategies := []solver.Strategy{solver.BFS, solver.DFS, solver.AStar}
	if len(strategyNames) > 0 {
		strategies = strategies[:0]
		for _, name := range strategyNames {
			strategy, err := solver.ParseStrategy(name)
			if err != nil {
				return nil, err
			}
			strategies = append(strategies, strategy)
		}
	}

	solvers := make([]*solver.Solver, 0, len(strategies))
	for _, strategy := range strategies {
		s, err := solver.New(grid, strategy)
		if err != nil {
			return nil, err
		}
		solvers = append(solvers, s)
	}

	m.Lock()
	defer m.Unlock()

	raceID := uuid.New()
	for {
		if _, ok := m.races[raceID]; !ok {
			break
		}
		raceID = uuid.New()
	}

	r := &race{
		id:       raceID,
		mazeID:   mazeID,
		solvers:  solvers,
		reported: make(map[solver.Strategy]bool),
	}
	m.races[raceID] = r

	m.logger.Printf("%s[INFO]%s started race %s on maze %s with %d solvers", config.LogInfoColor, config.LogColorReset, raceID, mazeID, len(solvers))
	return snapshot(r), nil
}

// Advance steps every unfinished solver of the race up to `steps` times and
// reports newly finished runs to the leaderboard.
func (m *RaceManager) Advance(ctx context.Context, raceID uuid.UUID, steps int) (*i.RaceView, error) {
	if steps < 1 {
		steps = 1
	}
	if steps > maxStepsPerAdvance {
		steps = maxStepsPerAdvance
	}

	m.Lock()
	defer m.Unlock()

	r, ok := m.races[raceID]
	if !ok {
		return nil, ErrRaceNotFound
	}

	for _, s := range r.solvers {
		for n := 0; n < steps && s.Result() == solver.InProgress; n++ {
			s.Step()
		}

		if s.Result() == solver.Found && !r.reported[s.Strategy()] {
			r.reported[s.Strategy()] = true
			m.submitRun(ctx, r, s)
		}
	}

	return snapshot(r), nil
}

// Snapshot returns the current state of a race without advancing it.
func (m *RaceManager) Snapshot(raceID uuid.UUID) (*i.RaceView, error) {
	m.RLock()
	defer m.RUnlock()

	r, ok := m.races[raceID]
	if !ok {
		return nil, ErrRaceNotFound
	}
	return snapshot(r), nil
}

// Remove drops a race and its solvers.
func (m *RaceManager) Remove(raceID uuid.UUID) {
	m.Lock()
	defer m.Unlock()
	delete(m.races, raceID)
}

// Leaderboard returns up to n of the best finished runs on a maze, fewest
// steps first.
func (m *RaceManager) Leaderboard(ctx context.Context, mazeID uuid.UUID, n int64) ([]i.BoardEntry, error) {
	return m.board.Top(ctx, fmt.Sprintf(boardKeyFmt, mazeID), n)
}

// submitRun records a finished run on the maze's leaderboard. A leaderboard
// failure never fails the race.
func (m *RaceManager) submitRun(ctx context.Context, r *race, s *solver.Solver) {
	board := fmt.Sprintf(boardKeyFmt, r.mazeID)
	member := fmt.Sprintf(boardMemberFmt, s.Strategy(), r.id)
	if err := m.board.Submit(ctx, board, float64(s.StepCount()), member); err != nil {
		m.logger.Printf("%s[ERROR]%s submitting run %s to leaderboard: %s", config.LogErrorColor, config.LogColorReset, member, err)
		return
	}
	m.logger.Printf("%s[INFO]%s race %s: %s finished in %d steps", config.LogInfoColor, config.LogColorReset, r.id, s.Strategy(), s.StepCount())
}

// snapshot builds the observable view of a race. Caller holds the lock.
func snapshot(r *race) *i.RaceView {
	view := &i.RaceView{
		ID:     r.id,
		MazeID: r.mazeID,
		Done:   true,
	}

	for _, s := range r.solvers {
		sv := i.SolverView{
			Strategy:  s.Strategy().String(),
			Result:    s.Result().String(),
			StepCount: s.StepCount(),
			Path:      s.ReconstructedPath(),
		}

		if current, ok := s.CurrentPosition(); ok {
			sv.Current = &current
		}

		for p := range s.VisitedPositions() {
			sv.Visited = append(sv.Visited, p)
		}
		sort.Slice(sv.Visited, func(a, b int) bool {
			if sv.Visited[a].Y != sv.Visited[b].Y {
				return sv.Visited[a].Y < sv.Visited[b].Y
			}
			return sv.Visited[a].X < sv.Visited[b].X
		})

		if s.Result() == solver.InProgress {
			view.Done = false
		}
		view.Solvers = append(view.Solvers, sv)
	}

	return view
}
