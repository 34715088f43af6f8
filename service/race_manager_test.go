package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"testing"

	dmn "github.com/beka-birhanu/maze-solver-api/domain"
	"github.com/beka-birhanu/maze-solver-api/mazegen"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeMazeRepo keeps maze records in a map.
type fakeMazeRepo struct {
	records map[uuid.UUID]*dmn.MazeRecord
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (r *fakeMazeRepo) Save(record *dmn.MazeRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *fakeMazeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, errors.New("maze not found")
	}
	return record, nil
}

// fakeBoard keeps leaderboards in memory.
type fakeBoard struct {
	boards map[string][]i.BoardEntry
}

func newFakeBoard() *fakeBoard {
	return &fakeBoard{boards: make(map[string][]i.BoardEntry)}
}

func (b *fakeBoard) Submit(_ context.Context, board string, score float64, member string) error {
	b.boards[board] = append(b.boards[board], i.BoardEntry{Member: member, Score: score})
	return nil
}

func (b *fakeBoard) Top(_ context.Context, board string, n int64) ([]i.BoardEntry, error) {
	entries := append([]i.BoardEntry(nil), b.boards[board]...)
	sort.Slice(entries, func(a, c int) bool { return entries[a].Score < entries[c].Score })
	if int64(len(entries)) > n {
		entries = entries[:n]
	}
	return entries, nil
}

func (b *fakeBoard) Count(_ context.Context, board string) int64 {
	return int64(len(b.boards[board]))
}

func newTestRaceManager(t *testing.T) (*RaceManager, *fakeMazeRepo, *fakeBoard) {
	t.Helper()

	repo := newFakeMazeRepo()
	board := newFakeBoard()
	manager, err := NewRaceManager(&RaceManagerConfig{
		MazeRepo: repo,
		Board:    board,
		Logger:   log.New(io.Discard, "", 0),
	})
	require.NoError(t, err)
	return manager, repo, board
}

func storeMaze(t *testing.T, repo *fakeMazeRepo, seed int64) uuid.UUID {
	t.Helper()

	grid, err := mazegen.Generate(15, 15, seed)
	require.NoError(t, err)

	record := dmn.NewMazeRecord(uuid.New(), seed, grid)
	require.NoError(t, repo.Save(record))
	return record.ID
}

func TestNewRace(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown maze", func(t *testing.T) {
		manager, _, _ := newTestRaceManager(t)
		_, err := manager.NewRace(ctx, uuid.New(), nil)
		require.Error(t, err)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		manager, repo, _ := newTestRaceManager(t)
		mazeID := storeMaze(t, repo, 7)

		_, err := manager.NewRace(ctx, mazeID, []string{"dijkstra"})
		require.Error(t, err)
	})

	t.Run("defaults to all strategies", func(t *testing.T) {
		manager, repo, _ := newTestRaceManager(t)
		mazeID := storeMaze(t, repo, 7)

		view, err := manager.NewRace(ctx, mazeID, nil)
		require.NoError(t, err)
		require.Len(t, view.Solvers, 3)
		require.False(t, view.Done)
		for _, sv := range view.Solvers {
			require.Equal(t, "in_progress", sv.Result)
			require.Zero(t, sv.StepCount)
		}
	})

	t.Run("named subset", func(t *testing.T) {
		manager, repo, _ := newTestRaceManager(t)
		mazeID := storeMaze(t, repo, 7)

		view, err := manager.NewRace(ctx, mazeID, []string{"bfs", "astar"})
		require.NoError(t, err)
		require.Len(t, view.Solvers, 2)
		require.Equal(t, "bfs", view.Solvers[0].Strategy)
		require.Equal(t, "astar", view.Solvers[1].Strategy)
	})
}

func TestAdvance(t *testing.T) {
	ctx := context.Background()

	t.Run("race not found", func(t *testing.T) {
		manager, _, _ := newTestRaceManager(t)
		_, err := manager.Advance(ctx, uuid.New(), 10)
		require.ErrorIs(t, err, ErrRaceNotFound)
	})

	t.Run("runs to completion and reports once", func(t *testing.T) {
		manager, repo, board := newTestRaceManager(t)
		mazeID := storeMaze(t, repo, 11)

		view, err := manager.NewRace(ctx, mazeID, nil)
		require.NoError(t, err)

		for round := 0; !view.Done; round++ {
			require.Less(t, round, 100, "race did not finish")
			view, err = manager.Advance(ctx, view.ID, 50)
			require.NoError(t, err)
		}

		for _, sv := range view.Solvers {
			require.Equal(t, "found", sv.Result)
			require.NotEmpty(t, sv.Path)
		}

		boardKey := fmt.Sprintf(boardKeyFmt, mazeID)
		require.EqualValues(t, 3, board.Count(ctx, boardKey))

		// Stepping a finished race must not duplicate leaderboard rows.
		_, err = manager.Advance(ctx, view.ID, 50)
		require.NoError(t, err)
		require.EqualValues(t, 3, board.Count(ctx, boardKey))
	})

	t.Run("leaderboard orders by steps", func(t *testing.T) {
		manager, repo, _ := newTestRaceManager(t)
		mazeID := storeMaze(t, repo, 11)

		view, err := manager.NewRace(ctx, mazeID, nil)
		require.NoError(t, err)
		for !view.Done {
			view, err = manager.Advance(ctx, view.ID, 50)
			require.NoError(t, err)
		}

		entries, err := manager.Leaderboard(ctx, mazeID, 10)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for n := 1; n < len(entries); n++ {
			require.LessOrEqual(t, entries[n-1].Score, entries[n].Score)
		}
	})
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()

	manager, repo, _ := newTestRaceManager(t)
	mazeID := storeMaze(t, repo, 3)

	view, err := manager.NewRace(ctx, mazeID, []string{"bfs"})
	require.NoError(t, err)

	advanced, err := manager.Advance(ctx, view.ID, 5)
	require.NoError(t, err)

	// A snapshot reflects state without stepping any solver.
	snap, err := manager.Snapshot(view.ID)
	require.NoError(t, err)
	require.Equal(t, advanced.Solvers[0].StepCount, snap.Solvers[0].StepCount)

	again, err := manager.Snapshot(view.ID)
	require.NoError(t, err)
	require.Equal(t, snap.Solvers[0].StepCount, again.Solvers[0].StepCount)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	manager, repo, _ := newTestRaceManager(t)
	mazeID := storeMaze(t, repo, 3)

	view, err := manager.NewRace(ctx, mazeID, nil)
	require.NoError(t, err)

	manager.Remove(view.ID)
	_, err = manager.Snapshot(view.ID)
	require.ErrorIs(t, err, ErrRaceNotFound)

	// Removing an unknown race is a no-op.
	manager.Remove(uuid.New())
}
