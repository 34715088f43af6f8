package service

import (
	"fmt"
	"log"

	"github.com/beka-birhanu/maze-solver-api/config"
	dmn "github.com/beka-birhanu/maze-solver-api/domain"
	"github.com/beka-birhanu/maze-solver-api/mazegen"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/google/uuid"
)

// Maze generates mazes and stores them through the maze repository.
type Maze struct {
	mazeRepo i.MazeRepo
	logger   *log.Logger
}

// NewMazeService creates a Maze service backed by the given repository.
func NewMazeService(mazeRepo i.MazeRepo, logger *log.Logger) (*Maze, error) {
	return &Maze{
		mazeRepo: mazeRepo,
		logger:   logger,
	}, nil
}

// Create generates a maze of the given dimensions from the seed and persists
// it. Dimension validation is the generator's; its error passes through
// unchanged.
func (m *Maze) Create(width, height int, seed int64) (*dmn.MazeRecord, error) {
	grid, err := mazegen.Generate(width, height, seed)
	if err != nil {
		return nil, err
	}

	record := dmn.NewMazeRecord(uuid.New(), seed, grid)
	if err := m.mazeRepo.Save(record); err != nil {
		return nil, fmt.Errorf("storing maze: %w", err)
	}

	m.logger.Printf("%s[INFO]%s generated %dx%d maze %s (seed %d)", config.LogInfoColor, config.LogColorReset, width, height, record.ID, seed)
	return record, nil
}

// Get retrieves a stored maze by ID.
func (m *Maze) Get(id uuid.UUID) (*dmn.MazeRecord, error) {
	return m.mazeRepo.ByID(id)
}
