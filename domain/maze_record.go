package domain

import (
	"strings"
	"time"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/google/uuid"
)

// MazeRecord represents the BSON version of a stored maze. The grid itself
// is kept in the plain-text format: one line per row, one character per
// column.
type MazeRecord struct {
	ID        uuid.UUID `bson:"_id"`
	Width     int       `bson:"width"`
	Height    int       `bson:"height"`
	Seed      int64     `bson:"seed"`
	Grid      string    `bson:"grid"`
	CreatedAt time.Time `bson:"createdAt"`
}

// NewMazeRecord wraps a generated grid for storage.
func NewMazeRecord(id uuid.UUID, seed int64, grid *maze.Grid) *MazeRecord {
	return &MazeRecord{
		ID:        id,
		Width:     grid.Width(),
		Height:    grid.Height(),
		Seed:      seed,
		Grid:      grid.String(),
		CreatedAt: time.Now().UTC(),
	}
}

// Parse decodes the stored text back into a grid.
func (r *MazeRecord) Parse() (*maze.Grid, error) {
	grid, err := maze.Parse(strings.NewReader(r.Grid), nil)
	if err != nil {
		return nil, err
	}
	return grid, nil
}
