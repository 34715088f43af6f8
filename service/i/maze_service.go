package i

import (
	dmn "github.com/beka-birhanu/maze-solver-api/domain"
	"github.com/google/uuid"
)

// MazeService generates and retrieves stored mazes.
type MazeService interface {
	// Create generates a maze of the given dimensions from the seed and
	// persists it.
	Create(width, height int, seed int64) (*dmn.MazeRecord, error)

	// Get retrieves a stored maze by ID.
	Get(id uuid.UUID) (*dmn.MazeRecord, error)
}
