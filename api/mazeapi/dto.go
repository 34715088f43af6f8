// Package mazeapi provides structures and utilities for maze generation and
// retrieval requests.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/maze-solver-api/domain"
)

// GenerateRequest asks for a new maze. The seed is optional; a wall-clock
// seed is used when it is absent, so repeated requests differ.
type GenerateRequest struct {
	Width  int    `json:"width" binding:"required,min=3"`
	Height int    `json:"height" binding:"required,min=3"`
	Seed   *int64 `json:"seed"`
}

// MazeResponse carries a stored maze, grid included in its text form.
type MazeResponse struct {
	ID        string    `json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Seed      int64     `json:"seed"`
	Grid      string    `json:"grid"`
	CreatedAt time.Time `json:"created_at"`
}

// newMazeResponse maps a maze record to its response form.
func newMazeResponse(record *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:        record.ID.String(),
		Width:     record.Width,
		Height:    record.Height,
		Seed:      record.Seed,
		Grid:      record.Grid,
		CreatedAt: record.CreatedAt,
	}
}
