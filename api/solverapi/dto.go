// Package solverapi provides structures and utilities for solver race and
// leaderboard requests.
package solverapi

import (
	"github.com/google/uuid"
)

// CreateRaceRequest starts a race on a stored maze. Strategies may name any
// subset of bfs, dfs and astar; all three race when the list is empty.
type CreateRaceRequest struct {
	MazeID     uuid.UUID `json:"maze_id" binding:"required"`
	Strategies []string  `json:"strategies"`
}

// StepRequest advances a race by up to Count expansions per solver.
type StepRequest struct {
	Count int `json:"count"`
}

// LeaderboardResponse lists the best finished runs on a maze, fewest steps
// first.
type LeaderboardResponse struct {
	MazeID  string             `json:"maze_id"`
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardEntry is one leaderboard row.
type LeaderboardEntry struct {
	Run   string `json:"run"`
	Steps int    `json:"steps"`
}
