package i

import "context"

// BoardEntry is one leaderboard row: a member and its score, lower being
// better.
type BoardEntry struct {
	Member string
	Score  float64
}

// ScoreBoard keeps per-maze leaderboards of finished solver runs.
type ScoreBoard interface {
	// Submit records a member with the given score on a board.
	Submit(ctx context.Context, board string, score float64, member string) error

	// Top returns up to n entries with the lowest scores, best first.
	Top(ctx context.Context, board string, n int64) ([]BoardEntry, error)

	// Count returns the number of entries on a board.
	Count(ctx context.Context, board string) int64
}
