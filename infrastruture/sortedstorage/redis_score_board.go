package sortedstorage

import (
	"context"
	"time"

	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// maxBoardSize caps each leaderboard; entries beyond the best N are trimmed.
const maxBoardSize = 100

// RedisScoreBoard keeps per-maze leaderboards in Redis sorted sets with TTL
// support. Lower scores rank higher.
type RedisScoreBoard struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisScoreBoard initializes a RedisScoreBoard with the provided Redis client and TTL.
func NewRedisScoreBoard(client *redis.Client, ttlSeconds int) (i.ScoreBoard, error) {
	board := &RedisScoreBoard{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Submit records a member with the given score and sets expiration if
// necessary. The submit-and-trim pair runs under a distributed lock so two
// instances cannot trim each other's fresh entries.
func (sb *RedisScoreBoard) Submit(ctx context.Context, board string, score float64, member string) error {
	mutex := sb.locker.NewMutex(board + ":submit_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	if _, err := sb.client.ZAdd(ctx, board, redis.Z{Score: score, Member: member}).Result(); err != nil {
		return err
	}

	if err := sb.client.ZRemRangeByRank(ctx, board, maxBoardSize, -1).Err(); err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := sb.client.TTL(ctx, board).Result()
	if err == nil && ttl == -1 {
		_ = sb.client.Expire(ctx, board, sb.ttl).Err()
	}

	return nil
}

// Top returns up to n entries with the lowest scores, best first.
func (sb *RedisScoreBoard) Top(ctx context.Context, board string, n int64) ([]i.BoardEntry, error) {
	raw, err := sb.client.ZRangeWithScores(ctx, board, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]i.BoardEntry, 0, len(raw))
	for _, z := range raw {
		member, _ := z.Member.(string)
		entries = append(entries, i.BoardEntry{Member: member, Score: z.Score})
	}
	return entries, nil
}

// Count returns the number of entries on a board.
func (sb *RedisScoreBoard) Count(ctx context.Context, board string) int64 {
	return sb.client.ZCard(ctx, board).Val()
}
