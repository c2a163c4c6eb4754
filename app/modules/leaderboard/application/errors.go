package leaderboardservice

import "errors"

var (
	// ErrLeaderboardNotFound means no standings exist for the requested
	// round and play type.
	ErrLeaderboardNotFound = errors.New("leaderboard not found")

	// ErrNoAggregates means a recompute was requested for a round with no
	// recorded strokes.
	ErrNoAggregates = errors.New("no aggregates for round")
)
