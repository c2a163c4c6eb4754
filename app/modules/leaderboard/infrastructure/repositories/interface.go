package leaderboarddb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// Repository is the leaderboard module's storage surface. Methods accept a
// bun.IDB so recomputation can run its reads and writes in one transaction;
// a nil db falls back to the repository's own connection.
type Repository interface {
	UpsertEntries(ctx context.Context, db bun.IDB, entries []LeaderboardEntry) error
	GetEntries(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) ([]LeaderboardEntry, error)
}
