package leaderboarddb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// LeaderboardEntry is one golfer's placed score for one round and play type.
// The (round_id, golfer_id, play_type) unique constraint makes recomputation
// an upsert: replaying the same round updates rows instead of duplicating
// them.
type LeaderboardEntry struct {
	bun.BaseModel `bun:"table:leaderboard_entries,alias:le"`

	ID        int64                `bun:"id,pk,autoincrement"`
	RoundID   sharedtypes.RoundID  `bun:"round_id,notnull,type:uuid,unique:uq_leaderboard_entry"`
	GolferID  sharedtypes.GolferID `bun:"golfer_id,notnull,unique:uq_leaderboard_entry"`
	PlayType  sharedtypes.PlayType `bun:"play_type,notnull,unique:uq_leaderboard_entry"`
	Score     sharedtypes.Score    `bun:"score,notnull"`
	Position  int                  `bun:"position,notnull"`
	UpdatedAt time.Time            `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
