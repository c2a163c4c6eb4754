package leaderboarddb

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// LeaderboardDBImpl implements Repository on Postgres via bun.
type LeaderboardDBImpl struct {
	DB *bun.DB
}

func (r *LeaderboardDBImpl) conn(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

// UpsertEntries writes a recomputed snapshot. The conflict target is the
// (round_id, golfer_id, play_type) unique constraint, so a replay updates
// score and position in place and adds rows only for golfers new to the
// round.
func (r *LeaderboardDBImpl) UpsertEntries(ctx context.Context, db bun.IDB, entries []LeaderboardEntry) error {
	if len(entries) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := range entries {
		entries[i].UpdatedAt = now
	}

	_, err := r.conn(db).NewInsert().
		Model(&entries).
		On("CONFLICT (round_id, golfer_id, play_type) DO UPDATE").
		Set("score = EXCLUDED.score").
		Set("position = EXCLUDED.position").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert %d leaderboard entries: %w", len(entries), err)
	}
	return nil
}

// GetEntries returns the stored snapshot for one round and play type,
// ordered by position with golfer ID as the visible tiebreak.
func (r *LeaderboardDBImpl) GetEntries(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := r.conn(db).NewSelect().
		Model(&entries).
		Where("le.round_id = ?", roundID).
		Where("le.play_type = ?", playType).
		Order("le.position ASC", "le.golfer_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard for round %s: %w", roundID, err)
	}
	return entries, nil
}

var _ Repository = (*LeaderboardDBImpl)(nil)
