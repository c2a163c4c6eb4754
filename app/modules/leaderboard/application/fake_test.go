package leaderboardservice

import (
	"context"

	"github.com/uptrace/bun"

	leaderboarddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/infrastructure/repositories"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// ------------------------
// Fake Leaderboard Repo
// ------------------------

// FakeLeaderboardRepository provides a programmable stub for the
// leaderboarddb.Repository interface. Its default behavior is an in-memory
// board keyed the same way as the real unique constraint, so upsert
// semantics can be exercised without Postgres.
type FakeLeaderboardRepository struct {
	trace []string

	UpsertEntriesFunc func(ctx context.Context, db bun.IDB, entries []leaderboarddb.LeaderboardEntry) error
	GetEntriesFunc    func(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) ([]leaderboarddb.LeaderboardEntry, error)

	board map[string]leaderboarddb.LeaderboardEntry
}

// NewFakeLeaderboardRepository initializes a new FakeLeaderboardRepository with an empty trace.
func NewFakeLeaderboardRepository() *FakeLeaderboardRepository {
	return &FakeLeaderboardRepository{
		trace: []string{},
		board: map[string]leaderboarddb.LeaderboardEntry{},
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeLeaderboardRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeLeaderboardRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func boardKey(e leaderboarddb.LeaderboardEntry) string {
	return e.RoundID.String() + "|" + string(e.GolferID) + "|" + string(e.PlayType)
}

func (f *FakeLeaderboardRepository) UpsertEntries(ctx context.Context, db bun.IDB, entries []leaderboarddb.LeaderboardEntry) error {
	f.record("UpsertEntries")
	if f.UpsertEntriesFunc != nil {
		return f.UpsertEntriesFunc(ctx, db, entries)
	}
	for _, e := range entries {
		f.board[boardKey(e)] = e
	}
	return nil
}

func (f *FakeLeaderboardRepository) GetEntries(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) ([]leaderboarddb.LeaderboardEntry, error) {
	f.record("GetEntries")
	if f.GetEntriesFunc != nil {
		return f.GetEntriesFunc(ctx, db, roundID, playType)
	}
	var out []leaderboarddb.LeaderboardEntry
	for _, e := range f.board {
		if e.RoundID == roundID && e.PlayType == playType {
			out = append(out, e)
		}
	}
	return out, nil
}

// BoardSize reports how many rows the in-memory board holds.
func (f *FakeLeaderboardRepository) BoardSize() int { return len(f.board) }

var _ leaderboarddb.Repository = (*FakeLeaderboardRepository)(nil)

// ------------------------
// Fake Aggregate Source
// ------------------------

// FakeAggregateSource provides a programmable stub for AggregateSource.
type FakeAggregateSource struct {
	PlayType   sharedtypes.PlayType
	Aggregates []sharedtypes.GolferRoundAggregate
	Err        error
}

func (f *FakeAggregateSource) GolferRoundAggregates(ctx context.Context, roundID sharedtypes.RoundID) (sharedtypes.PlayType, []sharedtypes.GolferRoundAggregate, error) {
	if f.Err != nil {
		return "", nil, f.Err
	}
	return f.PlayType, f.Aggregates, nil
}
