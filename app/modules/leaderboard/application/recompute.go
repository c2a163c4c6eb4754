package leaderboardservice

import (
	"context"

	"github.com/uptrace/bun"

	leaderboardevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/domain/events"
	leaderboarddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/infrastructure/repositories"
	scoredomain "github.com/Shore-Tour-Club/golf-tracker/app/modules/score/domain"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/results"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// RecomputeFromAggregates rebuilds one round's standings from supplied
// aggregates. Score computation, ranking, and the upsert run inside one
// transaction so readers never see a half-updated board. The operation is
// idempotent: replaying the same aggregates leaves the board unchanged.
func (s *LeaderboardService) RecomputeFromAggregates(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType, aggregates []sharedtypes.GolferRoundAggregate) (LeaderboardOperationResult, error) {
	return withTelemetry(s, ctx, "RecomputeLeaderboard", roundID, func(ctx context.Context) (LeaderboardOperationResult, error) {
		if !playType.Valid() {
			return failUpdate(roundID, playType, scoredomain.ErrInvalidPlayType.Error()), nil
		}
		if len(aggregates) == 0 {
			return failUpdate(roundID, playType, ErrNoAggregates.Error()), nil
		}

		// A golfer can appear once per segment of a multi-course round; the
		// leaderboard carries one row per golfer, so segment scores sum.
		perGolfer := make(map[sharedtypes.GolferID]sharedtypes.Score, len(aggregates))
		for _, agg := range aggregates {
			score, err := scoredomain.Compute(playType, agg)
			if err != nil {
				return LeaderboardOperationResult{}, err
			}
			perGolfer[agg.GolferID] += score
		}

		scored := make([]scoredGolfer, 0, len(perGolfer))
		for golferID, score := range perGolfer {
			scored = append(scored, scoredGolfer{GolferID: golferID, Score: score})
		}
		views := rank(scored, s.tiePolicy)

		entries := make([]leaderboarddb.LeaderboardEntry, len(views))
		for i, v := range views {
			entries[i] = leaderboarddb.LeaderboardEntry{
				RoundID:  roundID,
				GolferID: v.GolferID,
				PlayType: playType,
				Score:    v.Score,
				Position: v.Position,
			}
		}

		result, err := runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (LeaderboardOperationResult, error) {
			if err := s.repo.UpsertEntries(ctx, db, entries); err != nil {
				return LeaderboardOperationResult{}, err
			}
			return results.SuccessResult[leaderboardevents.LeaderboardUpdatedPayload, leaderboardevents.LeaderboardUpdateFailedPayload](leaderboardevents.LeaderboardUpdatedPayload{
				RoundID:  roundID,
				PlayType: playType,
				Entries:  views,
			}), nil
		})
		if err != nil {
			return result, err
		}

		s.logger.InfoContext(ctx, "Leaderboard recomputed",
			attr.ExtractCorrelationID(ctx),
			attr.RoundID("round_id", roundID),
			attr.PlayType("play_type", playType),
			attr.Int("num_entries", len(views)),
		)
		return result, nil
	})
}

// Recompute pulls a round's aggregates from the round module and rebuilds
// the standings. This is the on-demand path; the event-driven path feeds
// RecomputeFromAggregates directly from the submitted payload.
func (s *LeaderboardService) Recompute(ctx context.Context, roundID sharedtypes.RoundID) (LeaderboardOperationResult, error) {
	playType, aggregates, err := s.aggregates.GolferRoundAggregates(ctx, roundID)
	if err != nil {
		return LeaderboardOperationResult{}, err
	}
	return s.RecomputeFromAggregates(ctx, roundID, playType, aggregates)
}

func failUpdate(roundID sharedtypes.RoundID, playType sharedtypes.PlayType, reason string) LeaderboardOperationResult {
	return results.FailureResult[leaderboardevents.LeaderboardUpdatedPayload](leaderboardevents.LeaderboardUpdateFailedPayload{
		RoundID:  roundID,
		PlayType: playType,
		Reason:   reason,
	})
}
