package roundservice

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	roundevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/domain/events"
	rounddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/results"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/utils"
)

// SubmitRound finalizes a round, snapshots its aggregates, and publishes them
// for leaderboard recomputation. Finalizing and snapshotting share one
// transaction so a submitted round's aggregates are frozen at submit time.
func (s *RoundService) SubmitRound(ctx context.Context, roundID sharedtypes.RoundID, submittedBy sharedtypes.GolferID) (SubmitRoundResult, error) {
	return withTelemetry(s, ctx, "SubmitRound", roundID, func(ctx context.Context) (SubmitRoundResult, error) {
		result, err := runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (SubmitRoundResult, error) {
			round, err := s.repo.GetRound(ctx, db, roundID)
			if err != nil {
				if errors.Is(err, rounddb.ErrRoundNotFound) {
					return failSubmit(roundID, err.Error()), nil
				}
				return SubmitRoundResult{}, err
			}

			if err := s.repo.FinalizeRound(ctx, db, roundID); err != nil {
				if errors.Is(err, rounddb.ErrRoundFinalized) {
					return failSubmit(roundID, err.Error()), nil
				}
				return SubmitRoundResult{}, err
			}

			entries, err := s.repo.ListStrokesForRound(ctx, db, roundID)
			if err != nil {
				return SubmitRoundResult{}, err
			}
			if len(entries) == 0 {
				return failSubmit(roundID, "no strokes recorded for round"), nil
			}

			return results.SuccessResult[SubmitRoundSuccessPayload, SubmitRoundFailurePayload](SubmitRoundSuccessPayload{
				RoundID:    roundID,
				PlayType:   round.PlayType,
				Aggregates: buildAggregates(entries),
			}), nil
		})
		if err != nil || result.IsFailure() {
			return result, err
		}

		if s.EventBus != nil {
			msg, err := utils.NewMessage(roundevents.RoundScoresSubmittedPayload{
				RoundID:    roundID,
				PlayType:   result.Success.PlayType,
				Aggregates: result.Success.Aggregates,
			}, roundevents.RoundScoresSubmitted)
			if err != nil {
				return SubmitRoundResult{}, err
			}
			if err := s.EventBus.Publish(roundevents.RoundScoresSubmitted, msg); err != nil {
				// The round is already final; surface the publish failure so
				// callers can fall back to an on-demand recompute.
				s.logger.ErrorContext(ctx, "Failed to publish submitted scores",
					attr.ExtractCorrelationID(ctx),
					attr.RoundID("round_id", roundID),
					attr.GolferID("submitted_by", submittedBy),
					attr.Error(err),
				)
				return SubmitRoundResult{}, err
			}
		}

		s.logger.InfoContext(ctx, "Round submitted",
			attr.ExtractCorrelationID(ctx),
			attr.RoundID("round_id", roundID),
			attr.GolferID("submitted_by", submittedBy),
			attr.Int("num_aggregates", len(result.Success.Aggregates)),
		)

		return result, nil
	})
}

func failSubmit(roundID sharedtypes.RoundID, reason string) SubmitRoundResult {
	return results.FailureResult[SubmitRoundSuccessPayload](SubmitRoundFailurePayload{
		RoundID: roundID,
		Reason:  reason,
	})
}
