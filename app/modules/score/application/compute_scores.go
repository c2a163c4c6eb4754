package scoreservice

import (
	"context"
	"sort"

	scoredomain "github.com/Shore-Tour-Club/golf-tracker/app/modules/score/domain"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/results"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// ComputeRoundScores maps every aggregate of a round through the play type's
// calculator. The play type is validated once up front; a round never mixes
// play types, so a single invalid value fails the whole batch.
func (s *ScoreService) ComputeRoundScores(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType, aggregates []sharedtypes.GolferRoundAggregate) (ScoreOperationResult, error) {
	return withTelemetry(s, ctx, "ComputeRoundScores", roundID, func(ctx context.Context) (ScoreOperationResult, error) {
		if !playType.Valid() {
			s.logger.WarnContext(ctx, "Rejecting unknown play type",
				attr.ExtractCorrelationID(ctx),
				attr.RoundID("round_id", roundID),
				attr.PlayType("play_type", playType),
			)
			return results.FailureResult[RoundScoresComputedPayload](RoundScoresComputeFailedPayload{
				RoundID:  roundID,
				PlayType: playType,
				Reason:   scoredomain.ErrInvalidPlayType.Error(),
			}), nil
		}

		scored := make([]ScoredAggregate, 0, len(aggregates))
		for _, agg := range aggregates {
			score, err := scoredomain.Compute(playType, agg)
			if err != nil {
				return ScoreOperationResult{}, err
			}
			scored = append(scored, ScoredAggregate{
				GolferID:      agg.GolferID,
				RoundCourseID: agg.RoundCourseID,
				Score:         score,
			})
		}

		// Deterministic output order regardless of aggregate order.
		sort.Slice(scored, func(i, j int) bool {
			if scored[i].Score != scored[j].Score {
				return scored[i].Score > scored[j].Score
			}
			return scored[i].GolferID < scored[j].GolferID
		})

		s.logger.InfoContext(ctx, "Computed round scores",
			attr.ExtractCorrelationID(ctx),
			attr.RoundID("round_id", roundID),
			attr.PlayType("play_type", playType),
			attr.Int("num_scores", len(scored)),
		)

		return results.SuccessResult[RoundScoresComputedPayload, RoundScoresComputeFailedPayload](RoundScoresComputedPayload{
			RoundID:  roundID,
			PlayType: playType,
			Scores:   scored,
		}), nil
	})
}
