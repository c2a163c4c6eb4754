package roundservice

import (
	"context"
	"errors"

	rounddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/results"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// GetScorecard rebuilds one golfer's scorecard from the ledger. The scorecard
// is purely derived; nothing is cached or stored.
func (s *RoundService) GetScorecard(ctx context.Context, roundCourseID sharedtypes.RoundCourseID, golferID sharedtypes.GolferID) (ScorecardResult, error) {
	rc, err := s.repo.GetRoundCourse(ctx, nil, roundCourseID)
	if err != nil {
		if errors.Is(err, rounddb.ErrRoundCourseNotFound) {
			return results.FailureResult[sharedtypes.Scorecard](ScorecardFailurePayload{
				RoundCourseID: roundCourseID,
				GolferID:      golferID,
				Reason:        err.Error(),
			}), nil
		}
		return ScorecardResult{}, err
	}

	return withTelemetry(s, ctx, "GetScorecard", rc.RoundID, func(ctx context.Context) (ScorecardResult, error) {
		entries, err := s.repo.ListStrokes(ctx, nil, roundCourseID, golferID)
		if err != nil {
			return ScorecardResult{}, err
		}

		card := sharedtypes.Scorecard{
			GolferID:      golferID,
			RoundCourseID: roundCourseID,
			Entries:       make([]sharedtypes.ScorecardEntry, 0, len(entries)),
		}
		// Repository order is (golfer, hole); with one golfer that is hole order.
		for _, e := range entries {
			card.Entries = append(card.Entries, sharedtypes.ScorecardEntry{
				HoleNumber: e.HoleNumber,
				Strokes:    e.Strokes,
				FairwayHit: e.FairwayHit,
				GreenInReg: e.GreenInReg,
				Putts:      e.Putts,
				BunkerShot: e.BunkerShot,
			})
			card.TotalStrokes += e.Strokes
		}

		return results.SuccessResult[sharedtypes.Scorecard, ScorecardFailurePayload](card), nil
	})
}
