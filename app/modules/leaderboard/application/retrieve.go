package leaderboardservice

import (
	"context"

	leaderboardevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/domain/events"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/results"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// GetLeaderboard reads the stored standings for one round and play type. An
// empty board is a handled failure, not an error; the round may simply not
// have been recomputed yet.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) (LeaderboardOperationResult, error) {
	return withTelemetry(s, ctx, "GetLeaderboard", roundID, func(ctx context.Context) (LeaderboardOperationResult, error) {
		if !playType.Valid() {
			return failUpdate(roundID, playType, "invalid play type: "+playType.String()), nil
		}

		entries, err := s.repo.GetEntries(ctx, nil, roundID, playType)
		if err != nil {
			return LeaderboardOperationResult{}, err
		}
		if len(entries) == 0 {
			return failUpdate(roundID, playType, ErrLeaderboardNotFound.Error()), nil
		}

		views := make([]sharedtypes.LeaderboardEntryView, len(entries))
		for i, e := range entries {
			views[i] = sharedtypes.LeaderboardEntryView{
				GolferID: e.GolferID,
				Score:    e.Score,
				Position: e.Position,
			}
		}

		return results.SuccessResult[leaderboardevents.LeaderboardUpdatedPayload, leaderboardevents.LeaderboardUpdateFailedPayload](leaderboardevents.LeaderboardUpdatedPayload{
			RoundID:  roundID,
			PlayType: playType,
			Entries:  views,
		}), nil
	})
}
