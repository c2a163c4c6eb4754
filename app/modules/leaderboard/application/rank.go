package leaderboardservice

import (
	"sort"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// scoredGolfer is one golfer's computed score before ranking. Scores from
// multiple segments of the same round are summed before this point.
type scoredGolfer struct {
	GolferID sharedtypes.GolferID
	Score    sharedtypes.Score
}

// rank orders scored golfers best first and assigns positions under the
// given tie policy. Ordering is total: score descending, then golfer ID, so
// identical input always yields identical output.
func rank(scored []scoredGolfer, policy TiePolicy) []sharedtypes.LeaderboardEntryView {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].GolferID < scored[j].GolferID
	})

	views := make([]sharedtypes.LeaderboardEntryView, len(scored))
	for i, sg := range scored {
		position := i + 1
		if policy == TiePolicyCompetition && i > 0 && sg.Score == scored[i-1].Score {
			position = views[i-1].Position
		}
		views[i] = sharedtypes.LeaderboardEntryView{
			GolferID: sg.GolferID,
			Score:    sg.Score,
			Position: position,
		}
	}
	return views
}
