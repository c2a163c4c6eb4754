package leaderboardservice

import (
	leaderboardevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/domain/events"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/results"
)

// TiePolicy controls how positions are assigned to tied scores.
type TiePolicy string

const (
	// TiePolicyCompetition gives tied golfers the same position and skips
	// the following positions (1, 1, 3). This is the default.
	TiePolicyCompetition TiePolicy = "competition"

	// TiePolicySequential numbers every row consecutively (1, 2, 3) with
	// golfer ID deciding order within a tie.
	TiePolicySequential TiePolicy = "sequential"
)

// ParseTiePolicy maps a config string to a TiePolicy, defaulting to
// competition ranking.
func ParseTiePolicy(s string) TiePolicy {
	if TiePolicy(s) == TiePolicySequential {
		return TiePolicySequential
	}
	return TiePolicyCompetition
}

// LeaderboardOperationResult is the operation envelope shared by the
// leaderboard operations; the success payload is the standings snapshot the
// update event carries.
type LeaderboardOperationResult = results.OperationResult[leaderboardevents.LeaderboardUpdatedPayload, leaderboardevents.LeaderboardUpdateFailedPayload]
