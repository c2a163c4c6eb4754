// Package leaderboardevents defines the leaderboard module's published
// topics and payloads.
package leaderboardevents

import "github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"

const (
	// LeaderboardUpdated announces a freshly recomputed leaderboard.
	LeaderboardUpdated = "leaderboard.updated"

	// LeaderboardUpdateFailed reports a recomputation the module rejected.
	LeaderboardUpdateFailed = "leaderboard.update.failed"
)

// LeaderboardUpdatedPayload carries the full recomputed standings.
type LeaderboardUpdatedPayload struct {
	RoundID  sharedtypes.RoundID                `json:"round_id"`
	PlayType sharedtypes.PlayType               `json:"play_type"`
	Entries  []sharedtypes.LeaderboardEntryView `json:"entries"`
}

// LeaderboardUpdateFailedPayload reports why a recomputation was rejected.
type LeaderboardUpdateFailedPayload struct {
	RoundID  sharedtypes.RoundID  `json:"round_id"`
	PlayType sharedtypes.PlayType `json:"play_type"`
	Reason   string               `json:"reason"`
}
