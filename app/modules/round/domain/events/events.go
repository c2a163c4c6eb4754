// Package roundevents defines the round module's published topics and
// payloads. Payload shapes are the contract with the leaderboard module;
// change them only additively.
package roundevents

import (
	"time"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

const (
	// RoundCreated announces a newly started round.
	RoundCreated = "round.created"

	// RoundScoresSubmitted carries the finalized aggregates of a round so the
	// leaderboard can recompute without a read back into round storage.
	RoundScoresSubmitted = "round.scores.submitted"

	// RoundSubmissionFailed reports a submit attempt the round module
	// rejected.
	RoundSubmissionFailed = "round.submission.failed"

	// RoundTeeTimeReminder fires shortly before a round's tee time.
	RoundTeeTimeReminder = "round.teetime.reminder"
)

// RoundCreatedPayload announces a new round to interested modules.
type RoundCreatedPayload struct {
	RoundID  sharedtypes.RoundID  `json:"round_id"`
	ClubID   int64                `json:"club_id"`
	PlayType sharedtypes.PlayType `json:"play_type"`
	Date     time.Time            `json:"date_of_round"`
	TeeTime  *time.Time           `json:"tee_time,omitempty"`
}

// RoundScoresSubmittedPayload is the submit-time snapshot of a round's
// per-golfer aggregates.
type RoundScoresSubmittedPayload struct {
	RoundID    sharedtypes.RoundID                `json:"round_id"`
	PlayType   sharedtypes.PlayType               `json:"play_type"`
	Aggregates []sharedtypes.GolferRoundAggregate `json:"aggregates"`
}

// TeeTimeReminderPayload is published when a scheduled reminder fires.
type TeeTimeReminderPayload struct {
	RoundID sharedtypes.RoundID `json:"round_id"`
	ClubID  int64               `json:"club_id"`
	TeeTime time.Time           `json:"tee_time"`
}

// RoundSubmissionFailedPayload reports why a submit was rejected.
type RoundSubmissionFailedPayload struct {
	RoundID sharedtypes.RoundID `json:"round_id"`
	Reason  string              `json:"reason"`
}
