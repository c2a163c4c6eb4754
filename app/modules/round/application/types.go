package roundservice

import (
	"time"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/results"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// StartRoundInput describes a round to create along with its course
// segments. TeeTimeText, when set, is parsed as natural language ("tomorrow
// at 9am") relative to the round date.
type StartRoundInput struct {
	ClubID      int64                `json:"club_id"`
	Date        time.Time            `json:"date_of_round"`
	PlayType    sharedtypes.PlayType `json:"play_type"`
	CreatedBy   sharedtypes.GolferID `json:"created_by"`
	TeeTimeText string               `json:"tee_time,omitempty"`
	Courses     []StartRoundCourse   `json:"courses"`
}

// StartRoundCourse is one course segment of a StartRoundInput.
type StartRoundCourse struct {
	CourseID  int64 `json:"course_id"`
	TeeID     int64 `json:"tee_id"`
	HoleCount int   `json:"hole_count"`
}

// StartRoundSuccessPayload reports a created round and its segment IDs.
type StartRoundSuccessPayload struct {
	Round          sharedtypes.RoundInfo       `json:"round"`
	PlayType       sharedtypes.PlayType        `json:"play_type"`
	TeeTime        *time.Time                  `json:"tee_time,omitempty"`
	RoundCourseIDs []sharedtypes.RoundCourseID `json:"round_course_ids"`
}

// StartRoundFailurePayload reports a rejected round creation.
type StartRoundFailurePayload struct {
	Reason string `json:"reason"`
}

// StartRoundResult is the operation envelope for StartRound.
type StartRoundResult = results.OperationResult[StartRoundSuccessPayload, StartRoundFailurePayload]

// RecordStrokeInput is one hole's entry for one golfer's ledger.
type RecordStrokeInput struct {
	RoundCourseID sharedtypes.RoundCourseID `json:"round_course_id"`
	GolferID      sharedtypes.GolferID      `json:"golfer_id"`
	HoleNumber    int                       `json:"hole_number"`
	Strokes       int                       `json:"strokes"`
	FairwayHit    bool                      `json:"fairway_hit"`
	GreenInReg    bool                      `json:"green_in_reg"`
	Putts         int                       `json:"number_of_putts"`
	BunkerShot    bool                      `json:"bunker_shot"`
}

// RecordStrokeSuccessPayload confirms an accepted ledger entry.
type RecordStrokeSuccessPayload struct {
	RoundCourseID sharedtypes.RoundCourseID `json:"round_course_id"`
	GolferID      sharedtypes.GolferID      `json:"golfer_id"`
	HoleNumber    int                       `json:"hole_number"`
}

// RecordStrokeFailurePayload reports a rejected ledger entry.
type RecordStrokeFailurePayload struct {
	RoundCourseID sharedtypes.RoundCourseID `json:"round_course_id"`
	GolferID      sharedtypes.GolferID      `json:"golfer_id"`
	HoleNumber    int                       `json:"hole_number"`
	Reason        string                    `json:"reason"`
}

// RecordStrokeResult is the operation envelope for RecordStroke.
type RecordStrokeResult = results.OperationResult[RecordStrokeSuccessPayload, RecordStrokeFailurePayload]

// ScorecardFailurePayload reports why a scorecard could not be built.
type ScorecardFailurePayload struct {
	RoundCourseID sharedtypes.RoundCourseID `json:"round_course_id"`
	GolferID      sharedtypes.GolferID      `json:"golfer_id"`
	Reason        string                    `json:"reason"`
}

// ScorecardResult is the operation envelope for GetScorecard.
type ScorecardResult = results.OperationResult[sharedtypes.Scorecard, ScorecardFailurePayload]

// SubmitRoundSuccessPayload reports a finalized round and the aggregates
// that were published for leaderboard recomputation.
type SubmitRoundSuccessPayload struct {
	RoundID    sharedtypes.RoundID                `json:"round_id"`
	PlayType   sharedtypes.PlayType               `json:"play_type"`
	Aggregates []sharedtypes.GolferRoundAggregate `json:"aggregates"`
}

// SubmitRoundFailurePayload reports a rejected submission.
type SubmitRoundFailurePayload struct {
	RoundID sharedtypes.RoundID `json:"round_id"`
	Reason  string              `json:"reason"`
}

// SubmitRoundResult is the operation envelope for SubmitRound.
type SubmitRoundResult = results.OperationResult[SubmitRoundSuccessPayload, SubmitRoundFailurePayload]
