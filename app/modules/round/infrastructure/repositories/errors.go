package rounddb

import "errors"

var (
	// ErrRoundNotFound means the round ID matched no stored round.
	ErrRoundNotFound = errors.New("round not found")

	// ErrRoundCourseNotFound means the round-course ID matched no stored
	// round/course association.
	ErrRoundCourseNotFound = errors.New("round course not found")

	// ErrDuplicateHoleEntry means a stroke entry already exists for the
	// (round course, golfer, hole) triple. The unique constraint raises it,
	// so concurrent submitters cannot both win.
	ErrDuplicateHoleEntry = errors.New("stroke entry already recorded for this hole")

	// ErrRoundFinalized means the round has been submitted and its ledger no
	// longer accepts strokes.
	ErrRoundFinalized = errors.New("round already finalized")
)
