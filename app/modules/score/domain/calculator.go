// Package scoredomain holds the pure score calculation logic. It has no
// dependencies on storage or transport so it can be exercised directly.
package scoredomain

import (
	"errors"
	"fmt"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// ErrInvalidPlayType is returned for any value outside the closed PlayType
// enumeration. Callers propagate it unchanged.
var ErrInvalidPlayType = errors.New("invalid play type")

// Compute maps one golfer-round aggregate to a comparable score for the
// given play type.
//
// Every branch emits scores on the same scale: HIGHER SORTS BETTER. The
// leaderboard sorts descending and never special-cases a play type, so:
//
//   - stroke play emits the negated stroke total (fewer strokes, higher score)
//   - match play emits the holes-won count supplied in the aggregate
//   - tournament play is stroke play plus the supplied adjustment
//
// Identical inputs always produce identical output.
func Compute(playType sharedtypes.PlayType, agg sharedtypes.GolferRoundAggregate) (sharedtypes.Score, error) {
	switch playType {
	case sharedtypes.PlayTypeStroke:
		return sharedtypes.Score(-agg.TotalStrokes), nil
	case sharedtypes.PlayTypeMatch:
		return sharedtypes.Score(agg.HolesWon), nil
	case sharedtypes.PlayTypeTournament:
		return sharedtypes.Score(-agg.TotalStrokes + agg.Adjustment), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPlayType, playType)
	}
}
