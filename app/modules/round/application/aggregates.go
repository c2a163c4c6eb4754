package roundservice

import (
	"context"
	"sort"

	rounddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// GolferRoundAggregates folds the full stroke ledger of a round into one
// aggregate per golfer per segment, with holes-won derived for match play.
// A hole is won outright or not at all: the lowest stroke count on a hole
// wins it only when no other golfer matches it.
func (s *RoundService) GolferRoundAggregates(ctx context.Context, roundID sharedtypes.RoundID) (sharedtypes.PlayType, []sharedtypes.GolferRoundAggregate, error) {
	round, err := s.repo.GetRound(ctx, nil, roundID)
	if err != nil {
		return "", nil, err
	}

	entries, err := s.repo.ListStrokesForRound(ctx, nil, roundID)
	if err != nil {
		return "", nil, err
	}

	return round.PlayType, buildAggregates(entries), nil
}

type aggregateKey struct {
	golferID      sharedtypes.GolferID
	roundCourseID sharedtypes.RoundCourseID
}

type holeKey struct {
	roundCourseID sharedtypes.RoundCourseID
	holeNumber    int
}

func buildAggregates(entries []rounddb.StrokeEntry) []sharedtypes.GolferRoundAggregate {
	totals := make(map[aggregateKey]*sharedtypes.GolferRoundAggregate)
	holes := make(map[holeKey][]rounddb.StrokeEntry)

	for _, e := range entries {
		key := aggregateKey{e.GolferID, e.RoundCourseID}
		agg, ok := totals[key]
		if !ok {
			agg = &sharedtypes.GolferRoundAggregate{
				GolferID:      e.GolferID,
				RoundCourseID: e.RoundCourseID,
			}
			totals[key] = agg
		}
		agg.HolesPlayed++
		agg.TotalStrokes += e.Strokes

		hk := holeKey{e.RoundCourseID, e.HoleNumber}
		holes[hk] = append(holes[hk], e)
	}

	for _, contenders := range holes {
		if winner, ok := holeWinner(contenders); ok {
			totals[aggregateKey{winner.GolferID, winner.RoundCourseID}].HolesWon++
		}
	}

	out := make([]sharedtypes.GolferRoundAggregate, 0, len(totals))
	for _, agg := range totals {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RoundCourseID != out[j].RoundCourseID {
			return out[i].RoundCourseID.String() < out[j].RoundCourseID.String()
		}
		return out[i].GolferID < out[j].GolferID
	})
	return out
}

// holeWinner finds the golfer with the unique lowest stroke count on one
// hole. A tied low means the hole is halved and nobody wins it.
func holeWinner(contenders []rounddb.StrokeEntry) (rounddb.StrokeEntry, bool) {
	if len(contenders) == 0 {
		return rounddb.StrokeEntry{}, false
	}
	best := contenders[0]
	tied := false
	for _, c := range contenders[1:] {
		switch {
		case c.Strokes < best.Strokes:
			best = c
			tied = false
		case c.Strokes == best.Strokes:
			tied = true
		}
	}
	if tied {
		return rounddb.StrokeEntry{}, false
	}
	return best, true
}
