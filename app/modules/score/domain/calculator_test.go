package scoredomain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

func TestCompute(t *testing.T) {
	agg := sharedtypes.GolferRoundAggregate{
		GolferID:     "golfer-1",
		HolesPlayed:  18,
		TotalStrokes: 72,
		HolesWon:     11,
	}

	tests := []struct {
		name     string
		playType sharedtypes.PlayType
		agg      sharedtypes.GolferRoundAggregate
		want     sharedtypes.Score
	}{
		{
			name:     "stroke play negates total strokes",
			playType: sharedtypes.PlayTypeStroke,
			agg:      agg,
			want:     -72,
		},
		{
			name:     "match play returns holes won",
			playType: sharedtypes.PlayTypeMatch,
			agg:      agg,
			want:     11,
		},
		{
			name:     "tournament play is stroke pass-through without adjustment",
			playType: sharedtypes.PlayTypeTournament,
			agg:      agg,
			want:     -72,
		},
		{
			name:     "tournament play applies supplied adjustment",
			playType: sharedtypes.PlayTypeTournament,
			agg: sharedtypes.GolferRoundAggregate{
				TotalStrokes: 72,
				Adjustment:   3,
			},
			want: -69,
		},
		{
			name:     "zero-hole aggregate yields zero score, not an omission",
			playType: sharedtypes.PlayTypeStroke,
			agg:      sharedtypes.GolferRoundAggregate{GolferID: "golfer-2"},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.playType, tt.agg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeInvalidPlayType(t *testing.T) {
	for _, pt := range []sharedtypes.PlayType{"", "skins", "MATCH", "stroke "} {
		_, err := Compute(pt, sharedtypes.GolferRoundAggregate{TotalStrokes: 72})
		require.Error(t, err, "play type %q", pt)
		assert.True(t, errors.Is(err, ErrInvalidPlayType))
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	agg := sharedtypes.GolferRoundAggregate{TotalStrokes: 85, HolesWon: 4, Adjustment: -2}
	for _, pt := range sharedtypes.PlayTypes() {
		first, err := Compute(pt, agg)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := Compute(pt, agg)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}
