package roundservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	rounddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

func TestGetScorecardBuildsFromLedger(t *testing.T) {
	rcID := sharedtypes.RoundCourseID(uuid.New())
	repo := NewFakeRoundRepository()
	repo.ListStrokesFunc = func(ctx context.Context, db bun.IDB, roundCourseID sharedtypes.RoundCourseID, golferID sharedtypes.GolferID) ([]rounddb.StrokeEntry, error) {
		return []rounddb.StrokeEntry{
			{RoundCourseID: rcID, GolferID: "alice", HoleNumber: 1, Strokes: 4, FairwayHit: true, Putts: 2},
			{RoundCourseID: rcID, GolferID: "alice", HoleNumber: 2, Strokes: 3, GreenInReg: true, Putts: 1},
			{RoundCourseID: rcID, GolferID: "alice", HoleNumber: 3, Strokes: 5, BunkerShot: true, Putts: 2},
		}, nil
	}
	s := newTestService(repo, nil)

	result, err := s.GetScorecard(context.Background(), rcID, "alice")
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	card := *result.Success
	assert.Equal(t, sharedtypes.GolferID("alice"), card.GolferID)
	assert.Equal(t, 12, card.TotalStrokes)
	require.Len(t, card.Entries, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{card.Entries[0].HoleNumber, card.Entries[1].HoleNumber, card.Entries[2].HoleNumber})
	assert.True(t, card.Entries[0].FairwayHit)
	assert.True(t, card.Entries[1].GreenInReg)
	assert.True(t, card.Entries[2].BunkerShot)
}

func TestGetScorecardEmptyLedger(t *testing.T) {
	repo := NewFakeRoundRepository()
	s := newTestService(repo, nil)

	result, err := s.GetScorecard(context.Background(), sharedtypes.RoundCourseID(uuid.New()), "alice")
	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	assert.Empty(t, result.Success.Entries)
	assert.Zero(t, result.Success.TotalStrokes)
}

func TestGetScorecardUnknownRoundCourse(t *testing.T) {
	repo := NewFakeRoundRepository()
	repo.GetRoundCourseFunc = func(ctx context.Context, db bun.IDB, roundCourseID sharedtypes.RoundCourseID) (*rounddb.RoundCourse, error) {
		return nil, rounddb.ErrRoundCourseNotFound
	}
	s := newTestService(repo, nil)

	result, err := s.GetScorecard(context.Background(), sharedtypes.RoundCourseID(uuid.New()), "alice")
	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.Contains(t, result.Failure.Reason, "not found")
}
