package leaderboardservice

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

func seededService(t *testing.T) (*LeaderboardService, sharedtypes.RoundID) {
	t.Helper()
	repo := NewFakeLeaderboardRepository()
	s := newTestService(repo, nil, TiePolicyCompetition)
	roundID := sharedtypes.RoundID(uuid.New())

	_, err := s.RecomputeFromAggregates(context.Background(), roundID, sharedtypes.PlayTypeStroke, strokeAggregates(sharedtypes.RoundCourseID(uuid.New())))
	require.NoError(t, err)
	return s, roundID
}

func TestGetLeaderboardReturnsStoredStandings(t *testing.T) {
	s, roundID := seededService(t)

	result, err := s.GetLeaderboard(context.Background(), roundID, sharedtypes.PlayTypeStroke)
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	entries := result.Success.Entries
	require.Len(t, entries, 2)
	assert.Equal(t, sharedtypes.GolferID("alice"), entries[0].GolferID)
	assert.Equal(t, 1, entries[0].Position)
}

func TestGetLeaderboardMissingRound(t *testing.T) {
	repo := NewFakeLeaderboardRepository()
	s := newTestService(repo, nil, TiePolicyCompetition)

	result, err := s.GetLeaderboard(context.Background(), sharedtypes.RoundID(uuid.New()), sharedtypes.PlayTypeStroke)
	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.Contains(t, result.Failure.Reason, "not found")
}

func TestGetLeaderboardOtherPlayTypeIsSeparate(t *testing.T) {
	s, roundID := seededService(t)

	result, err := s.GetLeaderboard(context.Background(), roundID, sharedtypes.PlayTypeMatch)
	require.NoError(t, err)
	require.True(t, result.IsFailure())
}

func TestRenderChartProducesPNG(t *testing.T) {
	s, roundID := seededService(t)

	png, err := s.RenderChart(context.Background(), roundID, sharedtypes.PlayTypeStroke)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestRenderChartMissingRound(t *testing.T) {
	repo := NewFakeLeaderboardRepository()
	s := newTestService(repo, nil, TiePolicyCompetition)

	_, err := s.RenderChart(context.Background(), sharedtypes.RoundID(uuid.New()), sharedtypes.PlayTypeStroke)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLeaderboardNotFound)
}

func TestExportWorkbookRoundTrips(t *testing.T) {
	s, roundID := seededService(t)

	data, err := s.ExportWorkbook(context.Background(), roundID, sharedtypes.PlayTypeStroke)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Leaderboard")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Position", rows[0][0])
	assert.Equal(t, "alice", rows[1][1])
	assert.Equal(t, "bob", rows[2][1])
}
