package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coursedb "github.com/Shore-Tour-Club/golf-tracker/app/modules/course/infrastructure/repositories"
	golferservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/golfer/application"
	golferdb "github.com/Shore-Tour-Club/golf-tracker/app/modules/golfer/infrastructure/repositories"
	leaderboardservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/application"
	leaderboardevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/domain/events"
	roundservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/application"
	rounddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/repositories"
	scoreservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/score/application"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/observability"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/results"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

type testServices struct {
	rounds       *FakeRoundService
	scores       *FakeScoreService
	leaderboards *FakeLeaderboardService
	golfers      *FakeGolferService
	courses      *FakeCourseService
}

func newTestServer(t *testing.T, auth *Authenticator) (*httptest.Server, *testServices) {
	t.Helper()

	svcs := &testServices{
		rounds:       &FakeRoundService{},
		scores:       &FakeScoreService{},
		leaderboards: &FakeLeaderboardService{},
		golfers:      &FakeGolferService{},
		courses:      &FakeCourseService{},
	}
	srv := NewServer(svcs.rounds, svcs.scores, svcs.leaderboards, svcs.golfers, svcs.courses, observability.NoOpLogger, auth)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts, svcs
}

func TestRecordStrokeRoutesRoundCourseID(t *testing.T) {
	ts, svcs := newTestServer(t, nil)

	roundCourseID := sharedtypes.RoundCourseID(uuid.New())
	var got roundservice.RecordStrokeInput
	svcs.rounds.RecordStrokeFunc = func(_ context.Context, input roundservice.RecordStrokeInput) (roundservice.RecordStrokeResult, error) {
		got = input
		return results.SuccessResult[roundservice.RecordStrokeSuccessPayload, roundservice.RecordStrokeFailurePayload](roundservice.RecordStrokeSuccessPayload{
			RoundCourseID: input.RoundCourseID,
			GolferID:      input.GolferID,
			HoleNumber:    input.HoleNumber,
		}), nil
	}

	body := `{"golfer_id":"alice","hole_number":4,"strokes":5,"number_of_putts":2}`
	resp, err := http.Post(ts.URL+"/api/round-courses/"+roundCourseID.String()+"/strokes", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, roundCourseID, got.RoundCourseID)
	assert.Equal(t, sharedtypes.GolferID("alice"), got.GolferID)
	assert.Equal(t, 4, got.HoleNumber)
}

func TestRecordStrokeDuplicateConflicts(t *testing.T) {
	ts, svcs := newTestServer(t, nil)

	svcs.rounds.RecordStrokeFunc = func(_ context.Context, input roundservice.RecordStrokeInput) (roundservice.RecordStrokeResult, error) {
		return results.FailureResult[roundservice.RecordStrokeSuccessPayload](roundservice.RecordStrokeFailurePayload{
			RoundCourseID: input.RoundCourseID,
			GolferID:      input.GolferID,
			HoleNumber:    input.HoleNumber,
			Reason:        rounddb.ErrDuplicateHoleEntry.Error(),
		}), nil
	}

	body := `{"golfer_id":"alice","hole_number":4,"strokes":5}`
	resp, err := http.Post(ts.URL+"/api/round-courses/"+uuid.NewString()+"/strokes", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRecordStrokeRejectsBadRoundCourseID(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	resp, err := http.Post(ts.URL+"/api/round-courses/not-a-uuid/strokes", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitRoundAlreadyFinalized(t *testing.T) {
	ts, svcs := newTestServer(t, nil)

	svcs.rounds.SubmitRoundFunc = func(_ context.Context, roundID sharedtypes.RoundID, _ sharedtypes.GolferID) (roundservice.SubmitRoundResult, error) {
		return results.FailureResult[roundservice.SubmitRoundSuccessPayload](roundservice.SubmitRoundFailurePayload{
			RoundID: roundID,
			Reason:  rounddb.ErrRoundFinalized.Error(),
		}), nil
	}

	resp, err := http.Post(ts.URL+"/api/rounds/"+uuid.NewString()+"/submit", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestGetRoundScoresFeedsAggregatesToCalculator(t *testing.T) {
	ts, svcs := newTestServer(t, nil)

	roundID := sharedtypes.RoundID(uuid.New())
	roundCourseID := sharedtypes.RoundCourseID(uuid.New())
	aggregates := []sharedtypes.GolferRoundAggregate{
		{GolferID: "alice", RoundCourseID: roundCourseID, HolesPlayed: 18, TotalStrokes: 72, HolesWon: 10},
		{GolferID: "bob", RoundCourseID: roundCourseID, HolesPlayed: 18, TotalStrokes: 75, HolesWon: 8},
	}
	svcs.rounds.AggregatesFunc = func(_ context.Context, _ sharedtypes.RoundID) (sharedtypes.PlayType, []sharedtypes.GolferRoundAggregate, error) {
		return sharedtypes.PlayTypeMatch, aggregates, nil
	}

	var gotPlayType sharedtypes.PlayType
	var gotAggregates []sharedtypes.GolferRoundAggregate
	svcs.scores.ComputeRoundScoresFunc = func(_ context.Context, rid sharedtypes.RoundID, playType sharedtypes.PlayType, aggs []sharedtypes.GolferRoundAggregate) (scoreservice.ScoreOperationResult, error) {
		gotPlayType = playType
		gotAggregates = aggs
		return results.SuccessResult[scoreservice.RoundScoresComputedPayload, scoreservice.RoundScoresComputeFailedPayload](scoreservice.RoundScoresComputedPayload{
			RoundID:  rid,
			PlayType: playType,
			Scores: []scoreservice.ScoredAggregate{
				{GolferID: "alice", RoundCourseID: roundCourseID, Score: 10},
				{GolferID: "bob", RoundCourseID: roundCourseID, Score: 8},
			},
		}), nil
	}

	resp, err := http.Get(ts.URL + "/api/rounds/" + roundID.String() + "/scores")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, sharedtypes.PlayTypeMatch, gotPlayType)
	assert.Equal(t, aggregates, gotAggregates)

	var payload scoreservice.RoundScoresComputedPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Scores, 2)
	assert.Equal(t, sharedtypes.GolferID("alice"), payload.Scores[0].GolferID)
	assert.Equal(t, sharedtypes.Score(10), payload.Scores[0].Score)
}

func TestGetRoundScoresUnknownRoundIs404(t *testing.T) {
	ts, svcs := newTestServer(t, nil)

	svcs.rounds.AggregatesFunc = func(_ context.Context, _ sharedtypes.RoundID) (sharedtypes.PlayType, []sharedtypes.GolferRoundAggregate, error) {
		return "", nil, rounddb.ErrRoundNotFound
	}

	resp, err := http.Get(ts.URL + "/api/rounds/" + uuid.NewString() + "/scores")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetLeaderboardDefaultsToStrokePlay(t *testing.T) {
	ts, svcs := newTestServer(t, nil)

	roundID := sharedtypes.RoundID(uuid.New())
	var gotPlayType sharedtypes.PlayType
	svcs.leaderboards.GetLeaderboardFunc = func(_ context.Context, rid sharedtypes.RoundID, playType sharedtypes.PlayType) (leaderboardservice.LeaderboardOperationResult, error) {
		gotPlayType = playType
		return results.SuccessResult[leaderboardevents.LeaderboardUpdatedPayload, leaderboardevents.LeaderboardUpdateFailedPayload](leaderboardevents.LeaderboardUpdatedPayload{
			RoundID:  rid,
			PlayType: playType,
			Entries: []sharedtypes.LeaderboardEntryView{
				{GolferID: "alice", Score: -72, Position: 1},
				{GolferID: "bob", Score: -75, Position: 2},
			},
		}), nil
	}

	resp, err := http.Get(ts.URL + "/api/rounds/" + roundID.String() + "/leaderboard")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, sharedtypes.PlayTypeStroke, gotPlayType)

	var payload leaderboardevents.LeaderboardUpdatedPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Entries, 2)
	assert.Equal(t, sharedtypes.GolferID("alice"), payload.Entries[0].GolferID)
}

func TestGetLeaderboardMissingBoardIs404(t *testing.T) {
	ts, svcs := newTestServer(t, nil)

	svcs.leaderboards.GetLeaderboardFunc = func(_ context.Context, rid sharedtypes.RoundID, playType sharedtypes.PlayType) (leaderboardservice.LeaderboardOperationResult, error) {
		return results.FailureResult[leaderboardevents.LeaderboardUpdatedPayload](leaderboardevents.LeaderboardUpdateFailedPayload{
			RoundID:  rid,
			PlayType: playType,
			Reason:   leaderboardservice.ErrLeaderboardNotFound.Error(),
		}), nil
	}

	resp, err := http.Get(ts.URL + "/api/rounds/" + uuid.NewString() + "/leaderboard?play_type=match")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecomputeWithoutStrokesIs404(t *testing.T) {
	ts, svcs := newTestServer(t, nil)

	svcs.leaderboards.RecomputeFunc = func(_ context.Context, rid sharedtypes.RoundID) (leaderboardservice.LeaderboardOperationResult, error) {
		return results.FailureResult[leaderboardevents.LeaderboardUpdatedPayload](leaderboardevents.LeaderboardUpdateFailedPayload{
			RoundID:  rid,
			PlayType: sharedtypes.PlayTypeStroke,
			Reason:   leaderboardservice.ErrNoAggregates.Error(),
		}), nil
	}

	resp, err := http.Post(ts.URL+"/api/rounds/"+uuid.NewString()+"/leaderboard/recompute", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLeaderboardChartContentType(t *testing.T) {
	ts, svcs := newTestServer(t, nil)

	svcs.leaderboards.RenderChartFunc = func(_ context.Context, _ sharedtypes.RoundID, _ sharedtypes.PlayType) ([]byte, error) {
		return []byte{0x89, 'P', 'N', 'G'}, nil
	}

	resp, err := http.Get(ts.URL + "/api/rounds/" + uuid.NewString() + "/leaderboard/chart.png")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestGetGolferNotFound(t *testing.T) {
	ts, svcs := newTestServer(t, nil)

	svcs.golfers.GetGolferFunc = func(_ context.Context, _ sharedtypes.GolferID) (*golferdb.Golfer, error) {
		return nil, golferdb.ErrGolferNotFound
	}

	resp, err := http.Get(ts.URL + "/api/golfers/nobody")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateGolferUsernameTaken(t *testing.T) {
	ts, svcs := newTestServer(t, nil)

	svcs.golfers.CreateGolferFunc = func(_ context.Context, _ golferservice.CreateGolferInput) (*golferdb.Golfer, error) {
		return nil, golferdb.ErrUsernameTaken
	}

	body := `{"username":"alice","club_id":7}`
	resp, err := http.Post(ts.URL+"/api/golfers", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSearchCoursesPassesQuery(t *testing.T) {
	ts, svcs := newTestServer(t, nil)

	var gotClubID int64
	var gotQuery string
	svcs.courses.SearchCoursesFunc = func(_ context.Context, clubID int64, q string) ([]coursedb.Course, error) {
		gotClubID = clubID
		gotQuery = q
		return nil, nil
	}

	resp, err := http.Get(ts.URL + "/api/courses?club_id=7&q=pine")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(7), gotClubID)
	assert.Equal(t, "pine", gotQuery)
}

func TestBearerTokenResolvesCreatedBy(t *testing.T) {
	auth := NewAuthenticator("test-secret", time.Hour)
	ts, svcs := newTestServer(t, auth)

	var gotCreatedBy sharedtypes.GolferID
	svcs.rounds.StartRoundFunc = func(_ context.Context, input roundservice.StartRoundInput) (roundservice.StartRoundResult, error) {
		gotCreatedBy = input.CreatedBy
		return results.SuccessResult[roundservice.StartRoundSuccessPayload, roundservice.StartRoundFailurePayload](roundservice.StartRoundSuccessPayload{}), nil
	}

	token, err := auth.IssueToken("alice")
	require.NoError(t, err)

	body := `{"club_id":7,"play_type":"stroke","courses":[{"course_id":1,"tee_id":2,"hole_count":18}]}`
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/rounds", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, sharedtypes.GolferID("alice"), gotCreatedBy)
}

func TestInvalidBearerTokenRejected(t *testing.T) {
	auth := NewAuthenticator("test-secret", time.Hour)
	ts, _ := newTestServer(t, auth)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/golfers/alice", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
