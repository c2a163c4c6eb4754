package api

import (
	"context"

	courseservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/course/application"
	coursedb "github.com/Shore-Tour-Club/golf-tracker/app/modules/course/infrastructure/repositories"
	golferservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/golfer/application"
	golferdb "github.com/Shore-Tour-Club/golf-tracker/app/modules/golfer/infrastructure/repositories"
	leaderboardservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/application"
	roundservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/application"
	scoreservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/score/application"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// FakeRoundService lets tests program each operation independently.
type FakeRoundService struct {
	StartRoundFunc      func(ctx context.Context, input roundservice.StartRoundInput) (roundservice.StartRoundResult, error)
	RecordStrokeFunc    func(ctx context.Context, input roundservice.RecordStrokeInput) (roundservice.RecordStrokeResult, error)
	GetScorecardFunc    func(ctx context.Context, roundCourseID sharedtypes.RoundCourseID, golferID sharedtypes.GolferID) (roundservice.ScorecardResult, error)
	ExportScorecardFunc func(ctx context.Context, roundCourseID sharedtypes.RoundCourseID, golferID sharedtypes.GolferID) ([]byte, error)
	AggregatesFunc      func(ctx context.Context, roundID sharedtypes.RoundID) (sharedtypes.PlayType, []sharedtypes.GolferRoundAggregate, error)
	SubmitRoundFunc     func(ctx context.Context, roundID sharedtypes.RoundID, submittedBy sharedtypes.GolferID) (roundservice.SubmitRoundResult, error)
}

func (f *FakeRoundService) StartRound(ctx context.Context, input roundservice.StartRoundInput) (roundservice.StartRoundResult, error) {
	if f.StartRoundFunc != nil {
		return f.StartRoundFunc(ctx, input)
	}
	return roundservice.StartRoundResult{}, nil
}

func (f *FakeRoundService) RecordStroke(ctx context.Context, input roundservice.RecordStrokeInput) (roundservice.RecordStrokeResult, error) {
	if f.RecordStrokeFunc != nil {
		return f.RecordStrokeFunc(ctx, input)
	}
	return roundservice.RecordStrokeResult{}, nil
}

func (f *FakeRoundService) GetScorecard(ctx context.Context, roundCourseID sharedtypes.RoundCourseID, golferID sharedtypes.GolferID) (roundservice.ScorecardResult, error) {
	if f.GetScorecardFunc != nil {
		return f.GetScorecardFunc(ctx, roundCourseID, golferID)
	}
	return roundservice.ScorecardResult{}, nil
}

func (f *FakeRoundService) ExportScorecard(ctx context.Context, roundCourseID sharedtypes.RoundCourseID, golferID sharedtypes.GolferID) ([]byte, error) {
	if f.ExportScorecardFunc != nil {
		return f.ExportScorecardFunc(ctx, roundCourseID, golferID)
	}
	return nil, nil
}

func (f *FakeRoundService) GolferRoundAggregates(ctx context.Context, roundID sharedtypes.RoundID) (sharedtypes.PlayType, []sharedtypes.GolferRoundAggregate, error) {
	if f.AggregatesFunc != nil {
		return f.AggregatesFunc(ctx, roundID)
	}
	return sharedtypes.PlayTypeStroke, nil, nil
}

func (f *FakeRoundService) SubmitRound(ctx context.Context, roundID sharedtypes.RoundID, submittedBy sharedtypes.GolferID) (roundservice.SubmitRoundResult, error) {
	if f.SubmitRoundFunc != nil {
		return f.SubmitRoundFunc(ctx, roundID, submittedBy)
	}
	return roundservice.SubmitRoundResult{}, nil
}

var _ roundservice.Service = (*FakeRoundService)(nil)

// FakeScoreService lets tests program the compute operation.
type FakeScoreService struct {
	ComputeRoundScoresFunc func(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType, aggregates []sharedtypes.GolferRoundAggregate) (scoreservice.ScoreOperationResult, error)
}

func (f *FakeScoreService) ComputeRoundScores(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType, aggregates []sharedtypes.GolferRoundAggregate) (scoreservice.ScoreOperationResult, error) {
	if f.ComputeRoundScoresFunc != nil {
		return f.ComputeRoundScoresFunc(ctx, roundID, playType, aggregates)
	}
	return scoreservice.ScoreOperationResult{}, nil
}

var _ scoreservice.Service = (*FakeScoreService)(nil)

// FakeLeaderboardService lets tests program each operation independently.
type FakeLeaderboardService struct {
	RecomputeFromAggregatesFunc func(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType, aggregates []sharedtypes.GolferRoundAggregate) (leaderboardservice.LeaderboardOperationResult, error)
	RecomputeFunc               func(ctx context.Context, roundID sharedtypes.RoundID) (leaderboardservice.LeaderboardOperationResult, error)
	GetLeaderboardFunc          func(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) (leaderboardservice.LeaderboardOperationResult, error)
	RenderChartFunc             func(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) ([]byte, error)
	ExportWorkbookFunc          func(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) ([]byte, error)
}

func (f *FakeLeaderboardService) RecomputeFromAggregates(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType, aggregates []sharedtypes.GolferRoundAggregate) (leaderboardservice.LeaderboardOperationResult, error) {
	if f.RecomputeFromAggregatesFunc != nil {
		return f.RecomputeFromAggregatesFunc(ctx, roundID, playType, aggregates)
	}
	return leaderboardservice.LeaderboardOperationResult{}, nil
}

func (f *FakeLeaderboardService) Recompute(ctx context.Context, roundID sharedtypes.RoundID) (leaderboardservice.LeaderboardOperationResult, error) {
	if f.RecomputeFunc != nil {
		return f.RecomputeFunc(ctx, roundID)
	}
	return leaderboardservice.LeaderboardOperationResult{}, nil
}

func (f *FakeLeaderboardService) GetLeaderboard(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) (leaderboardservice.LeaderboardOperationResult, error) {
	if f.GetLeaderboardFunc != nil {
		return f.GetLeaderboardFunc(ctx, roundID, playType)
	}
	return leaderboardservice.LeaderboardOperationResult{}, nil
}

func (f *FakeLeaderboardService) RenderChart(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) ([]byte, error) {
	if f.RenderChartFunc != nil {
		return f.RenderChartFunc(ctx, roundID, playType)
	}
	return nil, nil
}

func (f *FakeLeaderboardService) ExportWorkbook(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) ([]byte, error) {
	if f.ExportWorkbookFunc != nil {
		return f.ExportWorkbookFunc(ctx, roundID, playType)
	}
	return nil, nil
}

var _ leaderboardservice.Service = (*FakeLeaderboardService)(nil)

// FakeGolferService lets tests program each operation independently.
type FakeGolferService struct {
	CreateGolferFunc    func(ctx context.Context, input golferservice.CreateGolferInput) (*golferdb.Golfer, error)
	GetGolferFunc       func(ctx context.Context, golferID sharedtypes.GolferID) (*golferdb.Golfer, error)
	UpdateGolferFunc    func(ctx context.Context, golferID sharedtypes.GolferID, input golferservice.UpdateGolferInput) (*golferdb.Golfer, error)
	DeleteGolferFunc    func(ctx context.Context, golferID sharedtypes.GolferID) error
	ListClubGolfersFunc func(ctx context.Context, clubID int64) ([]golferdb.Golfer, error)
}

func (f *FakeGolferService) CreateGolfer(ctx context.Context, input golferservice.CreateGolferInput) (*golferdb.Golfer, error) {
	if f.CreateGolferFunc != nil {
		return f.CreateGolferFunc(ctx, input)
	}
	return &golferdb.Golfer{}, nil
}

func (f *FakeGolferService) GetGolfer(ctx context.Context, golferID sharedtypes.GolferID) (*golferdb.Golfer, error) {
	if f.GetGolferFunc != nil {
		return f.GetGolferFunc(ctx, golferID)
	}
	return &golferdb.Golfer{ID: golferID}, nil
}

func (f *FakeGolferService) UpdateGolfer(ctx context.Context, golferID sharedtypes.GolferID, input golferservice.UpdateGolferInput) (*golferdb.Golfer, error) {
	if f.UpdateGolferFunc != nil {
		return f.UpdateGolferFunc(ctx, golferID, input)
	}
	return &golferdb.Golfer{ID: golferID}, nil
}

func (f *FakeGolferService) DeleteGolfer(ctx context.Context, golferID sharedtypes.GolferID) error {
	if f.DeleteGolferFunc != nil {
		return f.DeleteGolferFunc(ctx, golferID)
	}
	return nil
}

func (f *FakeGolferService) ListClubGolfers(ctx context.Context, clubID int64) ([]golferdb.Golfer, error) {
	if f.ListClubGolfersFunc != nil {
		return f.ListClubGolfersFunc(ctx, clubID)
	}
	return nil, nil
}

var _ golferservice.Service = (*FakeGolferService)(nil)

// FakeCourseService lets tests program each operation independently.
type FakeCourseService struct {
	GetCourseFunc     func(ctx context.Context, courseID int64) (*coursedb.Course, error)
	SearchCoursesFunc func(ctx context.Context, clubID int64, nameQuery string) ([]coursedb.Course, error)
	ListTeesFunc      func(ctx context.Context, courseID int64) ([]coursedb.Tee, error)
	ListHolesFunc     func(ctx context.Context, courseID int64) ([]coursedb.CourseHole, error)
}

func (f *FakeCourseService) GetCourse(ctx context.Context, courseID int64) (*coursedb.Course, error) {
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, courseID)
	}
	return &coursedb.Course{ID: courseID}, nil
}

func (f *FakeCourseService) SearchCourses(ctx context.Context, clubID int64, nameQuery string) ([]coursedb.Course, error) {
	if f.SearchCoursesFunc != nil {
		return f.SearchCoursesFunc(ctx, clubID, nameQuery)
	}
	return nil, nil
}

func (f *FakeCourseService) ListTees(ctx context.Context, courseID int64) ([]coursedb.Tee, error) {
	if f.ListTeesFunc != nil {
		return f.ListTeesFunc(ctx, courseID)
	}
	return nil, nil
}

func (f *FakeCourseService) ListHoles(ctx context.Context, courseID int64) ([]coursedb.CourseHole, error) {
	if f.ListHolesFunc != nil {
		return f.ListHolesFunc(ctx, courseID)
	}
	return nil, nil
}

var _ courseservice.Service = (*FakeCourseService)(nil)
