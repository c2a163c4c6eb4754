package rounddb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// Repository is the round module's storage surface. Every method accepts a
// bun.IDB so callers can pass a transaction; a nil db falls back to the
// repository's own connection.
type Repository interface {
	CreateRound(ctx context.Context, db bun.IDB, round *Round) error
	GetRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) (*Round, error)
	FinalizeRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) error

	AddRoundCourse(ctx context.Context, db bun.IDB, rc *RoundCourse) error
	GetRoundCourse(ctx context.Context, db bun.IDB, roundCourseID sharedtypes.RoundCourseID) (*RoundCourse, error)
	ListRoundCourses(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]RoundCourse, error)

	InsertStroke(ctx context.Context, db bun.IDB, entry *StrokeEntry) error
	ListStrokes(ctx context.Context, db bun.IDB, roundCourseID sharedtypes.RoundCourseID, golferID sharedtypes.GolferID) ([]StrokeEntry, error)
	ListStrokesForRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]StrokeEntry, error)
}
