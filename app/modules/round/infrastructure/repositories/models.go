package rounddb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// Round is one outing by a group of golfers. A round can span several
// courses; each segment is a RoundCourse row.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`

	ID        sharedtypes.RoundID  `bun:"id,pk,type:uuid"`
	ClubID    int64                `bun:"club_id,notnull"`
	Date      time.Time            `bun:"date_of_round,notnull"`
	PlayType  sharedtypes.PlayType `bun:"play_type,notnull"`
	TeeTime   *time.Time           `bun:"tee_time,nullzero"`
	CreatedBy sharedtypes.GolferID `bun:"created_by,notnull"`
	Finalized bool                 `bun:"finalized,notnull,default:false"`
	CreatedAt time.Time            `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time            `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// RoundCourse binds one round to one course and tee selection. Strokes hang
// off this association, not off the round directly.
type RoundCourse struct {
	bun.BaseModel `bun:"table:round_courses,alias:rc"`

	ID        sharedtypes.RoundCourseID `bun:"id,pk,type:uuid"`
	RoundID   sharedtypes.RoundID       `bun:"round_id,notnull,type:uuid"`
	CourseID  int64                     `bun:"course_id,notnull"`
	TeeID     int64                     `bun:"tee_id,notnull"`
	HoleCount int                       `bun:"hole_count,notnull"`
	CreatedAt time.Time                 `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// StrokeEntry is one row of the append-only stroke ledger: one golfer, one
// hole, one segment. The (round_course_id, golfer_id, hole_number) unique
// constraint is what makes duplicate hole submissions a storage-level error
// instead of a race.
type StrokeEntry struct {
	bun.BaseModel `bun:"table:stroke_entries,alias:se"`

	ID            int64                     `bun:"id,pk,autoincrement"`
	RoundCourseID sharedtypes.RoundCourseID `bun:"round_course_id,notnull,type:uuid,unique:uq_stroke_hole"`
	GolferID      sharedtypes.GolferID      `bun:"golfer_id,notnull,unique:uq_stroke_hole"`
	HoleNumber    int                       `bun:"hole_number,notnull,unique:uq_stroke_hole"`
	Strokes       int                       `bun:"strokes,notnull"`
	FairwayHit    bool                      `bun:"fairway_hit,notnull,default:false"`
	GreenInReg    bool                      `bun:"green_in_reg,notnull,default:false"`
	Putts         int                       `bun:"number_of_putts,notnull,default:0"`
	BunkerShot    bool                      `bun:"bunker_shot,notnull,default:false"`
	CreatedAt     time.Time                 `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
