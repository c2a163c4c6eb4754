package coursedb

import (
	"time"

	"github.com/uptrace/bun"
)

// Course is reference data: a playable course at a club.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID        int64     `bun:"id,pk,autoincrement"`
	ClubID    int64     `bun:"club_id,notnull"`
	Name      string    `bun:"name,notnull"`
	City      string    `bun:"city,nullzero"`
	State     string    `bun:"state,nullzero"`
	HoleCount int       `bun:"hole_count,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// CourseHole is one hole's par and yardage on a course.
type CourseHole struct {
	bun.BaseModel `bun:"table:course_holes,alias:ch"`

	ID       int64 `bun:"id,pk,autoincrement"`
	CourseID int64 `bun:"course_id,notnull,unique:uq_course_hole"`
	Number   int   `bun:"number,notnull,unique:uq_course_hole"`
	Par      int   `bun:"par,notnull"`
	Yardage  int   `bun:"yardage,nullzero"`
}

// Tee is a tee-box selection on a course with its rating and slope.
type Tee struct {
	bun.BaseModel `bun:"table:tees,alias:t"`

	ID       int64   `bun:"id,pk,autoincrement"`
	CourseID int64   `bun:"course_id,notnull"`
	Name     string  `bun:"name,notnull"`
	Rating   float64 `bun:"rating,notnull"`
	Slope    int     `bun:"slope,notnull"`
}
