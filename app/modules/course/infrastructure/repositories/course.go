package coursedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ErrCourseNotFound means the course ID matched no stored course.
var ErrCourseNotFound = errors.New("course not found")

// Repository is the course module's storage surface. Courses are reference
// data; everything here is a read apart from seeding.
type Repository interface {
	GetCourse(ctx context.Context, db bun.IDB, courseID int64) (*Course, error)
	SearchCourses(ctx context.Context, db bun.IDB, clubID int64, nameQuery string) ([]Course, error)
	ListTees(ctx context.Context, db bun.IDB, courseID int64) ([]Tee, error)
	ListHoles(ctx context.Context, db bun.IDB, courseID int64) ([]CourseHole, error)
}

// CourseDBImpl implements Repository on Postgres via bun.
type CourseDBImpl struct {
	DB *bun.DB
}

func (r *CourseDBImpl) conn(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *CourseDBImpl) GetCourse(ctx context.Context, db bun.IDB, courseID int64) (*Course, error) {
	course := new(Course)
	err := r.conn(db).NewSelect().
		Model(course).
		Where("c.id = ?", courseID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to fetch course %d: %w", courseID, err)
	}
	return course, nil
}

// SearchCourses matches course names case-insensitively. An empty query
// lists the whole club.
func (r *CourseDBImpl) SearchCourses(ctx context.Context, db bun.IDB, clubID int64, nameQuery string) ([]Course, error) {
	var courses []Course
	q := r.conn(db).NewSelect().
		Model(&courses).
		Where("c.club_id = ?", clubID)
	if nameQuery != "" {
		q = q.Where("c.name ILIKE ?", "%"+nameQuery+"%")
	}
	if err := q.Order("c.name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to search courses for club %d: %w", clubID, err)
	}
	return courses, nil
}

func (r *CourseDBImpl) ListTees(ctx context.Context, db bun.IDB, courseID int64) ([]Tee, error) {
	var tees []Tee
	err := r.conn(db).NewSelect().
		Model(&tees).
		Where("t.course_id = ?", courseID).
		Order("t.rating DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tees for course %d: %w", courseID, err)
	}
	return tees, nil
}

func (r *CourseDBImpl) ListHoles(ctx context.Context, db bun.IDB, courseID int64) ([]CourseHole, error) {
	var holes []CourseHole
	err := r.conn(db).NewSelect().
		Model(&holes).
		Where("ch.course_id = ?", courseID).
		Order("ch.number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holes for course %d: %w", courseID, err)
	}
	return holes, nil
}

var _ Repository = (*CourseDBImpl)(nil)
