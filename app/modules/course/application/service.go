// Package courseservice exposes course reference reads: search, tees, and
// hole layouts.
package courseservice

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	coursedb "github.com/Shore-Tour-Club/golf-tracker/app/modules/course/infrastructure/repositories"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/observability"
)

// Service is the course module's application surface.
type Service interface {
	GetCourse(ctx context.Context, courseID int64) (*coursedb.Course, error)
	SearchCourses(ctx context.Context, clubID int64, nameQuery string) ([]coursedb.Course, error)
	ListTees(ctx context.Context, courseID int64) ([]coursedb.Tee, error)
	ListHoles(ctx context.Context, courseID int64) ([]coursedb.CourseHole, error)
}

// CourseService implements Service.
type CourseService struct {
	repo    coursedb.Repository
	logger  *slog.Logger
	metrics observability.OperationMetrics
	tracer  trace.Tracer
}

// NewCourseService creates a new CourseService.
func NewCourseService(repo coursedb.Repository, logger *slog.Logger, metrics observability.OperationMetrics, tracer trace.Tracer) *CourseService {
	return &CourseService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

func (s *CourseService) instrument(ctx context.Context, operation string) (context.Context, func(err error)) {
	ctx, span := s.tracer.Start(ctx, operation, trace.WithAttributes(
		attribute.String("operation", operation),
	))
	s.metrics.RecordOperationAttempt(ctx, operation, "course")
	start := time.Now()
	return ctx, func(err error) {
		s.metrics.RecordOperationDuration(ctx, operation, "course", time.Since(start))
		if err != nil {
			s.metrics.RecordOperationFailure(ctx, operation, "course")
			span.RecordError(err)
		} else {
			s.metrics.RecordOperationSuccess(ctx, operation, "course")
		}
		span.End()
	}
}

func (s *CourseService) GetCourse(ctx context.Context, courseID int64) (course *coursedb.Course, err error) {
	ctx, done := s.instrument(ctx, "GetCourse")
	defer func() { done(err) }()

	course, err = s.repo.GetCourse(ctx, nil, courseID)
	return course, err
}

func (s *CourseService) SearchCourses(ctx context.Context, clubID int64, nameQuery string) (courses []coursedb.Course, err error) {
	ctx, done := s.instrument(ctx, "SearchCourses")
	defer func() { done(err) }()

	courses, err = s.repo.SearchCourses(ctx, nil, clubID, nameQuery)
	return courses, err
}

func (s *CourseService) ListTees(ctx context.Context, courseID int64) (tees []coursedb.Tee, err error) {
	ctx, done := s.instrument(ctx, "ListTees")
	defer func() { done(err) }()

	tees, err = s.repo.ListTees(ctx, nil, courseID)
	return tees, err
}

func (s *CourseService) ListHoles(ctx context.Context, courseID int64) (holes []coursedb.CourseHole, err error) {
	ctx, done := s.instrument(ctx, "ListHoles")
	defer func() { done(err) }()

	holes, err = s.repo.ListHoles(ctx, nil, courseID)
	return holes, err
}

var _ Service = (*CourseService)(nil)
