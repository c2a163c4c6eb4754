// Package golferservice implements golfer profile CRUD. Profiles are simple
// enough that the service skips the operation-result envelope and returns
// domain errors directly.
package golferservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	golferdb "github.com/Shore-Tour-Club/golf-tracker/app/modules/golfer/infrastructure/repositories"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/observability"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// Service is the golfer module's application surface.
type Service interface {
	CreateGolfer(ctx context.Context, input CreateGolferInput) (*golferdb.Golfer, error)
	GetGolfer(ctx context.Context, golferID sharedtypes.GolferID) (*golferdb.Golfer, error)
	UpdateGolfer(ctx context.Context, golferID sharedtypes.GolferID, input UpdateGolferInput) (*golferdb.Golfer, error)
	DeleteGolfer(ctx context.Context, golferID sharedtypes.GolferID) error
	ListClubGolfers(ctx context.Context, clubID int64) ([]golferdb.Golfer, error)
}

// CreateGolferInput describes a new profile.
type CreateGolferInput struct {
	Username  string  `json:"username"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email,omitempty"`
	GHIN      string  `json:"ghin,omitempty"`
	Handicap  float64 `json:"handicap"`
	ClubID    int64   `json:"club_id"`
}

// UpdateGolferInput carries the mutable profile fields. Nil means unchanged.
type UpdateGolferInput struct {
	Username  *string  `json:"username,omitempty"`
	FirstName *string  `json:"first_name,omitempty"`
	LastName  *string  `json:"last_name,omitempty"`
	Email     *string  `json:"email,omitempty"`
	GHIN      *string  `json:"ghin,omitempty"`
	Handicap  *float64 `json:"handicap,omitempty"`
}

// GolferService implements Service.
type GolferService struct {
	repo    golferdb.Repository
	logger  *slog.Logger
	metrics observability.OperationMetrics
	tracer  trace.Tracer
}

// NewGolferService creates a new GolferService.
func NewGolferService(repo golferdb.Repository, logger *slog.Logger, metrics observability.OperationMetrics, tracer trace.Tracer) *GolferService {
	return &GolferService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

func (s *GolferService) instrument(ctx context.Context, operation string) (context.Context, func(err error)) {
	ctx, span := s.tracer.Start(ctx, operation, trace.WithAttributes(
		attribute.String("operation", operation),
	))
	s.metrics.RecordOperationAttempt(ctx, operation, "golfer")
	start := time.Now()
	return ctx, func(err error) {
		s.metrics.RecordOperationDuration(ctx, operation, "golfer", time.Since(start))
		if err != nil {
			s.metrics.RecordOperationFailure(ctx, operation, "golfer")
			span.RecordError(err)
		} else {
			s.metrics.RecordOperationSuccess(ctx, operation, "golfer")
		}
		span.End()
	}
}

func (s *GolferService) CreateGolfer(ctx context.Context, input CreateGolferInput) (golfer *golferdb.Golfer, err error) {
	ctx, done := s.instrument(ctx, "CreateGolfer")
	defer func() { done(err) }()

	if input.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if input.ClubID == 0 {
		return nil, fmt.Errorf("club_id is required")
	}

	golfer = &golferdb.Golfer{
		ID:        sharedtypes.GolferID(uuid.NewString()),
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		GHIN:      input.GHIN,
		Handicap:  input.Handicap,
		ClubID:    input.ClubID,
	}
	if err = s.repo.CreateGolfer(ctx, nil, golfer); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Golfer created",
		attr.ExtractCorrelationID(ctx),
		attr.GolferID("golfer_id", golfer.ID),
		attr.String("username", golfer.Username),
	)
	return golfer, nil
}

func (s *GolferService) GetGolfer(ctx context.Context, golferID sharedtypes.GolferID) (golfer *golferdb.Golfer, err error) {
	ctx, done := s.instrument(ctx, "GetGolfer")
	defer func() { done(err) }()

	golfer, err = s.repo.GetGolfer(ctx, nil, golferID)
	return golfer, err
}

func (s *GolferService) UpdateGolfer(ctx context.Context, golferID sharedtypes.GolferID, input UpdateGolferInput) (golfer *golferdb.Golfer, err error) {
	ctx, done := s.instrument(ctx, "UpdateGolfer")
	defer func() { done(err) }()

	golfer, err = s.repo.GetGolfer(ctx, nil, golferID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		golfer.Username = *input.Username
	}
	if input.FirstName != nil {
		golfer.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		golfer.LastName = *input.LastName
	}
	if input.Email != nil {
		golfer.Email = *input.Email
	}
	if input.GHIN != nil {
		golfer.GHIN = *input.GHIN
	}
	if input.Handicap != nil {
		golfer.Handicap = *input.Handicap
	}

	if err = s.repo.UpdateGolfer(ctx, nil, golfer); err != nil {
		return nil, err
	}
	return golfer, nil
}

func (s *GolferService) DeleteGolfer(ctx context.Context, golferID sharedtypes.GolferID) (err error) {
	ctx, done := s.instrument(ctx, "DeleteGolfer")
	defer func() { done(err) }()

	err = s.repo.DeleteGolfer(ctx, nil, golferID)
	return err
}

func (s *GolferService) ListClubGolfers(ctx context.Context, clubID int64) (golfers []golferdb.Golfer, err error) {
	ctx, done := s.instrument(ctx, "ListClubGolfers")
	defer func() { done(err) }()

	golfers, err = s.repo.ListClubGolfers(ctx, nil, clubID)
	return golfers, err
}

var _ Service = (*GolferService)(nil)
