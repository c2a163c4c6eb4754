package scoreservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/observability"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/results"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// Service computes comparable scores from golfer-round aggregates. It owns no
// storage; scoring is a pure function of its inputs.
type Service interface {
	ComputeRoundScores(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType, aggregates []sharedtypes.GolferRoundAggregate) (ScoreOperationResult, error)
}

// ScoredAggregate pairs a golfer with the score computed for one round.
type ScoredAggregate struct {
	GolferID      sharedtypes.GolferID      `json:"golfer_id"`
	RoundCourseID sharedtypes.RoundCourseID `json:"round_course_id"`
	Score         sharedtypes.Score         `json:"score"`
}

// RoundScoresComputedPayload is the success side of a compute operation.
type RoundScoresComputedPayload struct {
	RoundID  sharedtypes.RoundID  `json:"round_id"`
	PlayType sharedtypes.PlayType `json:"play_type"`
	Scores   []ScoredAggregate    `json:"scores"`
}

// RoundScoresComputeFailedPayload is the handled-failure side of a compute
// operation.
type RoundScoresComputeFailedPayload struct {
	RoundID  sharedtypes.RoundID  `json:"round_id"`
	PlayType sharedtypes.PlayType `json:"play_type"`
	Reason   string               `json:"reason"`
}

// ScoreOperationResult is the operation envelope for score computations.
type ScoreOperationResult = results.OperationResult[RoundScoresComputedPayload, RoundScoresComputeFailedPayload]

// ScoreService implements Service.
type ScoreService struct {
	logger  *slog.Logger
	metrics observability.OperationMetrics
	tracer  trace.Tracer
}

// NewScoreService creates a new ScoreService.
func NewScoreService(logger *slog.Logger, metrics observability.OperationMetrics, tracer trace.Tracer) *ScoreService {
	return &ScoreService{
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *ScoreService,
	ctx context.Context,
	operationName string,
	roundID sharedtypes.RoundID,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {

	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("round_id", roundID.String()),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, "score")

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, "score", time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.RoundID("round_id", roundID),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, "score")
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.RoundID("round_id", roundID),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, "score")
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.RoundID("round_id", roundID),
			attr.Any("failure_payload", *result.Failure),
		)
	}

	if result.IsSuccess() {
		s.metrics.RecordOperationSuccess(ctx, operationName, "score")
	}

	return result, nil
}
