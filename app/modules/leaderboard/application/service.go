package leaderboardservice

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Shore-Tour-Club/golf-tracker/app/eventbus"
	leaderboarddb "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/infrastructure/repositories"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/observability"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/results"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// AggregateSource supplies a round's per-golfer aggregates for on-demand
// recomputation. The round module's application service satisfies it.
type AggregateSource interface {
	GolferRoundAggregates(ctx context.Context, roundID sharedtypes.RoundID) (sharedtypes.PlayType, []sharedtypes.GolferRoundAggregate, error)
}

// Service is the leaderboard module's application surface.
type Service interface {
	RecomputeFromAggregates(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType, aggregates []sharedtypes.GolferRoundAggregate) (LeaderboardOperationResult, error)
	Recompute(ctx context.Context, roundID sharedtypes.RoundID) (LeaderboardOperationResult, error)
	GetLeaderboard(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) (LeaderboardOperationResult, error)
	RenderChart(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) ([]byte, error)
	ExportWorkbook(ctx context.Context, roundID sharedtypes.RoundID, playType sharedtypes.PlayType) ([]byte, error)
}

// LeaderboardService implements Service.
type LeaderboardService struct {
	repo       leaderboarddb.Repository
	aggregates AggregateSource
	EventBus   eventbus.EventBus
	logger     *slog.Logger
	metrics    observability.OperationMetrics
	tracer     trace.Tracer
	db         *bun.DB
	tiePolicy  TiePolicy
}

// NewLeaderboardService creates a new LeaderboardService. An unrecognized
// tie policy falls back to competition ranking.
func NewLeaderboardService(
	repo leaderboarddb.Repository,
	aggregates AggregateSource,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	tiePolicy TiePolicy,
) *LeaderboardService {
	if tiePolicy != TiePolicySequential {
		tiePolicy = TiePolicyCompetition
	}
	return &LeaderboardService{
		repo:       repo,
		aggregates: aggregates,
		EventBus:   eventBus,
		logger:     logger,
		metrics:    metrics,
		tracer:     tracer,
		db:         db,
		tiePolicy:  tiePolicy,
	}
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *LeaderboardService,
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

	s.metrics.RecordOperationAttempt(ctx, operationName, "leaderboard")

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, "leaderboard", time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.RoundID("round_id", roundID),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, "leaderboard")
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
		s.metrics.RecordOperationFailure(ctx, operationName, "leaderboard")
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
		s.metrics.RecordOperationSuccess(ctx, operationName, "leaderboard")
	}

	return result, nil
}

// runInTx ensures the operation runs within a transaction.
func runInTx[S any, F any](
	s *LeaderboardService,
	ctx context.Context,
	fn func(ctx context.Context, db bun.IDB) (results.OperationResult[S, F], error),
) (results.OperationResult[S, F], error) {
	if s.db == nil {
		return fn(ctx, nil)
	}

	var result results.OperationResult[S, F]
	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		return txErr
	})

	return result, err
}
