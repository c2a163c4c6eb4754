// Package roundqueue schedules tee-time reminder jobs on River, Postgres
// backed so reminders survive restarts.
package roundqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/uptrace/bun"

	"github.com/Shore-Tour-Club/golf-tracker/app/eventbus"
	roundevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/domain/events"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/observability"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
)

// QueueService is the round module's job scheduling surface.
type QueueService interface {
	ScheduleTeeTimeReminder(ctx context.Context, roundID sharedtypes.RoundID, reminderTime time.Time, payload roundevents.TeeTimeReminderPayload) error
	CancelRoundJobs(ctx context.Context, roundID sharedtypes.RoundID) error
	GetScheduledJobs(ctx context.Context, roundID sharedtypes.RoundID) ([]JobInfo, error)
	HealthCheck(ctx context.Context) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

var _ QueueService = (*Service)(nil)

// Service handles job scheduling for the round module using River.
type Service struct {
	client  *river.Client[pgx.Tx]
	pool    *pgxpool.Pool
	logger  *slog.Logger
	db      *bun.DB
	metrics observability.OperationMetrics
}

// NewService creates a new River-based queue service for tee-time reminders.
// River needs its own pgx pool; it cannot share bun's database/sql pool.
func NewService(ctx context.Context, bunDB *bun.DB, logger *slog.Logger, dsn string, metrics observability.OperationMetrics, eventBus eventbus.EventBus) (*Service, error) {
	ctxLogger := logger.With(
		attr.String("component", "river_queue"),
	)

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewTeeTimeReminderWorker(ctxLogger, eventBus))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
			"round":            {MaxWorkers: 5},
		},
		Workers: workers,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	ctxLogger.Info("Round queue service initialized")
	return &Service{
		client:  riverClient,
		pool:    pool,
		logger:  ctxLogger,
		db:      bunDB,
		metrics: metrics,
	}, nil
}

// Start starts the River queue service.
func (s *Service) Start(ctx context.Context) error {
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	s.logger.Info("Round queue service started")
	return nil
}

// Stop stops the River queue service and releases its pool.
func (s *Service) Stop(ctx context.Context) error {
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	s.logger.Info("Round queue service stopped")
	return nil
}

// ScheduleTeeTimeReminder schedules a reminder job. Reminder times already in
// the past are skipped rather than failed; there is nothing useful to remind.
func (s *Service) ScheduleTeeTimeReminder(ctx context.Context, roundID sharedtypes.RoundID, reminderTime time.Time, payload roundevents.TeeTimeReminderPayload) error {
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, "schedule_tee_time_reminder", "river")
	defer func() {
		s.metrics.RecordOperationDuration(ctx, "schedule_tee_time_reminder", "river", time.Since(start))
	}()

	now := time.Now()
	if reminderTime.Before(now.Add(5 * time.Second)) {
		s.logger.InfoContext(ctx, "Reminder time is in the past or too close, skipping",
			attr.RoundID("round_id", roundID),
			attr.Time("reminder_time", reminderTime),
		)
		s.metrics.RecordOperationSuccess(ctx, "schedule_tee_time_reminder", "river")
		return nil
	}

	job := TeeTimeReminderJob{
		RoundID:   roundID.String(),
		RoundData: payload,
	}

	jobResult, err := s.client.Insert(ctx, job, &river.InsertOpts{
		Queue:       "round",
		ScheduledAt: reminderTime,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true, // one reminder per round
		},
	})
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "schedule_tee_time_reminder", "river")
		return fmt.Errorf("failed to schedule tee time reminder: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "schedule_tee_time_reminder", "river")
	s.logger.InfoContext(ctx, "Tee time reminder scheduled",
		attr.RoundID("round_id", roundID),
		attr.Duration("delay", reminderTime.Sub(now)),
		attr.Int64("job_id", jobResult.Job.ID),
	)
	return nil
}

// CancelRoundJobs cancels all scheduled jobs for a specific round.
func (s *Service) CancelRoundJobs(ctx context.Context, roundID sharedtypes.RoundID) error {
	type riverJobRow struct {
		ID   int64  `bun:"id"`
		Kind string `bun:"kind"`
	}

	var jobs []riverJobRow
	err := s.db.NewSelect().
		Table("river_job").
		Column("id", "kind").
		Where("kind = ?", "tee_time_reminder").
		Where("state IN (?, ?)", "available", "scheduled").
		Where("args->>'round_id' = ?", roundID.String()).
		Scan(ctx, &jobs)
	if err != nil {
		return fmt.Errorf("failed to query jobs for cancellation: %w", err)
	}

	for _, job := range jobs {
		if _, err := s.client.JobCancel(ctx, job.ID); err != nil {
			s.logger.WarnContext(ctx, "Failed to cancel job",
				attr.Int64("job_id", job.ID),
				attr.String("job_kind", job.Kind),
				attr.Error(err),
			)
		}
	}

	s.logger.InfoContext(ctx, "Round job cancellation completed",
		attr.RoundID("round_id", roundID),
		attr.Int("total_found", len(jobs)),
	)
	return nil
}

// GetScheduledJobs returns information about scheduled jobs for a round.
func (s *Service) GetScheduledJobs(ctx context.Context, roundID sharedtypes.RoundID) ([]JobInfo, error) {
	type riverJobRow struct {
		ID          int64      `bun:"id"`
		Kind        string     `bun:"kind"`
		State       string     `bun:"state"`
		ScheduledAt *time.Time `bun:"scheduled_at"`
		CreatedAt   time.Time  `bun:"created_at"`
		Attempt     int16      `bun:"attempt"`
		MaxAttempts int16      `bun:"max_attempts"`
	}

	var jobs []riverJobRow
	err := s.db.NewSelect().
		Table("river_job").
		Column("id", "kind", "state", "scheduled_at", "created_at", "attempt", "max_attempts").
		Where("kind = ?", "tee_time_reminder").
		Where("args->>'round_id' = ?", roundID.String()).
		Order("scheduled_at ASC NULLS LAST", "created_at ASC").
		Scan(ctx, &jobs)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled jobs: %w", err)
	}

	result := make([]JobInfo, len(jobs))
	for i, job := range jobs {
		scheduledAt := ""
		if job.ScheduledAt != nil {
			scheduledAt = job.ScheduledAt.Format(time.RFC3339)
		}
		result[i] = JobInfo{
			ID:          job.ID,
			Kind:        job.Kind,
			RoundID:     roundID.String(),
			State:       job.State,
			ScheduledAt: scheduledAt,
			CreatedAt:   job.CreatedAt.Format(time.RFC3339),
			Attempt:     int(job.Attempt),
			MaxAttempts: int(job.MaxAttempts),
		}
	}
	return result, nil
}

// HealthCheck verifies the queue service can reach its tables.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("river client is nil")
	}

	var count int
	err := s.db.NewSelect().
		Table("river_job").
		ColumnExpr("COUNT(*)").
		Scan(ctx, &count)
	if err != nil {
		return fmt.Errorf("queue service health check failed: %w", err)
	}
	return nil
}
