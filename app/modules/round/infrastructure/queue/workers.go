package roundqueue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riverqueue/river"

	"github.com/Shore-Tour-Club/golf-tracker/app/eventbus"
	roundevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/domain/events"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/utils"
)

// TeeTimeReminderWorker publishes the reminder event when its job comes due.
type TeeTimeReminderWorker struct {
	river.WorkerDefaults[TeeTimeReminderJob]
	logger   *slog.Logger
	eventBus eventbus.EventBus
}

// NewTeeTimeReminderWorker creates a worker bound to the event bus.
func NewTeeTimeReminderWorker(logger *slog.Logger, eventBus eventbus.EventBus) *TeeTimeReminderWorker {
	return &TeeTimeReminderWorker{logger: logger, eventBus: eventBus}
}

func (w *TeeTimeReminderWorker) Work(ctx context.Context, job *river.Job[TeeTimeReminderJob]) error {
	w.logger.InfoContext(ctx, "Tee time reminder due",
		attr.String("round_id", job.Args.RoundID),
		attr.Time("tee_time", job.Args.RoundData.TeeTime),
	)

	msg, err := utils.NewMessage(job.Args.RoundData, roundevents.RoundTeeTimeReminder)
	if err != nil {
		return fmt.Errorf("failed to build reminder message: %w", err)
	}
	if err := w.eventBus.Publish(roundevents.RoundTeeTimeReminder, msg); err != nil {
		return fmt.Errorf("failed to publish reminder for round %s: %w", job.Args.RoundID, err)
	}
	return nil
}
