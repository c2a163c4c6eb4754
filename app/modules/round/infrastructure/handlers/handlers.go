// Package roundhandlers adapts bus messages to the round module's
// infrastructure services.
package roundhandlers

import (
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	roundevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/domain/events"
	roundqueue "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/queue"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/utils"
)

// reminderLead is how long before the tee time the reminder fires.
const reminderLead = time.Hour

// Handlers is the round module's message handling surface.
type Handlers interface {
	HandleRoundCreated(msg *message.Message) error
}

// RoundHandlers implements Handlers.
type RoundHandlers struct {
	queue  roundqueue.QueueService
	logger *slog.Logger
}

// NewRoundHandlers creates a new RoundHandlers.
func NewRoundHandlers(queue roundqueue.QueueService, logger *slog.Logger) *RoundHandlers {
	return &RoundHandlers{queue: queue, logger: logger}
}

// HandleRoundCreated schedules a tee-time reminder for a freshly created
// round. Rounds without a tee time get no reminder. Undecodable payloads are
// dropped; scheduling errors are returned so the message redelivers.
func (h *RoundHandlers) HandleRoundCreated(msg *message.Message) error {
	ctx := msg.Context()

	var payload roundevents.RoundCreatedPayload
	if err := utils.UnmarshalPayload(msg, &payload); err != nil {
		h.logger.ErrorContext(ctx, "Dropping undecodable round created event",
			attr.ExtractCorrelationID(ctx),
			attr.String("message_id", msg.UUID),
			attr.Error(err),
		)
		return nil
	}

	if payload.TeeTime == nil {
		return nil
	}

	return h.queue.ScheduleTeeTimeReminder(ctx, payload.RoundID, payload.TeeTime.Add(-reminderLead), roundevents.TeeTimeReminderPayload{
		RoundID: payload.RoundID,
		ClubID:  payload.ClubID,
		TeeTime: *payload.TeeTime,
	})
}

var _ Handlers = (*RoundHandlers)(nil)
