package roundhandlers

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roundevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/domain/events"
	roundqueue "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/infrastructure/queue"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/observability"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/sharedtypes"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/utils"
)

// fakeQueue records reminder scheduling calls.
type fakeQueue struct {
	ScheduledRoundID sharedtypes.RoundID
	ScheduledAt      time.Time
	Payload          roundevents.TeeTimeReminderPayload
	Calls            int
	Err              error
}

func (f *fakeQueue) ScheduleTeeTimeReminder(_ context.Context, roundID sharedtypes.RoundID, reminderTime time.Time, payload roundevents.TeeTimeReminderPayload) error {
	f.Calls++
	f.ScheduledRoundID = roundID
	f.ScheduledAt = reminderTime
	f.Payload = payload
	return f.Err
}

func (f *fakeQueue) CancelRoundJobs(context.Context, sharedtypes.RoundID) error { return nil }

func (f *fakeQueue) GetScheduledJobs(context.Context, sharedtypes.RoundID) ([]roundqueue.JobInfo, error) {
	return nil, nil
}

func (f *fakeQueue) HealthCheck(context.Context) error { return nil }

func (f *fakeQueue) Start(context.Context) error { return nil }

func (f *fakeQueue) Stop(context.Context) error { return nil }

var _ roundqueue.QueueService = (*fakeQueue)(nil)

func TestHandleRoundCreatedSchedulesReminder(t *testing.T) {
	queue := &fakeQueue{}
	h := NewRoundHandlers(queue, observability.NoOpLogger)

	roundID := sharedtypes.RoundID(uuid.New())
	teeTime := time.Now().Add(6 * time.Hour).Truncate(time.Second)
	msg, err := utils.NewMessage(roundevents.RoundCreatedPayload{
		RoundID:  roundID,
		ClubID:   7,
		PlayType: sharedtypes.PlayTypeStroke,
		TeeTime:  &teeTime,
	}, roundevents.RoundCreated)
	require.NoError(t, err)

	require.NoError(t, h.HandleRoundCreated(msg))
	require.Equal(t, 1, queue.Calls)
	assert.Equal(t, roundID, queue.ScheduledRoundID)
	assert.True(t, queue.ScheduledAt.Equal(teeTime.Add(-time.Hour)))
	assert.Equal(t, int64(7), queue.Payload.ClubID)
	assert.True(t, queue.Payload.TeeTime.Equal(teeTime))
}

func TestHandleRoundCreatedWithoutTeeTime(t *testing.T) {
	queue := &fakeQueue{}
	h := NewRoundHandlers(queue, observability.NoOpLogger)

	msg, err := utils.NewMessage(roundevents.RoundCreatedPayload{
		RoundID:  sharedtypes.RoundID(uuid.New()),
		PlayType: sharedtypes.PlayTypeStroke,
	}, roundevents.RoundCreated)
	require.NoError(t, err)

	require.NoError(t, h.HandleRoundCreated(msg))
	assert.Zero(t, queue.Calls)
}

func TestHandleRoundCreatedDropsBadPayload(t *testing.T) {
	queue := &fakeQueue{}
	h := NewRoundHandlers(queue, observability.NoOpLogger)

	msg := message.NewMessage("bad", []byte("not json"))

	require.NoError(t, h.HandleRoundCreated(msg))
	assert.Zero(t, queue.Calls)
}
