package roundqueue

import (
	roundevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/domain/events"
)

// TeeTimeReminderJob fires shortly before a round's tee time and publishes
// a reminder event.
type TeeTimeReminderJob struct {
	RoundID   string                             `json:"round_id"`
	RoundData roundevents.TeeTimeReminderPayload `json:"round_data"`
}

// Kind returns the job type identifier for River.
func (TeeTimeReminderJob) Kind() string { return "tee_time_reminder" }

// JobInfo represents information about a scheduled job (for debugging/monitoring).
type JobInfo struct {
	ID          int64  `json:"id"`
	Kind        string `json:"kind"`
	RoundID     string `json:"round_id"`
	State       string `json:"state"`
	ScheduledAt string `json:"scheduled_at"`
	CreatedAt   string `json:"created_at"`
	Attempt     int    `json:"attempt"`
	MaxAttempts int    `json:"max_attempts"`
}
