// Package leaderboardhandlers adapts bus messages to the leaderboard
// application service.
package leaderboardhandlers

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	leaderboardservice "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/application"
)

// Handlers is the leaderboard module's message handling surface.
type Handlers interface {
	HandleRoundScoresSubmitted(msg *message.Message) ([]*message.Message, error)
}

// LeaderboardHandlers implements Handlers.
type LeaderboardHandlers struct {
	service leaderboardservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers.
func NewLeaderboardHandlers(service leaderboardservice.Service, logger *slog.Logger, tracer trace.Tracer) *LeaderboardHandlers {
	return &LeaderboardHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

var _ Handlers = (*LeaderboardHandlers)(nil)
