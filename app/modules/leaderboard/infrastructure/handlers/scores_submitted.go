package leaderboardhandlers

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	leaderboardevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/leaderboard/domain/events"
	roundevents "github.com/Shore-Tour-Club/golf-tracker/app/modules/round/domain/events"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/attr"
	"github.com/Shore-Tour-Club/golf-tracker/app/shared/utils"
)

// HandleRoundScoresSubmitted recomputes a round's standings from the
// aggregates the round module published. Business rejections produce a
// failure event and ack the message; only infrastructure errors propagate so
// the bus redelivers.
func (h *LeaderboardHandlers) HandleRoundScoresSubmitted(msg *message.Message) ([]*message.Message, error) {
	ctx := msg.Context()

	var payload roundevents.RoundScoresSubmittedPayload
	if err := utils.UnmarshalPayload(msg, &payload); err != nil {
		h.logger.ErrorContext(ctx, "Discarding undecodable scores-submitted message",
			attr.CorrelationIDFromMsg(msg),
			attr.Error(err),
		)
		// Malformed payloads never become decodable; drop rather than retry.
		return nil, nil
	}

	h.logger.InfoContext(ctx, "Handling submitted round scores",
		attr.CorrelationIDFromMsg(msg),
		attr.RoundID("round_id", payload.RoundID),
		attr.PlayType("play_type", payload.PlayType),
		attr.Int("num_aggregates", len(payload.Aggregates)),
	)

	result, err := h.service.RecomputeFromAggregates(ctx, payload.RoundID, payload.PlayType, payload.Aggregates)
	if err != nil {
		return nil, fmt.Errorf("failed to recompute leaderboard for round %s: %w", payload.RoundID, err)
	}

	if result.IsFailure() {
		out, err := utils.NewResultMessage(msg, *result.Failure, leaderboardevents.LeaderboardUpdateFailed)
		if err != nil {
			return nil, err
		}
		return []*message.Message{out}, nil
	}

	out, err := utils.NewResultMessage(msg, *result.Success, leaderboardevents.LeaderboardUpdated)
	if err != nil {
		return nil, err
	}
	return []*message.Message{out}, nil
}
