// Package utils holds the watermill message plumbing shared by every module:
// payload marshalling, result-message construction, and the metadata
// middleware that threads correlation IDs through handler contexts.
package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// TopicMetadataKey records the topic a result message should be published to.
// The router's result publisher honours it over the handler's default topic.
const TopicMetadataKey = "topic"

type correlationIDKey struct{}

// ContextWithCorrelationID returns ctx carrying the given correlation ID.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationIDFromContext returns the correlation ID stored by
// ContextWithCorrelationID, or "" when none is present.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// NewMessage marshals payload into a fresh watermill message bound for topic.
func NewMessage(payload any, topic string) (*message.Message, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload for %s: %w", topic, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), b)
	msg.Metadata.Set(TopicMetadataKey, topic)
	return msg, nil
}

// NewResultMessage builds a message carrying payload for topic, propagating
// the correlation ID of the message that triggered it.
func NewResultMessage(original *message.Message, payload any, topic string) (*message.Message, error) {
	msg, err := NewMessage(payload, topic)
	if err != nil {
		return nil, err
	}
	if original != nil {
		if id := middleware.MessageCorrelationID(original); id != "" {
			middleware.SetCorrelationID(id, msg)
		}
	}
	return msg, nil
}

// UnmarshalPayload decodes a message payload into dst.
func UnmarshalPayload(msg *message.Message, dst any) error {
	if err := json.Unmarshal(msg.Payload, dst); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return nil
}

// CommonMetadataMiddleware stamps the handling module on each message and
// copies the watermill correlation ID into the message context so service
// logs can carry it.
func CommonMetadataMiddleware(module string) message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			msg.Metadata.Set("handled_by", module)
			if id := middleware.MessageCorrelationID(msg); id != "" {
				msg.SetContext(ContextWithCorrelationID(msg.Context(), id))
			}
			return h(msg)
		}
	}
}
