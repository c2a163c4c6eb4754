package leaderboardrouter

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Shore-Tour-Club/golf-tracker/app/shared/utils"
)

// resultPublisher routes each message to the topic recorded in its metadata,
// falling back to the handler's publish topic. Handlers can therefore return
// success and failure messages bound for different topics from one call.
type resultPublisher struct {
	inner message.Publisher
}

func newResultPublisher(inner message.Publisher) *resultPublisher {
	return &resultPublisher{inner: inner}
}

func (p *resultPublisher) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		target := msg.Metadata.Get(utils.TopicMetadataKey)
		if target == "" {
			target = topic
		}
		if target == "" {
			return fmt.Errorf("message %s has no destination topic", msg.UUID)
		}
		if err := p.inner.Publish(target, msg); err != nil {
			return err
		}
	}
	return nil
}

func (p *resultPublisher) Close() error {
	// Lifecycle of the wrapped publisher belongs to the event bus.
	return nil
}
