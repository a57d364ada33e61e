package messaging

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/propguard/tenant-portal/internal/core/ports"
)

var _ ports.PortalEventPublisher = (*Broker)(nil)

// PublishPortalEvent delivers one outbox event to the portal queue. The
// event type rides in the message type header so consumers can route without
// decoding the body.
func (b *Broker) PublishPortalEvent(ctx context.Context, eventType string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.ch.PublishWithContext(
			ctx,
			"",      // default exchange
			b.queue, // routing key == queue name
			false,   // mandatory
			false,   // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Type:         eventType,
				Body:         body,
			},
		)
	})
	return err
}
