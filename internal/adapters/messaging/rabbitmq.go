package messaging

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"

	"github.com/propguard/tenant-portal/internal/config"
)

// Broker owns the RabbitMQ connection and the durable queue the outbox relay
// publishes portal events to.
type Broker struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
	cb    *gobreaker.CircuitBreaker
}

// Connect dials RabbitMQ and declares the portal event queue. The declare is
// idempotent, so the relay and any consumer can both start first.
func Connect(amqpURL, queue string) (*Broker, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return &Broker{
		conn:  conn,
		ch:    ch,
		queue: queue,
		cb:    config.NewCircuitBreaker("RabbitMQ-Publisher"),
	}, nil
}

// IsClosed reports whether the underlying connection has been lost.
func (b *Broker) IsClosed() bool {
	return b.conn == nil || b.conn.IsClosed()
}

func (b *Broker) Close() error {
	if b.ch != nil {
		if err := b.ch.Close(); err != nil {
			return err
		}
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
