package mocks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/propguard/tenant-portal/internal/core/ports"
)

// InsertedEvent is one captured outbox insert.
type InsertedEvent struct {
	EventType string
	Payload   []byte
}

// MockOutboxRepository implements ports.OutboxRepository for testing.
type MockOutboxRepository struct {
	mu sync.RWMutex

	Inserted []InsertedEvent

	InsertError error
}

var _ ports.OutboxRepository = (*MockOutboxRepository)(nil)

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Insert(ctx context.Context, eventType string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.InsertError != nil {
		return m.InsertError
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	m.Inserted = append(m.Inserted, InsertedEvent{EventType: eventType, Payload: body})
	return nil
}

// EventTypes returns the types of all captured events in insertion order.
func (m *MockOutboxRepository) EventTypes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	types := make([]string, len(m.Inserted))
	for i, evt := range m.Inserted {
		types[i] = evt.EventType
	}
	return types
}

// MockPortalEventPublisher implements ports.PortalEventPublisher for testing
// the outbox relay without a real RabbitMQ connection.
type MockPortalEventPublisher struct {
	mu sync.RWMutex

	PublishedTypes  []string
	PublishedBodies [][]byte

	PublishError     error
	PublishCallCount int
}

var _ ports.PortalEventPublisher = (*MockPortalEventPublisher)(nil)

func NewMockPortalEventPublisher() *MockPortalEventPublisher {
	return &MockPortalEventPublisher{}
}

func (m *MockPortalEventPublisher) PublishPortalEvent(ctx context.Context, eventType string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishCallCount++
	if m.PublishError != nil {
		return m.PublishError
	}
	m.PublishedTypes = append(m.PublishedTypes, eventType)
	m.PublishedBodies = append(m.PublishedBodies, body)
	return nil
}
