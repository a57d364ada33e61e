package ports

import (
	"context"
)

// OutboxRepository stores portal events transactionally so the relay
// can deliver them to the broker after the fact.
type OutboxRepository interface {
	Insert(ctx context.Context, eventType string, payload any) error
}
