package ports

import (
	"context"
	"time"
)

// Event types emitted by the portal through the outbox.
const (
	EventApplicationSubmitted = "application.submitted"
	EventPaymentRecorded      = "payment.recorded"
	EventLeaseSigned          = "lease.signed"
)

type ApplicationSubmittedEvent struct {
	TenantID     string    `json:"tenant_id"`
	Email        string    `json:"email"`
	PropertyUnit string    `json:"property_unit"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type PaymentRecordedEvent struct {
	PaymentID string  `json:"payment_id"`
	TenantID  string  `json:"tenant_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
}

type LeaseSignedEvent struct {
	TenantID   string    `json:"tenant_id"`
	DocumentID string    `json:"document_id"`
	SignedAt   time.Time `json:"signed_at"`
}

type PortalEventPublisher interface {
	PublishPortalEvent(ctx context.Context, eventType string, body []byte) error
}
