package outbox

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/propguard/tenant-portal/internal/core/ports"
	"github.com/propguard/tenant-portal/test/mocks"
)

func TestRelayStartsHealthyAndReady(t *testing.T) {
	relay := NewRelay(nil, "postgres://unused", mocks.NewMockPortalEventPublisher())

	if !relay.IsHealthy() {
		t.Error("a fresh relay is healthy")
	}
	if !relay.IsReady() {
		t.Error("a fresh relay is ready")
	}
}

func TestRelayNotReadyWhenStale(t *testing.T) {
	relay := NewRelay(nil, "postgres://unused", mocks.NewMockPortalEventPublisher())
	relay.lastProcessed = time.Now().Add(-10 * time.Minute)

	if relay.IsReady() {
		t.Error("a relay that has not processed in 10 minutes is stale")
	}
	if !relay.IsHealthy() {
		t.Error("staleness degrades readiness, not liveness")
	}
}

func TestRelayUnhealthyAfterListenerLoss(t *testing.T) {
	relay := NewRelay(nil, "postgres://unused", mocks.NewMockPortalEventPublisher())
	relay.isHealthy = false

	if relay.IsHealthy() || relay.IsReady() {
		t.Error("a relay that lost its listener is neither healthy nor ready")
	}
}

func TestPublisherCarriesEventTypeAndBody(t *testing.T) {
	publisher := mocks.NewMockPortalEventPublisher()

	payload, _ := json.Marshal(ports.LeaseSignedEvent{TenantID: "tenant-1", DocumentID: "doc-9"})
	if err := publisher.PublishPortalEvent(context.Background(), ports.EventLeaseSigned, payload); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(publisher.PublishedTypes) != 1 || publisher.PublishedTypes[0] != ports.EventLeaseSigned {
		t.Errorf("published types = %v", publisher.PublishedTypes)
	}
	var evt ports.LeaseSignedEvent
	if err := json.Unmarshal(publisher.PublishedBodies[0], &evt); err != nil {
		t.Fatal(err)
	}
	if evt.TenantID != "tenant-1" || evt.DocumentID != "doc-9" {
		t.Errorf("event = %+v", evt)
	}
}

func TestPublisherErrorInjection(t *testing.T) {
	publisher := mocks.NewMockPortalEventPublisher()
	publisher.PublishError = context.DeadlineExceeded

	err := publisher.PublishPortalEvent(context.Background(), ports.EventPaymentRecorded, []byte(`{}`))
	if err != context.DeadlineExceeded {
		t.Errorf("err = %v, want the injected error", err)
	}
	if len(publisher.PublishedTypes) != 0 {
		t.Error("failed publishes must not be recorded")
	}
}
