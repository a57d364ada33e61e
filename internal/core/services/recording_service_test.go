package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
	"github.com/propguard/tenant-portal/test/mocks"
)

func newRecordingService() (*RecordingService, *mocks.MockBackendGateway, *mocks.MockTriageAdvisor, *mocks.MockOutboxRepository) {
	gateway := mocks.NewMockBackendGateway()
	advisor := mocks.NewMockTriageAdvisor()
	outbox := mocks.NewMockOutboxRepository()
	return NewRecordingService(gateway, advisor, outbox), gateway, advisor, outbox
}

func TestPaymentsAreScopedToSessionTenant(t *testing.T) {
	svc, gateway, _, _ := newRecordingService()
	gateway.Payments = []domain.Payment{
		{ID: "1", TenantID: "tenant-1"},
		{ID: "2", TenantID: "someone-else"},
	}

	sess := mocks.AuthenticatedSession(mocks.ActiveTenant())
	payments, err := svc.Payments(context.Background(), sess)
	if err != nil {
		t.Fatalf("Payments: %v", err)
	}
	if len(payments) != 1 || payments[0].TenantID != "tenant-1" {
		t.Errorf("payments = %+v, want only the session tenant's rows", payments)
	}
}

func TestSubmitPaymentAlwaysEntersPending(t *testing.T) {
	svc, gateway, _, outbox := newRecordingService()

	sess := mocks.AuthenticatedSession(mocks.ActiveTenant())
	payment, err := svc.SubmitPayment(context.Background(), sess, 1450, "Zelle", nil)
	if err != nil {
		t.Fatalf("SubmitPayment: %v", err)
	}

	if payment.Status != domain.PaymentPending {
		t.Errorf("Status = %q, want Pending", payment.Status)
	}
	if len(gateway.CreatedPayments) != 1 {
		t.Fatalf("CreatedPayments = %d, want 1", len(gateway.CreatedPayments))
	}
	if gateway.CreatedPayments[0].TenantID != "tenant-1" {
		t.Errorf("TenantID = %q", gateway.CreatedPayments[0].TenantID)
	}
	if types := outbox.EventTypes(); len(types) != 1 || types[0] != ports.EventPaymentRecorded {
		t.Errorf("outbox events = %v, want one payment.recorded", types)
	}
}

func TestSubmitPaymentValidation(t *testing.T) {
	svc, gateway, _, _ := newRecordingService()
	sess := mocks.AuthenticatedSession(mocks.ActiveTenant())

	if _, err := svc.SubmitPayment(context.Background(), sess, 0, "Zelle", nil); !ports.IsValidation(err) {
		t.Errorf("zero amount: err = %v, want validation error", err)
	}
	if _, err := svc.SubmitPayment(context.Background(), sess, 100, "", nil); !ports.IsValidation(err) {
		t.Errorf("empty method: err = %v, want validation error", err)
	}
	if len(gateway.CreatedPayments) != 0 {
		t.Error("no backend calls expected")
	}
}

func TestRecordingRequiresTenant(t *testing.T) {
	svc, _, _, _ := newRecordingService()

	if _, err := svc.Payments(context.Background(), domain.NewSession("s1")); !ports.IsAuthError(err) {
		t.Errorf("anonymous: err = %v, want auth error", err)
	}

	sess := mocks.AuthenticatedSession(nil) // account without a tenant record
	if _, err := svc.Payments(context.Background(), sess); !ports.IsForbidden(err) {
		t.Errorf("no tenant: err = %v, want forbidden", err)
	}
}

func TestSubmitMaintenanceUsesAdvisorPriority(t *testing.T) {
	svc, gateway, advisor, _ := newRecordingService()
	advisor.TriageResult = &ports.TriageResult{Priority: domain.PriorityEmergency, VendorType: "Plumber"}

	sess := mocks.AuthenticatedSession(mocks.ActiveTenant())
	created, err := svc.SubmitMaintenanceRequest(context.Background(), sess, "Kitchen", "Burst pipe", "water everywhere", nil)
	if err != nil {
		t.Fatalf("SubmitMaintenanceRequest: %v", err)
	}

	if created.Priority != domain.PriorityEmergency {
		t.Errorf("Priority = %q, want advisor suggestion", created.Priority)
	}
	if len(advisor.AnalyzeCalls) != 1 {
		t.Fatalf("AnalyzeCalls = %d, want 1", len(advisor.AnalyzeCalls))
	}
	if !strings.Contains(advisor.AnalyzeCalls[0], "Burst pipe") {
		t.Errorf("advisor prompt = %q, want issue text included", advisor.AnalyzeCalls[0])
	}
	if len(gateway.CreatedRequests) != 1 {
		t.Fatal("request should reach the backend")
	}
}

func TestSubmitMaintenanceFallsBackWhenAdvisorFails(t *testing.T) {
	svc, gateway, advisor, _ := newRecordingService()
	advisor.AnalyzeError = errors.New("advisor unreachable")

	sess := mocks.AuthenticatedSession(mocks.ActiveTenant())
	created, err := svc.SubmitMaintenanceRequest(context.Background(), sess, "Bath", "Leaky faucet", "", nil)
	if err != nil {
		t.Fatalf("advisor failure must not block submission: %v", err)
	}
	if created.Priority != domain.PriorityMedium {
		t.Errorf("Priority = %q, want fallback Medium", created.Priority)
	}
	if len(gateway.CreatedRequests) != 1 {
		t.Error("ticket should still be filed")
	}
}

func TestAppendTicketUpdateKeepsHistoryOrdered(t *testing.T) {
	svc, gateway, _, _ := newRecordingService()
	gateway.Requests = []domain.MaintenanceRequest{
		{
			ID:       "req-1",
			TenantID: "tenant-1",
			Updates: []domain.TicketUpdate{
				{Date: "2026-08-01", Message: "Filed", Author: "Jordan Reed"},
			},
		},
	}

	sess := mocks.AuthenticatedSession(mocks.ActiveTenant())
	updated, err := svc.AppendTicketUpdate(context.Background(), sess, "req-1", "Any news?")
	if err != nil {
		t.Fatalf("AppendTicketUpdate: %v", err)
	}

	if len(updated.Updates) != 2 {
		t.Fatalf("updates = %d, want 2", len(updated.Updates))
	}
	if updated.Updates[1].Message != "Any news?" {
		t.Errorf("latest update = %q, want the new comment last", updated.Updates[1].Message)
	}
	patch := gateway.RequestPatches["req-1"]
	if len(patch.Updates) != 2 || patch.Updates[0].Message != "Filed" {
		t.Error("existing history must be re-sent intact with the new entry appended")
	}
}

func TestAppendTicketUpdateRejectsForeignTicket(t *testing.T) {
	svc, gateway, _, _ := newRecordingService()
	gateway.Requests = []domain.MaintenanceRequest{
		{ID: "req-9", TenantID: "someone-else"},
	}

	sess := mocks.AuthenticatedSession(mocks.ActiveTenant())
	_, err := svc.AppendTicketUpdate(context.Background(), sess, "req-9", "hello")
	if !ports.IsNotFound(err) {
		t.Errorf("err = %v, want not found for another tenant's ticket", err)
	}
}

func TestExportTicketsCSV(t *testing.T) {
	svc, gateway, _, _ := newRecordingService()
	gateway.Requests = []domain.MaintenanceRequest{
		{ID: "req-1", TenantID: "tenant-1", Category: "Kitchen", Description: "Burst pipe", Status: domain.MaintenanceOpen, Priority: domain.PriorityHigh, CreatedAt: "2026-08-01"},
		{ID: "req-2", TenantID: "other", Category: "Roof", Description: "Leak"},
	}

	sess := mocks.AuthenticatedSession(mocks.ActiveTenant())
	data, err := svc.ExportTicketsCSV(context.Background(), sess)
	if err != nil {
		t.Fatalf("ExportTicketsCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want header plus one scoped row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ID,Category,") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Burst pipe") {
		t.Errorf("row = %q, want the tenant's ticket", lines[1])
	}
	if strings.Contains(string(data), "Roof") {
		t.Error("another tenant's ticket leaked into the export")
	}
}
