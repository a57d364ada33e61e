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

func newDocumentService() (*DocumentService, *mocks.MockBackendGateway, *mocks.MockTriageAdvisor, *mocks.MockSessionStore, *mocks.MockOutboxRepository) {
	gateway := mocks.NewMockBackendGateway()
	advisor := mocks.NewMockTriageAdvisor()
	store := mocks.NewMockSessionStore()
	outbox := mocks.NewMockOutboxRepository()
	svc := NewDocumentService(gateway, advisor, store, outbox)
	svc.signDelay = 0 // no ceremony pause in tests
	return svc, gateway, advisor, store, outbox
}

func TestLeaseDocumentPicksLeaseAgreement(t *testing.T) {
	svc, gateway, _, _, _ := newDocumentService()
	gateway.Documents = []domain.LegalDocument{
		{ID: "d1", Type: "Notice"},
		{ID: "d2", Type: domain.LeaseAgreementType, Status: domain.DocumentSent},
	}

	sess := mocks.AuthenticatedSession(mocks.ApprovedTenant())
	lease, err := svc.LeaseDocument(context.Background(), sess)
	if err != nil {
		t.Fatalf("LeaseDocument: %v", err)
	}
	if lease == nil || lease.ID != "d2" {
		t.Errorf("lease = %+v, want d2", lease)
	}
}

func TestSignLeaseMarksDocumentAndAdvances(t *testing.T) {
	svc, gateway, _, store, outbox := newDocumentService()
	gateway.Documents = []domain.LegalDocument{
		{ID: "d2", Type: domain.LeaseAgreementType, Status: domain.DocumentSent},
	}

	sess := mocks.AuthenticatedSession(mocks.ApprovedTenant())
	if err := svc.SignLease(context.Background(), sess); err != nil {
		t.Fatalf("SignLease: %v", err)
	}

	if len(gateway.UpdateDocumentIDs) != 1 || gateway.UpdateDocumentIDs[0] != "d2" {
		t.Errorf("UpdateDocumentIDs = %v, want [d2]", gateway.UpdateDocumentIDs)
	}
	if patch := gateway.DocumentPatches["d2"]; patch.Status != domain.DocumentSigned || patch.SignedAt == "" {
		t.Errorf("patch = %+v, want Signed with timestamp", patch)
	}
	if sess.Status != domain.StatusResident || sess.View != domain.ViewDashboard {
		t.Errorf("session = %q/%q, want resident/dashboard", sess.Status, sess.View)
	}
	if !sess.PendingReconcile {
		t.Error("optimistic advance should be flagged for reconciliation")
	}
	if stored, _ := store.Stored(sess.ID); stored.Status != domain.StatusResident {
		t.Error("advanced session should be persisted")
	}
	if types := outbox.EventTypes(); len(types) != 1 || types[0] != ports.EventLeaseSigned {
		t.Errorf("outbox events = %v, want one lease.signed", types)
	}
}

func TestSignLeaseSkipsRemoteCallWhenNoDocument(t *testing.T) {
	svc, gateway, _, _, _ := newDocumentService()
	gateway.Documents = nil // lease id cannot be resolved

	sess := mocks.AuthenticatedSession(mocks.ApprovedTenant())
	if err := svc.SignLease(context.Background(), sess); err != nil {
		t.Fatalf("SignLease: %v", err)
	}

	if len(gateway.UpdateDocumentIDs) != 0 {
		t.Error("no document update call should be made without a lease id")
	}
	if sess.Status != domain.StatusResident {
		t.Error("the ceremony still advances optimistically")
	}
}

func TestSignLeaseAdvancesDespiteRemoteFailure(t *testing.T) {
	svc, gateway, _, _, _ := newDocumentService()
	gateway.Documents = []domain.LegalDocument{
		{ID: "d2", Type: domain.LeaseAgreementType},
	}
	gateway.UpdateDocumentError = ports.NewError(ports.KindRemote, "backend down", nil)

	sess := mocks.AuthenticatedSession(mocks.ApprovedTenant())
	if err := svc.SignLease(context.Background(), sess); err != nil {
		t.Fatalf("SignLease: %v", err)
	}
	if sess.Status != domain.StatusResident || !sess.PendingReconcile {
		t.Error("a backend failure defers to the next refresh, it does not block signing")
	}
}

func TestSignLeaseRequiresApprovedApplicant(t *testing.T) {
	svc, _, _, _, _ := newDocumentService()

	sess := mocks.AuthenticatedSession(mocks.ActiveTenant()) // already resident
	err := svc.SignLease(context.Background(), sess)
	if !ports.IsForbidden(err) {
		t.Errorf("err = %v, want forbidden", err)
	}
}

func TestDraftLeaseFallsBackWhenAdvisorFails(t *testing.T) {
	svc, _, advisor, _, _ := newDocumentService()
	advisor.DraftError = errors.New("advisor unreachable")

	sess := mocks.AuthenticatedSession(mocks.ApprovedTenant())
	text, err := svc.DraftLease(context.Background(), sess)
	if err != nil {
		t.Fatalf("DraftLease: %v", err)
	}
	if !strings.Contains(text, "LEASE AGREEMENT") {
		t.Errorf("fallback text = %q", text)
	}
	if !strings.Contains(text, "Oakwood 4B") {
		t.Error("fallback should carry the tenant's unit")
	}
}

func TestDraftLeaseUsesAdvisorText(t *testing.T) {
	svc, _, advisor, _, _ := newDocumentService()
	advisor.LeaseText = "# Lease for Jordan Reed"

	sess := mocks.AuthenticatedSession(mocks.ApprovedTenant())
	text, err := svc.DraftLease(context.Background(), sess)
	if err != nil {
		t.Fatalf("DraftLease: %v", err)
	}
	if text != "# Lease for Jordan Reed" {
		t.Errorf("text = %q, want advisor output", text)
	}
}
