package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

// signingDelay holds the signing ceremony on screen long enough to read the
// confirmation before the dashboard takes over.
const signingDelay = 1500 * time.Millisecond

type DocumentService struct {
	gateway  ports.BackendGateway
	advisor  ports.TriageAdvisor
	sessions ports.SessionStore
	outbox   ports.OutboxRepository

	signDelay time.Duration
}

func NewDocumentService(gateway ports.BackendGateway, advisor ports.TriageAdvisor, sessions ports.SessionStore, outbox ports.OutboxRepository) *DocumentService {
	return &DocumentService{
		gateway:   gateway,
		advisor:   advisor,
		sessions:  sessions,
		outbox:    outbox,
		signDelay: signingDelay,
	}
}

var _ ports.DocumentService = (*DocumentService)(nil)

// Documents returns the session tenant's legal documents.
func (s *DocumentService) Documents(ctx context.Context, sess *domain.Session) ([]domain.LegalDocument, error) {
	tenantID, err := requireTenant(sess)
	if err != nil {
		return nil, err
	}
	return s.gateway.GetLegalDocuments(ctx, &sess.Tokens, tenantID)
}

// LeaseDocument returns the tenant's lease agreement, nil when none has been
// issued yet.
func (s *DocumentService) LeaseDocument(ctx context.Context, sess *domain.Session) (*domain.LegalDocument, error) {
	docs, err := s.Documents(ctx, sess)
	if err != nil {
		return nil, err
	}
	return domain.FindLease(docs), nil
}

// SignLease completes the signing ceremony. When the lease document id is
// known the backend record is marked Signed first; when it cannot be resolved
// the session still advances optimistically and the next fetch-backed status
// refresh reconciles the real state. The remote failure path does not block
// the advance either, for the same reason.
func (s *DocumentService) SignLease(ctx context.Context, sess *domain.Session) error {
	tenantID, err := requireTenant(sess)
	if err != nil {
		return err
	}
	if sess.Status != domain.StatusApplicantApproved {
		return ports.NewError(ports.KindForbidden, "lease signing is only available to approved applicants", nil)
	}

	signedAt := time.Now().UTC().Format(time.RFC3339)
	lease, err := s.LeaseDocument(ctx, sess)
	if err != nil {
		log.Printf("lease lookup before signing: %v", err)
	}
	if lease != nil && lease.ID != "" {
		patch := domain.DocumentPatch{Status: domain.DocumentSigned, SignedAt: signedAt}
		if _, err := s.gateway.UpdateLegalDocument(ctx, &sess.Tokens, lease.ID, patch); err != nil {
			log.Printf("lease document update: %v", err)
		}
	}

	evt := ports.LeaseSignedEvent{
		TenantID:   tenantID,
		DocumentID: leaseID(lease),
		SignedAt:   time.Now().UTC(),
	}
	if err := s.outbox.Insert(ctx, ports.EventLeaseSigned, evt); err != nil {
		log.Printf("outbox insert %s: %v", ports.EventLeaseSigned, err)
	}

	select {
	case <-time.After(s.signDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	sess.AdvanceOptimistic()
	return s.sessions.Save(ctx, sess)
}

// DraftLease asks the advisor for a lease agreement draft for the session
// tenant. When the advisor fails a plain template is returned instead.
func (s *DocumentService) DraftLease(ctx context.Context, sess *domain.Session) (string, error) {
	if _, err := requireTenant(sess); err != nil {
		return "", err
	}

	if s.advisor != nil {
		text, err := s.advisor.DraftLeaseAgreement(ctx, *sess.Tenant, "standard")
		if err == nil && text != "" {
			return text, nil
		}
		log.Printf("lease draft fallback: %v", err)
	}
	return fallbackLease(*sess.Tenant), nil
}

func leaseID(lease *domain.LegalDocument) string {
	if lease == nil {
		return ""
	}
	return lease.ID
}

func fallbackLease(t domain.Tenant) string {
	return fmt.Sprintf(
		"RESIDENTIAL LEASE AGREEMENT\n\nThis agreement is made between the property manager and %s for the premises at %s.\n\nMonthly rent: $%.2f\nSecurity deposit: $%.2f\n\nThe full lease terms will be provided by the property manager.",
		t.Name, t.PropertyUnit, t.RentAmount, t.Deposit,
	)
}
