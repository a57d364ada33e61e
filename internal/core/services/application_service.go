package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

type ApplicationService struct {
	gateway ports.BackendGateway
	drafts  ports.DraftStore
	outbox  ports.OutboxRepository
}

func NewApplicationService(gateway ports.BackendGateway, drafts ports.DraftStore, outbox ports.OutboxRepository) *ApplicationService {
	return &ApplicationService{
		gateway: gateway,
		drafts:  drafts,
		outbox:  outbox,
	}
}

var _ ports.ApplicationService = (*ApplicationService)(nil)

// SaveDraft persists the in-progress form. Drafts never touch the backend.
func (s *ApplicationService) SaveDraft(ctx context.Context, sessionID string, form domain.ApplicationForm) error {
	return s.drafts.Save(ctx, sessionID, form)
}

func (s *ApplicationService) LoadDraft(ctx context.Context, sessionID string) (*domain.ApplicationForm, error) {
	return s.drafts.Get(ctx, sessionID)
}

func (s *ApplicationService) ClearDraft(ctx context.Context, sessionID string) error {
	return s.drafts.Delete(ctx, sessionID)
}

// Submit validates the form, creates the tenant record on the backend and
// clears the draft. Validation failures are raised before any network call.
// The draft is only destroyed after the backend accepted the submission.
func (s *ApplicationService) Submit(ctx context.Context, sess *domain.Session, form domain.ApplicationForm, listing *domain.Listing) (*domain.Tenant, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	var l domain.Listing
	if listing != nil {
		l = *listing
	}
	app := domain.BuildApplication(form, l)

	tenant, err := s.gateway.CreateTenant(ctx, app)
	if err != nil {
		return nil, err
	}

	if err := s.drafts.Delete(ctx, sess.ID); err != nil {
		log.Printf("draft cleanup after submit: %v", err)
	}

	evt := ports.ApplicationSubmittedEvent{
		TenantID:     tenant.ID,
		Email:        tenant.Email,
		PropertyUnit: tenant.PropertyUnit,
		SubmittedAt:  time.Now().UTC(),
	}
	if err := s.outbox.Insert(ctx, ports.EventApplicationSubmitted, evt); err != nil {
		log.Printf("outbox insert %s: %v", ports.EventApplicationSubmitted, err)
	}

	sess.ApplyTenant(tenant)
	sess.View = domain.ViewStatusTracker
	return tenant, nil
}

// CheckStatus looks up an application by exact contact pair. A no-match is
// (nil, nil); the caller shows a generic not-found message that never reveals
// which field mismatched.
func (s *ApplicationService) CheckStatus(ctx context.Context, sess *domain.Session, email, phone string) (*ports.StatusLookup, error) {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if email == "" || phone == "" {
		return nil, ports.NewError(ports.KindValidation, "email and phone are required", nil)
	}

	lookup, err := s.gateway.CheckApplicationStatus(ctx, email, phone)
	if err != nil {
		return nil, err
	}
	if lookup == nil {
		return nil, nil
	}

	sess.View = domain.ViewStatusTracker
	return lookup, nil
}

func validateForm(form domain.ApplicationForm) error {
	switch {
	case strings.TrimSpace(form.FirstName) == "" || strings.TrimSpace(form.LastName) == "":
		return ports.NewError(ports.KindValidation, "first and last name are required", nil)
	case strings.TrimSpace(form.Email) == "":
		return ports.NewError(ports.KindValidation, "email is required", nil)
	case strings.TrimSpace(form.Phone) == "":
		return ports.NewError(ports.KindValidation, "phone is required", nil)
	case !form.AgreesToPolicy:
		return ports.NewError(ports.KindValidation, "you must agree to the rental policies", nil)
	case !form.CertificationOK:
		return ports.NewError(ports.KindValidation, "you must certify the application is accurate", nil)
	}
	return nil
}
