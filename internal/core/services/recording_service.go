package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

// fallbackTriage is used whenever the advisor is unavailable. Advisor
// failures never surface to the tenant.
var fallbackTriage = ports.TriageResult{
	Priority:   domain.PriorityMedium,
	VendorType: "General",
}

type RecordingService struct {
	gateway ports.BackendGateway
	advisor ports.TriageAdvisor
	outbox  ports.OutboxRepository
}

func NewRecordingService(gateway ports.BackendGateway, advisor ports.TriageAdvisor, outbox ports.OutboxRepository) *RecordingService {
	return &RecordingService{
		gateway: gateway,
		advisor: advisor,
		outbox:  outbox,
	}
}

var _ ports.RecordingService = (*RecordingService)(nil)

// Payments returns the session tenant's payment history, newest first.
func (s *RecordingService) Payments(ctx context.Context, sess *domain.Session) ([]domain.Payment, error) {
	tenantID, err := requireTenant(sess)
	if err != nil {
		return nil, err
	}
	all, err := s.gateway.GetPayments(ctx, &sess.Tokens)
	if err != nil {
		return nil, err
	}
	return domain.FilterPaymentsByTenant(all, tenantID), nil
}

// SubmitPayment records a tenant payment claim. The created row always enters
// as Pending regardless of anything the caller supplied; only manager
// verification on the backend moves it to Paid or Failed.
func (s *RecordingService) SubmitPayment(ctx context.Context, sess *domain.Session, amount float64, method string, proof *domain.FileRef) (*domain.Payment, error) {
	tenantID, err := requireTenant(sess)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, ports.NewError(ports.KindValidation, "payment amount must be positive", nil)
	}
	if strings.TrimSpace(method) == "" {
		return nil, ports.NewError(ports.KindValidation, "payment method is required", nil)
	}

	np := domain.NewPayment{
		TenantID: tenantID,
		Amount:   amount,
		Date:     time.Now().UTC().Format("2006-01-02"),
		Type:     "Rent",
		Method:   method,
	}
	if proof != nil {
		np.ProofFiles = []domain.FileRef{*proof}
	}

	payment, err := s.gateway.CreatePayment(ctx, &sess.Tokens, np)
	if err != nil {
		return nil, err
	}

	evt := ports.PaymentRecordedEvent{
		PaymentID: payment.ID,
		TenantID:  tenantID,
		Amount:    payment.Amount,
		Method:    payment.Method,
	}
	if err := s.outbox.Insert(ctx, ports.EventPaymentRecorded, evt); err != nil {
		log.Printf("outbox insert %s: %v", ports.EventPaymentRecorded, err)
	}
	return payment, nil
}

// MaintenanceRequests returns the session tenant's tickets.
func (s *RecordingService) MaintenanceRequests(ctx context.Context, sess *domain.Session) ([]domain.MaintenanceRequest, error) {
	tenantID, err := requireTenant(sess)
	if err != nil {
		return nil, err
	}
	all, err := s.gateway.GetMaintenanceRequests(ctx, &sess.Tokens)
	if err != nil {
		return nil, err
	}
	return domain.FilterByTenant(all, tenantID), nil
}

// SubmitMaintenanceRequest files a ticket. The advisor suggests a priority
// from the issue text; when it fails the ticket is filed anyway with the
// static defaults.
func (s *RecordingService) SubmitMaintenanceRequest(ctx context.Context, sess *domain.Session, area, issue, details string, photos []domain.FileRef) (*domain.MaintenanceRequest, error) {
	tenantID, err := requireTenant(sess)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(issue) == "" {
		return nil, ports.NewError(ports.KindValidation, "describe the issue", nil)
	}

	description := issue
	if details != "" {
		description = issue + ": " + details
	}
	if area != "" {
		description = area + " - " + description
	}

	triage := s.triage(ctx, description)

	images := make([]string, 0, len(photos))
	for _, p := range photos {
		images = append(images, p.Path)
	}

	req := domain.NewMaintenanceRequest{
		TenantID:    tenantID,
		Category:    area,
		Description: description,
		Priority:    triage.Priority,
		Images:      images,
	}
	return s.gateway.CreateMaintenanceRequest(ctx, &sess.Tokens, req)
}

// AppendTicketUpdate adds a tenant comment to a ticket's update history. The
// history is append-only: the existing updates are re-sent with the new entry
// at the end.
func (s *RecordingService) AppendTicketUpdate(ctx context.Context, sess *domain.Session, requestID, comment string) (*domain.MaintenanceRequest, error) {
	tenantID, err := requireTenant(sess)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(comment) == "" {
		return nil, ports.NewError(ports.KindValidation, "comment is required", nil)
	}

	all, err := s.gateway.GetMaintenanceRequests(ctx, &sess.Tokens)
	if err != nil {
		return nil, err
	}
	var current *domain.MaintenanceRequest
	for i := range all {
		if all[i].ID == requestID && all[i].TenantID == tenantID {
			current = &all[i]
			break
		}
	}
	if current == nil {
		return nil, ports.NewError(ports.KindNotFound, "maintenance request not found", nil)
	}

	author := "Tenant"
	if sess.Tenant != nil && sess.Tenant.Name != "" {
		author = sess.Tenant.Name
	}
	updates := append(current.Updates, domain.TicketUpdate{
		Date:    time.Now().UTC().Format("2006-01-02"),
		Message: comment,
		Author:  author,
	})

	return s.gateway.UpdateMaintenanceRequest(ctx, &sess.Tokens, requestID, domain.MaintenancePatch{Updates: updates})
}

// ExportTicketsCSV renders the tenant's tickets as a CSV download.
func (s *RecordingService) ExportTicketsCSV(ctx context.Context, sess *domain.Session) ([]byte, error) {
	requests, err := s.MaintenanceRequests(ctx, sess)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"ID", "Category", "Description", "Status", "Priority", "Created", "Assigned To"})
	for _, r := range requests {
		_ = w.Write([]string{r.ID, r.Category, r.Description, string(r.Status), string(r.Priority), r.CreatedAt, r.AssignedTo})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *RecordingService) triage(ctx context.Context, description string) ports.TriageResult {
	if s.advisor == nil {
		return fallbackTriage
	}
	result, err := s.advisor.AnalyzeMaintenanceRequest(ctx, description)
	if err != nil || result == nil {
		log.Printf("maintenance triage fallback: %v", err)
		return fallbackTriage
	}
	if result.Priority == "" {
		result.Priority = fallbackTriage.Priority
	}
	if result.VendorType == "" {
		result.VendorType = fallbackTriage.VendorType
	}
	return *result
}

// requireTenant guards resident-only operations.
func requireTenant(sess *domain.Session) (string, error) {
	if sess == nil || sess.State != domain.SessionAuthenticated {
		return "", ports.NewError(ports.KindAuth, "not signed in", nil)
	}
	id := sess.TenantID()
	if id == "" {
		return "", ports.NewError(ports.KindForbidden, "no tenant record bound to this account", nil)
	}
	return id, nil
}
