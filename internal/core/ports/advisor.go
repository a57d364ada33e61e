package ports

import (
	"context"

	"github.com/propguard/tenant-portal/internal/core/domain"
)

// TriageResult is the advisor's suggestion for a maintenance submission.
type TriageResult struct {
	Priority   domain.MaintenancePriority `json:"priority"`
	VendorType string                     `json:"vendorType"`
	Summary    string                     `json:"summary"`
}

// TriageAdvisor is the external text-generation collaborator. It is never
// required for correctness: every caller must degrade to static defaults when
// a call fails, and advisor failures are never surfaced to the end user.
type TriageAdvisor interface {
	AnalyzeMaintenanceRequest(ctx context.Context, description string) (*TriageResult, error)
	DraftLeaseAgreement(ctx context.Context, t domain.Tenant, templateType string) (string, error)
}
