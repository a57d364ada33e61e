package ports

import (
	"context"

	"github.com/propguard/tenant-portal/internal/core/domain"
)

// LoginResult is the backend's login response: a token pair, the principal,
// and the tenant record when one is bound to the account.
type LoginResult struct {
	Tokens domain.TokenPair
	User   domain.User
	Tenant *domain.Tenant
}

// StatusLookup is the unauthenticated application-status response.
type StatusLookup struct {
	Status domain.TenantStatus `json:"status"`
	Tenant domain.Tenant       `json:"tenant"`
}

// ContactMessage is a portal-to-manager message.
type ContactMessage struct {
	Message     string `json:"message"`
	TenantID    string `json:"tenant_id,omitempty"`
	SenderName  string `json:"sender_name,omitempty"`
	SenderEmail string `json:"sender_email,omitempty"`
}

// BackendGateway is the typed wrapper over the property-management REST API.
// It is a pure I/O boundary: no business logic, no automatic retries beyond a
// single-flight token refresh on 401, failures surfaced immediately as
// classified *Error values. Operations taking a *TokenPair may rotate the pair
// in place after a refresh; callers persist it back to the session.
type BackendGateway interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RefreshToken(ctx context.Context, tok *domain.TokenPair) error

	GetProperties(ctx context.Context) ([]domain.Property, error)
	GetMyTenant(ctx context.Context, tok *domain.TokenPair) (*domain.Tenant, error)

	// CheckApplicationStatus performs an exact-match lookup by contact pair.
	// A no-match returns (nil, nil), distinct from a service failure; the
	// backend never discloses which of the two fields failed to match.
	CheckApplicationStatus(ctx context.Context, email, phone string) (*StatusLookup, error)
	CreateTenant(ctx context.Context, app domain.TenantApplication) (*domain.Tenant, error)

	GetPayments(ctx context.Context, tok *domain.TokenPair) ([]domain.Payment, error)
	CreatePayment(ctx context.Context, tok *domain.TokenPair, p domain.NewPayment) (*domain.Payment, error)

	GetMaintenanceRequests(ctx context.Context, tok *domain.TokenPair) ([]domain.MaintenanceRequest, error)
	CreateMaintenanceRequest(ctx context.Context, tok *domain.TokenPair, r domain.NewMaintenanceRequest) (*domain.MaintenanceRequest, error)
	UpdateMaintenanceRequest(ctx context.Context, tok *domain.TokenPair, id string, patch domain.MaintenancePatch) (*domain.MaintenanceRequest, error)

	GetLegalDocuments(ctx context.Context, tok *domain.TokenPair, tenantID string) ([]domain.LegalDocument, error)
	UpdateLegalDocument(ctx context.Context, tok *domain.TokenPair, id string, patch domain.DocumentPatch) (*domain.LegalDocument, error)

	SendContactManagerMessage(ctx context.Context, tok *domain.TokenPair, msg ContactMessage) error
}
