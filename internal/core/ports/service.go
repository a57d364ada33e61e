package ports

import (
	"context"

	"github.com/propguard/tenant-portal/internal/core/domain"
)

type SessionService interface {
	// Login authenticates against the backend and binds the result to
	// the session. adminMode rejects non-staff users without clearing
	// the session identity.
	Login(ctx context.Context, sess *domain.Session, email, password string, adminMode bool) error
	// Resume rebuilds session state from the stored token pair. Auth
	// failures clear the identity; transient backend failures keep the
	// last known state.
	Resume(ctx context.Context, sess *domain.Session) error
	// RefreshStatus re-fetches the tenant record and re-derives the
	// user status, reconciling any optimistic transition.
	RefreshStatus(ctx context.Context, sess *domain.Session) error
	Logout(ctx context.Context, sess *domain.Session) error
}

type ApplicationService interface {
	SaveDraft(ctx context.Context, sessionID string, form domain.ApplicationForm) error
	LoadDraft(ctx context.Context, sessionID string) (*domain.ApplicationForm, error)
	ClearDraft(ctx context.Context, sessionID string) error
	// Submit validates the form locally, creates the tenant record and
	// clears the draft on success.
	Submit(ctx context.Context, sess *domain.Session, form domain.ApplicationForm, listing *domain.Listing) (*domain.Tenant, error)
	// CheckStatus returns (nil, nil) when no application matches; an
	// error only signals a backend failure.
	CheckStatus(ctx context.Context, sess *domain.Session, email, phone string) (*StatusLookup, error)
}

type RecordingService interface {
	Payments(ctx context.Context, sess *domain.Session) ([]domain.Payment, error)
	SubmitPayment(ctx context.Context, sess *domain.Session, amount float64, method string, proof *domain.FileRef) (*domain.Payment, error)
	MaintenanceRequests(ctx context.Context, sess *domain.Session) ([]domain.MaintenanceRequest, error)
	SubmitMaintenanceRequest(ctx context.Context, sess *domain.Session, area, issue, details string, photos []domain.FileRef) (*domain.MaintenanceRequest, error)
	AppendTicketUpdate(ctx context.Context, sess *domain.Session, requestID, comment string) (*domain.MaintenanceRequest, error)
	ExportTicketsCSV(ctx context.Context, sess *domain.Session) ([]byte, error)
}

type DocumentService interface {
	Documents(ctx context.Context, sess *domain.Session) ([]domain.LegalDocument, error)
	LeaseDocument(ctx context.Context, sess *domain.Session) (*domain.LegalDocument, error)
	// SignLease marks the lease signed remotely when the document id is
	// known, then advances the session optimistically.
	SignLease(ctx context.Context, sess *domain.Session) error
	DraftLease(ctx context.Context, sess *domain.Session) (string, error)
}

type PropertyService interface {
	Listings(ctx context.Context) ([]domain.Listing, error)
	ContactManager(ctx context.Context, sess *domain.Session, msg ContactMessage) error
}
