package ports

import (
	"context"

	"github.com/propguard/tenant-portal/internal/core/domain"
)

// SessionStore persists portal sessions. Get returns (nil, nil) for an
// unknown id.
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}

// DraftStore persists in-progress application forms. Saving must never call
// the backend; it is the portal's own storage. Get returns (nil, nil) for an
// unknown id, Delete is idempotent.
type DraftStore interface {
	Get(ctx context.Context, id string) (*domain.ApplicationForm, error)
	Save(ctx context.Context, id string, form domain.ApplicationForm) error
	Delete(ctx context.Context, id string) error
}
