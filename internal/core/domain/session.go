package domain

import "time"

type SessionState string

const (
	SessionAnonymous      SessionState = "anonymous"
	SessionAuthenticating SessionState = "authenticating"
	SessionAuthenticated  SessionState = "authenticated"
)

// User is the session principal returned by the backend on login.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	IsVerified  bool   `json:"is_verified"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// IsAdmin reports whether the user clears the admin gate.
func (u User) IsAdmin() bool { return u.IsStaff || u.IsSuperuser }

// TokenPair carries the backend-issued bearer tokens for one session.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (t TokenPair) Empty() bool { return t.Access == "" }

// Session is the single-writer state object for one portal visitor: at most
// one User and one Tenant, the status derived from that tenant, and the
// current view. PendingReconcile marks the optimistic lease-sign advance,
// cleared by the next status refresh from a real tenant fetch.
type Session struct {
	ID        string       `json:"id"`
	State     SessionState `json:"state"`
	User      *User        `json:"user,omitempty"`
	Tenant    *Tenant      `json:"tenant,omitempty"`
	Status    UserStatus   `json:"status"`
	View      View         `json:"view"`
	Tab       ResidentTab  `json:"tab"`
	Tokens    TokenPair    `json:"tokens"`
	AdminMode bool         `json:"admin_mode"`

	PendingReconcile bool `json:"pending_reconcile"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession returns an anonymous session on the listings view.
func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		State:     SessionAnonymous,
		Status:    StatusGuest,
		View:      ViewListings,
		Tab:       TabOverview,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyTenant replaces the session's tenant wholesale and re-derives the
// status. Replacing from a real fetch also clears any optimistic advance.
func (s *Session) ApplyTenant(t *Tenant) {
	s.Tenant = t
	s.Status = DeriveStatus(t)
	s.PendingReconcile = false
	s.UpdatedAt = time.Now().UTC()
}

// AdvanceOptimistic moves the session to resident/dashboard ahead of server
// confirmation. The flag stays set until a fetch-backed refresh reconciles it.
func (s *Session) AdvanceOptimistic() {
	s.Status = StatusResident
	s.View = ViewDashboard
	s.PendingReconcile = true
	s.UpdatedAt = time.Now().UTC()
}

// ClearIdentity drops the principal, tenant and tokens, returning the session
// to the guest listings view.
func (s *Session) ClearIdentity() {
	s.State = SessionAnonymous
	s.User = nil
	s.Tenant = nil
	s.Tokens = TokenPair{}
	s.Status = StatusGuest
	s.View = ViewListings
	s.Tab = TabOverview
	s.AdminMode = false
	s.PendingReconcile = false
	s.UpdatedAt = time.Now().UTC()
}

// TenantID returns the bound tenant id, empty when no tenant is attached.
func (s *Session) TenantID() string {
	if s.Tenant == nil {
		return ""
	}
	return s.Tenant.ID
}
