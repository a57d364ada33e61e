package services

import (
	"context"
	"errors"
	"log"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

// ErrAdminAccessDenied is returned when a non-staff account attempts an
// admin-mode login. The session keeps its authenticated identity; only the
// admin surface is refused.
var ErrAdminAccessDenied = errors.New("Access denied. This portal is restricted to administrators.")

type SessionService struct {
	gateway  ports.BackendGateway
	sessions ports.SessionStore
}

func NewSessionService(gateway ports.BackendGateway, sessions ports.SessionStore) *SessionService {
	return &SessionService{
		gateway:  gateway,
		sessions: sessions,
	}
}

var _ ports.SessionService = (*SessionService)(nil)

// Login authenticates against the backend and binds the principal, tokens
// and tenant record to the session. The state passes through authenticating
// so a crashed login never leaves a half-bound session behind.
func (s *SessionService) Login(ctx context.Context, sess *domain.Session, email, password string, adminMode bool) error {
	sess.State = domain.SessionAuthenticating
	if err := s.sessions.Save(ctx, sess); err != nil {
		return err
	}

	result, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		sess.State = domain.SessionAnonymous
		if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
			log.Printf("session save after failed login: %v", saveErr)
		}
		return err
	}

	sess.State = domain.SessionAuthenticated
	sess.User = &result.User
	sess.Tokens = result.Tokens
	sess.AdminMode = adminMode
	sess.ApplyTenant(result.Tenant)
	sess.View = landingView(sess.Status)

	if err := s.sessions.Save(ctx, sess); err != nil {
		return err
	}

	if adminMode && !result.User.IsAdmin() {
		return ErrAdminAccessDenied
	}
	return nil
}

// Resume rebuilds session state from the stored token pair, refreshing the
// tenant record. An auth failure means the tokens are dead: the identity is
// cleared. A transient backend failure keeps the last known state so a
// network blip does not log the visitor out.
func (s *SessionService) Resume(ctx context.Context, sess *domain.Session) error {
	if sess.Tokens.Empty() {
		return nil
	}

	tenant, err := s.gateway.GetMyTenant(ctx, &sess.Tokens)
	if err != nil {
		if ports.IsAuthError(err) {
			sess.ClearIdentity()
			return s.sessions.Save(ctx, sess)
		}
		log.Printf("session resume kept stale state: %v", err)
		return s.sessions.Save(ctx, sess)
	}

	sess.State = domain.SessionAuthenticated
	sess.ApplyTenant(tenant)
	sess.View = landingView(sess.Status)
	return s.sessions.Save(ctx, sess)
}

// RefreshStatus re-fetches the tenant record and re-derives the user status.
// A fetch-backed refresh is the only thing that reconciles the optimistic
// lease-sign advance.
func (s *SessionService) RefreshStatus(ctx context.Context, sess *domain.Session) error {
	if sess.State != domain.SessionAuthenticated {
		return ports.NewError(ports.KindAuth, "not signed in", nil)
	}

	tenant, err := s.gateway.GetMyTenant(ctx, &sess.Tokens)
	if err != nil {
		if ports.IsAuthError(err) {
			sess.ClearIdentity()
			if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
				log.Printf("session save after auth expiry: %v", saveErr)
			}
		}
		return err
	}

	sess.ApplyTenant(tenant)
	if !domain.DashboardUnlocked(sess.Status) && sess.View == domain.ViewDashboard {
		sess.View = landingView(sess.Status)
	}
	return s.sessions.Save(ctx, sess)
}

// Logout clears the session identity locally. No backend call is made; the
// tokens are simply discarded.
func (s *SessionService) Logout(ctx context.Context, sess *domain.Session) error {
	sess.ClearIdentity()
	return s.sessions.Save(ctx, sess)
}

// landingView picks the post-login view for a derived status.
func landingView(status domain.UserStatus) domain.View {
	switch status {
	case domain.StatusResident:
		return domain.ViewDashboard
	case domain.StatusApplicantApproved:
		return domain.ViewLeaseSigning
	case domain.StatusApplicantPending:
		return domain.ViewStatusTracker
	default:
		return domain.ViewListings
	}
}
