package services

import (
	"context"
	"errors"
	"testing"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
	"github.com/propguard/tenant-portal/test/mocks"
)

func TestLoginBindsTenantAndRoutesToDashboard(t *testing.T) {
	gateway := mocks.NewMockBackendGateway()
	gateway.LoginResult = mocks.LoginResultFor(mocks.ActiveTenant(), false)
	store := mocks.NewMockSessionStore()
	svc := NewSessionService(gateway, store)

	sess := domain.NewSession("s1")
	if err := svc.Login(context.Background(), sess, "jordan@example.com", "pw", false); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if sess.State != domain.SessionAuthenticated {
		t.Errorf("State = %q, want authenticated", sess.State)
	}
	if sess.Status != domain.StatusResident {
		t.Errorf("Status = %q, want resident", sess.Status)
	}
	if sess.View != domain.ViewDashboard {
		t.Errorf("View = %q, want dashboard", sess.View)
	}
	if stored, ok := store.Stored("s1"); !ok || stored.State != domain.SessionAuthenticated {
		t.Error("authenticated session should be persisted")
	}
}

func TestLoginRoutesApprovedApplicantToLeaseSigning(t *testing.T) {
	gateway := mocks.NewMockBackendGateway()
	gateway.LoginResult = mocks.LoginResultFor(mocks.ApprovedTenant(), false)
	svc := NewSessionService(gateway, mocks.NewMockSessionStore())

	sess := domain.NewSession("s1")
	if err := svc.Login(context.Background(), sess, "jordan@example.com", "pw", false); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.View != domain.ViewLeaseSigning {
		t.Errorf("View = %q, want lease_signing", sess.View)
	}
}

func TestLoginFailureResetsState(t *testing.T) {
	gateway := mocks.NewMockBackendGateway()
	gateway.LoginError = ports.NewError(ports.KindAuth, "invalid credentials", nil)
	svc := NewSessionService(gateway, mocks.NewMockSessionStore())

	sess := domain.NewSession("s1")
	err := svc.Login(context.Background(), sess, "jordan@example.com", "bad", false)
	if !ports.IsAuthError(err) {
		t.Fatalf("err = %v, want auth error", err)
	}
	if sess.State != domain.SessionAnonymous {
		t.Errorf("State = %q, want anonymous after failed login", sess.State)
	}
}

func TestAdminModeRejectsNonStaffButKeepsSession(t *testing.T) {
	gateway := mocks.NewMockBackendGateway()
	gateway.LoginResult = mocks.LoginResultFor(mocks.ActiveTenant(), false)
	svc := NewSessionService(gateway, mocks.NewMockSessionStore())

	sess := domain.NewSession("s1")
	err := svc.Login(context.Background(), sess, "jordan@example.com", "pw", true)

	if !errors.Is(err, ErrAdminAccessDenied) {
		t.Fatalf("err = %v, want ErrAdminAccessDenied", err)
	}
	// The credentials were valid: the session stays authenticated, only
	// the admin surface is refused.
	if sess.State != domain.SessionAuthenticated {
		t.Errorf("State = %q, want authenticated despite denial", sess.State)
	}
}

func TestAdminModeAllowsStaff(t *testing.T) {
	gateway := mocks.NewMockBackendGateway()
	gateway.LoginResult = mocks.LoginResultFor(nil, true)
	svc := NewSessionService(gateway, mocks.NewMockSessionStore())

	sess := domain.NewSession("s1")
	if err := svc.Login(context.Background(), sess, "admin@example.com", "pw", true); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !sess.AdminMode {
		t.Error("AdminMode should be set")
	}
}

func TestResumeClearsIdentityOnAuthFailure(t *testing.T) {
	gateway := mocks.NewMockBackendGateway()
	gateway.GetMyTenantError = ports.NewError(ports.KindAuth, "token expired", nil)
	store := mocks.NewMockSessionStore()
	svc := NewSessionService(gateway, store)

	sess := mocks.AuthenticatedSession(mocks.ActiveTenant())
	if err := svc.Resume(context.Background(), sess); err != nil {
		t.Fatalf("Resume: %v", err)
	}

	if sess.State != domain.SessionAnonymous || !sess.Tokens.Empty() {
		t.Error("dead tokens should clear the identity")
	}
}

func TestResumeKeepsStateOnTransientFailure(t *testing.T) {
	gateway := mocks.NewMockBackendGateway()
	gateway.GetMyTenantError = ports.NewError(ports.KindRemote, "backend down", nil)
	svc := NewSessionService(gateway, mocks.NewMockSessionStore())

	sess := mocks.AuthenticatedSession(mocks.ActiveTenant())
	if err := svc.Resume(context.Background(), sess); err != nil {
		t.Fatalf("Resume: %v", err)
	}

	if sess.State != domain.SessionAuthenticated || sess.Tenant == nil {
		t.Error("a network blip should not log the visitor out")
	}
}

func TestRefreshStatusReconcilesOptimisticAdvance(t *testing.T) {
	gateway := mocks.NewMockBackendGateway()
	gateway.Tenant = mocks.ApprovedTenant() // lease still Sent on the backend
	store := mocks.NewMockSessionStore()
	svc := NewSessionService(gateway, store)

	sess := mocks.AuthenticatedSession(mocks.ApprovedTenant())
	sess.AdvanceOptimistic()

	if err := svc.RefreshStatus(context.Background(), sess); err != nil {
		t.Fatalf("RefreshStatus: %v", err)
	}

	if sess.PendingReconcile {
		t.Error("refresh should clear PendingReconcile")
	}
	if sess.Status != domain.StatusApplicantApproved {
		t.Errorf("Status = %q, want reconciled applicant_approved", sess.Status)
	}
	if sess.View == domain.ViewDashboard {
		t.Error("dashboard should not stay reachable after downgrade")
	}
}

func TestRefreshStatusRequiresAuthentication(t *testing.T) {
	svc := NewSessionService(mocks.NewMockBackendGateway(), mocks.NewMockSessionStore())
	err := svc.RefreshStatus(context.Background(), domain.NewSession("s1"))
	if !ports.IsAuthError(err) {
		t.Errorf("err = %v, want auth error", err)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	store := mocks.NewMockSessionStore()
	svc := NewSessionService(mocks.NewMockBackendGateway(), store)

	sess := mocks.AuthenticatedSession(mocks.ActiveTenant())
	if err := svc.Logout(context.Background(), sess); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if sess.State != domain.SessionAnonymous || sess.Tenant != nil || !sess.Tokens.Empty() {
		t.Error("logout should return the session to guest state")
	}
	if stored, _ := store.Stored(sess.ID); stored.State != domain.SessionAnonymous {
		t.Error("cleared session should be persisted")
	}
}
