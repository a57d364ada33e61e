package domain

import "testing"

func TestNewSessionStartsAnonymous(t *testing.T) {
	sess := NewSession("s1")
	if sess.State != SessionAnonymous {
		t.Errorf("State = %q, want anonymous", sess.State)
	}
	if sess.Status != StatusGuest {
		t.Errorf("Status = %q, want guest", sess.Status)
	}
	if sess.View != ViewListings {
		t.Errorf("View = %q, want listings", sess.View)
	}
}

func TestApplyTenantReDerivesStatusAndClearsReconcile(t *testing.T) {
	sess := NewSession("s1")
	sess.AdvanceOptimistic()
	if !sess.PendingReconcile {
		t.Fatal("AdvanceOptimistic should set PendingReconcile")
	}

	sess.ApplyTenant(&Tenant{ID: "t1", Status: TenantActive})

	if sess.Status != StatusResident {
		t.Errorf("Status = %q, want resident", sess.Status)
	}
	if sess.PendingReconcile {
		t.Error("a fetch-backed ApplyTenant should clear PendingReconcile")
	}
}

func TestApplyTenantDowngradesOptimisticAdvance(t *testing.T) {
	sess := NewSession("s1")
	sess.AdvanceOptimistic()

	// The backend still says the lease was never signed.
	sess.ApplyTenant(&Tenant{ID: "t1", Status: TenantApproved, LeaseStatus: LeaseSent})

	if sess.Status != StatusApplicantApproved {
		t.Errorf("Status = %q, want applicant_approved after reconcile", sess.Status)
	}
}

func TestAdvanceOptimistic(t *testing.T) {
	sess := NewSession("s1")
	sess.ApplyTenant(&Tenant{ID: "t1", Status: TenantApproved, LeaseStatus: LeaseSent})

	sess.AdvanceOptimistic()

	if sess.Status != StatusResident {
		t.Errorf("Status = %q, want resident", sess.Status)
	}
	if sess.View != ViewDashboard {
		t.Errorf("View = %q, want dashboard", sess.View)
	}
	if !sess.PendingReconcile {
		t.Error("PendingReconcile should be set until the next refresh")
	}
}

func TestClearIdentity(t *testing.T) {
	sess := NewSession("s1")
	sess.State = SessionAuthenticated
	sess.User = &User{ID: "u1"}
	sess.Tokens = TokenPair{Access: "a", Refresh: "r"}
	sess.ApplyTenant(&Tenant{ID: "t1", Status: TenantActive})
	sess.AdminMode = true

	sess.ClearIdentity()

	if sess.State != SessionAnonymous || sess.User != nil || sess.Tenant != nil {
		t.Error("ClearIdentity should drop principal and tenant")
	}
	if !sess.Tokens.Empty() {
		t.Error("tokens should be cleared")
	}
	if sess.Status != StatusGuest || sess.View != ViewListings {
		t.Errorf("Status/View = %q/%q, want guest/listings", sess.Status, sess.View)
	}
	if sess.AdminMode {
		t.Error("AdminMode should be cleared")
	}
}

func TestTenantID(t *testing.T) {
	sess := NewSession("s1")
	if sess.TenantID() != "" {
		t.Error("TenantID should be empty without a tenant")
	}
	sess.ApplyTenant(&Tenant{ID: "t9"})
	if sess.TenantID() != "t9" {
		t.Errorf("TenantID = %q, want t9", sess.TenantID())
	}
}
