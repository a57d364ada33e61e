package mocks

import (
	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

// ApprovedTenant returns a tenant ready for lease signing.
func ApprovedTenant() *domain.Tenant {
	return &domain.Tenant{
		ID:           "tenant-1",
		Name:         "Jordan Reed",
		Email:        "jordan@example.com",
		Phone:        "555-0101",
		Status:       domain.TenantApproved,
		PropertyUnit: "Oakwood 4B",
		RentAmount:   1450,
		Deposit:      500,
		LeaseStatus:  domain.LeaseSent,
	}
}

// ActiveTenant returns a resident tenant.
func ActiveTenant() *domain.Tenant {
	t := ApprovedTenant()
	t.Status = domain.TenantActive
	t.LeaseStatus = domain.LeaseSigned
	return t
}

// AuthenticatedSession returns a session bound to the given tenant.
func AuthenticatedSession(t *domain.Tenant) *domain.Session {
	sess := domain.NewSession("session-1")
	sess.State = domain.SessionAuthenticated
	sess.User = &domain.User{ID: "user-1", Email: "jordan@example.com"}
	sess.Tokens = domain.TokenPair{Access: "access-token", Refresh: "refresh-token"}
	sess.ApplyTenant(t)
	return sess
}

// ValidApplicationForm returns a form that passes submission validation.
func ValidApplicationForm() domain.ApplicationForm {
	return domain.ApplicationForm{
		FirstName:      "Jordan",
		LastName:       "Reed",
		Email:          "jordan@example.com",
		Phone:          "555-0101",
		AgreesToPolicy:  true,
		CertificationOK: true,
	}
}

// LoginResultFor builds a backend login result for the given tenant.
func LoginResultFor(t *domain.Tenant, isStaff bool) *ports.LoginResult {
	return &ports.LoginResult{
		Tokens: domain.TokenPair{Access: "access-token", Refresh: "refresh-token"},
		User: domain.User{
			ID:      "user-1",
			Email:   "jordan@example.com",
			IsStaff: isStaff,
		},
		Tenant: t,
	}
}
