package gateway

import (
	"context"
	"net/http"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

// GetMyTenant fetches the tenant record bound to the authenticated account,
// nil when the account has none.
func (c *Client) GetMyTenant(ctx context.Context, tok *domain.TokenPair) (*domain.Tenant, error) {
	var raw domain.RawTenant
	err := c.do(ctx, "tenants", http.MethodGet, "/tenants/me/", tok, nil, &raw)
	if err != nil {
		if ports.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	t := domain.MapTenant(raw)
	return &t, nil
}

type checkStatusRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type checkStatusResponse struct {
	Status string           `json:"status"`
	Tenant domain.RawTenant `json:"tenant"`
}

// CheckApplicationStatus looks up an application by exact email+phone match.
// The backend answers 404 for any mismatch without saying which field failed;
// that maps to (nil, nil) here, distinct from a service failure.
func (c *Client) CheckApplicationStatus(ctx context.Context, email, phone string) (*ports.StatusLookup, error) {
	var resp checkStatusResponse
	err := c.do(ctx, "tenants", http.MethodPost, "/tenants/check_status/", nil, checkStatusRequest{Email: email, Phone: phone}, &resp)
	if err != nil {
		if ports.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &ports.StatusLookup{
		Status: domain.TenantStatus(resp.Status),
		Tenant: domain.MapTenant(resp.Tenant),
	}, nil
}

// CreateTenant submits a rental application, creating the applicant record.
func (c *Client) CreateTenant(ctx context.Context, app domain.TenantApplication) (*domain.Tenant, error) {
	var raw domain.RawTenant
	err := c.do(ctx, "tenants", http.MethodPost, "/tenants/", nil, app, &raw)
	if err != nil {
		return nil, err
	}
	t := domain.MapTenant(raw)
	return &t, nil
}
