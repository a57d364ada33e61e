package gateway

import (
	"context"
	"net/http"

	"github.com/propguard/tenant-portal/internal/core/domain"
)

func (c *Client) GetMaintenanceRequests(ctx context.Context, tok *domain.TokenPair) ([]domain.MaintenanceRequest, error) {
	var raws []domain.RawMaintenanceRequest
	if err := c.do(ctx, "maintenance", http.MethodGet, "/maintenance/", tok, nil, &raws); err != nil {
		return nil, err
	}
	requests := make([]domain.MaintenanceRequest, 0, len(raws))
	for _, raw := range raws {
		requests = append(requests, domain.MapMaintenanceRequest(raw))
	}
	return requests, nil
}

type createMaintenanceRequest struct {
	Tenant      string   `json:"tenant"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Images      []string `json:"images,omitempty"`
}

func (c *Client) CreateMaintenanceRequest(ctx context.Context, tok *domain.TokenPair, r domain.NewMaintenanceRequest) (*domain.MaintenanceRequest, error) {
	req := createMaintenanceRequest{
		Tenant:      r.TenantID,
		Category:    r.Category,
		Description: r.Description,
		Priority:    string(r.Priority),
		Images:      r.Images,
	}
	var raw domain.RawMaintenanceRequest
	if err := c.do(ctx, "maintenance", http.MethodPost, "/maintenance/", tok, req, &raw); err != nil {
		return nil, err
	}
	created := domain.MapMaintenanceRequest(raw)
	return &created, nil
}

func (c *Client) UpdateMaintenanceRequest(ctx context.Context, tok *domain.TokenPair, id string, patch domain.MaintenancePatch) (*domain.MaintenanceRequest, error) {
	var raw domain.RawMaintenanceRequest
	if err := c.do(ctx, "maintenance", http.MethodPatch, "/maintenance/"+id+"/", tok, patch, &raw); err != nil {
		return nil, err
	}
	updated := domain.MapMaintenanceRequest(raw)
	return &updated, nil
}
