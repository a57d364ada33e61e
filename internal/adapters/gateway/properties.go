package gateway

import (
	"context"
	"net/http"

	"github.com/propguard/tenant-portal/internal/core/domain"
)

// GetProperties fetches the public property list. No session required.
func (c *Client) GetProperties(ctx context.Context) ([]domain.Property, error) {
	var raws []domain.RawProperty
	if err := c.do(ctx, "properties", http.MethodGet, "/properties/", nil, nil, &raws); err != nil {
		return nil, err
	}
	properties := make([]domain.Property, 0, len(raws))
	for _, raw := range raws {
		properties = append(properties, domain.MapProperty(raw))
	}
	return properties, nil
}
