package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

func (c *Client) GetLegalDocuments(ctx context.Context, tok *domain.TokenPair, tenantID string) ([]domain.LegalDocument, error) {
	path := "/legal-documents/"
	if tenantID != "" {
		path += "?tenant=" + url.QueryEscape(tenantID)
	}
	var raws []domain.RawLegalDocument
	if err := c.do(ctx, "legal-documents", http.MethodGet, path, tok, nil, &raws); err != nil {
		return nil, err
	}
	docs := make([]domain.LegalDocument, 0, len(raws))
	for _, raw := range raws {
		docs = append(docs, domain.MapLegalDocument(raw))
	}
	return docs, nil
}

func (c *Client) UpdateLegalDocument(ctx context.Context, tok *domain.TokenPair, id string, patch domain.DocumentPatch) (*domain.LegalDocument, error) {
	var raw domain.RawLegalDocument
	if err := c.do(ctx, "legal-documents", http.MethodPatch, "/legal-documents/"+id+"/", tok, patch, &raw); err != nil {
		return nil, err
	}
	doc := domain.MapLegalDocument(raw)
	return &doc, nil
}

func (c *Client) SendContactManagerMessage(ctx context.Context, tok *domain.TokenPair, msg ports.ContactMessage) error {
	return c.do(ctx, "contact-manager", http.MethodPost, "/contact-manager/", tok, msg, nil)
}
