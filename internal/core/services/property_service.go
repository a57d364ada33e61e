package services

import (
	"context"
	"strings"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

type PropertyService struct {
	gateway ports.BackendGateway
}

func NewPropertyService(gateway ports.BackendGateway) *PropertyService {
	return &PropertyService{gateway: gateway}
}

var _ ports.PropertyService = (*PropertyService)(nil)

// Listings returns the public listings projection. The endpoint needs no
// session.
func (s *PropertyService) Listings(ctx context.Context) ([]domain.Listing, error) {
	properties, err := s.gateway.GetProperties(ctx)
	if err != nil {
		return nil, err
	}
	listings := make([]domain.Listing, 0, len(properties))
	for _, p := range properties {
		listings = append(listings, domain.ListingFromProperty(p))
	}
	return listings, nil
}

// ContactManager relays a message to the property manager, stamping the
// session tenant's identity onto it when one is bound.
func (s *PropertyService) ContactManager(ctx context.Context, sess *domain.Session, msg ports.ContactMessage) error {
	if sess == nil || sess.State != domain.SessionAuthenticated {
		return ports.NewError(ports.KindAuth, "not signed in", nil)
	}
	if strings.TrimSpace(msg.Message) == "" {
		return ports.NewError(ports.KindValidation, "message is required", nil)
	}
	if t := sess.Tenant; t != nil {
		msg.TenantID = t.ID
		msg.SenderName = t.Name
		msg.SenderEmail = t.Email
	}
	return s.gateway.SendContactManagerMessage(ctx, &sess.Tokens, msg)
}
