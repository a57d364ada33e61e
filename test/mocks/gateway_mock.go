// Package mocks provides mock implementations of port interfaces for testing.
// In hexagonal architecture, ports define the contracts between the core domain
// and external adapters. Mocks implement these interfaces to enable isolated testing.
package mocks

import (
	"context"
	"sync"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

// MockBackendGateway implements ports.BackendGateway for testing. Services
// can be exercised against seeded data without a real backend; every method
// tracks its calls and supports error injection.
type MockBackendGateway struct {
	mu sync.RWMutex

	// Seeded data returned by the read methods
	LoginResult  *ports.LoginResult
	Tenant       *domain.Tenant
	StatusLookup *ports.StatusLookup
	Properties   []domain.Property
	Payments     []domain.Payment
	Requests     []domain.MaintenanceRequest
	Documents    []domain.LegalDocument

	// Captured writes
	CreatedTenants     []domain.TenantApplication
	CreatedPayments    []domain.NewPayment
	CreatedRequests    []domain.NewMaintenanceRequest
	RequestPatches     map[string]domain.MaintenancePatch
	DocumentPatches    map[string]domain.DocumentPatch
	ContactMessages    []ports.ContactMessage
	RefreshedTokens    int
	GetMyTenantCalls   int
	LoginCalls         int
	CheckStatusCalls   int
	GetDocumentsCalls  int
	UpdateDocumentIDs  []string
	GetPaymentsCalls   int
	GetRequestsCalls   int

	// Error injection
	LoginError          error
	RefreshError        error
	GetMyTenantError    error
	CheckStatusError    error
	CreateTenantError   error
	PropertiesError     error
	PaymentsError       error
	CreatePaymentError  error
	RequestsError       error
	CreateRequestError  error
	UpdateRequestError  error
	DocumentsError      error
	UpdateDocumentError error
	ContactError        error
}

var _ ports.BackendGateway = (*MockBackendGateway)(nil)

func NewMockBackendGateway() *MockBackendGateway {
	return &MockBackendGateway{
		RequestPatches:  make(map[string]domain.MaintenancePatch),
		DocumentPatches: make(map[string]domain.DocumentPatch),
	}
}

func (m *MockBackendGateway) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoginCalls++
	if m.LoginError != nil {
		return nil, m.LoginError
	}
	return m.LoginResult, nil
}

func (m *MockBackendGateway) RefreshToken(ctx context.Context, tok *domain.TokenPair) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshedTokens++
	return m.RefreshError
}

func (m *MockBackendGateway) GetProperties(ctx context.Context) ([]domain.Property, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.PropertiesError != nil {
		return nil, m.PropertiesError
	}
	return m.Properties, nil
}

func (m *MockBackendGateway) GetMyTenant(ctx context.Context, tok *domain.TokenPair) (*domain.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetMyTenantCalls++
	if m.GetMyTenantError != nil {
		return nil, m.GetMyTenantError
	}
	return m.Tenant, nil
}

func (m *MockBackendGateway) CheckApplicationStatus(ctx context.Context, email, phone string) (*ports.StatusLookup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CheckStatusCalls++
	if m.CheckStatusError != nil {
		return nil, m.CheckStatusError
	}
	return m.StatusLookup, nil
}

func (m *MockBackendGateway) CreateTenant(ctx context.Context, app domain.TenantApplication) (*domain.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatedTenants = append(m.CreatedTenants, app)
	if m.CreateTenantError != nil {
		return nil, m.CreateTenantError
	}
	return &domain.Tenant{
		ID:           "tenant-new",
		Name:         app.Name,
		Email:        app.Email,
		Phone:        app.Phone,
		Status:       app.Status,
		PropertyUnit: app.PropertyUnit,
		RentAmount:   app.RentAmount,
		Deposit:      app.Deposit,
	}, nil
}

func (m *MockBackendGateway) GetPayments(ctx context.Context, tok *domain.TokenPair) ([]domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPaymentsCalls++
	if m.PaymentsError != nil {
		return nil, m.PaymentsError
	}
	return m.Payments, nil
}

func (m *MockBackendGateway) CreatePayment(ctx context.Context, tok *domain.TokenPair, p domain.NewPayment) (*domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatedPayments = append(m.CreatedPayments, p)
	if m.CreatePaymentError != nil {
		return nil, m.CreatePaymentError
	}
	return &domain.Payment{
		ID:       "payment-new",
		TenantID: p.TenantID,
		Amount:   p.Amount,
		Date:     p.Date,
		Status:   domain.PaymentPending,
		Type:     p.Type,
		Method:   p.Method,
	}, nil
}

func (m *MockBackendGateway) GetMaintenanceRequests(ctx context.Context, tok *domain.TokenPair) ([]domain.MaintenanceRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetRequestsCalls++
	if m.RequestsError != nil {
		return nil, m.RequestsError
	}
	return m.Requests, nil
}

func (m *MockBackendGateway) CreateMaintenanceRequest(ctx context.Context, tok *domain.TokenPair, r domain.NewMaintenanceRequest) (*domain.MaintenanceRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatedRequests = append(m.CreatedRequests, r)
	if m.CreateRequestError != nil {
		return nil, m.CreateRequestError
	}
	return &domain.MaintenanceRequest{
		ID:          "request-new",
		TenantID:    r.TenantID,
		Category:    r.Category,
		Description: r.Description,
		Status:      domain.MaintenanceOpen,
		Priority:    r.Priority,
		Updates:     []domain.TicketUpdate{},
	}, nil
}

func (m *MockBackendGateway) UpdateMaintenanceRequest(ctx context.Context, tok *domain.TokenPair, id string, patch domain.MaintenancePatch) (*domain.MaintenanceRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestPatches[id] = patch
	if m.UpdateRequestError != nil {
		return nil, m.UpdateRequestError
	}
	for i := range m.Requests {
		if m.Requests[i].ID == id {
			updated := m.Requests[i]
			if patch.Updates != nil {
				updated.Updates = patch.Updates
			}
			if patch.Status != "" {
				updated.Status = patch.Status
			}
			return &updated, nil
		}
	}
	return &domain.MaintenanceRequest{ID: id, Updates: patch.Updates}, nil
}

func (m *MockBackendGateway) GetLegalDocuments(ctx context.Context, tok *domain.TokenPair, tenantID string) ([]domain.LegalDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetDocumentsCalls++
	if m.DocumentsError != nil {
		return nil, m.DocumentsError
	}
	return m.Documents, nil
}

func (m *MockBackendGateway) UpdateLegalDocument(ctx context.Context, tok *domain.TokenPair, id string, patch domain.DocumentPatch) (*domain.LegalDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateDocumentIDs = append(m.UpdateDocumentIDs, id)
	m.DocumentPatches[id] = patch
	if m.UpdateDocumentError != nil {
		return nil, m.UpdateDocumentError
	}
	return &domain.LegalDocument{ID: id, Status: patch.Status, SignedAt: patch.SignedAt}, nil
}

func (m *MockBackendGateway) SendContactManagerMessage(ctx context.Context, tok *domain.TokenPair, msg ports.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ContactMessages = append(m.ContactMessages, msg)
	return m.ContactError
}
