package mocks

import (
	"context"
	"sync"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

// MockTriageAdvisor implements ports.TriageAdvisor for testing.
type MockTriageAdvisor struct {
	mu sync.RWMutex

	TriageResult *ports.TriageResult
	LeaseText    string

	AnalyzeCalls []string
	DraftCalls   int

	AnalyzeError error
	DraftError   error
}

var _ ports.TriageAdvisor = (*MockTriageAdvisor)(nil)

func NewMockTriageAdvisor() *MockTriageAdvisor {
	return &MockTriageAdvisor{}
}

func (m *MockTriageAdvisor) AnalyzeMaintenanceRequest(ctx context.Context, description string) (*ports.TriageResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnalyzeCalls = append(m.AnalyzeCalls, description)
	if m.AnalyzeError != nil {
		return nil, m.AnalyzeError
	}
	return m.TriageResult, nil
}

func (m *MockTriageAdvisor) DraftLeaseAgreement(ctx context.Context, t domain.Tenant, templateType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DraftCalls++
	if m.DraftError != nil {
		return "", m.DraftError
	}
	return m.LeaseText, nil
}
