package mocks

import (
	"context"
	"sync"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

// MockSessionStore implements ports.SessionStore in memory.
type MockSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session

	SaveCalls int

	GetError    error
	SaveError   error
	DeleteError error
}

var _ ports.SessionStore = (*MockSessionStore)(nil)

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{sessions: make(map[string]domain.Session)}
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	sess, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := sess
	return &copied, nil
}

func (m *MockSessionStore) Save(ctx context.Context, sess *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveError != nil {
		return m.SaveError
	}
	m.sessions[sess.ID] = *sess
	return nil
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.sessions, id)
	return nil
}

// Stored returns the persisted copy of a session for assertions.
func (m *MockSessionStore) Stored(id string) (domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// MockDraftStore implements ports.DraftStore in memory.
type MockDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]domain.ApplicationForm

	DeleteCalls []string

	GetError    error
	SaveError   error
	DeleteError error
}

var _ ports.DraftStore = (*MockDraftStore)(nil)

func NewMockDraftStore() *MockDraftStore {
	return &MockDraftStore{drafts: make(map[string]domain.ApplicationForm)}
}

func (m *MockDraftStore) Get(ctx context.Context, id string) (*domain.ApplicationForm, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	form, ok := m.drafts[id]
	if !ok {
		return nil, nil
	}
	copied := form
	return &copied, nil
}

func (m *MockDraftStore) Save(ctx context.Context, id string, form domain.ApplicationForm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveError != nil {
		return m.SaveError
	}
	m.drafts[id] = form
	return nil
}

func (m *MockDraftStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.drafts, id)
	return nil
}

// Has reports whether a draft exists for the id.
func (m *MockDraftStore) Has(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drafts[id]
	return ok
}
