package storage

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
)

// MemoryStore is a process-local Store. Profiles are copied on the way in
// and out so callers cannot mutate the stored snapshot.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  *models.UserProfile
}

func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) GetToken(context.Context) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}

func (m *MemoryStore) SetToken(_ context.Context, token string) {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
}

func (m *MemoryStore) RemoveToken(context.Context) {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
}

func (m *MemoryStore) GetUser(context.Context) (*models.UserProfile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user.Clone(), m.user != nil
}

func (m *MemoryStore) SetUser(_ context.Context, user *models.UserProfile) {
	m.mu.Lock()
	m.user = user.Clone()
	m.mu.Unlock()
}

func (m *MemoryStore) RemoveUser(context.Context) {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
}

func (m *MemoryStore) ClearAll(context.Context) {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
}

func (m *MemoryStore) IsLoggedIn(ctx context.Context) bool {
	_, ok := m.GetToken(ctx)
	return ok
}
