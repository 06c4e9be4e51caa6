package mocks

import (
	"context"
	"sort"
	"sync"

	"imagestudio/internal/models"
)

// StorageRepositoryMock keeps entries in memory unless a func field overrides a method.
type StorageRepositoryMock struct {
	GetFunc    func(ctx context.Context, key string) (*models.StorageEntry, error)
	SetFunc    func(ctx context.Context, key, value string) error
	DeleteFunc func(ctx context.Context, key string) (bool, error)
	ListFunc   func(ctx context.Context) ([]models.StorageEntry, error)

	mu      sync.Mutex
	entries map[string]string
}

func (m *StorageRepositoryMock) Get(ctx context.Context, key string) (*models.StorageEntry, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	return &models.StorageEntry{Key: key, Value: v}, nil
}

func (m *StorageRepositoryMock) Set(ctx context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string]string)
	}
	m.entries[key] = value
	return nil
}

func (m *StorageRepositoryMock) Delete(ctx context.Context, key string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	delete(m.entries, key)
	return ok, nil
}

func (m *StorageRepositoryMock) List(ctx context.Context) ([]models.StorageEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.StorageEntry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, models.StorageEntry{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Keys returns the stored keys without going through the func fields.
func (m *StorageRepositoryMock) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
