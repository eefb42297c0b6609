package database

import (
	"context"
	"sync"
)

// MemStore is an in-memory SettingsStore for tests and for running without a
// writable data directory. Values do not survive the process.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
	// FailWrites makes SetSetting and DeleteSetting return the given error.
	FailWrites error
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (m *MemStore) GetSetting(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, wrapSettingErr("get", key, ErrStoreClosed)
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemStore) SetSetting(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.writeErr(); err != nil {
		return wrapSettingErr("set", key, err)
	}
	m.values[key] = value
	return nil
}

func (m *MemStore) DeleteSetting(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.writeErr(); err != nil {
		return wrapSettingErr("delete", key, err)
	}
	delete(m.values, key)
	return nil
}

func (m *MemStore) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

func (m *MemStore) writeErr() error {
	if m.closed {
		return ErrStoreClosed
	}
	return m.FailWrites
}
