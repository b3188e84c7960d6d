package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory 行程內儲存，未設定 REDIS_URL 時與測試使用
type Memory struct {
	mu       sync.RWMutex
	logs     map[string][]json.RawMessage
	sessions map[string][]string
}

func NewMemory() *Memory {
	return &Memory{
		logs:     make(map[string][]json.RawMessage),
		sessions: make(map[string][]string),
	}
}

func (m *Memory) Append(ctx context.Context, key string, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record for %s: %w", key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs[key] = append(m.logs[key], data)
	return nil
}

func (m *Memory) List(ctx context.Context, key string) ([]json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]json.RawMessage, len(m.logs[key]))
	copy(out, m.logs[key])
	return out, nil
}

func (m *Memory) Load(ctx context.Context, sessionID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return append([]string(nil), ids...), nil
}

func (m *Memory) Save(ctx context.Context, sessionID string, vehicleIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = append([]string{}, vehicleIDs...)
	return nil
}

func (m *Memory) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
