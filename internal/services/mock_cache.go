package services

import (
	"context"
	"sync"
	"time"
)

// MockCache is a mock implementation of Cache for testing. Without the Func
// hooks it behaves like an in-memory store.
type MockCache struct {
	PingFunc              func(ctx context.Context) error
	SetFunc               func(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	GetFunc               func(ctx context.Context, key string) (string, error)
	DelFunc               func(ctx context.Context, keys ...string) error
	CloseFunc             func() error
	WaitForConnectionFunc func(ctx context.Context) error

	// Track calls for testing
	SetCalls   []SetCall
	GetCalls   []string
	DelCalls   [][]string
	PingCalls  int
	CloseCalls int

	mu   sync.Mutex
	data map[string]string
}

type SetCall struct {
	Key        string
	Value      interface{}
	Expiration time.Duration
}

// NewMockCache creates a new mock cache
func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]string),
	}
}

func (m *MockCache) Ping(ctx context.Context) error {
	m.mu.Lock()
	m.PingCalls++
	m.mu.Unlock()

	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.mu.Lock()
	m.SetCalls = append(m.SetCalls, SetCall{Key: key, Value: value, Expiration: expiration})
	m.mu.Unlock()

	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, expiration)
	}

	if s, ok := value.(string); ok {
		m.mu.Lock()
		m.data[key] = s
		m.mu.Unlock()
	}
	return nil
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	m.GetCalls = append(m.GetCalls, key)
	m.mu.Unlock()

	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *MockCache) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	m.DelCalls = append(m.DelCalls, keys)
	m.mu.Unlock()

	if m.DelFunc != nil {
		return m.DelFunc(ctx, keys...)
	}

	m.mu.Lock()
	for _, k := range keys {
		delete(m.data, k)
	}
	m.mu.Unlock()
	return nil
}

func (m *MockCache) Close() error {
	m.mu.Lock()
	m.CloseCalls++
	m.mu.Unlock()

	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func (m *MockCache) WaitForConnection(ctx context.Context) error {
	if m.WaitForConnectionFunc != nil {
		return m.WaitForConnectionFunc(ctx)
	}
	return nil
}

// SetPingError sets up the mock to return an error on Ping
func (m *MockCache) SetPingError(err error) {
	m.PingFunc = func(ctx context.Context) error {
		return err
	}
}

// SetPingSuccess sets up the mock to return success on Ping
func (m *MockCache) SetPingSuccess() {
	m.PingFunc = func(ctx context.Context) error {
		return nil
	}
}

// Ensure MockCache implements Cache interface
var _ Cache = (*MockCache)(nil)
