package session

import (
	"context"
	"sync"
	"time"

	"github.com/shouni/hairfit-kit/pkg/domain"
)

type mockGenerator struct {
	mu       sync.Mutex
	requests []domain.GenerationRequest
	result   *domain.GenerationResult
	err      error
	started  chan struct{}
	release  chan struct{}
}

func (m *mockGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.started != nil {
		m.started <- struct{}{}
	}
	if m.release != nil {
		<-m.release
	}
	return m.result, m.err
}

func (m *mockGenerator) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

type mockLoader struct {
	mu     sync.Mutex
	images map[string]string
	err    error
	refs   []string
}

func (m *mockLoader) LoadReference(ctx context.Context, ref string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refs = append(m.refs, ref)
	if m.err != nil {
		return "", m.err
	}
	if img, ok := m.images[ref]; ok {
		return img, nil
	}
	return "data:image/png;base64,cmVm", nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
