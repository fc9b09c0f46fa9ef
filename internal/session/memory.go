package session

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryStore is the default store when neither Postgres nor S3 is
// configured. Winery contexts sit in an LRU so an unattended kiosk session
// cannot grow the map without bound; polls and signups are plain slices.
type MemoryStore struct {
	contexts *lru.Cache[string, WineryContext]

	mu    sync.RWMutex
	polls []PollResponse
	betas []BetaSignup
}

func NewMemoryStore() (*MemoryStore, error) {
	cache, err := lru.New[string, WineryContext](1024)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{contexts: cache}, nil
}

func (m *MemoryStore) SetContext(_ context.Context, sessionID string, wc WineryContext) error {
	m.contexts.Add(sessionID, wc)
	return nil
}

func (m *MemoryStore) GetContext(_ context.Context, sessionID string) (WineryContext, bool, error) {
	wc, ok := m.contexts.Get(sessionID)
	return wc, ok, nil
}

func (m *MemoryStore) AppendPoll(_ context.Context, p PollResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.polls = append(m.polls, p)
	return nil
}

func (m *MemoryStore) ListPolls(_ context.Context, exercise string) ([]PollResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]PollResponse, 0, len(m.polls))
	for _, p := range m.polls {
		if exercise == "" || p.Exercise == exercise {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryStore) AppendBeta(_ context.Context, b BetaSignup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.betas = append(m.betas, b)
	return nil
}

func (m *MemoryStore) Close() error { return nil }
