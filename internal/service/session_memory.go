package service

import (
	"context"
	"sync"
	"time"

	"dealerdrive-api/internal/model"
)

// sessionEntry is a stored session with its expiration.
type sessionEntry struct {
	session   model.Session
	expiresAt time.Time
}

func (e *sessionEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// MemorySessionStore is the in-process SessionStore used for
// single-instance deployments and tests. Expired entries are dropped
// lazily on Get and swept periodically.
type MemorySessionStore struct {
	mu      sync.RWMutex
	entries map[string]*sessionEntry

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	stopOnce        sync.Once
}

// NewMemorySessionStore creates an in-memory session store with a
// background sweep.
func NewMemorySessionStore() *MemorySessionStore {
	s := &MemorySessionStore{
		entries:         make(map[string]*sessionEntry),
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	go s.cleanup()

	return s
}

func (s *MemorySessionStore) Put(ctx context.Context, token string, session model.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[token] = &sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, token string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.entries[token]
	if !exists || entry.isExpired() {
		return nil, nil
	}

	session := entry.session
	return &session, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, token)
	return nil
}

// Close stops the background sweep.
func (s *MemorySessionStore) Close() {
	s.stopOnce.Do(func() {
		close(s.stopCleanup)
	})
}

func (s *MemorySessionStore) cleanup() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			for token, entry := range s.entries {
				if entry.isExpired() {
					delete(s.entries, token)
				}
			}
			s.mu.Unlock()
		case <-s.stopCleanup:
			return
		}
	}
}
