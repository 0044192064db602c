package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultTTL is how long an idle page session is kept.
const DefaultTTL = 2 * time.Hour

// ErrConflict is returned when a session update keeps losing concurrent races
var ErrConflict = errors.New("session: concurrent update conflict")

// Store loads and atomically updates page sessions.
type Store interface {
	// Load returns the page for id, or a fresh page when none exists.
	Load(ctx context.Context, id string) (*Page, error)
	// Update runs fn on the page for id and saves the result. When fn returns
	// an error nothing is saved and the error is returned unchanged.
	Update(ctx context.Context, id string, fn func(*Page) error) (*Page, error)
}

type memoryEntry struct {
	data    []byte
	touched time.Time
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	faqItems int
	now      func() time.Time
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore(ttl time.Duration, faqItems int) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		faqItems: faqItems,
		now:      time.Now,
	}
}

// Load returns the stored page or a fresh one.
func (s *MemoryStore) Load(ctx context.Context, id string) (*Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(id)
}

// Update runs fn while holding the store lock.
func (s *MemoryStore) Update(ctx context.Context, id string, fn func(*Page) error) (*Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.loadLocked(id)
	if err != nil {
		return nil, err
	}
	if err := fn(page); err != nil {
		return nil, err
	}
	data, err := json.Marshal(page)
	if err != nil {
		return nil, fmt.Errorf("session: failed to encode page: %w", err)
	}
	s.sessions[id] = memoryEntry{data: data, touched: s.now()}
	return page, nil
}

// Sweep drops sessions idle for longer than the TTL and returns how many.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, entry := range s.sessions {
		if entry.touched.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps expired sessions every interval until ctx is done.
func (s *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Len returns the number of stored sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *MemoryStore) loadLocked(id string) (*Page, error) {
	entry, ok := s.sessions[id]
	if !ok || s.now().Sub(entry.touched) > s.ttl {
		delete(s.sessions, id)
		return NewPage(s.faqItems), nil
	}
	page, err := decodePage(entry.data, s.faqItems)
	if err != nil {
		return nil, fmt.Errorf("session: failed to decode page: %w", err)
	}
	return page, nil
}
