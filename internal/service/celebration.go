package service

import (
	"context"
	"sync"
	"time"
)

// CelebrationStore remembers which (child, day) rewards were already
// celebrated. MarkCelebrated returns true only for the first call per pair.
type CelebrationStore interface {
	MarkCelebrated(ctx context.Context, childID, date string) (bool, error)
}

// ── Redis ──

// celebrationMarker is satisfied by *redis.Client
type celebrationMarker interface {
	MarkCelebrated(ctx context.Context, childID, date string, ttl time.Duration) (bool, error)
}

type redisCelebrationStore struct {
	rdb celebrationMarker
	ttl time.Duration
}

// NewRedisCelebrationStore keeps flags in Redis so every server instance
// agrees on the first observation
func NewRedisCelebrationStore(rdb celebrationMarker, ttl time.Duration) CelebrationStore {
	return &redisCelebrationStore{rdb: rdb, ttl: ttl}
}

func (s *redisCelebrationStore) MarkCelebrated(ctx context.Context, childID, date string) (bool, error) {
	return s.rdb.MarkCelebrated(ctx, childID, date, s.ttl)
}

// ── In-memory ──

type memoryCelebrationStore struct {
	mu   sync.Mutex
	seen map[string]time.Time // key → expiry
	ttl  time.Duration
	now  func() time.Time
}

// NewMemoryCelebrationStore keeps flags in process memory
func NewMemoryCelebrationStore(ttl time.Duration) CelebrationStore {
	return &memoryCelebrationStore{seen: make(map[string]time.Time), ttl: ttl, now: time.Now}
}

func (s *memoryCelebrationStore) MarkCelebrated(_ context.Context, childID, date string) (bool, error) {
	key := childID + ":" + date
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, exp := range s.seen {
		if !now.Before(exp) {
			delete(s.seen, k)
		}
	}
	if _, ok := s.seen[key]; ok {
		return false, nil
	}
	s.seen[key] = now.Add(s.ttl)
	return true, nil
}
