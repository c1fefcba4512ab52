package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"routine-planner/internal/model"
)

// manualSession is the per-user state of an interactive slot selection.
// Sessions live in an expiring cache so an abandoned selection does not leak
// state indefinitely.
type manualSession struct {
	TaskID       string
	BlocksNeeded int
	Selected     []model.BlockRef
}

type sessionStore struct {
	cache *expirable.LRU[string, *manualSession]
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		// One session per user; 1000 concurrent selections is far beyond the
		// single-user deployment this serves.
		cache: expirable.NewLRU[string, *manualSession](1000, nil, ttl),
	}
}

func (s *sessionStore) get(userID string) (*manualSession, bool) {
	return s.cache.Get(userID)
}

// put stores the session and refreshes its TTL.
func (s *sessionStore) put(userID string, sess *manualSession) {
	s.cache.Add(userID, sess)
}

func (s *sessionStore) drop(userID string) {
	s.cache.Remove(userID)
}
