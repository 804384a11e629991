// Package roles tracks which Telegram users hold admin rights. Membership is
// consulted on every privileged update, so revoking a user takes effect on
// their next action without a restart.
package roles

import "sync"

// Store is a concurrency-safe admin membership set.
type Store struct {
	mu     sync.RWMutex
	admins map[int64]struct{}
}

// NewStore seeds the set with the configured admin ids.
func NewStore(seed []int64) *Store {
	s := &Store{admins: make(map[int64]struct{}, len(seed))}
	for _, id := range seed {
		s.admins[id] = struct{}{}
	}
	return s
}

// IsAdmin reports whether the user currently holds admin rights.
func (s *Store) IsAdmin(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.admins[userID]
	return ok
}

// Grant adds the user to the admin set.
func (s *Store) Grant(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[userID] = struct{}{}
}

// Revoke removes the user from the admin set.
func (s *Store) Revoke(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.admins, userID)
}

// List returns a snapshot of the current admin ids.
func (s *Store) List() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int64, 0, len(s.admins))
	for id := range s.admins {
		out = append(out, id)
	}
	return out
}
