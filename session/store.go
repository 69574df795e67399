package session

import (
	"sync"

	"hostel/models"
)

// Store holds the last-known signed-in user record for the whole process. It
// is written on login success, cleared on logout, and read by any page that
// needs the current role without a round trip. Authentication itself lives in
// the server-side session; this record is display state, not a credential.
type Store struct {
	mu   sync.RWMutex
	user *models.User
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Set(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := user
	s.user = &copied
}

// Current returns a copy of the stored user record, or false when signed out.
func (s *Store) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
