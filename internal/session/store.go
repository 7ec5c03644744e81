package session

import (
	"sync"

	"cardbot/internal/domain"
)

// Store keeps per-user sessions in process memory
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]domain.Session

	locksMu sync.Mutex
	locks   map[int64]*userLock
}

// userLock is dropped from the map once no goroutine holds or waits on it
type userLock struct {
	mu   sync.Mutex
	refs int
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]domain.Session),
		locks:    make(map[int64]*userLock),
	}
}

// Get returns user's session, or an idle one when none exists
func (s *Store) Get(userID int64) domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[userID]
	if !exists {
		return domain.Session{Step: domain.StepIdle}
	}
	return sess
}

// Set replaces user's session
func (s *Store) Set(userID int64, sess domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

// Update applies fn to user's current session and stores the result
func (s *Store) Update(userID int64, fn func(sess *domain.Session)) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[userID]
	if !exists {
		sess = domain.Session{Step: domain.StepIdle}
	}
	fn(&sess)
	s.sessions[userID] = sess
	return sess
}

// Clear drops user's session
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Lock serializes work for a single user and returns the unlock function.
// Different users never block each other.
func (s *Store) Lock(userID int64) func() {
	s.locksMu.Lock()
	lock, exists := s.locks[userID]
	if !exists {
		lock = &userLock{}
		s.locks[userID] = lock
	}
	lock.refs++
	s.locksMu.Unlock()

	lock.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			lock.mu.Unlock()

			s.locksMu.Lock()
			lock.refs--
			if lock.refs == 0 {
				delete(s.locks, userID)
			}
			s.locksMu.Unlock()
		})
	}
}
