// Package session keeps the process-wide "last result" slot.
package session

import (
	"sync"

	"contentplanner/entities"
)

type Store struct {
	mu     sync.Mutex
	submit sync.Mutex
	sess   entities.Session
}

func NewStore() *Store { return &Store{} }

func (s *Store) Load() entities.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}

// Save overwrites the slot.
func (s *Store) Save(sess entities.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
}

// Update runs fn against the current session and stores its result.
// Updates are serialized; Load keeps returning the previous session while
// fn runs.
func (s *Store) Update(fn func(entities.Session) entities.Session) entities.Session {
	s.submit.Lock()
	defer s.submit.Unlock()
	next := fn(s.Load())
	s.Save(next)
	return next
}
