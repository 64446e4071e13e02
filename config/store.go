package config

import "sync/atomic"

// Store hands the latest Animation from input handlers to the tick loop.
// Readers always see a whole snapshot.
type Store struct {
	p atomic.Pointer[Animation]
}

func NewStore(a Animation) *Store {
	s := &Store{}
	s.Set(a)
	return s
}

func (s *Store) Snapshot() Animation {
	return *s.p.Load()
}

func (s *Store) Set(a Animation) {
	s.p.Store(&a)
}

// Update applies fn to the current snapshot, retrying if another writer
// got there first.
func (s *Store) Update(fn func(Animation) Animation) Animation {
	for {
		old := s.p.Load()
		next := fn(*old)
		if s.p.CompareAndSwap(old, &next) {
			return next
		}
	}
}
