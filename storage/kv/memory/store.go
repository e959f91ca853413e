package memstore

import (
	"context"
	"sync"

	"github.com/trezcool/isko/core/academic"
)

// Store is an in-memory Gateway: session-scoped persistence for tests and
// throwaway runs.
type Store struct {
	mu   sync.RWMutex
	snap *academic.Snapshot
}

var _ academic.Gateway = (*Store)(nil)

func Open() *Store {
	return new(Store)
}

func (s *Store) Load(context.Context) (*academic.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, nil
	}
	cp := *s.snap
	cp.Courses = append([]academic.Course(nil), s.snap.Courses...)
	return &cp, nil
}

func (s *Store) Save(_ context.Context, snap academic.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = &snap
	return nil
}

func (s *Store) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = nil
	return nil
}
