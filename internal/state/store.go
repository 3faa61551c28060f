package state

import (
	"sync"
)

// Store coordinates access to the current snapshot. It is the explicit handle
// the UI is constructed with; nothing looks the current state up implicitly.
type Store struct {
	mu  sync.RWMutex
	cur State
}

// NewStore creates a store seeded with the initial snapshot.
func NewStore(initial State) *Store {
	return &Store{cur: initial}
}

// Apply merges the patch into the current snapshot, installs the result as
// the new current state, and returns it. This is the single mutation path.
func (s *Store) Apply(p Patch) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = Apply(s.cur, p)
	return snapshotLocked(s.cur)
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return snapshotLocked(s.cur)
}

func snapshotLocked(cur State) State {
	snap := cur
	snap.Rovers = cloneRovers(cur.Rovers)
	snap.Selected = cloneSelection(cur.Selected)
	snap.Gallery = cloneGallery(cur.Gallery)
	return snap
}
