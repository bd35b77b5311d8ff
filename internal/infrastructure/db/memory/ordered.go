// Package memory provides in-process implementations of the repository ports.
// Data lives only as long as the process.
package memory

import "sync"

// orderedStore is an insertion-ordered record list with counter-assigned IDs.
// Records are stored by value and copied on the way in and out, so callers
// never share memory with the store.
type orderedStore[T any] struct {
	mu     sync.RWMutex
	items  []T
	lastID int64
	getID  func(*T) int64
	setID  func(*T, int64)
}

func newOrderedStore[T any](getID func(*T) int64, setID func(*T, int64)) *orderedStore[T] {
	return &orderedStore[T]{getID: getID, setID: setID}
}

func (s *orderedStore[T]) list() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*T, len(s.items))
	for i := range s.items {
		item := s.items[i]
		out[i] = &item
	}
	return out
}

func (s *orderedStore[T]) find(id int64) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.index(id); i >= 0 {
		item := s.items[i]
		return &item, true
	}
	return nil, false
}

func (s *orderedStore[T]) filter(keep func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*T
	for i := range s.items {
		if keep(&s.items[i]) {
			item := s.items[i]
			out = append(out, &item)
		}
	}
	return out
}

// add assigns the next ID and appends the record at the end.
func (s *orderedStore[T]) add(v T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	s.setID(&v, s.lastID)
	s.items = append(s.items, v)
	return &v
}

// replace swaps the record with the same ID in place. Reports false when absent.
func (s *orderedStore[T]) replace(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(s.getID(&v))
	if i < 0 {
		return false
	}
	s.items[i] = v
	return true
}

// remove deletes the record with id. Reports false when absent.
func (s *orderedStore[T]) remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// index must be called with mu held.
func (s *orderedStore[T]) index(id int64) int {
	for i := range s.items {
		if s.getID(&s.items[i]) == id {
			return i
		}
	}
	return -1
}
