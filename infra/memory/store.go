package memory

import (
	"sync"
	"time"

	"catalog/domain"
)

// Store holds every item in process memory, guarded by a single RWMutex so
// reads observe consistent snapshots while writes stay atomic. Ids come from
// a monotonically increasing sequence starting at 1.
type Store struct {
	mu    sync.RWMutex
	items []domain.Item
	idSeq int64
}

func NewStore() *Store {
	return &Store{items: make([]domain.Item, 0)}
}

// Save assigns the next id and both timestamps to the candidate, appends it,
// and returns the stored copy. Assignment and insertion happen under one
// lock, so concurrent saves never share an id.
func (s *Store) Save(it domain.Item) domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.idSeq++
	now := time.Now().UTC()

	it.ID = s.idSeq
	it.CreatedAt = now
	it.UpdatedAt = now

	s.items = append(s.items, it)
	return it
}

// FindByID returns the item with the given id. The boolean reports whether
// one exists.
func (s *Store) FindByID(id int64) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.Item{}, false
}

// FindAll returns a snapshot of every item in insertion order. The snapshot
// is never nil, and mutating it does not touch the store.
func (s *Store) FindAll() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Item, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *Store) ExistsByID(id int64) bool {
	_, ok := s.FindByID(id)
	return ok
}

func (s *Store) Count() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.items))
}

// DeleteAll clears the collection and resets the id sequence, so the next
// Save starts over at id 1.
func (s *Store) DeleteAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.items[:0]
	s.idSeq = 0
}
