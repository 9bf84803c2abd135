package item

import (
	"catalog/domain"
	"context"
)

// Store is the authoritative holder of all items and their id sequence. It
// is pure in-process memory: operations never block on I/O and never fail,
// so absence is a boolean rather than an error.
type Store interface {
	Save(it domain.Item) domain.Item
	FindByID(id int64) (domain.Item, bool)
	FindAll() []domain.Item
	ExistsByID(id int64) bool
	Count() int64
	DeleteAll()
}

// Service exposes the item operations the handlers build on and owns the
// translation from absence to the typed not-found error.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// AddItem stores a candidate item. The store assigns its id and timestamps;
// the returned item carries them.
func (s *Service) AddItem(ctx context.Context, candidate domain.Item) domain.Item {
	return s.store.Save(candidate)
}

// GetItemByID returns the stored item for id, or an ItemNotFoundError when
// no item has that id.
func (s *Service) GetItemByID(ctx context.Context, id int64) (domain.Item, error) {
	found, ok := s.store.FindByID(id)
	if !ok {
		return domain.Item{}, &domain.ItemNotFoundError{ID: id}
	}
	return found, nil
}

// GetAllItems returns a snapshot of every stored item in creation order.
func (s *Service) GetAllItems(ctx context.Context) []domain.Item {
	return s.store.FindAll()
}

// GetItemCount returns the number of stored items.
func (s *Service) GetItemCount(ctx context.Context) int64 {
	return s.store.Count()
}
