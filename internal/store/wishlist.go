package store

import (
	"sync"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
)

// WishlistStore is structurally identical to CartStore but semantically
// independent: no totals are derived from it and it never participates in
// checkout.
type WishlistStore struct {
	mu sync.RWMutex
	l  lines
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{}
}

func (s *WishlistStore) AddItem(item domain.LineItem, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.add(item, quantity)
	return nil
}

func (s *WishlistStore) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.remove(id)
}

func (s *WishlistStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.clear()
}

func (s *WishlistStore) Items() []domain.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.snapshot()
}

func (s *WishlistStore) Get(id string) (domain.LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.l.find(id); i >= 0 {
		return s.l.items[i], true
	}
	return domain.LineItem{}, false
}

func (s *WishlistStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.l.items)
}
