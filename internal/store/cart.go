package store

import (
	"sync"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
)

// CartStore holds the canonical set of items the customer intends to buy.
// It is the only mutation surface for cart state: every UI surface goes
// through these methods rather than sharing an ambient global.
type CartStore struct {
	mu sync.RWMutex
	l  lines
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddItem merges item into the cart with the given quantity. Adding an id
// that is already present increments that line's quantity and leaves its
// price fields unchanged, since prices are immutable per product within a
// session.
func (s *CartStore) AddItem(item domain.LineItem, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.add(item, quantity)
	return nil
}

// RemoveItem deletes the line with that id. Removing an absent id is a no-op.
func (s *CartStore) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.remove(id)
}

// UpdateQuantity replaces the line's quantity. Values below 1 clamp to 1;
// RemoveItem is the only way to take a line out of the cart.
func (s *CartStore) UpdateQuantity(id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.setQuantity(id, quantity)
}

// Clear empties the cart unconditionally. Idempotent.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.clear()
}

// Items returns a snapshot of the cart lines in insertion order.
func (s *CartStore) Items() []domain.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.snapshot()
}

func (s *CartStore) Get(id string) (domain.LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.l.find(id); i >= 0 {
		return s.l.items[i], true
	}
	return domain.LineItem{}, false
}

func (s *CartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.l.items)
}

func (s *CartStore) IsEmpty() bool {
	return s.Len() == 0
}
