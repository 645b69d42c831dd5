package store

import (
	"errors"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
)

// Common errors returned by the stores
var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrItemNotFound    = errors.New("item not found")
)

// lines is the ordered, unique-by-id collection behind both stores.
// Callers hold the store's lock; lines itself is not safe for concurrent use.
type lines struct {
	items []domain.LineItem
}

func (l *lines) find(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

// add merges by identity: an existing line's quantity is incremented and all
// of its other fields are left untouched, otherwise the item is appended in
// insertion order with the given quantity.
func (l *lines) add(item domain.LineItem, quantity int) {
	if i := l.find(item.ID); i >= 0 {
		l.items[i].Quantity += quantity
		return
	}
	item.Quantity = quantity
	l.items = append(l.items, item)
}

func (l *lines) remove(id string) {
	if i := l.find(id); i >= 0 {
		l.items = append(l.items[:i], l.items[i+1:]...)
	}
}

func (l *lines) setQuantity(id string, quantity int) error {
	i := l.find(id)
	if i < 0 {
		return ErrItemNotFound
	}
	// Zero or negative clamps to 1; remove is the only path to dropping a
	// line, so a stray zero can never silently lose cart contents.
	if quantity < 1 {
		quantity = 1
	}
	l.items[i].Quantity = quantity
	return nil
}

func (l *lines) clear() {
	l.items = nil
}

// snapshot returns a copy the caller may hold without racing later mutations.
func (l *lines) snapshot() []domain.LineItem {
	out := make([]domain.LineItem, len(l.items))
	copy(out, l.items)
	for i := range out {
		if len(l.items[i].Image) > 0 {
			out[i].Image = append([]string(nil), l.items[i].Image...)
		}
	}
	return out
}
