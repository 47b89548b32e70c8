package cart

import (
	"sync"

	"github.com/andreasstove999/pet-pantry-go/internal/storage"
)

const cartKey = "petpantry-cart"

// Store owns the persisted cart. Every read goes through the storage
// gateway and every mutation writes the whole line-item list back, so
// the stored blob is the single source of truth. Concurrent writers of
// the same backing store are not coordinated beyond last write wins.
type Store struct {
	mu          sync.Mutex
	gw          *storage.Gateway
	subscribers []func([]LineItem)
}

func NewStore(gw *storage.Gateway) *Store {
	return &Store{gw: gw}
}

// Subscribe registers fn to run after every cart mutation with a copy of
// the new line items. Dependents such as the badge hang off this.
func (s *Store) Subscribe(fn func([]LineItem)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Items returns the persisted line items, empty if absent or corrupt.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add puts quantity more of the product in the cart, merging into an
// existing line item when one exists.
func (s *Store) Add(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load()
	merged := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, LineItem{ProductID: productID, Quantity: quantity})
	}
	s.save(items)
}

// Remove drops the product's line item entirely.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load()
	out := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	s.save(out)
}

// SetQuantity replaces the product's quantity, clamped to a minimum of 1.
// Products not already in the cart are left alone.
func (s *Store) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load()
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			s.save(items)
			return
		}
	}
}

// Clear empties the cart, the end of checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save([]LineItem{})
}

func (s *Store) load() []LineItem {
	var items []LineItem
	s.gw.Read(cartKey, &items)
	return items
}

func (s *Store) save(items []LineItem) {
	s.gw.Write(cartKey, items)
	for _, fn := range s.subscribers {
		fn(append([]LineItem(nil), items...))
	}
}
