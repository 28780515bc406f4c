package cart

import (
	"fmt"

	"go.uber.org/zap"
)

// StorageKey is the fixed key the cart is persisted under.
const StorageKey = "cc_cart_v1"

// Storage persists the serialised cart on the shopper's device.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Store owns a cart for one shopper interaction and saves the whole cart after every
// mutation. A Store is not safe for concurrent use; each request opens its own.
type Store struct {
	cart    Cart
	storage Storage
	logger  *zap.Logger
}

// Open restores the cart from storage. A missing, corrupt or incompatible value yields an
// empty cart.
func Open(storage Storage, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{storage: storage, logger: logger}
	if storage == nil {
		return s
	}
	raw, ok := storage.Get(StorageKey)
	if !ok || raw == "" {
		return s
	}
	c, err := Decode(raw)
	if err != nil {
		logger.Debug("discarding unreadable cart state", zap.Error(err))
		return s
	}
	s.cart = c
	return s
}

// Add increments or inserts a line.
func (s *Store) Add(id string, qty int) error {
	if !s.cart.Add(id, qty) {
		return nil
	}
	return s.save()
}

// Remove deletes a line when present.
func (s *Store) Remove(id string) error {
	if !s.cart.Remove(id) {
		return nil
	}
	return s.save()
}

// SetQuantity replaces a quantity; qty <= 0 removes the line.
func (s *Store) SetQuantity(id string, qty int) error {
	if !s.cart.SetQuantity(id, qty) {
		return nil
	}
	return s.save()
}

// Clear empties the cart. Clearing always persists so stale device state is overwritten.
func (s *Store) Clear() error {
	s.cart.Clear()
	return s.save()
}

// Count is the derived badge value.
func (s *Store) Count() int { return s.cart.Count() }

// Cart returns a snapshot of the current cart.
func (s *Store) Cart() Cart { return FromLines(s.cart.Lines()) }

// Lines returns the current lines in order.
func (s *Store) Lines() []Line { return s.cart.Lines() }

func (s *Store) save() error {
	if s.storage == nil {
		return nil
	}
	raw, err := Encode(s.cart)
	if err != nil {
		return err
	}
	if err := s.storage.Set(StorageKey, raw); err != nil {
		return fmt.Errorf("cart: save: %w", err)
	}
	return nil
}
