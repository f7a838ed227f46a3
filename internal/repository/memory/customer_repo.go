// internal/repository/memory/customer_repo.go
package memory

import (
	"sync"

	"mockcrm-service/internal/domain/customer"
)

// CustomerStore is the ordered in-memory record store. Order is insertion
// order; updates splice in place and deletes remove, so positions of the
// remaining records are preserved. The store is owned by the service instance
// and injected wherever it is needed, never shared as a package variable.
type CustomerStore struct {
	mu      sync.RWMutex
	records []customer.Customer
}

// NewCustomerStore returns a store preloaded with the supplied records.
func NewCustomerStore(seed []customer.Customer) *CustomerStore {
	return &CustomerStore{records: append([]customer.Customer(nil), seed...)}
}

// All returns a copy of the records in store order.
func (s *CustomerStore) All() []customer.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]customer.Customer(nil), s.records...)
}

// Len reports the number of stored records.
func (s *CustomerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// MaxID returns the highest id currently in the store, or 0 when empty.
func (s *CustomerStore) MaxID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var max int64
	for _, r := range s.records {
		if r.ID > max {
			max = r.ID
		}
	}
	return max
}

// Append adds a record at the end of the store.
func (s *CustomerStore) Append(c customer.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, c)
}

// ReplaceAt overwrites the record at index i, preserving its position.
// Returns false if the index is out of range.
func (s *CustomerStore) ReplaceAt(i int, c customer.Customer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.records) {
		return false
	}
	s.records[i] = c
	return true
}

// RemoveAt deletes the record at index i. Returns false if the index is out
// of range.
func (s *CustomerStore) RemoveAt(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.records) {
		return false
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return true
}
