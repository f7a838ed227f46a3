// internal/service/customer/service.go
package customer

import (
	"context"
	"strconv"
	"sync"

	"mockcrm-service/internal/domain/customer"
	xerrors "mockcrm-service/internal/pkg/errors"
	"mockcrm-service/internal/repository/memory"

	"go.uber.org/zap"
)

// reconcileMode distinguishes the two mutations that share the reconcile
// path; validation and materialization are identical for both.
type reconcileMode int

const (
	modeUpdate reconcileMode = iota
	modeDelete
)

// CustomerService implements the operations over the record store. A single
// mutex serializes every mutating operation end to end, so each locate,
// materialize, commit sequence runs without interleaving.
type CustomerService struct {
	mu      sync.Mutex
	store   *memory.CustomerStore
	factory *Factory
	logger  *zap.Logger
}

func NewCustomerService(store *memory.CustomerStore, strategy DefaultStrategy, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		store:   store,
		factory: NewFactory(store, strategy),
		logger:  logger,
	}
}

// List returns records in store order, optionally filtered to an exact text
// id match and truncated to the first qty entries. A qty that does not parse
// as a non-negative number truncates to nothing, matching the slice
// semantics of the original service.
func (s *CustomerService) List(ctx context.Context, filters *customer.ListFilters) []customer.Customer {
	records := s.store.All()
	if filters == nil {
		return records
	}

	if filters.ID != "" {
		matched := make([]customer.Customer, 0, 1)
		for _, r := range records {
			if strconv.FormatInt(r.ID, 10) == filters.ID {
				matched = append(matched, r)
			}
		}
		records = matched
	}

	if filters.Qty != "" {
		n, err := strconv.Atoi(filters.Qty)
		if err != nil || n < 0 {
			n = 0
		}
		if n < len(records) {
			records = records[:n]
		}
	}
	return records
}

// Get retrieves a single record by its text id.
func (s *CustomerService) Get(ctx context.Context, id string) (customer.Customer, error) {
	records := s.store.All()
	idx := locate(records, id)
	if idx < 0 {
		return customer.Customer{}, xerrors.ErrRecordNotFound
	}
	return records[idx], nil
}

// Create materializes a record with a fresh synthetic id and appends it to
// the store. It accepts any payload, including nil, and never fails.
func (s *CustomerService) Create(ctx context.Context, p *customer.Payload) (customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.factory.Generate(p, "", false)
	s.store.Append(rec)

	s.logger.Info("customer created", zap.Int64("customer_id", rec.ID))
	return rec, nil
}

// Update replaces the record identified by the body payload, in place. All
// fields are re-derived from the payload with defaults re-applied; nothing
// is merged from the stored record.
func (s *CustomerService) Update(ctx context.Context, p *customer.Payload) (customer.Customer, error) {
	return s.reconcile(p, "", modeUpdate)
}

// Delete removes the record identified by the query id and returns the
// materialized form of what was deleted.
func (s *CustomerService) Delete(ctx context.Context, id string) (customer.Customer, error) {
	return s.reconcile(nil, id, modeDelete)
}

// reconcile is the shared update/delete path: select the id source, check
// presence, locate, materialize with the id preserved, then commit. The two
// modes differ only in the final mutation.
func (s *CustomerService) reconcile(p *customer.Payload, queryID string, mode reconcileMode) (customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id string
	switch mode {
	case modeUpdate:
		if p == nil {
			return customer.Customer{}, xerrors.ErrMissingInput
		}
		id = string(p.ID)
	case modeDelete:
		id = queryID
	}
	if id == "" {
		return customer.Customer{}, xerrors.ErrMissingInput
	}

	idx := locate(s.store.All(), id)
	if idx < 0 {
		return customer.Customer{}, xerrors.ErrRecordNotFound
	}

	edited := s.factory.Generate(p, id, true)
	edited.LastUpdate = s.factory.Timestamp()

	switch mode {
	case modeUpdate:
		s.store.ReplaceAt(idx, edited)
		s.logger.Info("customer updated", zap.Int64("customer_id", edited.ID))
	case modeDelete:
		s.store.RemoveAt(idx)
		s.logger.Info("customer deleted", zap.Int64("customer_id", edited.ID))
	}
	return edited, nil
}
