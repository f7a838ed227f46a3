package customer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mockcrm-service/internal/domain/customer"
	xerrors "mockcrm-service/internal/pkg/errors"
	"mockcrm-service/internal/repository/memory"
)

func newTestService(strategy DefaultStrategy, seed ...customer.Customer) (*CustomerService, *memory.CustomerStore) {
	store := memory.NewCustomerStore(seed)
	svc := NewCustomerService(store, strategy, zap.NewNop())
	svc.factory.now = func() time.Time { return testClock }
	return svc, store
}

func fiveRecords() []customer.Customer {
	return []customer.Customer{
		{ID: 1, Name: "one", Active: true},
		{ID: 2, Name: "two", Active: true},
		{ID: 3, Name: "three", Active: true},
		{ID: 4, Name: "four", Active: true},
		{ID: 5, Name: "five", Active: true},
	}
}

func TestCreateAssignsUniqueNextID(t *testing.T) {
	svc, store := newTestService(StrategyFalsy, fiveRecords()...)

	got, err := svc.Create(context.Background(), &customer.Payload{Name: strPtr("Ada")})

	require.NoError(t, err)
	assert.Equal(t, int64(6), got.ID)
	assert.Equal(t, 6, store.Len())

	seen := map[int64]bool{}
	for _, r := range store.All() {
		assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
	}
}

func TestCreateOnEmptyStoreStartsAtOne(t *testing.T) {
	svc, _ := newTestService(StrategyFalsy)

	got, err := svc.Create(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestUpdateReplacesInPlaceAndResetsDefaults(t *testing.T) {
	svc, store := newTestService(StrategyFalsy,
		customer.Customer{ID: 1, Name: "A", Email: "a@example.com", Active: true},
		customer.Customer{ID: 2, Name: "B", Active: true},
	)

	got, err := svc.Update(context.Background(), &customer.Payload{ID: "1", Name: strPtr("B")})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "B", got.Name)
	// Not merged with the old record: every unsupplied field is reset.
	assert.Equal(t, customer.DefaultEmail, got.Email)
	assert.Equal(t, "2026-05-01T12:00:00Z", got.LastUpdate)

	records := store.All()
	require.Len(t, records, 2)
	assert.Equal(t, got, records[0], "updated record keeps its position")
	assert.Equal(t, int64(2), records[1].ID)
}

func TestUpdateAlwaysStampsLastUpdate(t *testing.T) {
	svc, _ := newTestService(StrategyFalsy, customer.Customer{ID: 1})

	got, err := svc.Update(context.Background(), &customer.Payload{
		ID:         "1",
		LastUpdate: strPtr("1999-12-31T23:59:59Z"),
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-05-01T12:00:00Z", got.LastUpdate,
		"a client-supplied lastupdate is overridden on update")
}

func TestUpdateMissingInput(t *testing.T) {
	svc, _ := newTestService(StrategyFalsy, fiveRecords()...)

	_, err := svc.Update(context.Background(), nil)
	assert.ErrorIs(t, err, xerrors.ErrMissingInput)

	_, err = svc.Update(context.Background(), &customer.Payload{Name: strPtr("no id")})
	assert.ErrorIs(t, err, xerrors.ErrMissingInput)
}

func TestUpdateRecordNotFound(t *testing.T) {
	svc, _ := newTestService(StrategyFalsy, fiveRecords()...)

	_, err := svc.Update(context.Background(), &customer.Payload{ID: "42"})
	assert.ErrorIs(t, err, xerrors.ErrRecordNotFound)
}

func TestDeleteRemovesAndReturnsMaterializedRecord(t *testing.T) {
	svc, store := newTestService(StrategyFalsy,
		customer.Customer{ID: 1, Name: "doomed", Active: true},
		customer.Customer{ID: 2, Name: "spared", Active: true},
	)

	got, err := svc.Delete(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	// The returned value is the materialized form, not the stored record.
	assert.Equal(t, customer.DefaultName, got.Name)
	assert.Equal(t, "2026-05-01T12:00:00Z", got.LastUpdate)

	records := store.All()
	require.Len(t, records, 1)
	assert.Equal(t, int64(2), records[0].ID)

	// Delete is not idempotent: the second attempt reports not-found.
	_, err = svc.Delete(context.Background(), "1")
	assert.ErrorIs(t, err, xerrors.ErrRecordNotFound)
}

func TestDeleteMissingID(t *testing.T) {
	svc, _ := newTestService(StrategyFalsy, fiveRecords()...)

	_, err := svc.Delete(context.Background(), "")
	assert.ErrorIs(t, err, xerrors.ErrMissingInput)
}

func TestListQtyTruncates(t *testing.T) {
	svc, _ := newTestService(StrategyFalsy, fiveRecords()...)

	got := svc.List(context.Background(), &customer.ListFilters{Qty: "2"})

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestListQtyEdgeCases(t *testing.T) {
	svc, _ := newTestService(StrategyFalsy, fiveRecords()...)

	assert.Len(t, svc.List(context.Background(), &customer.ListFilters{Qty: "50"}), 5)
	assert.Empty(t, svc.List(context.Background(), &customer.ListFilters{Qty: "0"}), "qty=0 truncates to nothing")
	assert.Empty(t, svc.List(context.Background(), &customer.ListFilters{Qty: "abc"}), "non-numeric qty truncates to nothing")
	assert.Empty(t, svc.List(context.Background(), &customer.ListFilters{Qty: "-3"}), "negative qty truncates to nothing")
}

func TestListByID(t *testing.T) {
	svc, _ := newTestService(StrategyFalsy, fiveRecords()...)

	got := svc.List(context.Background(), &customer.ListFilters{ID: "3"})
	require.Len(t, got, 1)
	assert.Equal(t, "three", got[0].Name)

	assert.Empty(t, svc.List(context.Background(), &customer.ListFilters{ID: "404"}))
}

func TestListNoFilters(t *testing.T) {
	svc, _ := newTestService(StrategyFalsy, fiveRecords()...)

	assert.Len(t, svc.List(context.Background(), nil), 5)
	assert.Len(t, svc.List(context.Background(), &customer.ListFilters{}), 5)
}

func TestGet(t *testing.T) {
	svc, _ := newTestService(StrategyFalsy, fiveRecords()...)

	got, err := svc.Get(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "two", got.Name)

	_, err = svc.Get(context.Background(), "99")
	assert.ErrorIs(t, err, xerrors.ErrRecordNotFound)
}
