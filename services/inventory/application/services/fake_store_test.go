package services

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/repositories"
)

// fakeStore is an in-memory repositories.Store for unit tests. InTx holds one
// mutex for the whole unit of work, which serializes conflicting writers the
// same way row locks do in Postgres, and restores a snapshot on error so
// failed units of work leave no partial writes behind.
type fakeStore struct {
	mu     sync.Mutex
	items  map[uuid.UUID]*models.Item
	txns   map[uuid.UUID]*models.StockTransaction
	alerts map[uuid.UUID]*models.LowStockAlert
	events []fakeEvent
}

type fakeEvent struct {
	topic   string
	payload []byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:  make(map[uuid.UUID]*models.Item),
		txns:   make(map[uuid.UUID]*models.StockTransaction),
		alerts: make(map[uuid.UUID]*models.LowStockAlert),
	}
}

func (s *fakeStore) InTx(_ context.Context, fn func(tx repositories.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	itemsBackup := maps.Clone(s.items)
	txnsBackup := maps.Clone(s.txns)
	alertsBackup := maps.Clone(s.alerts)
	eventsMark := len(s.events)

	// Tx methods replace map entries with fresh copies and never mutate stored
	// structs, so a shallow map clone is a sufficient snapshot.
	if err := fn(&fakeTx{s: s}); err != nil {
		s.items = itemsBackup
		s.txns = txnsBackup
		s.alerts = alertsBackup
		s.events = s.events[:eventsMark]
		return err
	}
	return nil
}

func (s *fakeStore) SaveItem(_ context.Context, item *models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *fakeStore) GetItemByID(_ context.Context, id uuid.UUID) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *fakeStore) ListItems(_ context.Context, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]*models.Item, 0, len(s.items))
	for _, item := range s.items {
		cp := *item
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return paginate(all, opts), len(s.items), nil
}

func (s *fakeStore) DeleteItem(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	// Mirrors the ledger FK: any transaction referencing the item blocks deletion.
	for _, txn := range s.txns {
		if txn.ItemID == id {
			return fmt.Errorf("%w: ledger entries reference item %s", domain.ErrItemHasHistory, id)
		}
	}
	delete(s.items, id)
	return nil
}

func (s *fakeStore) GetTransactionByID(_ context.Context, id uuid.UUID) (*models.StockTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.txns[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	cp := *txn
	return &cp, nil
}

func (s *fakeStore) ListTransactionsByItem(_ context.Context, itemID uuid.UUID, opts repositories.QueryOpts) ([]*models.StockTransaction, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []*models.StockTransaction
	for _, txn := range s.txns {
		if txn.ItemID == itemID {
			cp := *txn
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return paginate(matched, opts), len(matched), nil
}

func (s *fakeStore) CountActiveByItem(_ context.Context, itemID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, txn := range s.txns {
		if txn.ItemID == itemID && txn.Status == models.TransactionActive {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) CountActiveByUser(_ context.Context, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, txn := range s.txns {
		if txn.UserID == userID && txn.Status == models.TransactionActive {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) ListOpenAlerts(_ context.Context) ([]*models.LowStockAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var open []*models.LowStockAlert
	for _, a := range s.alerts {
		if a.Open() {
			cp := *a
			open = append(open, &cp)
		}
	}
	return open, nil
}

func (s *fakeStore) ListAlertsByItem(_ context.Context, itemID uuid.UUID) ([]*models.LowStockAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []*models.LowStockAlert
	for _, a := range s.alerts {
		if a.ItemID == itemID {
			cp := *a
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, nil
}

func paginate[T any](all []T, opts repositories.QueryOpts) []T {
	if opts.Offset >= len(all) {
		return nil
	}
	all = all[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(all) {
		all = all[:opts.Limit]
	}
	return all
}

// openAlertFor returns the committed open alert for an item, or nil.
func (s *fakeStore) openAlertFor(itemID uuid.UUID) *models.LowStockAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.alerts {
		if a.ItemID == itemID && a.Open() {
			cp := *a
			return &cp
		}
	}
	return nil
}

func (s *fakeStore) eventsOn(topic string) []fakeEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []fakeEvent
	for _, e := range s.events {
		if e.topic == topic {
			matched = append(matched, e)
		}
	}
	return matched
}

// fakeTx implements repositories.Tx against the fakeStore's maps. The store
// mutex is already held for the duration of the unit of work.
type fakeTx struct {
	s *fakeStore
}

func (t *fakeTx) ItemForUpdate(_ context.Context, id uuid.UUID) (*models.Item, error) {
	item, ok := t.s.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (t *fakeTx) AdjustItemQuantity(_ context.Context, id uuid.UUID, delta int) (*models.Item, error) {
	item, ok := t.s.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if item.Quantity+delta < 0 {
		return nil, fmt.Errorf("%w: adjustment would make quantity negative", domain.ErrInvalidState)
	}
	cp := *item
	cp.Quantity += delta
	cp.UpdatedAt = time.Now().UTC()
	t.s.items[id] = &cp
	out := cp
	return &out, nil
}

func (t *fakeTx) AppendTransaction(_ context.Context, txn *models.StockTransaction) error {
	cp := *txn
	t.s.txns[txn.ID] = &cp
	return nil
}

func (t *fakeTx) TransactionForUpdate(_ context.Context, id uuid.UUID) (*models.StockTransaction, error) {
	txn, ok := t.s.txns[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	cp := *txn
	return &cp, nil
}

func (t *fakeTx) CompleteTransaction(_ context.Context, id uuid.UUID, returnedAt time.Time, condition, notes string) (*models.StockTransaction, error) {
	txn, ok := t.s.txns[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	cp := *txn
	cp.Status = models.TransactionCompleted
	cp.ReturnedAt = &returnedAt
	cp.ConditionOnReturn = condition
	if notes != "" {
		cp.Notes = notes
	}
	t.s.txns[id] = &cp
	out := cp
	return &out, nil
}

func (t *fakeTx) OpenAlertForUpdate(_ context.Context, itemID uuid.UUID) (*models.LowStockAlert, error) {
	for _, a := range t.s.alerts {
		if a.ItemID == itemID && a.Open() {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrAlertNotFound
}

func (t *fakeTx) InsertAlert(_ context.Context, alert *models.LowStockAlert) error {
	cp := *alert
	t.s.alerts[alert.ID] = &cp
	return nil
}

func (t *fakeTx) UpdateOpenAlert(_ context.Context, alertID uuid.UUID, currentQuantity int, level models.AlertLevel) error {
	alert, ok := t.s.alerts[alertID]
	if !ok {
		return domain.ErrAlertNotFound
	}
	cp := *alert
	cp.CurrentQuantity = currentQuantity
	cp.Level = level
	t.s.alerts[alertID] = &cp
	return nil
}

func (t *fakeTx) ResolveOpenAlerts(_ context.Context, itemID uuid.UUID, resolvedAt time.Time) error {
	for id, a := range t.s.alerts {
		if a.ItemID == itemID && a.Open() {
			cp := *a
			cp.Status = models.AlertResolved
			cp.ResolvedAt = &resolvedAt
			t.s.alerts[id] = &cp
		}
	}
	return nil
}

func (t *fakeTx) AlertForUpdate(_ context.Context, id uuid.UUID) (*models.LowStockAlert, error) {
	alert, ok := t.s.alerts[id]
	if !ok {
		return nil, domain.ErrAlertNotFound
	}
	cp := *alert
	return &cp, nil
}

func (t *fakeTx) AcknowledgeAlert(_ context.Context, id, byUser uuid.UUID) (*models.LowStockAlert, error) {
	alert, ok := t.s.alerts[id]
	if !ok {
		return nil, domain.ErrAlertNotFound
	}
	cp := *alert
	cp.Status = models.AlertAcknowledged
	cp.AcknowledgedBy = &byUser
	t.s.alerts[id] = &cp
	out := cp
	return &out, nil
}

func (t *fakeTx) PublishEvent(_ context.Context, topic string, payload []byte) error {
	t.s.events = append(t.s.events, fakeEvent{topic: topic, payload: payload})
	return nil
}
