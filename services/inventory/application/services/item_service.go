package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgcache "github.com/jaiswal09/medi-sys-offline-sub001/pkg/cache"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/models"
	"github.com/jaiswal09/medi-sys-offline-sub001/services/inventory/domain/repositories"
)

// ItemService handles the administrative item paths: creation, reads, listing,
// and guarded deletion. Quantity is only ever mutated through the StockEngine;
// this service never touches it after creation.
type ItemService struct {
	store repositories.Store
	cache *pkgcache.ItemCache
}

// NewItemService returns an ItemService wired with the given store and cache.
func NewItemService(store repositories.Store, itemCache *pkgcache.ItemCache) *ItemService {
	return &ItemService{store: store, cache: itemCache}
}

// Create validates and persists a new Item with its starting quantity and
// thresholds.
func (s *ItemService) Create(ctx context.Context, name string, quantity, minQuantity int, maxQuantity *int, location string) (*models.Item, error) {
	itemName, err := models.NewItemName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidMovement, err)
	}

	item, err := models.NewItem(itemName, quantity, minQuantity, maxQuantity, location)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	if err := s.store.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	return item, nil
}

// GetByID retrieves an Item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
//
// Cached reads may trail a just-committed movement by one event delivery; the
// authoritative quantity always lives in Postgres.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cachedToItem(cached), nil
		}
	}

	item, err := s.store.GetItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), itemToCached(item))
		}()
	}

	return item, nil
}

// List returns a paginated slice of items plus total count.
func (s *ItemService) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	items, total, err := s.store.ListItems(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// Delete removes an item. Items referenced by ACTIVE transactions are never
// deleted; callers get ErrActiveTransactions instead. Items with completed
// ledger entries are blocked by the store with ErrItemHasHistory.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.GetItemByID(ctx, id); err != nil {
		return err
	}

	active, err := s.store.CountActiveByItem(ctx, id)
	if err != nil {
		return fmt.Errorf("count active transactions: %w", err)
	}
	if active > 0 {
		return fmt.Errorf("%w: %d active", domain.ErrActiveTransactions, active)
	}

	if err := s.store.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}

func itemToCached(i *models.Item) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:          i.ID,
		Name:        i.Name.String(),
		Status:      string(i.Status),
		Quantity:    i.Quantity,
		MinQuantity: i.MinQuantity,
		MaxQuantity: i.MaxQuantity,
		Location:    i.Location,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func cachedToItem(c *pkgcache.CachedItem) *models.Item {
	return &models.Item{
		ID:          c.ID,
		Name:        models.ItemName(c.Name),
		Status:      models.ItemStatus(c.Status),
		Quantity:    c.Quantity,
		MinQuantity: c.MinQuantity,
		MaxQuantity: c.MaxQuantity,
		Location:    c.Location,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
