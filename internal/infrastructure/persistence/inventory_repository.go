package persistence

import (
	"context"
	"strings"

	"github.com/optivista/backend/internal/domain/catalog"
	"github.com/optivista/backend/internal/infrastructure/docstore"
)

// InventoryItemRepository implements catalog.InventoryItemRepository over the document store
type InventoryItemRepository struct {
	docRepository[catalog.InventoryItem]
}

// NewInventoryItemRepository creates a new InventoryItemRepository
func NewInventoryItemRepository(store docstore.Store) *InventoryItemRepository {
	return &InventoryItemRepository{
		docRepository: newDocRepository(store, catalog.TypeTagInventoryItem, func(i *catalog.InventoryItem) *string { return &i.ID }),
	}
}

// FindByID finds an inventory item by id
func (r *InventoryItemRepository) FindByID(ctx context.Context, id string) (*catalog.InventoryItem, error) {
	return r.findByID(ctx, id)
}

// FindAll returns all inventory items
func (r *InventoryItemRepository) FindAll(ctx context.Context) ([]catalog.InventoryItem, error) {
	return r.query(ctx, nil)
}

// Search returns items whose name or brand contains the fragment,
// case-insensitively
func (r *InventoryItemRepository) Search(ctx context.Context, fragment string) ([]catalog.InventoryItem, error) {
	fragment = strings.ToLower(strings.TrimSpace(fragment))
	if fragment == "" {
		return r.FindAll(ctx)
	}
	return r.query(ctx, func(i *catalog.InventoryItem) bool {
		return strings.Contains(strings.ToLower(i.Name), fragment) ||
			strings.Contains(strings.ToLower(i.Brand), fragment)
	})
}

// FindByCategory returns all items in the given category
func (r *InventoryItemRepository) FindByCategory(ctx context.Context, category string) ([]catalog.InventoryItem, error) {
	return r.query(ctx, func(i *catalog.InventoryItem) bool { return i.Category == category })
}

// Create persists a new inventory item, assigning its id
func (r *InventoryItemRepository) Create(ctx context.Context, item *catalog.InventoryItem) error {
	return r.create(ctx, item)
}

// Update replaces the stored inventory item document
func (r *InventoryItemRepository) Update(ctx context.Context, id string, item *catalog.InventoryItem) error {
	return r.update(ctx, id, item)
}

// Delete removes the inventory item document
func (r *InventoryItemRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
