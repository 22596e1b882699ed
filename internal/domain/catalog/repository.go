package catalog

import "context"

// InventoryItemRepository defines the persistence contract for inventory items
type InventoryItemRepository interface {
	FindByID(ctx context.Context, id string) (*InventoryItem, error)
	FindAll(ctx context.Context) ([]InventoryItem, error)
	// Search matches a case-insensitive fragment against name and brand
	Search(ctx context.Context, fragment string) ([]InventoryItem, error)
	FindByCategory(ctx context.Context, category string) ([]InventoryItem, error)
	Create(ctx context.Context, item *InventoryItem) error
	Update(ctx context.Context, id string, item *InventoryItem) error
	Delete(ctx context.Context, id string) error
}
