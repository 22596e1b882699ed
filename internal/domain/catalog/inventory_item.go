package catalog

import (
	"strings"
	"time"

	"github.com/optivista/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TypeTagInventoryItem is the document type tag for inventory items
const TypeTagInventoryItem = "inventory_item"

// InventoryItem represents a stocked product (frames, lenses, solutions).
//
// Specifications is a free-form map whose keys vary by item category, e.g.
// frame material and size for frames, index and coating for lenses.
type InventoryItem struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Brand          string            `json:"brand"`
	Category       string            `json:"category"`
	Price          decimal.Decimal   `json:"price"`
	Stock          int               `json:"stock"`
	Specifications map[string]string `json:"specifications"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// NewInventoryItem creates a new inventory item. The ID is assigned by the
// repository on create.
func NewInventoryItem(name, brand, category string, price decimal.Decimal, stock int, specifications map[string]string) (*InventoryItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	if specifications == nil {
		specifications = make(map[string]string)
	}

	now := time.Now()
	return &InventoryItem{
		Name:           strings.TrimSpace(name),
		Brand:          strings.TrimSpace(brand),
		Category:       strings.TrimSpace(category),
		Price:          price,
		Stock:          stock,
		Specifications: specifications,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// AdjustStock changes the stock level by delta, rejecting adjustments that
// would drive stock negative
func (i *InventoryItem) AdjustStock(delta int) error {
	if i.Stock+delta < 0 {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Stock cannot go negative")
	}
	i.Stock += delta
	i.UpdatedAt = time.Now()
	return nil
}

// UpdatePrice sets a new unit price
func (i *InventoryItem) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	i.Price = price
	i.UpdatedAt = time.Now()
	return nil
}

// IsLowStock reports whether stock is at or below the given threshold
func (i *InventoryItem) IsLowStock(threshold int) bool {
	return i.Stock <= threshold
}
