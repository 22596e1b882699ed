package catalog

import (
	"context"
	"time"

	"github.com/optivista/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateInventoryItemRequest carries the data for a new inventory item
type CreateInventoryItemRequest struct {
	Name           string            `json:"name" binding:"required"`
	Brand          string            `json:"brand"`
	Category       string            `json:"category"`
	Price          decimal.Decimal   `json:"price"`
	Stock          int               `json:"stock" binding:"min=0"`
	Specifications map[string]string `json:"specifications"`
}

// InventoryItemResponse is the read projection of an inventory item
type InventoryItemResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Brand          string            `json:"brand"`
	Category       string            `json:"category"`
	Price          decimal.Decimal   `json:"price"`
	Stock          int               `json:"stock"`
	Specifications map[string]string `json:"specifications"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ToInventoryItemResponse maps a domain item to its response projection
func ToInventoryItemResponse(i *catalog.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:             i.ID,
		Name:           i.Name,
		Brand:          i.Brand,
		Category:       i.Category,
		Price:          i.Price,
		Stock:          i.Stock,
		Specifications: i.Specifications,
		CreatedAt:      i.CreatedAt,
	}
}

// InventoryService handles inventory item operations
type InventoryService struct {
	repo catalog.InventoryItemRepository
	log  *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(repo catalog.InventoryItemRepository, log *zap.Logger) *InventoryService {
	return &InventoryService{repo: repo, log: log.Named("inventory-service")}
}

// Create registers a new inventory item
func (s *InventoryService) Create(ctx context.Context, req CreateInventoryItemRequest) (*InventoryItemResponse, error) {
	item, err := catalog.NewInventoryItem(req.Name, req.Brand, req.Category, req.Price, req.Stock, req.Specifications)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.log.Info("inventory item created", zap.String("id", item.ID), zap.String("name", item.Name))
	resp := ToInventoryItemResponse(item)
	return &resp, nil
}

// GetByID returns a single inventory item
func (s *InventoryService) GetByID(ctx context.Context, id string) (*InventoryItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToInventoryItemResponse(item)
	return &resp, nil
}

// List returns inventory items, optionally filtered by a name/brand fragment
func (s *InventoryService) List(ctx context.Context, search string) ([]InventoryItemResponse, error) {
	var (
		items []catalog.InventoryItem
		err   error
	)
	if search != "" {
		items, err = s.repo.Search(ctx, search)
	} else {
		items, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

// ListByCategory returns all items in a category
func (s *InventoryService) ListByCategory(ctx context.Context, category string) ([]InventoryItemResponse, error) {
	items, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

// ListLowStock returns items at or below the threshold
func (s *InventoryService) ListLowStock(ctx context.Context, threshold int) ([]InventoryItemResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]catalog.InventoryItem, 0)
	for _, item := range items {
		if item.IsLowStock(threshold) {
			low = append(low, item)
		}
	}
	return toResponses(low), nil
}

// AdjustStock changes an item's stock by delta
func (s *InventoryService) AdjustStock(ctx context.Context, id string, delta int) (*InventoryItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := item.AdjustStock(delta); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, item); err != nil {
		return nil, err
	}
	resp := ToInventoryItemResponse(item)
	return &resp, nil
}

// UpdatePrice sets a new unit price for an item
func (s *InventoryService) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) (*InventoryItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := item.UpdatePrice(price); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, item); err != nil {
		return nil, err
	}
	resp := ToInventoryItemResponse(item)
	return &resp, nil
}

// Delete removes an inventory item
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func toResponses(items []catalog.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, len(items))
	for i := range items {
		out[i] = ToInventoryItemResponse(&items[i])
	}
	return out
}
