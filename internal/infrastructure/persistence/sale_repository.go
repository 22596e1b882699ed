package persistence

import (
	"context"

	"github.com/optivista/backend/internal/domain/sales"
	"github.com/optivista/backend/internal/infrastructure/docstore"
)

// SaleRepository implements sales.SaleRepository over the document store
type SaleRepository struct {
	docRepository[sales.Sale]
}

// NewSaleRepository creates a new SaleRepository
func NewSaleRepository(store docstore.Store) *SaleRepository {
	return &SaleRepository{
		docRepository: newDocRepository(store, sales.TypeTagSale, func(s *sales.Sale) *string { return &s.ID }),
	}
}

// FindByID finds a sale by id
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sales.Sale, error) {
	return r.findByID(ctx, id)
}

// FindAll returns all sales
func (r *SaleRepository) FindAll(ctx context.Context) ([]sales.Sale, error) {
	return r.query(ctx, nil)
}

// FindByPatient returns all sales referencing the given patient
func (r *SaleRepository) FindByPatient(ctx context.Context, patientID string) ([]sales.Sale, error) {
	return r.query(ctx, func(s *sales.Sale) bool { return s.PatientRef == patientID })
}

// FindByStatus returns all sales in the given status
func (r *SaleRepository) FindByStatus(ctx context.Context, status sales.SaleStatus) ([]sales.Sale, error) {
	return r.query(ctx, func(s *sales.Sale) bool { return s.Status == status })
}

// Create persists a new sale, assigning its id
func (r *SaleRepository) Create(ctx context.Context, sale *sales.Sale) error {
	return r.create(ctx, sale)
}

// Update replaces the stored sale document
func (r *SaleRepository) Update(ctx context.Context, id string, sale *sales.Sale) error {
	return r.update(ctx, id, sale)
}

// Delete removes the sale document
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
