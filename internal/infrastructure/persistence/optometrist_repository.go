package persistence

import (
	"context"

	"github.com/optivista/backend/internal/domain/clinic"
	"github.com/optivista/backend/internal/infrastructure/docstore"
)

// OptometristRepository implements clinic.OptometristRepository over the document store
type OptometristRepository struct {
	docRepository[clinic.Optometrist]
}

// NewOptometristRepository creates a new OptometristRepository
func NewOptometristRepository(store docstore.Store) *OptometristRepository {
	return &OptometristRepository{
		docRepository: newDocRepository(store, clinic.TypeTagOptometrist, func(o *clinic.Optometrist) *string { return &o.ID }),
	}
}

// FindByID finds an optometrist by id
func (r *OptometristRepository) FindByID(ctx context.Context, id string) (*clinic.Optometrist, error) {
	return r.findByID(ctx, id)
}

// FindAll returns all optometrists
func (r *OptometristRepository) FindAll(ctx context.Context) ([]clinic.Optometrist, error) {
	return r.query(ctx, nil)
}

// Create persists a new optometrist, assigning its id
func (r *OptometristRepository) Create(ctx context.Context, optometrist *clinic.Optometrist) error {
	return r.create(ctx, optometrist)
}

// Update replaces the stored optometrist document
func (r *OptometristRepository) Update(ctx context.Context, id string, optometrist *clinic.Optometrist) error {
	return r.update(ctx, id, optometrist)
}

// Delete removes the optometrist document
func (r *OptometristRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
