package persistence

import (
	"context"

	"github.com/optivista/backend/internal/domain/clinic"
	"github.com/optivista/backend/internal/infrastructure/docstore"
)

// ConsultationRepository implements clinic.ConsultationRepository over the document store
type ConsultationRepository struct {
	docRepository[clinic.Consultation]
}

// NewConsultationRepository creates a new ConsultationRepository
func NewConsultationRepository(store docstore.Store) *ConsultationRepository {
	return &ConsultationRepository{
		docRepository: newDocRepository(store, clinic.TypeTagConsultation, func(c *clinic.Consultation) *string { return &c.ID }),
	}
}

// FindByID finds a consultation by id
func (r *ConsultationRepository) FindByID(ctx context.Context, id string) (*clinic.Consultation, error) {
	return r.findByID(ctx, id)
}

// FindAll returns all consultations
func (r *ConsultationRepository) FindAll(ctx context.Context) ([]clinic.Consultation, error) {
	return r.query(ctx, nil)
}

// FindByPatient returns all consultations referencing the given patient
func (r *ConsultationRepository) FindByPatient(ctx context.Context, patientID string) ([]clinic.Consultation, error) {
	return r.query(ctx, func(c *clinic.Consultation) bool { return c.PatientRef == patientID })
}

// Create persists a new consultation, assigning its id
func (r *ConsultationRepository) Create(ctx context.Context, consultation *clinic.Consultation) error {
	return r.create(ctx, consultation)
}

// Update replaces the stored consultation document
func (r *ConsultationRepository) Update(ctx context.Context, id string, consultation *clinic.Consultation) error {
	return r.update(ctx, id, consultation)
}

// Delete removes the consultation document
func (r *ConsultationRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
