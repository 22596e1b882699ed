package persistence

import (
	"context"
	"strings"

	"github.com/optivista/backend/internal/domain/clinic"
	"github.com/optivista/backend/internal/infrastructure/docstore"
)

// PatientRepository implements clinic.PatientRepository over the document store
type PatientRepository struct {
	docRepository[clinic.Patient]
}

// NewPatientRepository creates a new PatientRepository
func NewPatientRepository(store docstore.Store) *PatientRepository {
	return &PatientRepository{
		docRepository: newDocRepository(store, clinic.TypeTagPatient, func(p *clinic.Patient) *string { return &p.ID }),
	}
}

// FindByID finds a patient by id
func (r *PatientRepository) FindByID(ctx context.Context, id string) (*clinic.Patient, error) {
	return r.findByID(ctx, id)
}

// FindAll returns all patients
func (r *PatientRepository) FindAll(ctx context.Context) ([]clinic.Patient, error) {
	return r.query(ctx, nil)
}

// Search returns patients whose first or last name contains the fragment,
// case-insensitively
func (r *PatientRepository) Search(ctx context.Context, fragment string) ([]clinic.Patient, error) {
	fragment = strings.ToLower(strings.TrimSpace(fragment))
	if fragment == "" {
		return r.FindAll(ctx)
	}
	return r.query(ctx, func(p *clinic.Patient) bool {
		return strings.Contains(strings.ToLower(p.FirstName), fragment) ||
			strings.Contains(strings.ToLower(p.LastName), fragment)
	})
}

// Create persists a new patient, assigning its id
func (r *PatientRepository) Create(ctx context.Context, patient *clinic.Patient) error {
	return r.create(ctx, patient)
}

// Update replaces the stored patient document
func (r *PatientRepository) Update(ctx context.Context, id string, patient *clinic.Patient) error {
	return r.update(ctx, id, patient)
}

// Delete removes the patient document
func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
