package clinic

import (
	"context"

	"github.com/optivista/backend/internal/domain/clinic"
	"go.uber.org/zap"
)

// PatientService handles patient record operations
type PatientService struct {
	repo clinic.PatientRepository
	log  *zap.Logger
}

// NewPatientService creates a new PatientService
func NewPatientService(repo clinic.PatientRepository, log *zap.Logger) *PatientService {
	return &PatientService{repo: repo, log: log.Named("patient-service")}
}

// Create registers a new patient
func (s *PatientService) Create(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error) {
	patient, err := clinic.NewPatient(req.FirstName, req.LastName, req.Email, req.Phone, req.DateOfBirth, req.Address)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	s.log.Info("patient created", zap.String("id", patient.ID))
	resp := ToPatientResponse(patient)
	return &resp, nil
}

// GetByID returns a single patient
func (s *PatientService) GetByID(ctx context.Context, id string) (*PatientResponse, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToPatientResponse(patient)
	return &resp, nil
}

// List returns all patients, optionally filtered by a name fragment
func (s *PatientService) List(ctx context.Context, search string) ([]PatientResponse, error) {
	var (
		patients []clinic.Patient
		err      error
	)
	if search != "" {
		patients, err = s.repo.Search(ctx, search)
	} else {
		patients, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]PatientResponse, len(patients))
	for i := range patients {
		out[i] = ToPatientResponse(&patients[i])
	}
	return out, nil
}

// Update applies a full update to an existing patient
func (s *PatientService) Update(ctx context.Context, id string, req UpdatePatientRequest) (*PatientResponse, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := patient.Rename(req.FirstName, req.LastName); err != nil {
		return nil, err
	}
	if err := patient.UpdateContact(req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, patient); err != nil {
		return nil, err
	}
	resp := ToPatientResponse(patient)
	return &resp, nil
}

// Delete removes a patient record. Records referencing the patient keep their
// denormalized names; later enrichment of those records yields the sentinel.
func (s *PatientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("patient deleted", zap.String("id", id))
	return nil
}
