package clinic

import (
	"context"

	"github.com/optivista/backend/internal/domain/clinic"
	"go.uber.org/zap"
)

// ConsultationService handles consultation records, with the same
// denormalize-on-create, enrich-on-read policy as appointments
type ConsultationService struct {
	repo         clinic.ConsultationRepository
	patients     clinic.PatientRepository
	optometrists clinic.OptometristRepository
	enricher     *Enricher
	log          *zap.Logger
}

// NewConsultationService creates a new ConsultationService
func NewConsultationService(
	repo clinic.ConsultationRepository,
	patients clinic.PatientRepository,
	optometrists clinic.OptometristRepository,
	enricher *Enricher,
	log *zap.Logger,
) *ConsultationService {
	return &ConsultationService{
		repo:         repo,
		patients:     patients,
		optometrists: optometrists,
		enricher:     enricher,
		log:          log.Named("consultation-service"),
	}
}

// Create records a new consultation
func (s *ConsultationService) Create(ctx context.Context, req CreateConsultationRequest) (*ConsultationResponse, error) {
	patient, err := s.patients.FindByID(ctx, req.PatientRef)
	if err != nil {
		return nil, err
	}
	optometrist, err := s.optometrists.FindByID(ctx, req.OptometristRef)
	if err != nil {
		return nil, err
	}

	consultation, err := clinic.NewConsultation(patient, optometrist, req.Date, req.Symptoms, req.Diagnosis, req.Prescription)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, consultation); err != nil {
		return nil, err
	}
	s.log.Info("consultation created",
		zap.String("id", consultation.ID),
		zap.String("patient", consultation.PatientRef))
	return s.respond(ctx, consultation), nil
}

// GetByID returns a single enriched consultation
func (s *ConsultationService) GetByID(ctx context.Context, id string) (*ConsultationResponse, error) {
	consultation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, consultation), nil
}

// List returns all consultations, enriched
func (s *ConsultationService) List(ctx context.Context) ([]ConsultationResponse, error) {
	consultations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.respondAll(ctx, consultations), nil
}

// ListByPatient returns all consultations for a patient, enriched
func (s *ConsultationService) ListByPatient(ctx context.Context, patientID string) ([]ConsultationResponse, error) {
	consultations, err := s.repo.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return s.respondAll(ctx, consultations), nil
}

// UpdateDiagnosis replaces the diagnosis and prescription of a consultation
func (s *ConsultationService) UpdateDiagnosis(ctx context.Context, id, diagnosis string, prescription map[string]string) (*ConsultationResponse, error) {
	consultation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := consultation.UpdateDiagnosis(diagnosis, prescription); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, consultation); err != nil {
		return nil, err
	}
	return s.respond(ctx, consultation), nil
}

// Delete removes a consultation
func (s *ConsultationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ConsultationService) respond(ctx context.Context, c *clinic.Consultation) *ConsultationResponse {
	return &ConsultationResponse{
		ID:              c.ID,
		PatientRef:      c.PatientRef,
		OptometristRef:  c.OptometristRef,
		PatientName:     c.PatientName,
		OptometristName: c.OptometristName,
		Patient:         s.enricher.PatientName(ctx, c.PatientRef),
		Optometrist:     s.enricher.OptometristName(ctx, c.OptometristRef),
		Date:            c.Date,
		Symptoms:        c.Symptoms,
		Diagnosis:       c.Diagnosis,
		Prescription:    c.Prescription,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
	}
}

func (s *ConsultationService) respondAll(ctx context.Context, items []clinic.Consultation) []ConsultationResponse {
	out := make([]ConsultationResponse, len(items))
	for i := range items {
		out[i] = *s.respond(ctx, &items[i])
	}
	return out
}
