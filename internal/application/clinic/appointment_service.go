package clinic

import (
	"context"
	"time"

	"github.com/optivista/backend/internal/domain/clinic"
	"go.uber.org/zap"
)

// AppointmentService handles appointment scheduling. Creation denormalizes
// the then-current patient and optometrist names onto the record; reads go
// through the enricher for current names.
type AppointmentService struct {
	repo         clinic.AppointmentRepository
	patients     clinic.PatientRepository
	optometrists clinic.OptometristRepository
	enricher     *Enricher
	log          *zap.Logger
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(
	repo clinic.AppointmentRepository,
	patients clinic.PatientRepository,
	optometrists clinic.OptometristRepository,
	enricher *Enricher,
	log *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		repo:         repo,
		patients:     patients,
		optometrists: optometrists,
		enricher:     enricher,
		log:          log.Named("appointment-service"),
	}
}

// Create books a new appointment. Both references must resolve at creation
// time; the display names are copied from the resolved records and not kept
// in sync afterwards.
func (s *AppointmentService) Create(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error) {
	patient, err := s.patients.FindByID(ctx, req.PatientRef)
	if err != nil {
		return nil, err
	}
	optometrist, err := s.optometrists.FindByID(ctx, req.OptometristRef)
	if err != nil {
		return nil, err
	}

	appointment, err := clinic.NewAppointment(patient, optometrist, req.ScheduledAt, req.Reason)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	s.log.Info("appointment created",
		zap.String("id", appointment.ID),
		zap.String("patient", appointment.PatientRef),
		zap.Time("scheduled_at", appointment.ScheduledAt))
	return s.respond(ctx, appointment), nil
}

// GetByID returns a single enriched appointment
func (s *AppointmentService) GetByID(ctx context.Context, id string) (*AppointmentResponse, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, appointment), nil
}

// List returns all appointments, enriched
func (s *AppointmentService) List(ctx context.Context) ([]AppointmentResponse, error) {
	appointments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.respondAll(ctx, appointments), nil
}

// ListByPatient returns all appointments for a patient, enriched
func (s *AppointmentService) ListByPatient(ctx context.Context, patientID string) ([]AppointmentResponse, error) {
	appointments, err := s.repo.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return s.respondAll(ctx, appointments), nil
}

// ListByDate returns appointments on the given calendar day, enriched
func (s *AppointmentService) ListByDate(ctx context.Context, day time.Time) ([]AppointmentResponse, error) {
	appointments, err := s.repo.FindByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	return s.respondAll(ctx, appointments), nil
}

// Reschedule moves an appointment to a new time
func (s *AppointmentService) Reschedule(ctx context.Context, id string, scheduledAt time.Time) (*AppointmentResponse, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := appointment.Reschedule(scheduledAt); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, appointment); err != nil {
		return nil, err
	}
	return s.respond(ctx, appointment), nil
}

// Complete marks an appointment as completed
func (s *AppointmentService) Complete(ctx context.Context, id string, notes string) (*AppointmentResponse, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := appointment.Complete(notes); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, appointment); err != nil {
		return nil, err
	}
	return s.respond(ctx, appointment), nil
}

// Cancel marks an appointment as cancelled
func (s *AppointmentService) Cancel(ctx context.Context, id string) (*AppointmentResponse, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := appointment.Cancel(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, appointment); err != nil {
		return nil, err
	}
	return s.respond(ctx, appointment), nil
}

// Delete removes an appointment
func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *AppointmentService) respond(ctx context.Context, a *clinic.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              a.ID,
		PatientRef:      a.PatientRef,
		OptometristRef:  a.OptometristRef,
		PatientName:     a.PatientName,
		OptometristName: a.OptometristName,
		Patient:         s.enricher.PatientName(ctx, a.PatientRef),
		Optometrist:     s.enricher.OptometristName(ctx, a.OptometristRef),
		ScheduledAt:     a.ScheduledAt,
		Reason:          a.Reason,
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
	}
}

func (s *AppointmentService) respondAll(ctx context.Context, items []clinic.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, len(items))
	for i := range items {
		out[i] = *s.respond(ctx, &items[i])
	}
	return out
}
