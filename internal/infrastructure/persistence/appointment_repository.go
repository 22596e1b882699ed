package persistence

import (
	"context"
	"time"

	"github.com/optivista/backend/internal/domain/clinic"
	"github.com/optivista/backend/internal/infrastructure/docstore"
)

// AppointmentRepository implements clinic.AppointmentRepository over the document store
type AppointmentRepository struct {
	docRepository[clinic.Appointment]
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(store docstore.Store) *AppointmentRepository {
	return &AppointmentRepository{
		docRepository: newDocRepository(store, clinic.TypeTagAppointment, func(a *clinic.Appointment) *string { return &a.ID }),
	}
}

// FindByID finds an appointment by id
func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*clinic.Appointment, error) {
	return r.findByID(ctx, id)
}

// FindAll returns all appointments
func (r *AppointmentRepository) FindAll(ctx context.Context) ([]clinic.Appointment, error) {
	return r.query(ctx, nil)
}

// FindByPatient returns all appointments referencing the given patient
func (r *AppointmentRepository) FindByPatient(ctx context.Context, patientID string) ([]clinic.Appointment, error) {
	return r.query(ctx, func(a *clinic.Appointment) bool { return a.PatientRef == patientID })
}

// FindByDate returns appointments scheduled within the calendar day of the
// given time, in the time's location
func (r *AppointmentRepository) FindByDate(ctx context.Context, day time.Time) ([]clinic.Appointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	return r.query(ctx, func(a *clinic.Appointment) bool {
		return !a.ScheduledAt.Before(start) && a.ScheduledAt.Before(end)
	})
}

// Create persists a new appointment, assigning its id
func (r *AppointmentRepository) Create(ctx context.Context, appointment *clinic.Appointment) error {
	return r.create(ctx, appointment)
}

// Update replaces the stored appointment document
func (r *AppointmentRepository) Update(ctx context.Context, id string, appointment *clinic.Appointment) error {
	return r.update(ctx, id, appointment)
}

// Delete removes the appointment document
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
