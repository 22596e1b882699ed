package clinic

import (
	"strings"
	"time"

	"github.com/optivista/backend/internal/domain/shared"
)

// TypeTagAppointment is the document type tag for appointments
const TypeTagAppointment = "appointment"

// AppointmentStatus represents the scheduling status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a scheduled visit.
//
// PatientName and OptometristName are denormalized from the referenced records
// at creation time and are not kept in sync afterwards. Read paths that need
// current names go through the enrichment layer instead.
type Appointment struct {
	ID              string            `json:"id"`
	PatientRef      string            `json:"patientRef"`
	OptometristRef  string            `json:"optometristRef"`
	PatientName     string            `json:"patientName"`
	OptometristName string            `json:"optometristName"`
	ScheduledAt     time.Time         `json:"scheduledAt"`
	Reason          string            `json:"reason"`
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// NewAppointment creates a new appointment referencing an existing patient and
// optometrist. The caller supplies the then-current display names for
// denormalization. The ID is assigned by the repository on create.
func NewAppointment(patient *Patient, optometrist *Optometrist, scheduledAt time.Time, reason string) (*Appointment, error) {
	if patient == nil || patient.ID == "" {
		return nil, shared.NewDomainError("INVALID_PATIENT", "Patient reference cannot be empty")
	}
	if optometrist == nil || optometrist.ID == "" {
		return nil, shared.NewDomainError("INVALID_OPTOMETRIST", "Optometrist reference cannot be empty")
	}
	if scheduledAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_SCHEDULE", "Scheduled time cannot be empty")
	}

	now := time.Now()
	return &Appointment{
		PatientRef:      patient.ID,
		OptometristRef:  optometrist.ID,
		PatientName:     patient.FullName(),
		OptometristName: optometrist.DisplayName(),
		ScheduledAt:     scheduledAt,
		Reason:          strings.TrimSpace(reason),
		Status:          AppointmentStatusScheduled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Reschedule moves the appointment to a new time
func (a *Appointment) Reschedule(scheduledAt time.Time) error {
	if a.Status != AppointmentStatusScheduled {
		return shared.ErrInvalidStateTransition
	}
	if scheduledAt.IsZero() {
		return shared.NewDomainError("INVALID_SCHEDULE", "Scheduled time cannot be empty")
	}
	a.ScheduledAt = scheduledAt
	a.UpdatedAt = time.Now()
	return nil
}

// Complete marks the appointment as completed
func (a *Appointment) Complete(notes string) error {
	if a.Status != AppointmentStatusScheduled {
		return shared.ErrInvalidStateTransition
	}
	a.Status = AppointmentStatusCompleted
	a.Notes = notes
	a.UpdatedAt = time.Now()
	return nil
}

// Cancel marks the appointment as cancelled
func (a *Appointment) Cancel() error {
	if a.Status != AppointmentStatusScheduled {
		return shared.ErrInvalidStateTransition
	}
	a.Status = AppointmentStatusCancelled
	a.UpdatedAt = time.Now()
	return nil
}
