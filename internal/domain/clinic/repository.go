package clinic

import (
	"context"
	"time"
)

// PatientRepository defines the persistence contract for patients
type PatientRepository interface {
	FindByID(ctx context.Context, id string) (*Patient, error)
	FindAll(ctx context.Context) ([]Patient, error)
	// Search matches a case-insensitive fragment against first and last name
	Search(ctx context.Context, fragment string) ([]Patient, error)
	Create(ctx context.Context, patient *Patient) error
	Update(ctx context.Context, id string, patient *Patient) error
	Delete(ctx context.Context, id string) error
}

// OptometristRepository defines the persistence contract for optometrists
type OptometristRepository interface {
	FindByID(ctx context.Context, id string) (*Optometrist, error)
	FindAll(ctx context.Context) ([]Optometrist, error)
	Create(ctx context.Context, optometrist *Optometrist) error
	Update(ctx context.Context, id string, optometrist *Optometrist) error
	Delete(ctx context.Context, id string) error
}

// UserRepository defines the persistence contract for back-office users
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, id string, user *User) error
	Delete(ctx context.Context, id string) error
}

// AppointmentRepository defines the persistence contract for appointments
type AppointmentRepository interface {
	FindByID(ctx context.Context, id string) (*Appointment, error)
	FindAll(ctx context.Context) ([]Appointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]Appointment, error)
	// FindByDate returns appointments scheduled within the calendar day of the given time
	FindByDate(ctx context.Context, day time.Time) ([]Appointment, error)
	Create(ctx context.Context, appointment *Appointment) error
	Update(ctx context.Context, id string, appointment *Appointment) error
	Delete(ctx context.Context, id string) error
}

// ConsultationRepository defines the persistence contract for consultations
type ConsultationRepository interface {
	FindByID(ctx context.Context, id string) (*Consultation, error)
	FindAll(ctx context.Context) ([]Consultation, error)
	FindByPatient(ctx context.Context, patientID string) ([]Consultation, error)
	Create(ctx context.Context, consultation *Consultation) error
	Update(ctx context.Context, id string, consultation *Consultation) error
	Delete(ctx context.Context, id string) error
}
