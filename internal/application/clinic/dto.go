package clinic

import (
	"time"

	"github.com/optivista/backend/internal/domain/clinic"
)

// CreatePatientRequest carries the data for a new patient
type CreatePatientRequest struct {
	FirstName   string    `json:"first_name" binding:"required"`
	LastName    string    `json:"last_name" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Phone       string    `json:"phone"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Address     string    `json:"address"`
}

// UpdatePatientRequest carries a full patient update
type UpdatePatientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// PatientResponse is the read projection of a patient
type PatientResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToPatientResponse maps a domain patient to its response projection
func ToPatientResponse(p *clinic.Patient) PatientResponse {
	return PatientResponse{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		FullName:    p.FullName(),
		Email:       p.Email,
		Phone:       p.Phone,
		DateOfBirth: p.DateOfBirth,
		Address:     p.Address,
		CreatedAt:   p.CreatedAt,
	}
}

// CreateOptometristRequest carries the data for a new optometrist
type CreateOptometristRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	LicenseNumber string `json:"license_number" binding:"required"`
	Specialty     string `json:"specialty"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
}

// OptometristResponse is the read projection of an optometrist
type OptometristResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	DisplayName   string    `json:"display_name"`
	LicenseNumber string    `json:"license_number"`
	Specialty     string    `json:"specialty"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToOptometristResponse maps a domain optometrist to its response projection
func ToOptometristResponse(o *clinic.Optometrist) OptometristResponse {
	return OptometristResponse{
		ID:            o.ID,
		FirstName:     o.FirstName,
		LastName:      o.LastName,
		DisplayName:   o.DisplayName(),
		LicenseNumber: o.LicenseNumber,
		Specialty:     o.Specialty,
		Email:         o.Email,
		Phone:         o.Phone,
		CreatedAt:     o.CreatedAt,
	}
}

// CreateAppointmentRequest carries the data for a new appointment
type CreateAppointmentRequest struct {
	PatientRef     string    `json:"patient_ref" binding:"required"`
	OptometristRef string    `json:"optometrist_ref" binding:"required"`
	ScheduledAt    time.Time `json:"scheduled_at" binding:"required"`
	Reason         string    `json:"reason"`
}

// AppointmentResponse is the read projection of an appointment. Patient and
// Optometrist are resolved live by the enrichment layer; PatientName and
// OptometristName are the values denormalized at creation time.
type AppointmentResponse struct {
	ID              string    `json:"id"`
	PatientRef      string    `json:"patient_ref"`
	OptometristRef  string    `json:"optometrist_ref"`
	PatientName     string    `json:"patient_name"`
	OptometristName string    `json:"optometrist_name"`
	Patient         string    `json:"patient"`
	Optometrist     string    `json:"optometrist"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateConsultationRequest carries the data for a new consultation
type CreateConsultationRequest struct {
	PatientRef     string            `json:"patient_ref" binding:"required"`
	OptometristRef string            `json:"optometrist_ref" binding:"required"`
	Date           time.Time         `json:"date"`
	Symptoms       string            `json:"symptoms"`
	Diagnosis      string            `json:"diagnosis"`
	Prescription   map[string]string `json:"prescription"`
}

// ConsultationResponse is the read projection of a consultation, enriched the
// same way as appointments
type ConsultationResponse struct {
	ID              string            `json:"id"`
	PatientRef      string            `json:"patient_ref"`
	OptometristRef  string            `json:"optometrist_ref"`
	PatientName     string            `json:"patient_name"`
	OptometristName string            `json:"optometrist_name"`
	Patient         string            `json:"patient"`
	Optometrist     string            `json:"optometrist"`
	Date            time.Time         `json:"date"`
	Symptoms        string            `json:"symptoms"`
	Diagnosis       string            `json:"diagnosis"`
	Prescription    map[string]string `json:"prescription"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// CreateUserRequest carries the data for a new back-office user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,user_role"`
}

// UserResponse is the read projection of a user. The password hash is never
// exposed.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse maps a domain user to its response projection
func ToUserResponse(u *clinic.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
