package clinic

import (
	"strings"
	"time"

	"github.com/optivista/backend/internal/domain/shared"
)

// TypeTagConsultation is the document type tag for consultations
const TypeTagConsultation = "consultation"

// Consultation represents the clinical outcome of a visit.
//
// Like Appointment, the name fields are denormalized at creation time and
// accepted as stale afterwards.
type Consultation struct {
	ID              string            `json:"id"`
	PatientRef      string            `json:"patientRef"`
	OptometristRef  string            `json:"optometristRef"`
	PatientName     string            `json:"patientName"`
	OptometristName string            `json:"optometristName"`
	Date            time.Time         `json:"date"`
	Symptoms        string            `json:"symptoms"`
	Diagnosis       string            `json:"diagnosis"`
	Prescription    map[string]string `json:"prescription"`
	Notes           string            `json:"notes"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// NewConsultation creates a new consultation record. The prescription map holds
// free-form measurement keys (e.g. sphere/cylinder/axis per eye) that vary by
// examination type. The ID is assigned by the repository on create.
func NewConsultation(patient *Patient, optometrist *Optometrist, date time.Time, symptoms, diagnosis string, prescription map[string]string) (*Consultation, error) {
	if patient == nil || patient.ID == "" {
		return nil, shared.NewDomainError("INVALID_PATIENT", "Patient reference cannot be empty")
	}
	if optometrist == nil || optometrist.ID == "" {
		return nil, shared.NewDomainError("INVALID_OPTOMETRIST", "Optometrist reference cannot be empty")
	}
	if date.IsZero() {
		date = time.Now()
	}
	if prescription == nil {
		prescription = make(map[string]string)
	}

	now := time.Now()
	return &Consultation{
		PatientRef:      patient.ID,
		OptometristRef:  optometrist.ID,
		PatientName:     patient.FullName(),
		OptometristName: optometrist.DisplayName(),
		Date:            date,
		Symptoms:        strings.TrimSpace(symptoms),
		Diagnosis:       strings.TrimSpace(diagnosis),
		Prescription:    prescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// SetNotes updates the consultation notes
func (c *Consultation) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
}

// UpdateDiagnosis replaces the diagnosis and prescription
func (c *Consultation) UpdateDiagnosis(diagnosis string, prescription map[string]string) error {
	if strings.TrimSpace(diagnosis) == "" {
		return shared.NewDomainError("INVALID_DIAGNOSIS", "Diagnosis cannot be empty")
	}
	c.Diagnosis = strings.TrimSpace(diagnosis)
	if prescription != nil {
		c.Prescription = prescription
	}
	c.UpdatedAt = time.Now()
	return nil
}
