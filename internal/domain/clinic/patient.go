package clinic

import (
	"strings"
	"time"

	"github.com/optivista/backend/internal/domain/shared"
)

// TypeTagPatient is the document type tag for patients
const TypeTagPatient = "patient"

// Patient represents a registered patient of the clinic
type Patient struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewPatient creates a new patient. The ID is assigned by the repository on create.
func NewPatient(firstName, lastName, email, phone string, dateOfBirth time.Time, address string) (*Patient, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "First name cannot be empty")
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Last name cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}

	now := time.Now()
	return &Patient{
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		Email:       strings.ToLower(strings.TrimSpace(email)),
		Phone:       strings.TrimSpace(phone),
		DateOfBirth: dateOfBirth,
		Address:     address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// FullName returns the patient's display name
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// UpdateContact updates the patient's contact details
func (p *Patient) UpdateContact(email, phone, address string) error {
	if strings.TrimSpace(email) == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	p.Email = strings.ToLower(strings.TrimSpace(email))
	p.Phone = strings.TrimSpace(phone)
	p.Address = address
	p.UpdatedAt = time.Now()
	return nil
}

// Rename updates the patient's name
func (p *Patient) Rename(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	p.FirstName = strings.TrimSpace(firstName)
	p.LastName = strings.TrimSpace(lastName)
	p.UpdatedAt = time.Now()
	return nil
}
