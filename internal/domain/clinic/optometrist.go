package clinic

import (
	"strings"
	"time"

	"github.com/optivista/backend/internal/domain/shared"
)

// TypeTagOptometrist is the document type tag for optometrists
const TypeTagOptometrist = "optometrist"

// Optometrist represents a practitioner employed by the clinic
type Optometrist struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	LicenseNumber string    `json:"licenseNumber"`
	Specialty     string    `json:"specialty"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewOptometrist creates a new optometrist. The ID is assigned by the repository on create.
func NewOptometrist(firstName, lastName, licenseNumber, specialty, email, phone string) (*Optometrist, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if strings.TrimSpace(licenseNumber) == "" {
		return nil, shared.NewDomainError("INVALID_LICENSE", "License number cannot be empty")
	}

	now := time.Now()
	return &Optometrist{
		FirstName:     strings.TrimSpace(firstName),
		LastName:      strings.TrimSpace(lastName),
		LicenseNumber: strings.TrimSpace(licenseNumber),
		Specialty:     strings.TrimSpace(specialty),
		Email:         strings.ToLower(strings.TrimSpace(email)),
		Phone:         strings.TrimSpace(phone),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// DisplayName returns the practitioner's title-prefixed display name
func (o *Optometrist) DisplayName() string {
	return "Dr. " + o.FirstName + " " + o.LastName
}

// UpdateContact updates the optometrist's contact details
func (o *Optometrist) UpdateContact(email, phone string) {
	o.Email = strings.ToLower(strings.TrimSpace(email))
	o.Phone = strings.TrimSpace(phone)
	o.UpdatedAt = time.Now()
}
