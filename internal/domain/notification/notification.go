package notification

import (
	"strings"
	"time"

	"github.com/optivista/backend/internal/domain/shared"
)

// TypeTagNotification is the document type tag for notifications
const TypeTagNotification = "notification"

// Status represents the delivery status of a notification
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusError   Status = "error"
)

// Notification represents an outbound message to a patient.
//
// A notification is always persisted as pending before any delivery attempt,
// so it has a durable existence independent of the delivery outcome. Delivery
// failures are captured on the record rather than surfaced to the caller.
type Notification struct {
	ID         string `json:"id"`
	PatientRef string `json:"patientRef"`
	// SaleRef links the notification to the sale whose transition produced it.
	// Empty for notifications created outside the sale fan-out.
	SaleRef string `json:"saleRef,omitempty"`
	// Product names the line item the notification is about. The
	// reconciliation sweep matches on it exactly, so it must never be derived
	// from the message text.
	Product   string     `json:"product,omitempty"`
	Recipient string     `json:"recipientAddress"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Status    Status     `json:"status"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// New creates a new pending notification. The ID is assigned by the repository
// on create.
func New(patientRef, recipient, subject, message string) (*Notification, error) {
	if patientRef == "" {
		return nil, shared.NewDomainError("INVALID_PATIENT", "Patient reference cannot be empty")
	}
	if strings.TrimSpace(recipient) == "" {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Recipient address cannot be empty")
	}
	if strings.TrimSpace(message) == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Message cannot be empty")
	}

	now := time.Now()
	return &Notification{
		PatientRef: patientRef,
		Recipient:  strings.TrimSpace(recipient),
		Subject:    strings.TrimSpace(subject),
		Message:    message,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// MarkSent records a successful delivery. The first success wins: a re-send of
// an already sent notification never rewrites SentAt.
func (n *Notification) MarkSent(at time.Time) {
	if n.Status != StatusSent {
		n.SentAt = &at
	}
	n.Status = StatusSent
	n.Error = ""
	n.UpdatedAt = time.Now()
}

// MarkError records a failed delivery attempt with the transport error text
func (n *Notification) MarkError(message string) {
	n.Status = StatusError
	n.Error = message
	n.UpdatedAt = time.Now()
}
