package notification

import (
	"time"

	"github.com/optivista/backend/internal/domain/notification"
)

// CreateNotificationRequest carries the data for a new notification
type CreateNotificationRequest struct {
	PatientRef string `json:"patient_ref" binding:"required"`
	SaleRef    string `json:"sale_ref"`
	Product    string `json:"product"`
	Recipient  string `json:"recipient" binding:"required,email"`
	Subject    string `json:"subject"`
	Message    string `json:"message" binding:"required"`
}

// NotificationResponse is the read projection of a notification
type NotificationResponse struct {
	ID         string     `json:"id"`
	PatientRef string     `json:"patient_ref"`
	SaleRef    string     `json:"sale_ref,omitempty"`
	Product    string     `json:"product,omitempty"`
	Recipient  string     `json:"recipient"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
	Error      string     `json:"error,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ToNotificationResponse maps a domain notification to its response projection
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		PatientRef: n.PatientRef,
		SaleRef:    n.SaleRef,
		Product:    n.Product,
		Recipient:  n.Recipient,
		Subject:    n.Subject,
		Message:    n.Message,
		Status:     string(n.Status),
		SentAt:     n.SentAt,
		Error:      n.Error,
		CreatedAt:  n.CreatedAt,
	}
}

// ToNotificationResponses maps a slice of domain notifications
func ToNotificationResponses(items []notification.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(items))
	for i := range items {
		out[i] = ToNotificationResponse(&items[i])
	}
	return out
}
