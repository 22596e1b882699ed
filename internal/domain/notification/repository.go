package notification

import "context"

// Repository defines the persistence contract for notifications
type Repository interface {
	FindByID(ctx context.Context, id string) (*Notification, error)
	FindAll(ctx context.Context) ([]Notification, error)
	FindByPatient(ctx context.Context, patientID string) ([]Notification, error)
	FindBySale(ctx context.Context, saleID string) ([]Notification, error)
	FindByStatus(ctx context.Context, status Status) ([]Notification, error)
	Create(ctx context.Context, n *Notification) error
	Update(ctx context.Context, id string, n *Notification) error
	Delete(ctx context.Context, id string) error
}

// Sender is the outbound transport collaborator. Implementations deliver the
// message to a fixed transport endpoint; configuration is supplied externally.
type Sender interface {
	Send(to, subject, body string) error
}
