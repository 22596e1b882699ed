package persistence

import (
	"context"

	"github.com/optivista/backend/internal/domain/notification"
	"github.com/optivista/backend/internal/infrastructure/docstore"
)

// NotificationRepository implements notification.Repository over the document store
type NotificationRepository struct {
	docRepository[notification.Notification]
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(store docstore.Store) *NotificationRepository {
	return &NotificationRepository{
		docRepository: newDocRepository(store, notification.TypeTagNotification, func(n *notification.Notification) *string { return &n.ID }),
	}
}

// FindByID finds a notification by id
func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*notification.Notification, error) {
	return r.findByID(ctx, id)
}

// FindAll returns all notifications
func (r *NotificationRepository) FindAll(ctx context.Context) ([]notification.Notification, error) {
	return r.query(ctx, nil)
}

// FindByPatient returns all notifications addressed to the given patient
func (r *NotificationRepository) FindByPatient(ctx context.Context, patientID string) ([]notification.Notification, error) {
	return r.query(ctx, func(n *notification.Notification) bool { return n.PatientRef == patientID })
}

// FindBySale returns all notifications produced by the given sale
func (r *NotificationRepository) FindBySale(ctx context.Context, saleID string) ([]notification.Notification, error) {
	return r.query(ctx, func(n *notification.Notification) bool { return n.SaleRef == saleID })
}

// FindByStatus returns all notifications in the given delivery status
func (r *NotificationRepository) FindByStatus(ctx context.Context, status notification.Status) ([]notification.Notification, error) {
	return r.query(ctx, func(n *notification.Notification) bool { return n.Status == status })
}

// Create persists a new notification, assigning its id
func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	return r.create(ctx, n)
}

// Update replaces the stored notification document
func (r *NotificationRepository) Update(ctx context.Context, id string, n *notification.Notification) error {
	return r.update(ctx, id, n)
}

// Delete removes the notification document
func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
