package notification

import (
	"context"
	"time"

	"github.com/optivista/backend/internal/domain/notification"
	"github.com/optivista/backend/internal/domain/shared"

	"go.uber.org/zap"
)

// Dispatcher owns the notification lifecycle: it creates records as pending,
// attempts outbound delivery, and writes the outcome back.
type Dispatcher struct {
	repo   notification.Repository
	sender notification.Sender
	log    *zap.Logger
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(repo notification.Repository, sender notification.Sender, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		repo:   repo,
		sender: sender,
		log:    log.Named("notification-dispatcher"),
	}
}

// Create persists a new notification as pending before any delivery attempt,
// so the record exists independently of the delivery outcome.
func (d *Dispatcher) Create(ctx context.Context, req CreateNotificationRequest) (*NotificationResponse, error) {
	n, err := notification.New(req.PatientRef, req.Recipient, req.Subject, req.Message)
	if err != nil {
		return nil, err
	}
	n.SaleRef = req.SaleRef
	n.Product = req.Product

	if err := d.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	d.log.Info("notification created",
		zap.String("id", n.ID),
		zap.String("patient", n.PatientRef),
		zap.String("recipient", n.Recipient))

	resp := ToNotificationResponse(n)
	return &resp, nil
}

// Send attempts delivery of the notification and records the outcome. A
// delivery failure is captured on the record (status=error), not returned as
// an error: the failed notification must stay visible and retryable. Exactly
// one attempt is made per call; retry is a manual re-invocation.
//
// The write-back is a full replace of the record and races with any
// concurrent Send on the same id (last writer wins).
func (d *Dispatcher) Send(ctx context.Context, id string) (*NotificationResponse, error) {
	if d.sender == nil {
		// Entry points that only create records wire no sender
		return nil, shared.NewDomainError("SENDER_UNCONFIGURED", "No outbound sender is configured")
	}

	n, err := d.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if sendErr := d.sender.Send(n.Recipient, n.Subject, n.Message); sendErr != nil {
		n.MarkError(sendErr.Error())
		d.log.Warn("notification delivery failed",
			zap.String("id", n.ID),
			zap.String("recipient", n.Recipient),
			zap.Error(sendErr))
	} else {
		n.MarkSent(time.Now())
		d.log.Info("notification delivered",
			zap.String("id", n.ID),
			zap.String("recipient", n.Recipient))
	}

	if err := d.repo.Update(ctx, n.ID, n); err != nil {
		return nil, err
	}

	resp := ToNotificationResponse(n)
	return &resp, nil
}

// GetByID returns a single notification
func (d *Dispatcher) GetByID(ctx context.Context, id string) (*NotificationResponse, error) {
	n, err := d.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToNotificationResponse(n)
	return &resp, nil
}

// List returns all notifications
func (d *Dispatcher) List(ctx context.Context) ([]NotificationResponse, error) {
	items, err := d.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToNotificationResponses(items), nil
}

// ListByPatient returns all notifications addressed to a patient
func (d *Dispatcher) ListByPatient(ctx context.Context, patientID string) ([]NotificationResponse, error) {
	items, err := d.repo.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return ToNotificationResponses(items), nil
}

// ListPending returns all notifications awaiting delivery
func (d *Dispatcher) ListPending(ctx context.Context) ([]NotificationResponse, error) {
	items, err := d.repo.FindByStatus(ctx, notification.StatusPending)
	if err != nil {
		return nil, err
	}
	return ToNotificationResponses(items), nil
}
