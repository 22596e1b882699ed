package notification

import (
	"context"
	"errors"
	"testing"

	domain "github.com/optivista/backend/internal/domain/notification"
	"github.com/optivista/backend/internal/domain/shared"
	"github.com/optivista/backend/internal/infrastructure/docstore"
	"github.com/optivista/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSender records delivery attempts and can be toggled to fail
type fakeSender struct {
	fail  bool
	calls int
}

func (s *fakeSender) Send(to, subject, body string) error {
	s.calls++
	if s.fail {
		return errors.New("smtp: connection refused")
	}
	return nil
}

func newDispatcherFixture(t *testing.T) (*Dispatcher, *persistence.NotificationRepository, *fakeSender) {
	t.Helper()
	repo := persistence.NewNotificationRepository(docstore.NewMemoryStore())
	sender := &fakeSender{}
	return NewDispatcher(repo, sender, zap.NewNop()), repo, sender
}

func createNotification(t *testing.T, d *Dispatcher) *NotificationResponse {
	t.Helper()
	resp, err := d.Create(context.Background(), CreateNotificationRequest{
		PatientRef: "patient-1",
		Recipient:  "jane@example.com",
		Subject:    "Pickup",
		Message:    "Your frames are ready",
	})
	require.NoError(t, err)
	return resp
}

func TestDispatcher_Create_PersistsPendingBeforeDelivery(t *testing.T) {
	d, repo, sender := newDispatcherFixture(t)
	resp := createNotification(t, d)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Zero(t, sender.calls)

	stored, err := repo.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestDispatcher_Send_Success(t *testing.T) {
	d, repo, sender := newDispatcherFixture(t)
	resp := createNotification(t, d)

	sent, err := d.Send(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "sent", sent.Status)
	assert.NotNil(t, sent.SentAt)
	assert.Equal(t, 1, sender.calls)

	stored, err := repo.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSent, stored.Status)
}

// A delivery failure is data, not an error: the call succeeds and the record
// carries the outcome, staying visible for a manual retry.
func TestDispatcher_Send_FailureRecordedOnRecord(t *testing.T) {
	d, repo, sender := newDispatcherFixture(t)
	resp := createNotification(t, d)
	sender.fail = true

	failed, err := d.Send(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "error", failed.Status)
	assert.Equal(t, "smtp: connection refused", failed.Error)
	assert.Nil(t, failed.SentAt)

	// Manual retry after the transport recovers
	sender.fail = false
	retried, err := d.Send(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "sent", retried.Status)
	assert.Empty(t, retried.Error)
	assert.Equal(t, 2, sender.calls)

	stored, err := repo.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSent, stored.Status)
}

func TestDispatcher_Send_UnknownID(t *testing.T) {
	d, _, sender := newDispatcherFixture(t)

	_, err := d.Send(context.Background(), "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Zero(t, sender.calls)
}

// A dispatcher without a sender still creates records; Send is rejected with a
// typed error instead of dereferencing the missing sender.
func TestDispatcher_Send_NoSenderConfigured(t *testing.T) {
	repo := persistence.NewNotificationRepository(docstore.NewMemoryStore())
	d := NewDispatcher(repo, nil, zap.NewNop())
	resp := createNotification(t, d)

	_, err := d.Send(context.Background(), resp.ID)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "SENDER_UNCONFIGURED", domainErr.Code)

	stored, err := repo.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestDispatcher_ListPending(t *testing.T) {
	d, _, _ := newDispatcherFixture(t)
	ctx := context.Background()

	first := createNotification(t, d)
	createNotification(t, d)

	_, err := d.Send(ctx, first.ID)
	require.NoError(t, err)

	pending, err := d.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
