package sales

import (
	"context"
	"testing"
	"time"

	appclinic "github.com/optivista/backend/internal/application/clinic"
	appnotification "github.com/optivista/backend/internal/application/notification"
	"github.com/optivista/backend/internal/domain/clinic"
	domainnotification "github.com/optivista/backend/internal/domain/notification"
	"github.com/optivista/backend/internal/domain/sales"
	"github.com/optivista/backend/internal/domain/shared"
	"github.com/optivista/backend/internal/infrastructure/docstore"
	"github.com/optivista/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type saleFixture struct {
	service       *SaleService
	patients      *persistence.PatientRepository
	saleRepo      *persistence.SaleRepository
	notifications *persistence.NotificationRepository
	patientID     string
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()
	store := docstore.NewMemoryStore()
	log := zap.NewNop()

	patients := persistence.NewPatientRepository(store)
	optometrists := persistence.NewOptometristRepository(store)
	saleRepo := persistence.NewSaleRepository(store)
	notifications := persistence.NewNotificationRepository(store)

	p, err := clinic.NewPatient("Jane", "Doe", "jane@example.com", "", time.Time{}, "")
	require.NoError(t, err)
	require.NoError(t, patients.Create(context.Background(), p))

	enricher := appclinic.NewEnricher(patients, optometrists, log)
	dispatcher := appnotification.NewDispatcher(notifications, nil, log)

	service := NewSaleService(saleRepo, enricher, log)
	service.RegisterReadyHook(NewNotificationFanout(dispatcher, enricher, log))

	return &saleFixture{
		service:       service,
		patients:      patients,
		saleRepo:      saleRepo,
		notifications: notifications,
		patientID:     p.ID,
	}
}

func (f *saleFixture) createSale(t *testing.T) *SaleResponse {
	t.Helper()
	resp, err := f.service.Create(context.Background(), CreateSaleRequest{
		PatientRef:     f.patientID,
		OptometristRef: "opt-1",
		Items: []SaleItemRequest{
			{ProductName: "Frame A", Quantity: 1, UnitPrice: decimal.RequireFromString("150.00")},
			{ProductName: "Lens B", Quantity: 2, UnitPrice: decimal.RequireFromString("45.00")},
		},
	})
	require.NoError(t, err)
	return resp
}

func TestSaleService_Create_ComputesTotal(t *testing.T) {
	f := newSaleFixture(t)
	resp := f.createSale(t)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("240.00")))
	assert.Equal(t, "Jane Doe", resp.Patient)
}

func TestSaleService_Transition_ReadyFansOutNotifications(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()
	resp := f.createSale(t)

	_, err := f.service.Transition(ctx, resp.ID, sales.SaleStatusPreparing)
	require.NoError(t, err)
	ready, err := f.service.Transition(ctx, resp.ID, sales.SaleStatusReady)
	require.NoError(t, err)
	require.NotNil(t, ready.ReadyAt)

	created, err := f.notifications.FindBySale(ctx, resp.ID)
	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, n := range created {
		assert.Equal(t, domainnotification.StatusPending, n.Status)
		assert.Equal(t, "jane@example.com", n.Recipient)
		assert.Equal(t, f.patientID, n.PatientRef)
		assert.Contains(t, n.Message, "Jane Doe")
	}
}

func TestSaleService_Transition_DuplicateItemsFanOutOnce(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()

	resp, err := f.service.Create(ctx, CreateSaleRequest{
		PatientRef:     f.patientID,
		OptometristRef: "opt-1",
		Items: []SaleItemRequest{
			{ProductName: "Frame A", Quantity: 1, UnitPrice: decimal.NewFromInt(150)},
			{ProductName: "Frame A", Quantity: 1, UnitPrice: decimal.NewFromInt(150)},
		},
	})
	require.NoError(t, err)

	_, err = f.service.Transition(ctx, resp.ID, sales.SaleStatusPreparing)
	require.NoError(t, err)
	_, err = f.service.Transition(ctx, resp.ID, sales.SaleStatusReady)
	require.NoError(t, err)

	created, err := f.notifications.FindBySale(ctx, resp.ID)
	require.NoError(t, err)
	assert.Len(t, created, 1)
}

func TestSaleService_Transition_HookFailureDoesNotFailTransition(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()
	resp := f.createSale(t)

	// Drop the patient so the fan-out has nobody to address
	require.NoError(t, f.patients.Delete(ctx, f.patientID))

	_, err := f.service.Transition(ctx, resp.ID, sales.SaleStatusPreparing)
	require.NoError(t, err)
	ready, err := f.service.Transition(ctx, resp.ID, sales.SaleStatusReady)
	require.NoError(t, err)
	assert.Equal(t, "ready", ready.Status)
	assert.Equal(t, appclinic.UnknownPatient, ready.Patient)

	created, err := f.notifications.FindBySale(ctx, resp.ID)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestSaleService_Transition_InvalidRejected(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()
	resp := f.createSale(t)

	_, err := f.service.Transition(ctx, resp.ID, sales.SaleStatusDelivered)
	assert.ErrorIs(t, err, shared.ErrInvalidStateTransition)

	_, err = f.service.Transition(ctx, resp.ID, sales.SaleStatus("bogus"))
	assert.Error(t, err)

	stored, err := f.saleRepo.FindByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, sales.SaleStatusPending, stored.Status)
}

func TestSaleService_AddItem_RejectedOnceDelivered(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()
	resp := f.createSale(t)

	for _, target := range []sales.SaleStatus{sales.SaleStatusPreparing, sales.SaleStatusReady, sales.SaleStatusDelivered} {
		_, err := f.service.Transition(ctx, resp.ID, target)
		require.NoError(t, err)
	}

	_, err := f.service.AddItem(ctx, resp.ID, SaleItemRequest{
		ProductName: "Solution C", Quantity: 1, UnitPrice: decimal.NewFromInt(12),
	})
	assert.ErrorIs(t, err, shared.ErrInvalidStateTransition)

	stored, err := f.saleRepo.FindByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
	assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("240.00")))
}

func TestSaleService_RemoveItem(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()
	resp := f.createSale(t)

	updated, err := f.service.RemoveItem(ctx, resp.ID, 0)
	require.NoError(t, err)
	assert.Len(t, updated.Items, 1)
	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("90.00")))
}
