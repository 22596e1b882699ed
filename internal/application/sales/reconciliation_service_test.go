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
	"github.com/optivista/backend/internal/infrastructure/docstore"
	"github.com/optivista/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reconcileFixture struct {
	service       *ReconciliationService
	patients      *persistence.PatientRepository
	saleRepo      *persistence.SaleRepository
	notifications *persistence.NotificationRepository
	patientID     string
}

func newReconcileFixture(t *testing.T) *reconcileFixture {
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

	return &reconcileFixture{
		service:       NewReconciliationService(saleRepo, notifications, dispatcher, enricher, log),
		patients:      patients,
		saleRepo:      saleRepo,
		notifications: notifications,
		patientID:     p.ID,
	}
}

func (f *reconcileFixture) readySale(t *testing.T, products ...string) *sales.Sale {
	t.Helper()
	sale, err := sales.NewSale(f.patientID, "opt-1")
	require.NoError(t, err)
	for _, product := range products {
		require.NoError(t, sale.AddItem(product, 1, decimal.NewFromInt(100)))
	}
	require.NoError(t, sale.TransitionTo(sales.SaleStatusPreparing))
	require.NoError(t, sale.TransitionTo(sales.SaleStatusReady))
	require.NoError(t, f.saleRepo.Create(context.Background(), sale))
	return sale
}

func TestReconciliationService_CreatesMissingNotifications(t *testing.T) {
	f := newReconcileFixture(t)
	ctx := context.Background()
	sale := f.readySale(t, "Frame A", "Lens B")

	// One of the two fan-out records already exists. It predates the Product
	// field, so only the message text identifies the item.
	existing, err := domainnotification.New(f.patientID, "jane@example.com", readySubject,
		readyMessage("Jane Doe", "Frame A"))
	require.NoError(t, err)
	existing.SaleRef = sale.ID
	require.NoError(t, f.notifications.Create(ctx, existing))

	result, err := f.service.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SalesChecked)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Skipped)

	all, err := f.notifications.FindBySale(ctx, sale.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReconciliationService_ProductNameSubstringNotShadowed(t *testing.T) {
	f := newReconcileFixture(t)
	ctx := context.Background()
	sale := f.readySale(t, "Frame", "Frame A")

	// Only the "Frame A" record exists. Its message contains "Frame", which
	// must not count as coverage for the "Frame" item.
	existing, err := domainnotification.New(f.patientID, "jane@example.com", readySubject,
		readyMessage("Jane Doe", "Frame A"))
	require.NoError(t, err)
	existing.SaleRef = sale.ID
	existing.Product = "Frame A"
	require.NoError(t, f.notifications.Create(ctx, existing))

	result, err := f.service.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)

	all, err := f.notifications.FindBySale(ctx, sale.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)

	products := []string{all[0].Product, all[1].Product}
	assert.ElementsMatch(t, []string{"Frame", "Frame A"}, products)

	// Idempotent once both records carry their product
	second, err := f.service.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
}

func TestReconciliationService_SecondRunIsIdempotent(t *testing.T) {
	f := newReconcileFixture(t)
	ctx := context.Background()
	f.readySale(t, "Frame A", "Lens B")

	first, err := f.service.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)

	second, err := f.service.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, second.SalesChecked)
	assert.Equal(t, 0, second.Created)
}

func TestReconciliationService_SkipsDanglingPatient(t *testing.T) {
	f := newReconcileFixture(t)
	ctx := context.Background()
	sale := f.readySale(t, "Frame A")
	require.NoError(t, f.patients.Delete(ctx, f.patientID))

	result, err := f.service.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Created)

	all, err := f.notifications.FindBySale(ctx, sale.ID)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReconciliationService_IgnoresNonReadySales(t *testing.T) {
	f := newReconcileFixture(t)
	ctx := context.Background()

	sale, err := sales.NewSale(f.patientID, "opt-1")
	require.NoError(t, err)
	require.NoError(t, sale.AddItem("Frame A", 1, decimal.NewFromInt(100)))
	require.NoError(t, f.saleRepo.Create(ctx, sale))

	result, err := f.service.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.SalesChecked)
	assert.Equal(t, 0, result.Created)
}
