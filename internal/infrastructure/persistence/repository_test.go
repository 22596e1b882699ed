package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/optivista/backend/internal/domain/clinic"
	"github.com/optivista/backend/internal/domain/sales"
	"github.com/optivista/backend/internal/domain/shared"
	"github.com/optivista/backend/internal/infrastructure/docstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatient(t *testing.T, first, last string) *clinic.Patient {
	t.Helper()
	p, err := clinic.NewPatient(first, last, first+"@example.com", "", time.Time{}, "")
	require.NoError(t, err)
	return p
}

func TestPatientRepository_CreateAssignsID(t *testing.T) {
	repo := NewPatientRepository(docstore.NewMemoryStore())
	ctx := context.Background()

	p := newPatient(t, "Jane", "Doe")
	p.ID = "caller-chosen-id"
	require.NoError(t, repo.Create(ctx, p))

	// Caller-supplied ids are never trusted
	assert.NotEqual(t, "caller-chosen-id", p.ID)
	assert.NotEmpty(t, p.ID)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
}

func TestPatientRepository_RoundTrip(t *testing.T) {
	repo := NewPatientRepository(docstore.NewMemoryStore())
	ctx := context.Background()

	p := newPatient(t, "Jane", "Doe")
	require.NoError(t, repo.Create(ctx, p))

	p.Phone = "555-0101"
	require.NoError(t, repo.Update(ctx, p.ID, p))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-0101", got.Phone)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPatientRepository_Search(t *testing.T) {
	repo := NewPatientRepository(docstore.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPatient(t, "Jane", "Doe")))
	require.NoError(t, repo.Create(ctx, newPatient(t, "John", "Smith")))
	require.NoError(t, repo.Create(ctx, newPatient(t, "Janet", "Brown")))

	results, err := repo.Search(ctx, "jan")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = repo.Search(ctx, "SMITH")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "John", results[0].FirstName)

	// Blank fragment falls back to the full listing
	results, err = repo.Search(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

// Every repository reads through the shared keyspace but must only ever see
// documents of its own kind.
func TestRepositories_TypeTagIsolation(t *testing.T) {
	store := docstore.NewMemoryStore()
	patients := NewPatientRepository(store)
	saleRepo := NewSaleRepository(store)
	ctx := context.Background()

	p := newPatient(t, "Jane", "Doe")
	require.NoError(t, patients.Create(ctx, p))

	sale, err := sales.NewSale("patient-1", "opt-1")
	require.NoError(t, err)
	require.NoError(t, sale.AddItem("Frame A", 1, decimal.NewFromInt(150)))
	require.NoError(t, saleRepo.Create(ctx, sale))

	// A patient id is a miss for the sale repository, and vice versa
	_, err = saleRepo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = patients.FindByID(ctx, sale.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	all, err := patients.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	allSales, err := saleRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allSales, 1)
}

func TestSaleRepository_FindByStatusAndPatient(t *testing.T) {
	repo := NewSaleRepository(docstore.NewMemoryStore())
	ctx := context.Background()

	s1, err := sales.NewSale("patient-1", "opt-1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, s1))

	s2, err := sales.NewSale("patient-2", "opt-1")
	require.NoError(t, err)
	require.NoError(t, s2.TransitionTo(sales.SaleStatusPreparing))
	require.NoError(t, s2.TransitionTo(sales.SaleStatusReady))
	require.NoError(t, repo.Create(ctx, s2))

	ready, err := repo.FindByStatus(ctx, sales.SaleStatusReady)
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, s2.ID, ready[0].ID)

	byPatient, err := repo.FindByPatient(ctx, "patient-1")
	require.NoError(t, err)
	require.Len(t, byPatient, 1)
	assert.Equal(t, s1.ID, byPatient[0].ID)
}

func TestRepository_StoreUnavailable(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewPatientRepository(store)
	ctx := context.Background()

	store.SetUnavailable(true)
	_, err := repo.FindAll(ctx)
	assert.ErrorIs(t, err, shared.ErrStoreUnavailable)

	err = repo.Create(ctx, newPatient(t, "Jane", "Doe"))
	assert.ErrorIs(t, err, shared.ErrStoreUnavailable)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(docstore.NewMemoryStore())
	ctx := context.Background()

	u1, err := clinic.NewUser("reception1", "s3cret-pass", clinic.UserRoleReception)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u1))

	u2, err := clinic.NewUser("reception1", "other-pass", clinic.UserRoleReception)
	require.NoError(t, err)
	err = repo.Create(ctx, u2)
	assert.ErrorIs(t, err, shared.ErrConflict)

	found, err := repo.FindByUsername(ctx, "reception1")
	require.NoError(t, err)
	assert.Equal(t, u1.ID, found.ID)
}
