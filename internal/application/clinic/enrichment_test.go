package clinic

import (
	"context"
	"testing"
	"time"

	"github.com/optivista/backend/internal/domain/clinic"
	"github.com/optivista/backend/internal/infrastructure/docstore"
	"github.com/optivista/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEnricherFixture(t *testing.T) (*Enricher, *docstore.MemoryStore, string, string) {
	t.Helper()
	store := docstore.NewMemoryStore()
	patients := persistence.NewPatientRepository(store)
	optometrists := persistence.NewOptometristRepository(store)
	ctx := context.Background()

	p, err := clinic.NewPatient("Jane", "Doe", "jane@example.com", "", time.Time{}, "")
	require.NoError(t, err)
	require.NoError(t, patients.Create(ctx, p))

	o, err := clinic.NewOptometrist("Sam", "Reyes", "LIC-100", "", "", "")
	require.NoError(t, err)
	require.NoError(t, optometrists.Create(ctx, o))

	return NewEnricher(patients, optometrists, zap.NewNop()), store, p.ID, o.ID
}

func TestEnricher_ResolvesNames(t *testing.T) {
	e, _, patientID, optID := newEnricherFixture(t)
	ctx := context.Background()

	assert.Equal(t, "Jane Doe", e.PatientName(ctx, patientID))
	assert.Equal(t, "Dr. Sam Reyes", e.OptometristName(ctx, optID))

	p := e.Patient(ctx, patientID)
	require.NotNil(t, p)
	assert.Equal(t, "jane@example.com", p.Email)
}

func TestEnricher_DanglingReferenceDegradesToSentinel(t *testing.T) {
	e, _, _, _ := newEnricherFixture(t)
	ctx := context.Background()

	assert.Equal(t, UnknownPatient, e.PatientName(ctx, "deleted-patient"))
	assert.Equal(t, UnknownOptometrist, e.OptometristName(ctx, "deleted-opt"))
	assert.Nil(t, e.Patient(ctx, "deleted-patient"))
}

// A transiently unavailable store also degrades to the sentinel: one broken
// lookup must not fail the listing that triggered it.
func TestEnricher_StoreFailureDegradesToSentinel(t *testing.T) {
	e, store, patientID, optID := newEnricherFixture(t)
	ctx := context.Background()
	store.SetUnavailable(true)

	assert.Equal(t, UnknownPatient, e.PatientName(ctx, patientID))
	assert.Equal(t, UnknownOptometrist, e.OptometristName(ctx, optID))
}
