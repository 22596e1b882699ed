package clinic

import (
	"testing"
	"time"

	"github.com/optivista/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPatient(t *testing.T) *Patient {
	t.Helper()
	p, err := NewPatient("Jane", "Doe", "jane@example.com", "", time.Time{}, "")
	require.NoError(t, err)
	p.ID = "patient-1"
	return p
}

func testOptometrist(t *testing.T) *Optometrist {
	t.Helper()
	o, err := NewOptometrist("Sam", "Reyes", "LIC-100", "", "", "")
	require.NoError(t, err)
	o.ID = "opt-1"
	return o
}

func TestNewAppointment_DenormalizesNames(t *testing.T) {
	at := time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)
	a, err := NewAppointment(testPatient(t), testOptometrist(t), at, " annual check ")
	require.NoError(t, err)

	assert.Equal(t, "patient-1", a.PatientRef)
	assert.Equal(t, "opt-1", a.OptometristRef)
	assert.Equal(t, "Jane Doe", a.PatientName)
	assert.Equal(t, "Dr. Sam Reyes", a.OptometristName)
	assert.Equal(t, "annual check", a.Reason)
	assert.Equal(t, AppointmentStatusScheduled, a.Status)
}

func TestNewAppointment_Validation(t *testing.T) {
	at := time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)

	_, err := NewAppointment(nil, testOptometrist(t), at, "")
	assert.Error(t, err)

	_, err = NewAppointment(testPatient(t), nil, at, "")
	assert.Error(t, err)

	_, err = NewAppointment(testPatient(t), testOptometrist(t), time.Time{}, "")
	assert.Error(t, err)
}

func TestAppointment_Lifecycle(t *testing.T) {
	at := time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)
	a, err := NewAppointment(testPatient(t), testOptometrist(t), at, "")
	require.NoError(t, err)

	require.NoError(t, a.Reschedule(at.Add(24*time.Hour)))
	require.NoError(t, a.Complete("no change in prescription"))
	assert.Equal(t, AppointmentStatusCompleted, a.Status)

	// Completed appointments cannot move again
	assert.ErrorIs(t, a.Reschedule(at), shared.ErrInvalidStateTransition)
	assert.ErrorIs(t, a.Cancel(), shared.ErrInvalidStateTransition)
	assert.ErrorIs(t, a.Complete(""), shared.ErrInvalidStateTransition)
}
