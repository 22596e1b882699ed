package clinic

import (
	"context"
	"errors"

	"github.com/optivista/backend/internal/domain/clinic"
	"github.com/optivista/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Sentinel display names substituted for dangling references. A deleted
// patient must not break the listing that still references it.
const (
	UnknownPatient     = "Unknown Patient"
	UnknownOptometrist = "Unknown Optometrist"
)

// Enricher resolves reference ids into display names at read time. It is
// strictly read-only: resolved values are never written back into the source
// records, which keep the names denormalized at creation time.
type Enricher struct {
	patients     clinic.PatientRepository
	optometrists clinic.OptometristRepository
	log          *zap.Logger
}

// NewEnricher creates a new Enricher
func NewEnricher(patients clinic.PatientRepository, optometrists clinic.OptometristRepository, log *zap.Logger) *Enricher {
	return &Enricher{
		patients:     patients,
		optometrists: optometrists,
		log:          log.Named("enricher"),
	}
}

// PatientName resolves a patient reference to its current display name. Any
// resolution failure, including a transiently unavailable store, degrades to
// the sentinel so that one broken reference cannot fail a whole listing.
func (e *Enricher) PatientName(ctx context.Context, patientRef string) string {
	p, err := e.patients.FindByID(ctx, patientRef)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			e.log.Warn("patient resolution failed", zap.String("ref", patientRef), zap.Error(err))
		}
		return UnknownPatient
	}
	return p.FullName()
}

// OptometristName resolves an optometrist reference to its current display
// name ("Dr. <first> <last>"), or the sentinel
func (e *Enricher) OptometristName(ctx context.Context, optometristRef string) string {
	o, err := e.optometrists.FindByID(ctx, optometristRef)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			e.log.Warn("optometrist resolution failed", zap.String("ref", optometristRef), zap.Error(err))
		}
		return UnknownOptometrist
	}
	return o.DisplayName()
}

// Patient resolves the full patient record, or nil if the reference is
// dangling. Used where more than the name is needed (e.g. the contact
// address for notifications).
func (e *Enricher) Patient(ctx context.Context, patientRef string) *clinic.Patient {
	p, err := e.patients.FindByID(ctx, patientRef)
	if err != nil {
		return nil
	}
	return p
}
