package sales

import (
	"context"

	appclinic "github.com/optivista/backend/internal/application/clinic"
	"github.com/optivista/backend/internal/domain/sales"
	"github.com/optivista/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ReadyHook is a post-commit side effect invoked after a sale's transition
// into ready has been persisted. Hooks run outside any transaction: a crash
// between the sale write and a hook leaves the sale ready with the side
// effect missing. That gap is reconciled by ReconciliationService, never by
// the transition path itself.
type ReadyHook func(ctx context.Context, sale *sales.Sale) error

// SaleService owns the sale lifecycle: creation, line item changes with total
// recomputation, and status transitions with their post-commit fan-out.
type SaleService struct {
	repo     sales.SaleRepository
	enricher *appclinic.Enricher
	hooks    []ReadyHook
	log      *zap.Logger
}

// NewSaleService creates a new SaleService
func NewSaleService(repo sales.SaleRepository, enricher *appclinic.Enricher, log *zap.Logger) *SaleService {
	return &SaleService{
		repo:     repo,
		enricher: enricher,
		log:      log.Named("sale-service"),
	}
}

// RegisterReadyHook appends a post-commit hook for the transition into ready
func (s *SaleService) RegisterReadyHook(hook ReadyHook) {
	s.hooks = append(s.hooks, hook)
}

// Create creates a new pending sale with the given line items. The total is
// computed from the items before persisting.
func (s *SaleService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	sale, err := sales.NewSale(req.PatientRef, req.OptometristRef)
	if err != nil {
		return nil, err
	}
	for _, item := range req.Items {
		if err := sale.AddItem(item.ProductName, item.Quantity, item.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.log.Info("sale created",
		zap.String("id", sale.ID),
		zap.String("patient", sale.PatientRef),
		zap.Int("items", len(sale.Items)))

	return s.respond(ctx, sale), nil
}

// AddItem appends a line item to an existing sale and recomputes the total.
// Rejected with InvalidStateTransition once the sale is delivered or
// cancelled; the stored sale is left untouched in that case.
func (s *SaleService) AddItem(ctx context.Context, saleID string, item SaleItemRequest) (*SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if err := sale.AddItem(item.ProductName, item.Quantity, item.UnitPrice); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, sale.ID, sale); err != nil {
		return nil, err
	}
	return s.respond(ctx, sale), nil
}

// RemoveItem removes the line item at the given index and recomputes the total
func (s *SaleService) RemoveItem(ctx context.Context, saleID string, index int) (*SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if err := sale.RemoveItem(index); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, sale.ID, sale); err != nil {
		return nil, err
	}
	return s.respond(ctx, sale), nil
}

// Transition moves the sale to the target status. On the transition into
// ready, the registered hooks run after the sale write has committed; hook
// failures are logged on their own error channel and never propagated, since
// no transaction spans the sale write and the side effects.
func (s *SaleService) Transition(ctx context.Context, saleID string, target sales.SaleStatus) (*SaleResponse, error) {
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown sale status")
	}

	sale, err := s.repo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if err := sale.TransitionTo(target); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, sale.ID, sale); err != nil {
		return nil, err
	}

	s.log.Info("sale transitioned",
		zap.String("id", sale.ID),
		zap.String("status", sale.Status.String()))

	if target == sales.SaleStatusReady {
		for _, hook := range s.hooks {
			if err := hook(ctx, sale); err != nil {
				s.log.Error("ready hook failed",
					zap.String("sale", sale.ID),
					zap.Error(err))
			}
		}
	}

	return s.respond(ctx, sale), nil
}

// GetByID returns a single enriched sale
func (s *SaleService) GetByID(ctx context.Context, id string) (*SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, sale), nil
}

// List returns all sales, enriched
func (s *SaleService) List(ctx context.Context) ([]SaleResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.respondAll(ctx, items), nil
}

// ListByPatient returns all sales for a patient, enriched
func (s *SaleService) ListByPatient(ctx context.Context, patientID string) ([]SaleResponse, error) {
	items, err := s.repo.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return s.respondAll(ctx, items), nil
}

func (s *SaleService) respond(ctx context.Context, sale *sales.Sale) *SaleResponse {
	resp := ToSaleResponse(sale)
	resp.Patient = s.enricher.PatientName(ctx, sale.PatientRef)
	resp.Optometrist = s.enricher.OptometristName(ctx, sale.OptometristRef)
	return &resp
}

func (s *SaleService) respondAll(ctx context.Context, items []sales.Sale) []SaleResponse {
	out := make([]SaleResponse, len(items))
	for i := range items {
		out[i] = *s.respond(ctx, &items[i])
	}
	return out
}
