package clinic

import (
	"context"

	"github.com/optivista/backend/internal/domain/clinic"
	"go.uber.org/zap"
)

// OptometristService handles optometrist record operations
type OptometristService struct {
	repo clinic.OptometristRepository
	log  *zap.Logger
}

// NewOptometristService creates a new OptometristService
func NewOptometristService(repo clinic.OptometristRepository, log *zap.Logger) *OptometristService {
	return &OptometristService{repo: repo, log: log.Named("optometrist-service")}
}

// Create registers a new optometrist
func (s *OptometristService) Create(ctx context.Context, req CreateOptometristRequest) (*OptometristResponse, error) {
	optometrist, err := clinic.NewOptometrist(req.FirstName, req.LastName, req.LicenseNumber, req.Specialty, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, optometrist); err != nil {
		return nil, err
	}
	s.log.Info("optometrist created", zap.String("id", optometrist.ID))
	resp := ToOptometristResponse(optometrist)
	return &resp, nil
}

// GetByID returns a single optometrist
func (s *OptometristService) GetByID(ctx context.Context, id string) (*OptometristResponse, error) {
	optometrist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOptometristResponse(optometrist)
	return &resp, nil
}

// List returns all optometrists
func (s *OptometristService) List(ctx context.Context) ([]OptometristResponse, error) {
	optometrists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]OptometristResponse, len(optometrists))
	for i := range optometrists {
		out[i] = ToOptometristResponse(&optometrists[i])
	}
	return out, nil
}

// Update applies contact changes to an existing optometrist
func (s *OptometristService) Update(ctx context.Context, id string, email, phone string) (*OptometristResponse, error) {
	optometrist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	optometrist.UpdateContact(email, phone)
	if err := s.repo.Update(ctx, id, optometrist); err != nil {
		return nil, err
	}
	resp := ToOptometristResponse(optometrist)
	return &resp, nil
}

// Delete removes an optometrist record
func (s *OptometristService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
