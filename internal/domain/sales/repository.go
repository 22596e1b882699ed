package sales

import "context"

// SaleRepository defines the persistence contract for sales
type SaleRepository interface {
	FindByID(ctx context.Context, id string) (*Sale, error)
	FindAll(ctx context.Context) ([]Sale, error)
	FindByPatient(ctx context.Context, patientID string) ([]Sale, error)
	FindByStatus(ctx context.Context, status SaleStatus) ([]Sale, error)
	Create(ctx context.Context, sale *Sale) error
	Update(ctx context.Context, id string, sale *Sale) error
	Delete(ctx context.Context, id string) error
}
