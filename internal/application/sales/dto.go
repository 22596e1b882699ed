package sales

import (
	"time"

	"github.com/optivista/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one line item within a create/add request
type SaleItemRequest struct {
	ProductName string          `json:"product_name" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest carries the data for a new sale
type CreateSaleRequest struct {
	PatientRef     string            `json:"patient_ref" binding:"required"`
	OptometristRef string            `json:"optometrist_ref" binding:"required"`
	Items          []SaleItemRequest `json:"items"`
}

// TransitionRequest names the target lifecycle status
type TransitionRequest struct {
	Status string `json:"status" binding:"required,sale_status"`
}

// SaleItemResponse is the read projection of a line item
type SaleItemResponse struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// SaleResponse is the read projection of a sale. Patient and Optometrist are
// resolved display names filled in by the enrichment step; they fall back to
// sentinel placeholders when a reference is dangling.
type SaleResponse struct {
	ID             string             `json:"id"`
	PatientRef     string             `json:"patient_ref"`
	OptometristRef string             `json:"optometrist_ref"`
	Patient        string             `json:"patient,omitempty"`
	Optometrist    string             `json:"optometrist,omitempty"`
	Items          []SaleItemResponse `json:"items"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	Status         string             `json:"status"`
	ReadyAt        *time.Time         `json:"ready_at,omitempty"`
	DeliveredAt    *time.Time         `json:"delivered_at,omitempty"`
	CancelledAt    *time.Time         `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// ToSaleResponse maps a domain sale to its response projection
func ToSaleResponse(s *sales.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		}
	}
	return SaleResponse{
		ID:             s.ID,
		PatientRef:     s.PatientRef,
		OptometristRef: s.OptometristRef,
		Items:          items,
		TotalAmount:    s.TotalAmount,
		Status:         s.Status.String(),
		ReadyAt:        s.ReadyAt,
		DeliveredAt:    s.DeliveredAt,
		CancelledAt:    s.CancelledAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
