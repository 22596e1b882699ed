package sales

import (
	"strings"
	"time"

	"github.com/optivista/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TypeTagSale is the document type tag for sales
const TypeTagSale = "sale"

// SaleStatus represents the fulfillment status of a sale
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusPreparing SaleStatus = "preparing"
	SaleStatusReady     SaleStatus = "ready"
	SaleStatusDelivered SaleStatus = "delivered"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// IsValid checks if the status is a known SaleStatus
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusPending, SaleStatusPreparing, SaleStatusReady, SaleStatusDelivered, SaleStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of SaleStatus
func (s SaleStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Cancellation is allowed from any non-delivered state.
func (s SaleStatus) CanTransitionTo(target SaleStatus) bool {
	switch s {
	case SaleStatusPending:
		return target == SaleStatusPreparing || target == SaleStatusCancelled
	case SaleStatusPreparing:
		return target == SaleStatusReady || target == SaleStatusCancelled
	case SaleStatusReady:
		return target == SaleStatusDelivered || target == SaleStatusCancelled
	case SaleStatusDelivered, SaleStatusCancelled:
		return false // Terminal states
	}
	return false
}

// LineItem represents one product entry within a sale
type LineItem struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewLineItem creates a validated line item
func NewLineItem(productName string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	if strings.TrimSpace(productName) == "" {
		return LineItem{}, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity <= 0 {
		return LineItem{}, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return LineItem{}, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	return LineItem{
		ProductName: strings.TrimSpace(productName),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Sale represents an order moving through its fulfillment lifecycle.
//
// TotalAmount is always recomputed from the line items; it is never set
// directly.
type Sale struct {
	ID             string     `json:"id"`
	PatientRef     string     `json:"patientRef"`
	OptometristRef string     `json:"optometristRef"`
	Items          []LineItem `json:"items"`
	// TotalAmount is the sum of quantity x unitPrice over Items
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      SaleStatus      `json:"status"`
	ReadyAt     *time.Time      `json:"readyAt,omitempty"`
	DeliveredAt *time.Time      `json:"deliveredAt,omitempty"`
	CancelledAt *time.Time      `json:"cancelledAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewSale creates a new pending sale. The ID is assigned by the repository on
// create.
func NewSale(patientRef, optometristRef string) (*Sale, error) {
	if patientRef == "" {
		return nil, shared.NewDomainError("INVALID_PATIENT", "Patient reference cannot be empty")
	}
	if optometristRef == "" {
		return nil, shared.NewDomainError("INVALID_OPTOMETRIST", "Optometrist reference cannot be empty")
	}

	now := time.Now()
	return &Sale{
		PatientRef:     patientRef,
		OptometristRef: optometristRef,
		Items:          make([]LineItem, 0),
		TotalAmount:    decimal.Zero,
		Status:         SaleStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// AddItem appends a line item and recomputes the total. Rejected once the sale
// has been delivered or cancelled.
func (s *Sale) AddItem(productName string, quantity int, unitPrice decimal.Decimal) error {
	if s.Status == SaleStatusDelivered || s.Status == SaleStatusCancelled {
		return shared.ErrInvalidStateTransition
	}
	item, err := NewLineItem(productName, quantity, unitPrice)
	if err != nil {
		return err
	}
	s.Items = append(s.Items, item)
	s.recalculateTotal()
	s.UpdatedAt = time.Now()
	return nil
}

// RemoveItem removes the line item at the given index and recomputes the total
func (s *Sale) RemoveItem(index int) error {
	if s.Status == SaleStatusDelivered || s.Status == SaleStatusCancelled {
		return shared.ErrInvalidStateTransition
	}
	if index < 0 || index >= len(s.Items) {
		return shared.NewDomainError("ITEM_NOT_FOUND", "Line item not found")
	}
	s.Items = append(s.Items[:index], s.Items[index+1:]...)
	s.recalculateTotal()
	s.UpdatedAt = time.Now()
	return nil
}

// TransitionTo moves the sale to the target status if the lifecycle allows it
func (s *Sale) TransitionTo(target SaleStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown sale status")
	}
	if !s.Status.CanTransitionTo(target) {
		return shared.ErrInvalidStateTransition
	}

	now := time.Now()
	s.Status = target
	switch target {
	case SaleStatusReady:
		s.ReadyAt = &now
	case SaleStatusDelivered:
		s.DeliveredAt = &now
	case SaleStatusCancelled:
		s.CancelledAt = &now
	}
	s.UpdatedAt = now
	return nil
}

// DistinctProductNames returns the product names of the line items, first
// occurrence order, without duplicates. Used for the per-item notification
// fan-out on the transition into ready.
func (s *Sale) DistinctProductNames() []string {
	seen := make(map[string]struct{}, len(s.Items))
	names := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		if _, ok := seen[item.ProductName]; ok {
			continue
		}
		seen[item.ProductName] = struct{}{}
		names = append(names, item.ProductName)
	}
	return names
}

func (s *Sale) recalculateTotal() {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Amount)
	}
	s.TotalAmount = total
}
