package report

import (
	"context"
	"sync"
	"time"

	"github.com/optivista/backend/internal/domain/catalog"
	"github.com/optivista/backend/internal/domain/clinic"
	"github.com/optivista/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DashboardMetrics is the aggregate summary view across entity kinds
type DashboardMetrics struct {
	Patients          int             `json:"patients"`
	Optometrists      int             `json:"optometrists"`
	AppointmentsToday int             `json:"appointments_today"`
	SalesTotal        int             `json:"sales_total"`
	SalesPending      int             `json:"sales_pending"`
	Revenue           decimal.Decimal `json:"revenue"`
	LowStockItems     int             `json:"low_stock_items"`
	ComputedAt        time.Time       `json:"computed_at"`
}

// MetricsCache caches a computed dashboard snapshot for a short TTL
type MetricsCache interface {
	Get(ctx context.Context) (*DashboardMetrics, bool)
	Set(ctx context.Context, metrics *DashboardMetrics)
}

// LowStockThreshold is the stock level at or below which an item counts as low
const LowStockThreshold = 5

// DashboardService computes summary metrics with a concurrent fan-out over
// the repositories. A failure in one branch yields zeroes for that branch and
// a warning; it never aborts the whole aggregate.
type DashboardService struct {
	patients     clinic.PatientRepository
	optometrists clinic.OptometristRepository
	appointments clinic.AppointmentRepository
	inventory    catalog.InventoryItemRepository
	sales        sales.SaleRepository
	cache        MetricsCache
	log          *zap.Logger
}

// NewDashboardService creates a new DashboardService. cache may be nil to
// disable caching.
func NewDashboardService(
	patients clinic.PatientRepository,
	optometrists clinic.OptometristRepository,
	appointments clinic.AppointmentRepository,
	inventory catalog.InventoryItemRepository,
	saleRepo sales.SaleRepository,
	cache MetricsCache,
	log *zap.Logger,
) *DashboardService {
	return &DashboardService{
		patients:     patients,
		optometrists: optometrists,
		appointments: appointments,
		inventory:    inventory,
		sales:        saleRepo,
		cache:        cache,
		log:          log.Named("dashboard-service"),
	}
}

// Metrics returns the dashboard snapshot, serving a cached copy when fresh
func (s *DashboardService) Metrics(ctx context.Context) (*DashboardMetrics, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	metrics := s.compute(ctx)

	if s.cache != nil {
		s.cache.Set(ctx, metrics)
	}
	return metrics, nil
}

func (s *DashboardService) compute(ctx context.Context) *DashboardMetrics {
	metrics := &DashboardMetrics{Revenue: decimal.Zero}

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		patients, err := s.patients.FindAll(ctx)
		if err != nil {
			s.log.Warn("patient branch failed", zap.Error(err))
			return
		}
		metrics.Patients = len(patients)
	}()

	go func() {
		defer wg.Done()
		optometrists, err := s.optometrists.FindAll(ctx)
		if err != nil {
			s.log.Warn("optometrist branch failed", zap.Error(err))
			return
		}
		metrics.Optometrists = len(optometrists)
	}()

	go func() {
		defer wg.Done()
		appointments, err := s.appointments.FindByDate(ctx, time.Now())
		if err != nil {
			s.log.Warn("appointment branch failed", zap.Error(err))
			return
		}
		metrics.AppointmentsToday = len(appointments)
	}()

	go func() {
		defer wg.Done()
		items, err := s.inventory.FindAll(ctx)
		if err != nil {
			s.log.Warn("inventory branch failed", zap.Error(err))
			return
		}
		low := 0
		for _, item := range items {
			if item.IsLowStock(LowStockThreshold) {
				low++
			}
		}
		metrics.LowStockItems = low
	}()

	go func() {
		defer wg.Done()
		allSales, err := s.sales.FindAll(ctx)
		if err != nil {
			s.log.Warn("sales branch failed", zap.Error(err))
			return
		}
		revenue := decimal.Zero
		pending := 0
		for _, sale := range allSales {
			switch sale.Status {
			case sales.SaleStatusDelivered:
				revenue = revenue.Add(sale.TotalAmount)
			case sales.SaleStatusPending, sales.SaleStatusPreparing:
				pending++
			}
		}
		metrics.SalesTotal = len(allSales)
		metrics.SalesPending = pending
		metrics.Revenue = revenue
	}()

	wg.Wait()
	metrics.ComputedAt = time.Now()
	return metrics
}
