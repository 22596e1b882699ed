package sales

import (
	"context"

	appclinic "github.com/optivista/backend/internal/application/clinic"
	appnotification "github.com/optivista/backend/internal/application/notification"
	domainnotification "github.com/optivista/backend/internal/domain/notification"
	"github.com/optivista/backend/internal/domain/sales"
	"go.uber.org/zap"
)

// ReconciliationService closes the known consistency gap between a sale
// reaching ready and its notification fan-out: the two writes share no
// transaction, so a crash in between leaves a ready sale with missing
// notifications. The sweep is idempotent and runs as a separate batch job,
// never on the synchronous transition path.
type ReconciliationService struct {
	sales         sales.SaleRepository
	notifications domainnotification.Repository
	dispatcher    *appnotification.Dispatcher
	enricher      *appclinic.Enricher
	log           *zap.Logger
}

// NewReconciliationService creates a new ReconciliationService
func NewReconciliationService(
	saleRepo sales.SaleRepository,
	notificationRepo domainnotification.Repository,
	dispatcher *appnotification.Dispatcher,
	enricher *appclinic.Enricher,
	log *zap.Logger,
) *ReconciliationService {
	return &ReconciliationService{
		sales:         saleRepo,
		notifications: notificationRepo,
		dispatcher:    dispatcher,
		enricher:      enricher,
		log:           log.Named("sale-reconciliation"),
	}
}

// ReconciliationResult summarizes one sweep
type ReconciliationResult struct {
	SalesChecked int `json:"sales_checked"`
	Created      int `json:"created"`
	Skipped      int `json:"skipped"`
}

// Run sweeps all sales in ready state and creates the pending notifications
// that are missing for their line items. Existing notifications are never
// duplicated and nothing is sent; a second run over the same state creates
// zero records.
func (s *ReconciliationService) Run(ctx context.Context) (*ReconciliationResult, error) {
	readySales, err := s.sales.FindByStatus(ctx, sales.SaleStatusReady)
	if err != nil {
		return nil, err
	}

	result := &ReconciliationResult{SalesChecked: len(readySales)}
	for i := range readySales {
		sale := &readySales[i]

		existing, err := s.notifications.FindBySale(ctx, sale.ID)
		if err != nil {
			s.log.Warn("skipping sale, notification lookup failed",
				zap.String("sale", sale.ID), zap.Error(err))
			result.Skipped++
			continue
		}

		patient := s.enricher.Patient(ctx, sale.PatientRef)
		if patient == nil {
			// Nothing to address the notification to; flagged, not healed
			s.log.Warn("skipping sale, patient reference is dangling",
				zap.String("sale", sale.ID), zap.String("patient", sale.PatientRef))
			result.Skipped++
			continue
		}

		for _, product := range sale.DistinctProductNames() {
			message := readyMessage(patient.FullName(), product)
			if covered(existing, product, message) {
				continue
			}
			_, err := s.dispatcher.Create(ctx, appnotification.CreateNotificationRequest{
				PatientRef: sale.PatientRef,
				SaleRef:    sale.ID,
				Product:    product,
				Recipient:  patient.Email,
				Subject:    readySubject,
				Message:    message,
			})
			if err != nil {
				s.log.Error("reconciliation create failed",
					zap.String("sale", sale.ID),
					zap.String("product", product),
					zap.Error(err))
				continue
			}
			result.Created++
		}
	}

	s.log.Info("reconciliation sweep finished",
		zap.Int("sales_checked", result.SalesChecked),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// covered reports whether an existing notification for the sale already names
// the product. The match is exact on the structured Product field; a substring
// match on the message would make one product shadow another whose name
// contains it. Records written before Product existed carry only the message
// text, so those are matched on full message equality.
func covered(existing []domainnotification.Notification, product, message string) bool {
	for _, n := range existing {
		if n.Product == product {
			return true
		}
		if n.Product == "" && n.Message == message {
			return true
		}
	}
	return false
}
