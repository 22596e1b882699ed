package sales

import (
	"context"
	"fmt"

	appclinic "github.com/optivista/backend/internal/application/clinic"
	appnotification "github.com/optivista/backend/internal/application/notification"
	"github.com/optivista/backend/internal/domain/sales"
	"go.uber.org/zap"
)

const readySubject = "Your order is ready for pickup"

// NewNotificationFanout builds the ready hook that creates one pending
// notification per distinct line item, addressed to the sale's patient
// contact address. Delivery is not attempted here; the dispatcher's Send is a
// separate step.
func NewNotificationFanout(dispatcher *appnotification.Dispatcher, enricher *appclinic.Enricher, log *zap.Logger) ReadyHook {
	log = log.Named("notification-fanout")
	return func(ctx context.Context, sale *sales.Sale) error {
		patient := enricher.Patient(ctx, sale.PatientRef)
		if patient == nil {
			return fmt.Errorf("sale %s references missing patient %s, no notifications created", sale.ID, sale.PatientRef)
		}

		var failed int
		for _, product := range sale.DistinctProductNames() {
			_, err := dispatcher.Create(ctx, appnotification.CreateNotificationRequest{
				PatientRef: sale.PatientRef,
				SaleRef:    sale.ID,
				Product:    product,
				Recipient:  patient.Email,
				Subject:    readySubject,
				Message:    readyMessage(patient.FullName(), product),
			})
			if err != nil {
				failed++
				log.Error("notification creation failed",
					zap.String("sale", sale.ID),
					zap.String("product", product),
					zap.Error(err))
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d notifications not created for sale %s", failed, len(sale.DistinctProductNames()), sale.ID)
		}
		return nil
	}
}

func readyMessage(patientName, productName string) string {
	return fmt.Sprintf("Dear %s, your %s is ready for pickup at the clinic.", patientName, productName)
}
