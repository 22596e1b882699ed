// Command reconcile runs one sweep of the sale/notification consistency job
// and exits. It is meant to be scheduled out of band (cron or similar).
package main

import (
	"context"

	clinicapp "github.com/optivista/backend/internal/application/clinic"
	notifapp "github.com/optivista/backend/internal/application/notification"
	salesapp "github.com/optivista/backend/internal/application/sales"
	"github.com/optivista/backend/internal/infrastructure/config"
	"github.com/optivista/backend/internal/infrastructure/docstore"
	"github.com/optivista/backend/internal/infrastructure/logger"
	"github.com/optivista/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	var store docstore.Store
	switch cfg.Store.Driver {
	case "sqlite":
		s, err := docstore.OpenSQLite(cfg.Store.DSN(), cfg.Store.Timeout)
		if err != nil {
			log.Fatal("failed to open document store", zap.Error(err))
		}
		defer func() { _ = s.Close() }()
		store = s
	default:
		s, err := docstore.OpenPostgres(cfg.Store.DSN(), cfg.Store.Timeout)
		if err != nil {
			log.Fatal("failed to open document store", zap.Error(err))
		}
		defer func() { _ = s.Close() }()
		store = s
	}

	patientRepo := persistence.NewPatientRepository(store)
	optometristRepo := persistence.NewOptometristRepository(store)
	saleRepo := persistence.NewSaleRepository(store)
	notificationRepo := persistence.NewNotificationRepository(store)

	enricher := clinicapp.NewEnricher(patientRepo, optometristRepo, log)
	// The sweep only creates pending records; the dispatcher rejects Send
	// when no sender is wired
	dispatcher := notifapp.NewDispatcher(notificationRepo, nil, log)
	reconciler := salesapp.NewReconciliationService(saleRepo, notificationRepo, dispatcher, enricher, log)

	result, err := reconciler.Run(context.Background())
	if err != nil {
		log.Fatal("reconciliation sweep failed", zap.Error(err))
	}
	log.Info("reconciliation sweep finished",
		zap.Int("sales_checked", result.SalesChecked),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
}
