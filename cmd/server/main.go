package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/optivista/backend/internal/application/catalog"
	clinicapp "github.com/optivista/backend/internal/application/clinic"
	notifapp "github.com/optivista/backend/internal/application/notification"
	reportapp "github.com/optivista/backend/internal/application/report"
	salesapp "github.com/optivista/backend/internal/application/sales"
	"github.com/optivista/backend/internal/infrastructure/cache"
	"github.com/optivista/backend/internal/infrastructure/config"
	"github.com/optivista/backend/internal/infrastructure/docstore"
	"github.com/optivista/backend/internal/infrastructure/logger"
	"github.com/optivista/backend/internal/infrastructure/mail"
	"github.com/optivista/backend/internal/infrastructure/persistence"
	"github.com/optivista/backend/internal/interfaces/http/handler"
	"github.com/optivista/backend/internal/interfaces/http/router"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
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

	log.Info("starting clinic backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Open the document store
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
	log.Info("document store ready", zap.String("driver", cfg.Store.Driver))

	// Repositories
	patientRepo := persistence.NewPatientRepository(store)
	optometristRepo := persistence.NewOptometristRepository(store)
	userRepo := persistence.NewUserRepository(store)
	appointmentRepo := persistence.NewAppointmentRepository(store)
	consultationRepo := persistence.NewConsultationRepository(store)
	inventoryRepo := persistence.NewInventoryItemRepository(store)
	saleRepo := persistence.NewSaleRepository(store)
	notificationRepo := persistence.NewNotificationRepository(store)

	// Outbound mail
	sender, err := mail.NewSMTPSender(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	if err != nil {
		log.Fatal("failed to configure mail sender", zap.Error(err))
	}

	// Application services
	enricher := clinicapp.NewEnricher(patientRepo, optometristRepo, log)
	patientService := clinicapp.NewPatientService(patientRepo, log)
	optometristService := clinicapp.NewOptometristService(optometristRepo, log)
	userService := clinicapp.NewUserService(userRepo, log)
	appointmentService := clinicapp.NewAppointmentService(appointmentRepo, patientRepo, optometristRepo, enricher, log)
	consultationService := clinicapp.NewConsultationService(consultationRepo, patientRepo, optometristRepo, enricher, log)
	inventoryService := catalogapp.NewInventoryService(inventoryRepo, log)
	dispatcher := notifapp.NewDispatcher(notificationRepo, sender, log)
	saleService := salesapp.NewSaleService(saleRepo, enricher, log)
	saleService.RegisterReadyHook(salesapp.NewNotificationFanout(dispatcher, enricher, log))

	// Dashboard metrics cache: redis when enabled, in-process otherwise
	var metricsCache reportapp.MetricsCache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		metricsCache = cache.NewRedisMetricsCache(client, cfg.Dashboard.CacheTTL, log)
		log.Info("dashboard cache using redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		metricsCache = cache.NewInMemoryMetricsCache(cfg.Dashboard.CacheTTL)
	}
	dashboardService := reportapp.NewDashboardService(
		patientRepo, optometristRepo, appointmentRepo, inventoryRepo, saleRepo, metricsCache, log,
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.New(router.Handlers{
		Patients:      handler.NewPatientHandler(patientService),
		Optometrists:  handler.NewOptometristHandler(optometristService),
		Appointments:  handler.NewAppointmentHandler(appointmentService),
		Consultations: handler.NewConsultationHandler(consultationService),
		Inventory:     handler.NewInventoryHandler(inventoryService),
		Sales:         handler.NewSaleHandler(saleService),
		Notifications: handler.NewNotificationHandler(dispatcher),
		Users:         handler.NewUserHandler(userService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
	}, log)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	log.Info("server exited gracefully")
}
