package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cloudSyncHandler "github.com/kmlee/safety-edu-booking/internal/api/handlers/cloud_sync"
	createRegistrationHandler "github.com/kmlee/safety-edu-booking/internal/api/handlers/create_registration"
	deleteRegistrationHandler "github.com/kmlee/safety-edu-booking/internal/api/handlers/delete_registration"
	exportCSVHandler "github.com/kmlee/safety-edu-booking/internal/api/handlers/export_csv"
	getAvailabilityHandler "github.com/kmlee/safety-edu-booking/internal/api/handlers/get_availability"
	listRegistrationsHandler "github.com/kmlee/safety-edu-booking/internal/api/handlers/list_registrations"
	searchRegistrationsHandler "github.com/kmlee/safety-edu-booking/internal/api/handlers/search_registrations"
	setCapacityHandler "github.com/kmlee/safety-edu-booking/internal/api/handlers/set_capacity"
	syncCodeHandler "github.com/kmlee/safety-edu-booking/internal/api/handlers/sync_code"
	updateRegistrationHandler "github.com/kmlee/safety-edu-booking/internal/api/handlers/update_registration"
	"github.com/kmlee/safety-edu-booking/internal/api/middleware"
	"github.com/kmlee/safety-edu-booking/internal/config"
	capacityRepo "github.com/kmlee/safety-edu-booking/internal/infra/storage/capacity"
	registrationRepo "github.com/kmlee/safety-edu-booking/internal/infra/storage/registration"
	"github.com/kmlee/safety-edu-booking/internal/integrations/cloudstore"
	capacityService "github.com/kmlee/safety-edu-booking/internal/service/capacity"
	registrationsService "github.com/kmlee/safety-edu-booking/internal/service/registrations"
	syncService "github.com/kmlee/safety-edu-booking/internal/service/sync"
	createRegistrationUC "github.com/kmlee/safety-edu-booking/internal/usecase/create_registration"
	getAvailabilityUC "github.com/kmlee/safety-edu-booking/internal/usecase/get_availability"
	mergeSnapshotUC "github.com/kmlee/safety-edu-booking/internal/usecase/merge_snapshot"
	"github.com/kmlee/safety-edu-booking/pkg/logger"
	"github.com/kmlee/safety-edu-booking/pkg/metrics"
	"github.com/kmlee/safety-edu-booking/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting safety-edu-booking...")
	log.Info("Configuration loaded from config.toml")

	// Collectors are always registered; the endpoint is exposed only
	// when metrics are enabled.
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Apply migrations before taking traffic.
	if cfg.Database.MigrationsPath != "" {
		m, err := migrate.New("file://"+cfg.Database.MigrationsPath, cfg.Database.MigrateURL())
		if err != nil {
			log.Fatal("Failed to initialize migrations: %v", err)
		}
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and transaction manager
	registrationRepository := registrationRepo.NewRepository(db)
	capacityRepository := capacityRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Optional shared-endpoint sync client
	var cloudClient syncService.CloudStoreClient
	if cfg.CloudSync.Enabled {
		cloudClient = cloudstore.NewClient(
			cfg.CloudSync.URL,
			time.Duration(cfg.CloudSync.Timeout)*time.Second,
			log,
		)
		log.Info("Cloud sync client initialized (url=%s timeout=%ds)", cfg.CloudSync.URL, cfg.CloudSync.Timeout)
	} else {
		log.Info("Cloud sync disabled")
	}

	// Use cases
	createRegistrationUseCase := createRegistrationUC.NewUseCase(
		registrationRepository,
		capacityRepository,
		txMgr,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		registrationRepository,
		capacityRepository,
		log,
	)
	mergeSnapshotUseCase := mergeSnapshotUC.NewUseCase(
		registrationRepository,
		capacityRepository,
		txMgr,
		log,
	)

	// Services
	registrationsSvc := registrationsService.NewService(registrationRepository, log)
	capacitySvc := capacityService.NewService(capacityRepository, log)
	syncSvc := syncService.NewService(
		registrationRepository,
		capacityRepository,
		cloudClient,
		mergeSnapshotUseCase,
		log,
	)

	// Handlers
	createRegistration := createRegistrationHandler.NewHandler(createRegistrationUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	searchRegistrations := searchRegistrationsHandler.NewHandler(registrationsSvc, log)
	listRegistrations := listRegistrationsHandler.NewHandler(registrationsSvc, log)
	updateRegistration := updateRegistrationHandler.NewHandler(registrationsSvc, log)
	deleteRegistration := deleteRegistrationHandler.NewHandler(registrationsSvc, log)
	setCapacity := setCapacityHandler.NewHandler(capacitySvc, log)
	exportCSV := exportCSVHandler.NewHandler(registrationsSvc, log)
	syncCode := syncCodeHandler.NewHandler(syncSvc, metricsCollector, log)
	cloudSync := cloudSyncHandler.NewHandler(syncSvc, metricsCollector, log)

	adminAuth := middleware.NewAdminAuth(cfg.Admin.PasswordHash, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/registrations", createRegistration.Handle).Methods(http.MethodPost)
	api.HandleFunc("/registrations/search", searchRegistrations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/industries/{industry}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Admin routes (password gated)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminAuth.Middleware)

	admin.HandleFunc("/industries/{industry}/registrations", listRegistrations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/industries/{industry}/registrations/export", exportCSV.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/industries/{industry}/capacity/{date}", setCapacity.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/registrations/{id}", updateRegistration.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/registrations/{id}", deleteRegistration.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/sync/export", syncCode.HandleExport).Methods(http.MethodPost)
	admin.HandleFunc("/sync/import", syncCode.HandleImport).Methods(http.MethodPost)
	admin.HandleFunc("/sync/cloud/push", cloudSync.HandlePush).Methods(http.MethodPost)
	admin.HandleFunc("/sync/cloud/pull", cloudSync.HandlePull).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
