package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminAppointmentsHandler "github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers/admin_appointments"
	adminAuthHandler "github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers/admin_auth"
	adminBlockedTimesHandler "github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers/admin_blocked_times"
	adminInternationalHandler "github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers/admin_international"
	adminMapHandler "github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers/admin_map"
	adminMessagesHandler "github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers/admin_messages"
	adminServicesHandler "github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers/admin_services"
	createAppointmentHandler "github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers/create_appointment"
	createContactHandler "github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers/create_contact"
	getAppointmentsVersionHandler "github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers/get_appointments_version"
	getAvailableSlotsHandler "github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers/get_available_slots"
	getInternationalDatesHandler "github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers/get_international_dates"
	getServicesHandler "github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers/get_services"
	"github.com/edumrsdw-devops/cadoreClinic/internal/api/middleware"
	"github.com/edumrsdw-devops/cadoreClinic/internal/config"
	adminauthRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/adminauth"
	appointmentRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/appointment"
	catalogRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/catalog"
	contactRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/contact"
	internationalRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/international"
	"github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/migrate"
	scheduleRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/schedule"
	settingsRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/settings"
	appointmentsService "github.com/edumrsdw-devops/cadoreClinic/internal/service/appointments"
	authService "github.com/edumrsdw-devops/cadoreClinic/internal/service/auth"
	catalogService "github.com/edumrsdw-devops/cadoreClinic/internal/service/catalog"
	contactService "github.com/edumrsdw-devops/cadoreClinic/internal/service/contact"
	internationalService "github.com/edumrsdw-devops/cadoreClinic/internal/service/international"
	scheduleService "github.com/edumrsdw-devops/cadoreClinic/internal/service/schedule"
	sitesettingsService "github.com/edumrsdw-devops/cadoreClinic/internal/service/sitesettings"
	createAppointmentUC "github.com/edumrsdw-devops/cadoreClinic/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/edumrsdw-devops/cadoreClinic/internal/usecase/get_available_slots"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/dbmetrics"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/logger"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/metrics"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/simpletxmanager"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/txmanager"
)

// realTimeProvider provedor de tempo real usado pelos serviços
type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}

func main() {
	// Carrega a configuração
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializa o logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting cadoreClinic...")
	log.Info("Configuration loaded from config.toml")

	// Inicializa as métricas (se habilitadas)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Conecta no banco de dados
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

	// Aplica o esquema e a carga inicial
	if err := migrate.Run(context.Background(), db, log); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	// Repositórios e transaction manager (com métricas ou sem)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var (
		executor dbmetrics.DBExecutor
		txMgr    TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		executor = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	appointmentRepository := appointmentRepo.NewRepository(executor)
	catalogRepository := catalogRepo.NewRepository(executor)
	scheduleRepository := scheduleRepo.NewRepository(executor)
	internationalRepository := internationalRepo.NewRepository(executor)
	contactRepository := contactRepo.NewRepository(executor)
	adminauthRepository := adminauthRepo.NewRepository(executor)
	settingsRepository := settingsRepo.NewRepository(executor)

	timeProvider := realTimeProvider{}

	// Serviços
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		contactRepository,
		settingsRepository,
		timeProvider,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, settingsRepository, log)
	internationalSvc := internationalService.NewService(internationalRepository, timeProvider, log)
	contactSvc := contactService.NewService(contactRepository, log)
	authSvc := authService.NewService(
		adminauthRepository,
		time.Duration(cfg.Auth.SessionTTLHours)*time.Hour,
		timeProvider,
		log,
	)
	sitesettingsSvc := sitesettingsService.NewService(settingsRepository, log)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		catalogRepository,
		internationalRepository,
		settingsRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		catalogRepository,
		internationalRepository,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getInternationalDates := getInternationalDatesHandler.NewHandler(internationalSvc, log)
	createContact := createContactHandler.NewHandler(contactSvc, log)
	getAppointmentsVersion := getAppointmentsVersionHandler.NewHandler(sitesettingsSvc, log)

	adminAuth := adminAuthHandler.NewHandler(authSvc, log)
	adminAppointments := adminAppointmentsHandler.NewHandler(appointmentsSvc, log)
	adminBlockedTimes := adminBlockedTimesHandler.NewHandler(scheduleSvc, log)
	adminServices := adminServicesHandler.NewHandler(catalogSvc, log)
	adminInternational := adminInternationalHandler.NewHandler(internationalSvc, log)
	adminMessages := adminMessagesHandler.NewHandler(contactSvc, log)
	adminMap := adminMapHandler.NewHandler(sitesettingsSvc, log)

	// Roteador
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Rotas públicas do site
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments-version", getAppointmentsVersion.Handle).Methods(http.MethodGet)
	api.HandleFunc("/international-dates", getInternationalDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/contact", createContact.Handle).Methods(http.MethodPost)

	// Painel administrativo
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/login", adminAuth.HandleLogin).Methods(http.MethodPost)

	// Rotas protegidas por sessão
	protected := admin.PathPrefix("").Subrouter()
	protected.Use(middleware.SessionAuth(authSvc, log))

	protected.HandleFunc("/logout", adminAuth.HandleLogout).Methods(http.MethodPost)
	protected.HandleFunc("/me", adminAuth.HandleMe).Methods(http.MethodGet)
	protected.HandleFunc("/change-password", adminAuth.HandleChangePassword).Methods(http.MethodPost)

	protected.HandleFunc("/appointments", adminAppointments.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", adminAppointments.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}", adminAppointments.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/stats", adminAppointments.HandleStats).Methods(http.MethodGet)
	protected.HandleFunc("/export", adminAppointments.HandleExport).Methods(http.MethodGet)

	protected.HandleFunc("/blocked-times", adminBlockedTimes.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/blocked-times", adminBlockedTimes.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/blocked-times/{id}", adminBlockedTimes.HandleDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/services", adminServices.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/services", adminServices.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/services/{id}", adminServices.HandleUpdate).Methods(http.MethodPatch)

	protected.HandleFunc("/international-dates", adminInternational.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/international-dates", adminInternational.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/international-dates/{id}", adminInternational.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/international-dates/{id}", adminInternational.HandleDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/messages", adminMessages.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/messages/{id}", adminMessages.HandleMarkRead).Methods(http.MethodPatch)
	protected.HandleFunc("/messages/{id}", adminMessages.HandleDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/map", adminMap.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/map", adminMap.HandleUpdate).Methods(http.MethodPatch)

	// Servidor HTTP
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
