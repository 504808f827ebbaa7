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

	checkAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/check_availability"
	checkConflictHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/check_conflict"
	checkQuotaHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/check_quota"
	createExclusionHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_exclusion"
	createItemHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_item"
	createRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_rental"
	deleteExclusionHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_exclusion"
	deleteRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_rental"
	getRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_rental"
	getUserRentalsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_user_rentals"
	listExclusionsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_exclusions"
	listItemsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_items"
	listRentalsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_rentals"
	setUserQuotaHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/set_user_quota"
	updateRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_rental"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/calendar"
	"github.com/m04kA/SMC-RentalService/internal/config"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/infra/events"
	exclusionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/exclusion"
	itemRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/item"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	profileRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/userprofile"
	authServiceClient "github.com/m04kA/SMC-RentalService/internal/integrations/authservice"
	exclusionsService "github.com/m04kA/SMC-RentalService/internal/service/exclusions"
	itemsService "github.com/m04kA/SMC-RentalService/internal/service/items"
	preflightService "github.com/m04kA/SMC-RentalService/internal/service/preflight"
	profilesService "github.com/m04kA/SMC-RentalService/internal/service/profiles"
	rentalsService "github.com/m04kA/SMC-RentalService/internal/service/rentals"
	createRentalUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
	updateRentalUC "github.com/m04kA/SMC-RentalService/internal/usecase/update_rental"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

// eventPublisher общий интерфейс реального и noop издателей событий
type eventPublisher interface {
	RentalCreated(ctx context.Context, rental *domain.Rental, actorID int64)
	RentalUpdated(ctx context.Context, rental *domain.Rental, actorID int64)
	RentalDeleted(ctx context.Context, rental *domain.Rental, actorID int64)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RentalService...")
	log.Info("Configuration loaded from config.toml")

	// Календарь с фиксированной таймзоной школы
	cal, err := calendar.New(calendar.RealClock{}, cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to initialize calendar: %v", err)
	}
	log.Info("Calendar timezone: %s", cfg.Booking.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент сервиса аутентификации
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("Auth service client initialized (url=%s, timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Публикация событий бронирований (если включена)
	var eventsPub eventPublisher
	if cfg.Events.Enabled {
		pub, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to event broker: %v", err)
		}
		defer pub.Close()
		eventsPub = pub
		log.Info("Event publisher connected (exchange=%s)", cfg.Events.Exchange)
	} else {
		eventsPub = events.NewNoopPublisher()
		log.Info("Event publishing disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		rentalRepository    *rentalRepo.Repository
		itemRepository      *itemRepo.Repository
		exclusionRepository *exclusionRepo.Repository
		profileRepository   *profileRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		rentalRepository = rentalRepo.NewRepository(wrappedDB)
		itemRepository = itemRepo.NewRepository(wrappedDB)
		exclusionRepository = exclusionRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		rentalRepository = rentalRepo.NewRepository(db)
		itemRepository = itemRepo.NewRepository(db)
		exclusionRepository = exclusionRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	rentalsSvc := rentalsService.NewService(rentalRepository, cal, eventsPub, log)
	itemsSvc := itemsService.NewService(itemRepository, log)
	exclusionsSvc := exclusionsService.NewService(exclusionRepository, itemRepository, log)
	profilesSvc := profilesService.NewService(profileRepository, log)
	preflightSvc := preflightService.NewService(
		rentalRepository,
		exclusionRepository,
		profileRepository,
		authClient,
		cal,
		cfg.Booking.WeeklyQuota,
		log,
	)

	// Инициализируем use cases
	createRentalUseCase := createRentalUC.NewUseCase(
		rentalRepository,
		itemRepository,
		exclusionRepository,
		profileRepository,
		authClient,
		cal,
		txMgr,
		eventsPub,
		cfg.Booking.WeeklyQuota,
		log,
	)
	updateRentalUseCase := updateRentalUC.NewUseCase(
		rentalRepository,
		itemRepository,
		authClient,
		cal,
		txMgr,
		eventsPub,
		log,
	)

	// Инициализируем handlers
	createRental := createRentalHandler.NewHandler(createRentalUseCase, log)
	updateRental := updateRentalHandler.NewHandler(updateRentalUseCase, log)
	getRental := getRentalHandler.NewHandler(rentalsSvc, log)
	deleteRental := deleteRentalHandler.NewHandler(rentalsSvc, log)
	listRentals := listRentalsHandler.NewHandler(rentalsSvc, log)
	getUserRentals := getUserRentalsHandler.NewHandler(rentalsSvc, log)
	setUserQuota := setUserQuotaHandler.NewHandler(profilesSvc, log)
	checkConflict := checkConflictHandler.NewHandler(preflightSvc, log)
	checkQuota := checkQuotaHandler.NewHandler(preflightSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(preflightSvc, log)
	listItems := listItemsHandler.NewHandler(itemsSvc, log)
	createItem := createItemHandler.NewHandler(itemsSvc, log)
	createExclusion := createExclusionHandler.NewHandler(exclusionsSvc, log)
	deleteExclusion := deleteExclusionHandler.NewHandler(exclusionsSvc, log)
	listExclusions := listExclusionsHandler.NewHandler(exclusionsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник ресурсов
	api.HandleFunc("/items", listItems.Handle).Methods(http.MethodGet)

	// Предварительные проверки формы бронирования
	api.HandleFunc("/preflight/conflict", checkConflict.Handle).Methods(http.MethodGet)
	api.HandleFunc("/preflight/quota", checkQuota.Handle).Methods(http.MethodGet)
	api.HandleFunc("/preflight/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/rentals", listRentals.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rentals", createRental.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rentals/{rentalId}", getRental.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{rentalId}", updateRental.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/rentals/{rentalId}", deleteRental.Handle).Methods(http.MethodDelete)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/rentals", getUserRentals.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/quota", setUserQuota.Handle).Methods(http.MethodPut)

	// --- Администрирование ---
	protected.HandleFunc("/items", createItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/exclusions", listExclusions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/exclusions", createExclusion.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/exclusions/{ruleId}", deleteExclusion.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
