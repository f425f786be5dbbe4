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
	_ "modernc.org/sqlite"

	getAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_availability"
	healthHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/health"
	nudgeDecisionHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/nudge_decision"
	updateNudgeConfigHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_nudge_config"
	validateSlotHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/validate_slot"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	eventLogRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/eventlog"
	providerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schema"
	hoursServiceClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/hoursservice"
	"github.com/m04kA/SMC-SchedulingService/internal/service/decisionlog"
	hoursService "github.com/m04kA/SMC-SchedulingService/internal/service/hours"
	"github.com/m04kA/SMC-SchedulingService/internal/service/nudgeconfig"
	providerService "github.com/m04kA/SMC-SchedulingService/internal/service/provider"
	"github.com/m04kA/SMC-SchedulingService/internal/service/ratecap"
	getAvailabilityUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_availability"
	nudgeDecisionUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/nudge_decision"
	updateNudgeConfigUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_nudge_config"
	validateSlotUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/validate_slot"
	"github.com/m04kA/SMC-SchedulingService/pkg/clock"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). nil-коллектор безопасен
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных журнала событий
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
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
	log.Info("Successfully connected to database (driver=%s)", cfg.Database.Driver)

	if cfg.Database.AutoMigrate {
		if err := schema.Apply(context.Background(), db, cfg.Database.Driver); err != nil {
			log.Fatal("Failed to apply schema: %v", err)
		}
		log.Info("Database schema applied")
	}

	builder, err := psqlbuilder.New(cfg.Database.Driver)
	if err != nil {
		log.Fatal("Failed to create query builder: %v", err)
	}

	// Оборачиваем соединение метриками запросов
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	eventLogRepository := eventLogRepo.NewRepository(executor, builder)
	providerRepository := providerRepo.NewRepository(executor, builder)

	// Инициализируем интеграционных клиентов
	hoursClient := hoursServiceClient.NewClient(
		cfg.HoursService.URL,
		time.Duration(cfg.HoursService.Timeout)*time.Millisecond,
	)
	log.Info("Integration clients initialized (HoursService=%s timeout=%dms)",
		cfg.HoursService.URL, cfg.HoursService.Timeout)

	// Инициализируем сервисы
	realClock := clock.Real{}
	providers := providerService.NewResolver(providerRepository, log)
	hoursResolver := hoursService.NewResolver(hoursClient, metricsCollector, log)
	capCounter := ratecap.NewCounter(eventLogRepository, metricsCollector, log)
	configLoader := nudgeconfig.NewLoader(eventLogRepository, log)
	recorder := decisionlog.NewRecorder(
		eventLogRepository,
		metricsCollector,
		log,
		time.Duration(cfg.EventLog.AppendTimeout)*time.Millisecond,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(providers, hoursResolver, realClock, metricsCollector, log)
	validateSlotUseCase := validateSlotUC.NewUseCase(providers, hoursResolver, realClock, metricsCollector, log)
	nudgeDecisionUseCase := nudgeDecisionUC.NewUseCase(
		providers,
		configLoader,
		capCounter,
		recorder,
		realClock,
		metricsCollector,
		log,
	)
	updateNudgeConfigUseCase := updateNudgeConfigUC.NewUseCase(providers, eventLogRepository, realClock, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	validateSlot := validateSlotHandler.NewHandler(validateSlotUseCase, log)
	nudgeDecision := nudgeDecisionHandler.NewHandler(nudgeDecisionUseCase, log)
	updateNudgeConfig := updateNudgeConfigHandler.NewHandler(updateNudgeConfigUseCase, log)
	health := healthHandler.NewHandler(db, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		api.Use(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log).Middleware())
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// --- Слоты ---
	// Доступные слоты на несколько дней вперед
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Проверка одного предложенного слота
	api.HandleFunc("/slots/validate", validateSlot.Handle).Methods(http.MethodGet)

	// --- Автоматические отправки ---
	// Можно ли отправить сейчас
	api.HandleFunc("/nudges/decision", nudgeDecision.Handle).Methods(http.MethodGet)

	// Изменение тихих часов и дневного лимита
	api.HandleFunc("/nudges/config", updateNudgeConfig.Handle).Methods(http.MethodPut)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся фоновых записей решений до закрытия БД
	recorder.Close()
	log.Info("Decision log drained")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
