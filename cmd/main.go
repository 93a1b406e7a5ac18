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

	createExceptionHandler "github.com/m04kA/HSC-AvailabilityService/internal/api/handlers/create_exception"
	createWeeklyEntryHandler "github.com/m04kA/HSC-AvailabilityService/internal/api/handlers/create_weekly_entry"
	deleteExceptionHandler "github.com/m04kA/HSC-AvailabilityService/internal/api/handlers/delete_exception"
	deleteWeeklyEntryHandler "github.com/m04kA/HSC-AvailabilityService/internal/api/handlers/delete_weekly_entry"
	getDaySlotsHandler "github.com/m04kA/HSC-AvailabilityService/internal/api/handlers/get_day_slots"
	getExceptionsHandler "github.com/m04kA/HSC-AvailabilityService/internal/api/handlers/get_exceptions"
	getGlobalScheduleHandler "github.com/m04kA/HSC-AvailabilityService/internal/api/handlers/get_global_schedule"
	getResolvedWeekHandler "github.com/m04kA/HSC-AvailabilityService/internal/api/handlers/get_resolved_week"
	getTemplatesHandler "github.com/m04kA/HSC-AvailabilityService/internal/api/handlers/get_templates"
	getWeeklyScheduleHandler "github.com/m04kA/HSC-AvailabilityService/internal/api/handlers/get_weekly_schedule"
	"github.com/m04kA/HSC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/HSC-AvailabilityService/internal/config"
	appointmentRepo "github.com/m04kA/HSC-AvailabilityService/internal/infra/storage/appointment"
	exceptionRepo "github.com/m04kA/HSC-AvailabilityService/internal/infra/storage/exception"
	globalScheduleRepo "github.com/m04kA/HSC-AvailabilityService/internal/infra/storage/globalschedule"
	templateRepo "github.com/m04kA/HSC-AvailabilityService/internal/infra/storage/template"
	weeklyScheduleRepo "github.com/m04kA/HSC-AvailabilityService/internal/infra/storage/weeklyschedule"
	staffServiceClient "github.com/m04kA/HSC-AvailabilityService/internal/integrations/staffservice"
	exceptionService "github.com/m04kA/HSC-AvailabilityService/internal/service/exception"
	globalScheduleService "github.com/m04kA/HSC-AvailabilityService/internal/service/globalschedule"
	weeklyScheduleService "github.com/m04kA/HSC-AvailabilityService/internal/service/weeklyschedule"
	getDaySlotsUC "github.com/m04kA/HSC-AvailabilityService/internal/usecase/get_day_slots"
	resolveWeekUC "github.com/m04kA/HSC-AvailabilityService/internal/usecase/resolve_week"
	"github.com/m04kA/HSC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/HSC-AvailabilityService/pkg/logger"
	"github.com/m04kA/HSC-AvailabilityService/pkg/metrics"
)

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

	log.Info("Starting HSC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиента реестра персонала
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (StaffService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Выбираем executor: с обёрткой метрик или без
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	globalRepository := globalScheduleRepo.NewRepository(executor)
	templateRepository := templateRepo.NewRepository(executor)
	weeklyRepository := weeklyScheduleRepo.NewRepository(executor)
	exceptionRepository := exceptionRepo.NewRepository(executor)
	appointmentRepository := appointmentRepo.NewRepository(executor)

	// Инициализируем сервисы
	globalSvc := globalScheduleService.NewService(globalRepository, log)
	weeklySvc := weeklyScheduleService.NewService(
		weeklyRepository,
		templateRepository,
		staffClient,
		log,
	)
	exceptionSvc := exceptionService.NewService(
		exceptionRepository,
		staffClient,
		log,
	)

	// Инициализируем use cases
	resolveWeekUseCase := resolveWeekUC.NewUseCase(
		globalRepository,
		weeklyRepository,
		staffClient,
		log,
	)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		exceptionRepository,
		weeklyRepository,
		globalRepository,
		appointmentRepository,
		staffClient,
		log,
	)

	// Инициализируем handlers
	getGlobalSchedule := getGlobalScheduleHandler.NewHandler(globalSvc, log)
	getTemplates := getTemplatesHandler.NewHandler(weeklySvc, log)
	getWeeklySchedule := getWeeklyScheduleHandler.NewHandler(weeklySvc, log)
	createWeeklyEntry := createWeeklyEntryHandler.NewHandler(weeklySvc, log)
	deleteWeeklyEntry := deleteWeeklyEntryHandler.NewHandler(weeklySvc, log)
	getExceptions := getExceptionsHandler.NewHandler(exceptionSvc, log)
	createException := createExceptionHandler.NewHandler(exceptionSvc, log)
	deleteException := deleteExceptionHandler.NewHandler(exceptionSvc, log)
	getResolvedWeek := getResolvedWeekHandler.NewHandler(resolveWeekUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Глобальное расписание учреждения
	api.HandleFunc("/schedule/global", getGlobalSchedule.Handle).Methods(http.MethodGet)

	// Шаблоны временных слотов
	api.HandleFunc("/schedule/templates", getTemplates.Handle).Methods(http.MethodGet)

	// Разрешенное недельное расписание врача
	api.HandleFunc("/doctors/{doctorId}/availability/week",
		getResolvedWeek.Handle).Methods(http.MethodGet)

	// Вычисленные слоты врача на дату
	api.HandleFunc("/doctors/{doctorId}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Текущее недельное расписание и исключения врача
	api.HandleFunc("/doctors/{doctorId}/weekly-schedule",
		getWeeklySchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/exceptions",
		getExceptions.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Недельное расписание ---
	protected.HandleFunc("/doctors/{doctorId}/weekly-schedule",
		createWeeklyEntry.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/weekly-schedule/{entryId}",
		deleteWeeklyEntry.Handle).Methods(http.MethodDelete)

	// --- Исключения расписания ---
	protected.HandleFunc("/doctors/{doctorId}/exceptions",
		createException.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/exceptions/{exceptionId}",
		deleteException.Handle).Methods(http.MethodDelete)

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
