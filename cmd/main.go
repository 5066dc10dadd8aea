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

	cancelAppointmentHandler "github.com/Juand2602/barberia-scheduling-service/internal/api/handlers/cancel_appointment"
	changeStatusHandler "github.com/Juand2602/barberia-scheduling-service/internal/api/handlers/change_status"
	checkAvailabilityHandler "github.com/Juand2602/barberia-scheduling-service/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/Juand2602/barberia-scheduling-service/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/Juand2602/barberia-scheduling-service/internal/api/handlers/delete_appointment"
	generateSaleHandler "github.com/Juand2602/barberia-scheduling-service/internal/api/handlers/generate_sale"
	getAppointmentHandler "github.com/Juand2602/barberia-scheduling-service/internal/api/handlers/get_appointment"
	getClientAppointmentsHandler "github.com/Juand2602/barberia-scheduling-service/internal/api/handlers/get_client_appointments"
	getEmployeeAppointmentsHandler "github.com/Juand2602/barberia-scheduling-service/internal/api/handlers/get_employee_appointments"
	rescheduleAppointmentHandler "github.com/Juand2602/barberia-scheduling-service/internal/api/handlers/reschedule_appointment"
	"github.com/Juand2602/barberia-scheduling-service/internal/api/middleware"
	"github.com/Juand2602/barberia-scheduling-service/internal/config"
	"github.com/Juand2602/barberia-scheduling-service/internal/infra/storage"
	appointmentRepo "github.com/Juand2602/barberia-scheduling-service/internal/infra/storage/appointment"
	clientServiceClient "github.com/Juand2602/barberia-scheduling-service/internal/integrations/clientservice"
	salesServiceClient "github.com/Juand2602/barberia-scheduling-service/internal/integrations/salesservice"
	staffServiceClient "github.com/Juand2602/barberia-scheduling-service/internal/integrations/staffservice"
	"github.com/Juand2602/barberia-scheduling-service/internal/scheduling"
	appointmentsService "github.com/Juand2602/barberia-scheduling-service/internal/service/appointments"
	createAppointmentUC "github.com/Juand2602/barberia-scheduling-service/internal/usecase/create_appointment"
	rescheduleAppointmentUC "github.com/Juand2602/barberia-scheduling-service/internal/usecase/reschedule_appointment"
	"github.com/Juand2602/barberia-scheduling-service/pkg/dbmetrics"
	"github.com/Juand2602/barberia-scheduling-service/pkg/logger"
	"github.com/Juand2602/barberia-scheduling-service/pkg/metrics"
	"github.com/Juand2602/barberia-scheduling-service/pkg/simpletxmanager"
	"github.com/Juand2602/barberia-scheduling-service/pkg/txmanager"
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

	log.Info("Starting barberia-scheduling-service...")
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

	// Применяем миграции
	if err := storage.MigrateUp(cfg.Database.URL()); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем интеграционных клиентов
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	clientClient := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		time.Duration(cfg.ClientService.Timeout)*time.Second,
		log,
	)
	salesClient := salesServiceClient.NewClient(
		cfg.SalesService.URL,
		time.Duration(cfg.SalesService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s, ClientService=%s, SalesService=%s)",
		cfg.StaffService.URL, cfg.ClientService.URL, cfg.SalesService.URL)

	// Интерфейс для transaction manager (используется в usecases и сервисе)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем детектор конфликтов расписания
	detector := scheduling.NewDetector(appointmentRepository, staffClient, log)

	// Инициализируем сервис
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		detector,
		salesClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		detector,
		clientClient,
		txMgr,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		detector,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	changeStatus := changeStatusHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getEmployeeAppointments := getEmployeeAppointmentsHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(detector, log)
	generateSale := generateSaleHandler.NewHandler(appointmentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности слота у мастера
	api.HandleFunc("/employees/{employeeId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Перенос записи
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status", changeStatus.Handle).Methods(http.MethodPatch)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Физическое удаление записи
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Формирование продажи по завершённой записи
	protected.HandleFunc("/appointments/{appointmentId}/sale", generateSale.Handle).Methods(http.MethodPost)

	// --- Расписание мастера ---
	protected.HandleFunc("/employees/{employeeId}/appointments", getEmployeeAppointments.Handle).Methods(http.MethodGet)

	// --- История клиента ---
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

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
