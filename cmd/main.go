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

	createBookingHandler "github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers/create_booking"
	createRoomHandler "github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers/create_room"
	deleteBookingHandler "github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers/delete_booking"
	getAvailableRoomsHandler "github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers/get_available_rooms"
	getBookingHandler "github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers/get_booking"
	getPortfolioOccupancyHandler "github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers/get_portfolio_occupancy"
	getRoomHandler "github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers/get_room"
	getRoomOccupancyHandler "github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers/get_room_occupancy"
	getRoomStatusHandler "github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers/get_room_status"
	listRoomBookingsHandler "github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers/list_room_bookings"
	listRoomsHandler "github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers/list_rooms"
	updateRoomHandler "github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers/update_room"
	"github.com/m04kA/SMC-HotelOccupancy/internal/api/middleware"
	"github.com/m04kA/SMC-HotelOccupancy/internal/config"
	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelOccupancy/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelOccupancy/internal/infra/storage/room"
	bookingsService "github.com/m04kA/SMC-HotelOccupancy/internal/service/bookings"
	roomsService "github.com/m04kA/SMC-HotelOccupancy/internal/service/rooms"
	getAvailableRoomsUC "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_available_rooms"
	getPortfolioOccupancyUC "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_portfolio_occupancy"
	getRoomOccupancyUC "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_room_occupancy"
	"github.com/m04kA/SMC-HotelOccupancy/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelOccupancy/pkg/logger"
	"github.com/m04kA/SMC-HotelOccupancy/pkg/metrics"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
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

	log.Info("Starting SMC-HotelOccupancy...")
	log.Info("Configuration loaded from %s", configPath)

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

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	roomRepository := roomRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(roomRepository, bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, roomRepository, log)

	// Инициализируем use cases
	defaultModel := domain.OccupancyModel(cfg.Occupancy.DefaultModel)

	getRoomOccupancyUseCase := getRoomOccupancyUC.NewUseCase(
		roomRepository,
		bookingRepository,
		metricsCollector,
		cfg.Occupancy.MaxRangeDays,
		defaultModel,
		log,
	)

	getPortfolioOccupancyUseCase := getPortfolioOccupancyUC.NewUseCase(
		roomRepository,
		bookingRepository,
		metricsCollector,
		cfg.Occupancy.MaxRangeDays,
		log,
	)

	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(
		roomRepository,
		bookingRepository,
		metricsCollector,
		cfg.Occupancy.MaxRangeDays,
		log,
	)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	getRoomStatus := getRoomStatusHandler.NewHandler(roomSvc, log)
	getRoomOccupancy := getRoomOccupancyHandler.NewHandler(getRoomOccupancyUseCase, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	listRoomBookings := listRoomBookingsHandler.NewHandler(bookingSvc, log)
	getPortfolioOccupancy := getPortfolioOccupancyHandler.NewHandler(getPortfolioOccupancyUseCase, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover(log), middleware.AccessLog(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Номера ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/rooms/{roomId}/status", getRoomStatus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/occupancy", getRoomOccupancy.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/rooms/{roomId}/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId}/bookings", listRoomBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Отчеты по загрузке ---
	api.HandleFunc("/occupancy", getPortfolioOccupancy.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-rooms", getAvailableRooms.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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
