package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-HotelOccupancy/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelOccupancy/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelOccupancy/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelOccupancy/pkg/logger"
)

// env зависимости одной команды отчета
type env struct {
	cfg      *config.Config
	db       *sql.DB
	log      *logger.Logger
	rooms    *roomRepo.Repository
	bookings *bookingRepo.Repository
}

// openEnv читает конфигурацию сервиса и подключается к той же базе.
// Лог пишется в stderr, чтобы не смешиваться с таблицей отчета
func openEnv(configPath string) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	log := logger.NewWithWriter(os.Stderr, level)

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &env{
		cfg:      cfg,
		db:       db,
		log:      log,
		rooms:    roomRepo.NewRepository(db),
		bookings: bookingRepo.NewRepository(db),
	}, nil
}

func (e *env) Close() error {
	return e.db.Close()
}
