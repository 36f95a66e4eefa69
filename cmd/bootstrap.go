package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-HotelBookingService/internal/config"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/metrics"
)

// app общие зависимости команд
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	sqlDB *sql.DB
	db    *dbmetrics.DB
	// nil, если метрики выключены
	metrics *metrics.Metrics
	stop    chan struct{}
}

// bootstrap загружает конфиг, поднимает логгер и подключается к БД
// withMetrics включает сбор метрик запросов и пула, если он разрешен в конфиге
func bootstrap(ctx context.Context, configPath string, withMetrics bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	var m *metrics.Metrics
	if withMetrics && cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		log.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	stop := make(chan struct{})
	return &app{
		cfg:     cfg,
		log:     log,
		sqlDB:   sqlDB,
		db:      dbmetrics.WrapWithDefault(sqlDB, m, cfg.Database.DBName, stop),
		metrics: m,
		stop:    stop,
	}, nil
}

func (a *app) Close() {
	close(a.stop)
	if err := a.sqlDB.Close(); err != nil {
		a.log.Error("Failed to close database: %v", err)
	}
	a.log.Close()
}
