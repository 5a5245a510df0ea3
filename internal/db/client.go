// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

const defaultTxTimeout = time.Minute

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TxTimeout       time.Duration
	TracingEnabled  bool
}

type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	builder   sq.StatementBuilderType
	txTimeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a builder bound to the transaction carried by ctx, or to
// the pool when there is none. A lazy transaction begins here.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	if lt := lazyTxFromContext(ctx); lt != nil {
		tx, err := lt.get()
		if err == nil {
			return d.builder.RunWith(tx)
		}
		d.logger.Errorf("failed to begin transaction, running outside of it: %v", err)
	}

	if tx := txFromContext(ctx); tx != nil {
		return d.builder.RunWith(tx)
	}

	return d.builder.RunWith(d.db)
}

// Ping checks the database is reachable and records its availability.
func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	err := d.db.PingContext(ctx)

	availability := 1.0
	if err != nil {
		availability = 0
	}
	if merr := d.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, availability); merr != nil {
		d.logger.Debugf("failed to record database availability: %v", merr)
	}

	return err
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient opens a pgx pool and exposes it through database/sql, which is
// what the squirrel runners expect.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	if cfg.TracingEnabled {
		// uses the global TracerProvider installed by the tracing package
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	if cfg.MaxConns > 0 {
		config.MaxConns = cfg.MaxConns
	}
	config.MinConns = cfg.MinConns
	if cfg.MaxConnLifetime > 0 {
		config.MaxConnLifetime = cfg.MaxConnLifetime
		config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	}
	if cfg.MaxConnIdleTime > 0 {
		config.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to record database stats: %w", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		db.Close()
		pool.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db
	d.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	d.txTimeout = cfg.TxTimeout
	if d.txTimeout <= 0 {
		d.txTimeout = defaultTxTimeout
	}

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}
