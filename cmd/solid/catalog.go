package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/AntonStoeckl/solid-specifications-go/product/postgresengine"
)

const catalogTableName = "solid_catalog"

// openCatalog connects to the configured database and returns a Store with a freshly created table.
// The returned cleanup drops the table and closes the connection.
func openCatalog(ctx context.Context, cfg Config, obs observability) (postgresengine.Store, func(), error) {
	options := []postgresengine.Option{
		postgresengine.WithTableName(catalogTableName),
		postgresengine.WithLogger(obs.logger),
	}

	if obs.contextualLogger != nil {
		options = append(options, postgresengine.WithContextualLogger(obs.contextualLogger))
	}

	if obs.metrics != nil {
		options = append(options, postgresengine.WithMetrics(obs.metrics))
	}

	if obs.tracing != nil {
		options = append(options, postgresengine.WithTracing(obs.tracing))
	}

	var (
		store   postgresengine.Store
		closeDB func()
		err     error
	)

	switch cfg.CatalogDriver {
	case driverSQLite:
		var db *sql.DB
		if db, err = sql.Open("sqlite", cfg.CatalogDSN); err == nil {
			db.SetMaxOpenConns(1)
			closeDB = func() { _ = db.Close() }
			options = append(options, postgresengine.WithDialect(postgresengine.DialectSQLite))
			store, err = postgresengine.NewStoreFromSQLDB(db, options...)
		}

	case driverPGX:
		var pool *pgxpool.Pool
		if pool, err = pgxpool.New(ctx, cfg.CatalogDSN); err == nil {
			closeDB = pool.Close
			store, err = postgresengine.NewStoreFromPGXPool(pool, options...)
		}

	case driverSQL:
		var db *sql.DB
		if db, err = sql.Open("postgres", cfg.CatalogDSN); err == nil {
			closeDB = func() { _ = db.Close() }
			store, err = postgresengine.NewStoreFromSQLDB(db, options...)
		}

	case driverSQLX:
		var db *sqlx.DB
		if db, err = sqlx.Open("postgres", cfg.CatalogDSN); err == nil {
			closeDB = func() { _ = db.Close() }
			store, err = postgresengine.NewStoreFromSQLX(db, options...)
		}

	default:
		err = fmt.Errorf("%w: unknown catalog driver %q", errInvalidConf, cfg.CatalogDriver)
	}

	if err != nil {
		if closeDB != nil {
			closeDB()
		}

		return postgresengine.Store{}, nil, fmt.Errorf("open catalog: %w", err)
	}

	if err = store.CreateTable(ctx); err != nil {
		closeDB()
		return postgresengine.Store{}, nil, fmt.Errorf("create catalog table: %w", err)
	}

	cleanup := func() {
		if dropErr := store.DropTable(context.WithoutCancel(ctx)); dropErr != nil {
			obs.logger.WarnContext(ctx, "dropping catalog table failed", "error", dropErr.Error())
		}

		closeDB()
	}

	return store, cleanup, nil
}
