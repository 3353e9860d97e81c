// Package postgresengine provides a SQL-backed product catalog that answers specification.Criteria queries.
//
// The same Criteria that filter products in memory are translated into a WHERE clause, so a query against
// the catalog returns exactly the products that Criteria.IsSatisfied would keep. PostgreSQL is the primary
// target; the sqlite3 dialect allows running the catalog in-process (e.g. with modernc.org/sqlite).
//
// Supported database handles: pgxpool.Pool, sql.DB and sqlx.DB.
//
// Usage examples:
//
//	// Basic usage
//	db, _ := pgxpool.New(context.Background(), dsn)
//	store, _ := postgresengine.NewStoreFromPGXPool(db)
//	_ = store.CreateTable(ctx)
//
//	// In-process with SQLite and observability
//	db, _ := sql.Open("sqlite", ":memory:")
//	store, _ := postgresengine.NewStoreFromSQLDB(
//		db,
//		postgresengine.WithDialect(postgresengine.DialectSQLite),
//		postgresengine.WithTableName("catalog"),
//		postgresengine.WithLogger(slog.Default()),
//		postgresengine.WithMetrics(collector),
//	)
//
//	_ = store.Save(ctx, product.Build("Tree", product.Green, product.Large))
//
//	criteria := specification.BuildCriteria().
//		Matching().
//		AllAttributesOf(
//			specification.A(product.AttrColor, string(product.Green)),
//			specification.A(product.AttrSize, string(product.Large)),
//		).
//		Finalize()
//
//	products, _ := store.Query(ctx, criteria)
package postgresengine
