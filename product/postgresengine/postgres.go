package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect import
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/solid-specifications-go/product"
	"github.com/AntonStoeckl/solid-specifications-go/product/postgresengine/internal/adapters"
	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

// Supported SQL dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

const (
	defaultTableName             = "products"
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgBuildInsertQueryFailed = "failed to build insert query"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgDBExecFailed           = "database execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgQueryCompleted         = "query completed"
	logMsgQueryMatchesNothing    = "query skipped, criteria can not match any stored attribute"
	logMsgProductsSaved          = "products saved"
	logMsgTableCreated           = "table created"
	logMsgTableDropped           = "table dropped"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "catalog operation: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrTable                 = "table"
	logAttrProductCount          = "product_count"
	logAttrDurationMS            = "duration_ms"
	logAttrRowsAffected          = "rows_affected"
	logActionQuery               = "query"
	logActionSave                = "save"
	logActionCreateTable         = "create table"
	logActionDropTable           = "drop table"
	colSequenceNumber            = "sequence_number"
	colID                        = "id"
	colName                      = "name"
	colColor                     = "color"
	colSize                      = "size"
)

// attributeColumns maps the attributes of product.Product to the columns storing them.
// Criteria predicates on other keys can never match a stored product.
var attributeColumns = map[string]string{
	product.AttrName:  colName,
	product.AttrColor: colColor,
	product.AttrSize:  colSize,
}

// Store is a product catalog in a SQL table that can be queried with specification.Criteria.
type Store struct {
	db               adapters.DBAdapter
	dialect          string
	tableName        string
	logger           specification.Logger
	contextualLogger specification.ContextualLogger
	metricsCollector specification.MetricsCollector
	tracingCollector specification.TracingCollector
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options)
}

func newStore(db adapters.DBAdapter, options []Option) (Store, error) {
	s := Store{
		db:        db,
		dialect:   DialectPostgres,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&s); err != nil {
			return Store{}, err
		}
	}

	return s, nil
}

// CreateTable creates the catalog table if it does not exist yet.
func (s Store) CreateTable(ctx context.Context) error {
	sequenceColumn := colSequenceNumber + " BIGSERIAL PRIMARY KEY"
	if s.dialect == DialectSQLite {
		sequenceColumn = colSequenceNumber + " INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	ddl := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s, %s TEXT NOT NULL UNIQUE, %s TEXT NOT NULL, %s TEXT NOT NULL, %s TEXT NOT NULL)",
		s.quotedTableName(), sequenceColumn, colID, colName, colColor, colSize,
	)

	if err := s.execDDL(ctx, ddl, logActionCreateTable); err != nil {
		return err
	}

	s.logOperation(ctx, logMsgTableCreated, logAttrTable, s.tableName)

	return nil
}

// DropTable removes the catalog table if it exists.
func (s Store) DropTable(ctx context.Context) error {
	if err := s.execDDL(ctx, "DROP TABLE IF EXISTS "+s.quotedTableName(), logActionDropTable); err != nil {
		return err
	}

	s.logOperation(ctx, logMsgTableDropped, logAttrTable, s.tableName)

	return nil
}

func (s Store) execDDL(ctx context.Context, ddl string, action string) error {
	start := time.Now()
	_, execErr := s.db.Exec(ctx, ddl)
	s.logSQL(ctx, ddl, action, time.Since(start))

	if execErr != nil {
		s.logError(ctx, logMsgDBExecFailed, execErr, logAttrQuery, ddl)
		return errors.Join(ErrQueryingFailed, execErr)
	}

	return nil
}

// Save inserts one or more products with a single statement.
// Each stored row gets a fresh UUID, so saving an equal product twice stores it twice.
func (s Store) Save(ctx context.Context, p product.Product, more ...product.Product) error {
	all := append(product.Products{p}, more...)

	observer, ctx := s.startObservation(ctx, operationSave)

	sqlQuery, buildErr := s.buildInsertQuery(all)
	if buildErr != nil {
		s.logError(ctx, logMsgBuildInsertQueryFailed, buildErr, logAttrProductCount, len(all))
		observer.finishError(errorTypeBuildQuery)

		return buildErr
	}

	start := time.Now()
	result, execErr := s.db.Exec(ctx, sqlQuery)
	s.logSQL(ctx, sqlQuery, logActionSave, time.Since(start))

	if execErr != nil {
		s.logError(ctx, logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		observer.finishError(errorTypeDatabaseExec)

		return errors.Join(ErrSavingFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		s.logError(ctx, logMsgRowsAffectedFailed, rowsAffectedErr)
		observer.finishError(errorTypeRowsAffected)

		return errors.Join(ErrSavingFailed, rowsAffectedErr)
	}

	if rowsAffected != int64(len(all)) {
		err := fmt.Errorf("%w: expected %d rows affected, got %d", ErrSavingFailed, len(all), rowsAffected)
		s.logError(ctx, logMsgRowsAffectedFailed, err, logAttrRowsAffected, rowsAffected)
		observer.finishError(errorTypeRowsAffected)

		return err
	}

	duration := observer.finishSuccess(len(all))
	s.logOperation(
		ctx,
		logMsgProductsSaved,
		logAttrProductCount, len(all),
		logAttrDurationMS, toMilliseconds(duration),
	)

	return nil
}

// Query returns the stored products that satisfy the criteria, in the order they were saved.
//
// The result equals filtering all stored products in memory with criteria.IsSatisfied.
// Criteria that can not match any stored attribute return an empty result without touching the database.
func (s Store) Query(ctx context.Context, criteria specification.Criteria) (product.Products, error) {
	empty := make(product.Products, 0)

	observer, ctx := s.startObservation(ctx, operationQuery)

	where, matchesNothing := s.whereExpression(criteria)
	if matchesNothing {
		observer.finishSuccess(0)
		s.logOperation(ctx, logMsgQueryMatchesNothing, logAttrProductCount, 0)

		return empty, nil
	}

	sqlQuery, buildErr := s.buildSelectQuery(where)
	if buildErr != nil {
		s.logError(ctx, logMsgBuildSelectQueryFailed, buildErr)
		observer.finishError(errorTypeBuildQuery)

		return empty, buildErr
	}

	start := time.Now()
	rows, queryErr := s.db.Query(ctx, sqlQuery)
	s.logSQL(ctx, sqlQuery, logActionQuery, time.Since(start))

	if queryErr != nil {
		s.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		observer.finishError(errorTypeDatabaseQuery)

		return empty, errors.Join(ErrQueryingFailed, queryErr)
	}
	defer s.closeRows(ctx, rows)

	products, scanErr := s.processQueryResults(ctx, rows)
	if scanErr != nil {
		observer.finishError(errorTypeRowScan)

		return empty, scanErr
	}

	duration := observer.finishSuccess(len(products))
	s.logOperation(
		ctx,
		logMsgQueryCompleted,
		logAttrProductCount, len(products),
		logAttrDurationMS, toMilliseconds(duration),
	)

	return products, nil
}

// closeRows safely closes database rows and logs any errors.
func (s Store) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		s.logWarn(ctx, logMsgCloseRowsFailed, closeErr)
	}
}

// processQueryResults converts database rows into products.
func (s Store) processQueryResults(ctx context.Context, rows adapters.DBRows) (product.Products, error) {
	var name, color, size string
	products := make(product.Products, 0)

	for rows.Next() {
		if scanErr := rows.Scan(&name, &color, &size); scanErr != nil {
			s.logError(ctx, logMsgScanRowFailed, scanErr)
			return nil, errors.Join(ErrScanningDBRowFailed, scanErr)
		}

		products = append(products, product.Build(name, product.Color(color), product.Size(size)))
	}

	if iterErr := rows.Err(); iterErr != nil {
		s.logError(ctx, logMsgScanRowFailed, iterErr)
		return nil, errors.Join(ErrScanningDBRowFailed, iterErr)
	}

	return products, nil
}

func (s Store) buildSelectQuery(where exp.Expression) (string, error) {
	selectStmt := goqu.Dialect(s.dialect).
		From(s.tableName).
		Select(colName, colColor, colSize).
		Order(goqu.I(colSequenceNumber).Asc())

	if where != nil {
		selectStmt = selectStmt.Where(where)
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (s Store) buildInsertQuery(products product.Products) (string, error) {
	rows := make([]any, 0, len(products))

	for _, p := range products {
		rows = append(rows, goqu.Record{
			colID:    uuid.NewString(),
			colName:  p.Name,
			colColor: string(p.Color),
			colSize:  string(p.Size),
		})
	}

	sqlQuery, _, toSQLErr := goqu.Dialect(s.dialect).Insert(s.tableName).Rows(rows...).ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// whereExpression translates criteria into a goqu expression with the same semantics as Criteria.IsSatisfied.
// A nil expression means "no WHERE clause"; matchesNothing reports that no stored row can ever match.
func (s Store) whereExpression(criteria specification.Criteria) (where exp.Expression, matchesNothing bool) {
	items := criteria.Items()
	if len(items) == 0 {
		return nil, false
	}

	itemsExpressions := make([]exp.Expression, 0, len(items))

	for _, item := range items {
		if itemExpression, ok := s.itemExpression(item); ok {
			itemsExpressions = append(itemsExpressions, itemExpression)
		}
	}

	if len(itemsExpressions) == 0 {
		return nil, true
	}

	return goqu.Or(itemsExpressions...), false
}

// itemExpression translates one CriteriaItem. It returns false if the item can not match any stored row.
func (s Store) itemExpression(item specification.CriteriaItem) (exp.Expression, bool) {
	predicateExpressions := make([]exp.Expression, 0, len(item.Predicates()))

	for _, predicate := range item.Predicates() {
		column, known := attributeColumns[predicate.Key()]
		if !known {
			if item.AllPredicatesMustMatch() {
				return nil, false
			}

			continue
		}

		predicateExpressions = append(predicateExpressions, goqu.C(column).Eq(predicate.Val()))
	}

	if len(predicateExpressions) == 0 {
		return nil, false
	}

	if item.AllPredicatesMustMatch() {
		return goqu.And(predicateExpressions...), true
	}

	return goqu.Or(predicateExpressions...), true
}

func (s Store) quotedTableName() string {
	return `"` + strings.ReplaceAll(s.tableName, `"`, `""`) + `"`
}
