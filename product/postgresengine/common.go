package postgresengine

import (
	"errors"
)

var ErrEmptyTableNameSupplied = errors.New("empty table name supplied")
var ErrNilDatabaseConnection = errors.New("database connection must not be nil")
var ErrBuildingQueryFailed = errors.New("building query failed")
var ErrQueryingFailed = errors.New("querying failed")
var ErrScanningDBRowFailed = errors.New("scanning db row failed")
var ErrSavingFailed = errors.New("saving failed")
var ErrUnsupportedDialect = errors.New("unsupported sql dialect")
