package sqlc

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/infra/database"
)

// Open connects database/sql and returns the dialect the store gateway must use
func Open(config database.Config) (*sql.DB, string, error) {
	var driverName, dialect string
	switch config.Driver {
	case database.DriverPostgres:
		driverName, dialect = "postgres", db.DialectPostgres
	case database.DriverSQLite:
		driverName, dialect = "sqlite3", db.DialectSQLite
	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	sqlDB, err := sql.Open(driverName, config.ConnectionString())
	if err != nil {
		return nil, "", fmt.Errorf("failed to open DB: %w", err)
	}

	if config.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.Driver == database.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, "", fmt.Errorf("failed to ping DB: %w", err)
	}
	return sqlDB, dialect, nil
}
