package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"go-weather/internal/infra/database"
)

// Open connects GORM with the postgres or sqlite dialector
func Open(config database.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case database.DriverPostgres:
		dialector = postgres.Open(config.ConnectionString())
	case database.DriverSQLite:
		dialector = sqlite.Open(config.ConnectionString())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: NewLogger()})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if config.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.Driver == database.DriverSQLite {
		// a single writer avoids "database is locked" errors
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}
