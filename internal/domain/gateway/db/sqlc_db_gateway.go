package db

import (
	"context"
	"database/sql"
	"time"

	"go-weather/internal/domain/model"
)

type SQLCHealthDBGateway struct {
	DB      *sql.DB
	Dialect string
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB, dialect string) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db, Dialect: dialect}
}

func (gateway *SQLCHealthDBGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	driver := "sql/" + gateway.Dialect
	if err := gateway.DB.PingContext(ctx); err != nil {
		return healthDown(driver, err)
	}
	return healthUp(driver)
}
