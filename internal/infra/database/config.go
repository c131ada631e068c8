package database

import (
	"fmt"

	"go-weather/pkg/resource"
)

const (
	ClientGorm = "gorm"
	ClientSQLC = "sqlc"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config describes how to reach the weather_requests database
type Config struct {
	Client       string
	Driver       string
	DSN          string
	Host         string
	Port         string
	Username     string
	Password     string
	Database     string
	Schema       string
	SSLMode      string
	MaxOpenConns int
}

// ConfigFromProperties reads app.db.* properties
func ConfigFromProperties() Config {
	return Config{
		Client:       resource.GetStringOrDefault("app.db.client", ClientGorm),
		Driver:       resource.GetStringOrDefault("app.db.driver", DriverSQLite),
		DSN:          resource.GetString("app.db.dsn"),
		Host:         resource.GetString("app.db.host"),
		Port:         resource.GetString("app.db.port"),
		Username:     resource.GetString("app.db.username"),
		Password:     resource.GetString("app.db.password"),
		Database:     resource.GetString("app.db.database"),
		Schema:       resource.GetString("app.db.schema"),
		SSLMode:      resource.GetStringOrDefault("app.db.sslmode", "disable"),
		MaxOpenConns: resource.GetInt("app.db.max-open-conns"),
	}
}

// ConnectionString returns the DSN, building the postgres keyword form when none is configured
func (c Config) ConnectionString() string {
	if c.DSN != "" || c.Driver != DriverPostgres {
		return c.DSN
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode, c.Schema)
}

// Target names the database for logs without credentials
func (c Config) Target() string {
	if c.Driver == DriverPostgres && c.DSN == "" {
		return fmt.Sprintf("%s:%s/%s", c.Host, c.Port, c.Database)
	}
	if c.Driver == DriverPostgres {
		return "postgres"
	}
	return c.DSN
}
