package main

import (
	"context"
	"errors"

	"go-weather/configs"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/infra/database"
	gormdb "go-weather/internal/infra/database/gorm"
	"go-weather/internal/infra/database/sqlc"
	"go-weather/internal/infra/events"
	"go-weather/pkg/http"
	"go-weather/pkg/resource"
)

// application holds the wired infrastructure shared by every command
type application struct {
	dbConfig database.Config
	store    db.WeatherRequestGateway
	dbHealth db.HealthDBGateway
	closers  []func() error
}

func bootstrap(globals *Globals) (*application, error) {
	configs.Load(globals.EnvFile)
	if err := resource.Init(globals.PropertiesFile); err != nil {
		return nil, err
	}

	app := &application{dbConfig: database.ConfigFromProperties()}

	switch app.dbConfig.Client {
	case database.ClientGorm:
		gormDB, err := gormdb.Open(app.dbConfig)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, sqlDB.Close)
		app.store = db.NewGormWeatherRequestGateway(gormDB)
		app.dbHealth = db.NewGormHealthDBGateway(gormDB)

	case database.ClientSQLC:
		sqlDB, dialect, err := sqlc.Open(app.dbConfig)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, sqlDB.Close)
		app.store = db.NewSQLCWeatherRequestGateway(sqlDB, dialect)
		app.dbHealth = db.NewSQLCHealthDBGateway(sqlDB, dialect)

	default:
		return nil, errors.New("unsupported database client: " + app.dbConfig.Client)
	}

	return app, nil
}

func (app *application) weatherGateway() api.WeatherGateway {
	return api.NewWeatherGateway(api.WeatherGatewayConfig{
		BaseURL: resource.GetStringOrDefault("app.weather.base-url", "https://api.weatherapi.com/v1"),
		APIKey:  resource.GetString("app.weather.api-key"),
		ClientOptions: http.ClientOptions{
			ReadTimeout: resource.GetDuration("app.weather.read-timeout"),
			Logger:      http.ZapHTTPLogger{Name: "weatherapi"},
		},
	})
}

func (app *application) events(ctx context.Context) (*events.Events, error) {
	bus, err := events.New(ctx, events.ConfigFromProperties())
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, bus.Close)
	return bus, nil
}

func (app *application) Close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		errs = append(errs, app.closers[i]())
	}
	return errors.Join(errs...)
}
