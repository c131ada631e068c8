package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"go-weather/configs"
	"go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"
)

type ServeCmd struct {
	SkipMigrate     bool          `help:"Do not create the weather_requests table on startup."`
	ShutdownTimeout time.Duration `help:"Time allowed for in-flight requests on shutdown." default:"10s"`
}

func (cmd *ServeCmd) Run(globals *Globals) error {
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap(globals)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if !cmd.SkipMigrate {
		if err = app.store.Migrate(); err != nil {
			return err
		}
		log.Info(msg.GetMessage("app.migrate-done", app.dbConfig.Client, app.dbConfig.Target()))
	}

	bus, err := app.events(ctx)
	if err != nil {
		return err
	}

	// Init UseCase
	weatherRequestUseCase := weather.NewWeatherRequestUseCase(bus.Destination, bus.Sender, app.weatherGateway(), app.store)
	healthUseCase := health.NewHealthUseCase(app.dbHealth, bus.Health)

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetStringOrDefault("app.server.context-path", configs.Env.ContextPath)
	api := e.Group(contextPath)
	docs.SwaggerInfo.BasePath = contextPath

	// Init Routes
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewWeatherRequestController(api, weatherRequestUseCase).InitWeatherRequestRoutes()
	controller.NewWeatherController(api, weatherRequestUseCase).InitWeatherRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	port := resource.GetStringOrDefault("app.server.port", "8080")
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + port)
	}()
	log.Info(msg.GetMessage("app.started", port))

	select {
	case err = <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cmd.ShutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info(msg.GetMessage("app.stop"))
	return nil
}
