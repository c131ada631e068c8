package main

import (
	"os"

	"go-weather/internal/domain/gateway/queue"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
)

type ExportCmd struct {
	Format string `help:"Export format." enum:"json,csv" default:"json" short:"f"`
	Output string `help:"Destination file, stdout when empty." short:"o" type:"path"`
}

func (cmd *ExportCmd) Run(globals *Globals) error {
	app, err := bootstrap(globals)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	useCase := weather.NewWeatherRequestUseCase("", queue.NoopSender{}, app.weatherGateway(), app.store)
	file, err := useCase.Export(model.ExportFormat(cmd.Format))
	if err != nil {
		return err
	}

	if cmd.Output == "" {
		_, err = os.Stdout.Write(file.Content)
		return err
	}
	return os.WriteFile(cmd.Output, file.Content, 0o644)
}
