package main

import (
	"github.com/alecthomas/kong"

	"go-weather/pkg/log"
)

type Globals struct {
	EnvFile        string `help:"Env file loaded before the environment." default:".env" name:"env-file"`
	PropertiesFile string `help:"Application properties file." env:"PROPERTIES_FILE_PATH" default:"configs/application.yml" name:"properties"`
}

type CLI struct {
	Globals

	Serve   ServeCmd   `cmd:"" default:"1" help:"Start the HTTP server."`
	Migrate MigrateCmd `cmd:"" help:"Create the weather_requests table when missing."`
	Export  ExportCmd  `cmd:"" help:"Export stored weather requests as json or csv."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("go-weather"),
		kong.Description("Stores weather forecasts requested for a location and date range."),
		kong.UsageOnError(),
	)

	err := ctx.Run(&cli.Globals)
	log.Sync()
	ctx.FatalIfErrorf(err)
}
