package main

import (
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

type MigrateCmd struct{}

func (cmd *MigrateCmd) Run(globals *Globals) error {
	app, err := bootstrap(globals)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if err = app.store.Migrate(); err != nil {
		return err
	}
	log.Info(msg.GetMessage("app.migrate-done", app.dbConfig.Client, app.dbConfig.Target()))
	return nil
}
