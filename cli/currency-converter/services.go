package main

import (
	kitlog "github.com/go-kit/log"

	"github.com/hpate252/currency-converter/cli/cmd"
	"github.com/hpate252/currency-converter/services"
	"github.com/hpate252/currency-converter/storage"
)

func createCommandConfig(config *Config, logger kitlog.Logger) *cmd.Config {
	journal := storage.NewMemoryStorage()

	service := services.New(config.Table)
	service = services.NewRecordingService(journal, service)
	service = services.NewLoggingService(logger, service)

	return &cmd.Config{
		Service:  service,
		Table:    config.Table,
		Registry: config.Registry,
		Journal:  journal,
	}
}
