package main

import (
	"log"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/spf13/viper"

	"github.com/hpate252/currency-converter/cli/cmd"
)

func main() {
	if configFile := os.Getenv("CURRENCY_CONVERTER_CONFIG"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("CURRENCY_CONVERTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file falls back to the built-in demo
		// table; an explicitly named file must exist.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatalf("Error while reading in the config file: %v", err)
		}
	}

	config, err := getConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))

	if err := cmd.Execute(createCommandConfig(config, logger)); err != nil {
		os.Exit(1)
	}
}
