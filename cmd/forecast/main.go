package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"ulascansenturk/forecastio/config"
)

var conf *config.Config

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forecast",
		Short: "Fetch forecasts from the forecast.io API",
		Long: `forecast fetches weather forecasts for a latitude and longitude from the
forecast.io API, either once from the command line or through an HTTP API.

Configuration is read from the environment or a .env file in the working
directory (FORECAST_API_KEY, FORECAST_UNITS, FORECAST_LANG, ...).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			conf, err = config.LoadConfig()
			if err != nil {
				return err
			}

			logLevel, err := zerolog.ParseLevel(conf.LogLevel)
			if err != nil {
				logLevel = zerolog.InfoLevel
			}
			log.Logger = zerolog.New(os.Stderr).
				Level(logLevel).
				With().
				Str("service_name", conf.ServiceName).
				Timestamp().
				Logger()

			return nil
		},
	}

	rootCmd.AddCommand(newFetchCmd(), newServeCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
