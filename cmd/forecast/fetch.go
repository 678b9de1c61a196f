package main

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"
	"ulascansenturk/forecastio/internal/service"
)

func newFetchCmd() *cobra.Command {
	var req service.ForecastRequest

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch one forecast and print it as JSON",
		Example: `  forecast fetch --lat 37.8267 --lon -122.423
  forecast fetch --lat 37.8267 --lon -122.423 --section currently,daily --time 255657600`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := conf.ForecastSettings()
			if err != nil {
				return err
			}

			forecastService := service.NewForecastService(settings, &http.Client{Timeout: conf.ForecastTimeout}, nil)

			response, err := forecastService.GetForecast(cmd.Context(), req)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(response)
		},
	}

	cmd.Flags().StringVar(&req.Latitude, "lat", "", "latitude of the location")
	cmd.Flags().StringVar(&req.Longitude, "lon", "", "longitude of the location")
	cmd.Flags().StringVar(&req.Time, "time", "", "UNIX time or ISO 8601 date for a time machine request")
	cmd.Flags().StringVar(&req.Exclude, "exclude", "", "comma separated sections the API should leave out")
	cmd.Flags().StringSliceVar(&req.Sections, "section", nil, "sections to print (default all)")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lon")

	return cmd
}
