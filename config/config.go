package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
	"ulascansenturk/forecastio/internal/forecastio"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	ForecastAPIKey       string
	ForecastBaseURL      string
	ForecastUnits        string
	ForecastLang         string
	ForecastExtend       bool
	ForecastExclude      string
	ForecastMaxRedirects int
	ForecastTimeout      time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "forecast-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FORECAST_BASE_URL", forecastio.DefaultBaseURL)
	v.SetDefault("FORECAST_UNITS", string(forecastio.UnitsAuto))
	v.SetDefault("FORECAST_LANG", string(forecastio.LangEnglish))
	v.SetDefault("FORECAST_EXTEND", false)
	v.SetDefault("FORECAST_MAX_REDIRECTS", forecastio.DefaultMaxRedirects)
	v.SetDefault("FORECAST_TIMEOUT", 10*time.Second)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:          v.GetString("SERVICE_NAME"),
		ServerAddress:        v.GetString("SERVER_ADDRESS"),
		DBName:               v.GetString("DATABASE_NAME"),
		DBPassword:           v.GetString("DATABASE_PASSWORD"),
		DBUser:               v.GetString("DATABASE_USER"),
		DBPort:               v.GetString("DATABASE_PORT"),
		DBHost:               v.GetString("DATABASE_HOST"),
		Env:                  v.GetString("ENV"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		HTTPTimeout:          v.GetInt32("HTTP_TIMEOUT"),
		ForecastAPIKey:       v.GetString("FORECAST_API_KEY"),
		ForecastBaseURL:      v.GetString("FORECAST_BASE_URL"),
		ForecastUnits:        v.GetString("FORECAST_UNITS"),
		ForecastLang:         v.GetString("FORECAST_LANG"),
		ForecastExtend:       v.GetBool("FORECAST_EXTEND"),
		ForecastExclude:      v.GetString("FORECAST_EXCLUDE"),
		ForecastMaxRedirects: v.GetInt("FORECAST_MAX_REDIRECTS"),
		ForecastTimeout:      v.GetDuration("FORECAST_TIMEOUT"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// DatabaseEnabled reports whether a database host is configured. Without
// one, fetches are not recorded.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

// ForecastSettings converts the forecast fields into client settings and
// validates them.
func (c *Config) ForecastSettings() (forecastio.Settings, error) {
	settings := forecastio.DefaultSettings(c.ForecastAPIKey)
	settings.BaseURL = c.ForecastBaseURL
	settings.Units = forecastio.Units(c.ForecastUnits)
	settings.Language = forecastio.Language(c.ForecastLang)
	settings.Extend = c.ForecastExtend
	settings.Exclude = c.ForecastExclude
	settings.MaxRedirects = c.ForecastMaxRedirects

	if err := settings.Validate(); err != nil {
		return forecastio.Settings{}, err
	}

	return settings, nil
}
