package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ulascansenturk/forecastio/config"
	"ulascansenturk/forecastio/internal/forecastio"
)

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "forecast-service", conf.ServiceName)
	assert.Equal(t, forecastio.DefaultBaseURL, conf.ForecastBaseURL)
	assert.Equal(t, "auto", conf.ForecastUnits)
	assert.Equal(t, "en", conf.ForecastLang)
	assert.False(t, conf.ForecastExtend)
	assert.Equal(t, forecastio.DefaultMaxRedirects, conf.ForecastMaxRedirects)
	assert.Equal(t, 10*time.Second, conf.ForecastTimeout)
	assert.Equal(t, 30*time.Second, conf.HTTPTimeoutDuration())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("FORECAST_API_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("FORECAST_UNITS", "si")
	t.Setenv("FORECAST_LANG", "de")
	t.Setenv("FORECAST_EXTEND", "true")
	t.Setenv("FORECAST_EXCLUDE", "minutely,flags")
	t.Setenv("FORECAST_TIMEOUT", "3s")
	t.Setenv("DATABASE_HOST", "localhost")

	conf, err := config.LoadConfig()
	require.NoError(t, err)
	assert.True(t, conf.DatabaseEnabled())
	assert.Equal(t, 3*time.Second, conf.ForecastTimeout)

	settings, err := conf.ForecastSettings()
	require.NoError(t, err)
	assert.Equal(t, forecastio.UnitsSI, settings.Units)
	assert.Equal(t, forecastio.LangGerman, settings.Language)
	assert.True(t, settings.Extend)
	assert.Equal(t, "minutely,flags", settings.Exclude)
}

func TestForecastSettingsRejectsBadKey(t *testing.T) {
	t.Setenv("FORECAST_API_KEY", "too-short")

	conf, err := config.LoadConfig()
	require.NoError(t, err)

	_, err = conf.ForecastSettings()
	assert.ErrorIs(t, err, forecastio.ErrConfiguration)
}
