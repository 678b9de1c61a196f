package forecastio

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL      = "https://api.forecast.io/forecast/"
	DefaultMaxRedirects = 30
	APIKeyLength        = 32
)

type Units string

const (
	UnitsUS   Units = "us"
	UnitsSI   Units = "si"
	UnitsCA   Units = "ca"
	UnitsUK   Units = "uk"
	UnitsAuto Units = "auto"
)

func (u Units) Valid() bool {
	switch u {
	case UnitsUS, UnitsSI, UnitsCA, UnitsUK, UnitsAuto:
		return true
	}
	return false
}

type Language string

const (
	LangBosnian    Language = "bs"
	LangGerman     Language = "de"
	LangEnglish    Language = "en"
	LangSpanish    Language = "es"
	LangFrench     Language = "fr"
	LangItalian    Language = "it"
	LangDutch      Language = "nl"
	LangPolish     Language = "pl"
	LangPortuguese Language = "pt"
	LangTetum      Language = "tet"
	LangPigLatin   Language = "x-pig-latin"
	LangRussian    Language = "ru"
)

var languages = map[Language]struct{}{
	LangBosnian: {}, LangGerman: {}, LangEnglish: {}, LangSpanish: {},
	LangFrench: {}, LangItalian: {}, LangDutch: {}, LangPolish: {},
	LangPortuguese: {}, LangTetum: {}, LangPigLatin: {}, LangRussian: {},
}

func (l Language) Valid() bool {
	_, ok := languages[l]
	return ok
}

// Settings is the request configuration of a Client. It is a value type:
// copies can be shared between clients without affecting each other.
type Settings struct {
	APIKey       string
	Units        Units
	Language     Language
	Extend       bool
	Time         string
	Exclude      string
	BaseURL      string
	MaxRedirects int
}

// DefaultSettings returns the settings a Client starts from before options
// are applied.
func DefaultSettings(apiKey string) Settings {
	return Settings{
		APIKey:       apiKey,
		Units:        UnitsAuto,
		Language:     LangEnglish,
		BaseURL:      DefaultBaseURL,
		MaxRedirects: DefaultMaxRedirects,
	}
}

// Validate checks the format of the settings. The API key is only checked
// for length; the remote service is never contacted.
func (s Settings) Validate() error {
	if len(s.APIKey) != APIKeyLength {
		return fmt.Errorf("%w: api key must be %d characters, got %d", ErrConfiguration, APIKeyLength, len(s.APIKey))
	}
	if !s.Units.Valid() {
		return fmt.Errorf("%w: unsupported units %q", ErrConfiguration, s.Units)
	}
	if !s.Language.Valid() {
		return fmt.Errorf("%w: unsupported language %q", ErrConfiguration, s.Language)
	}
	if strings.TrimSpace(s.BaseURL) == "" {
		return fmt.Errorf("%w: base url is empty", ErrConfiguration)
	}
	if s.MaxRedirects < 0 {
		return fmt.Errorf("%w: max redirects must not be negative", ErrConfiguration)
	}
	return nil
}

// Option configures a Client in New.
type Option func(*Client)

// WithUnits sets the unit system of the returned values.
func WithUnits(units Units) Option {
	return func(c *Client) {
		c.settings.Units = units
	}
}

// WithLanguage sets the language of text summaries.
func WithLanguage(lang Language) Option {
	return func(c *Client) {
		c.settings.Language = lang
	}
}

// WithExtend requests hour-by-hour data for the next week.
func WithExtend(extend bool) Option {
	return func(c *Client) {
		c.settings.Extend = extend
	}
}

// WithTime sets the time specifier of a time machine request.
func WithTime(t string) Option {
	return func(c *Client) {
		c.settings.Time = t
	}
}

// WithExclude sets the comma separated sections the API should leave out.
func WithExclude(exclude string) Option {
	return func(c *Client) {
		c.settings.Exclude = exclude
	}
}

// WithBaseURL points the client at another forecast endpoint. A trailing
// slash is added when missing.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.settings.BaseURL = baseURL
	}
}

// WithMaxRedirects sets how many redirects a fetch may follow.
func WithMaxRedirects(n int) Option {
	return func(c *Client) {
		c.settings.MaxRedirects = n
	}
}

// WithSettings replaces every setting except the API key given to New.
func WithSettings(s Settings) Option {
	return func(c *Client) {
		key := c.settings.APIKey
		c.settings = s
		c.settings.APIKey = key
		WithBaseURL(s.BaseURL)(c)
	}
}

// WithHTTPClient sets the client used for requests. The client is copied;
// the copy's CheckRedirect enforces the redirect limit.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger replaces the package logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithCoordinates makes New fetch the forecast for the given location
// before returning.
func WithCoordinates(latitude, longitude float64) Option {
	return func(c *Client) {
		c.initial = &[2]string{FormatCoordinate(latitude), FormatCoordinate(longitude)}
	}
}

func defaultLogger() zerolog.Logger {
	return log.Logger.With().Str("component", "forecastio").Logger()
}
