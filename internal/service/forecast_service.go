package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/forecastio/internal/db/fetchlog"
	"ulascansenturk/forecastio/internal/forecastio"
)

var ErrUnknownSection = errors.New("unknown forecast section")

type ForecastRequest struct {
	Latitude  string
	Longitude string
	Time      string
	Exclude   string
	// Sections limits the response; empty means every section present.
	Sections []string
}

type ForecastMetadata struct {
	CacheControl string   `json:"cache_control,omitempty"`
	Expires      string   `json:"expires,omitempty"`
	APICalls     int      `json:"api_calls"`
	ResponseTime string   `json:"response_time,omitempty"`
	Missing      []string `json:"missing_headers,omitempty"`
}

type ForecastResponse struct {
	Latitude  string                     `json:"latitude"`
	Longitude string                     `json:"longitude"`
	Metadata  ForecastMetadata           `json:"metadata"`
	Sections  map[string]json.RawMessage `json:"sections"`
}

type ForecastService interface {
	GetForecast(ctx context.Context, req ForecastRequest) (ForecastResponse, error)
}

type forecastService struct {
	settings   forecastio.Settings
	httpClient *http.Client
	fetchRepo  fetchlog.Repository
}

// NewForecastService returns a service that builds a new forecast client for
// every request from the shared settings. fetchRepo may be nil.
func NewForecastService(settings forecastio.Settings, httpClient *http.Client, fetchRepo fetchlog.Repository) ForecastService {
	return &forecastService{
		settings:   settings,
		httpClient: httpClient,
		fetchRepo:  fetchRepo,
	}
}

func (s *forecastService) GetForecast(ctx context.Context, req ForecastRequest) (ForecastResponse, error) {
	for _, name := range req.Sections {
		if !forecastio.IsSection(name) {
			return ForecastResponse{}, fmt.Errorf("%w: %s", ErrUnknownSection, name)
		}
	}

	opts := []forecastio.Option{
		forecastio.WithSettings(s.settings),
		forecastio.WithLogger(log.Logger.With().Str("component", "forecastio").Logger()),
	}
	if s.httpClient != nil {
		opts = append(opts, forecastio.WithHTTPClient(s.httpClient))
	}

	client, err := forecastio.New(ctx, s.settings.APIKey, opts...)
	if err != nil {
		return ForecastResponse{}, err
	}

	if strings.TrimSpace(req.Time) != "" {
		client.SetTime(req.Time)
	}
	if strings.TrimSpace(req.Exclude) != "" {
		client.SetExclude(req.Exclude)
	}

	fetchErr := client.Fetch(ctx, req.Latitude, req.Longitude)
	if errors.Is(fetchErr, forecastio.ErrInvalidCoordinate) {
		return ForecastResponse{}, fetchErr
	}

	s.logFetch(client, req, fetchErr)

	if fetchErr != nil {
		return ForecastResponse{}, fetchErr
	}

	metadata, _ := client.Metadata()
	response := ForecastResponse{
		Latitude:  strings.TrimSpace(req.Latitude),
		Longitude: strings.TrimSpace(req.Longitude),
		Metadata: ForecastMetadata{
			CacheControl: metadata.CacheControl,
			Expires:      metadata.Expires,
			APICalls:     metadata.APICalls,
			ResponseTime: metadata.ResponseTime,
			Missing:      metadata.Missing,
		},
		Sections: make(map[string]json.RawMessage),
	}

	wanted := req.Sections
	if len(wanted) == 0 {
		wanted = forecastio.Sections
	}
	for _, name := range wanted {
		if client.HasSection(name) {
			response.Sections[name] = client.Section(name)
		}
	}

	return response, nil
}

func (s *forecastService) logFetch(client *forecastio.Client, req ForecastRequest, fetchErr error) {
	if s.fetchRepo == nil {
		return
	}

	entry := &fetchlog.Fetch{
		Latitude:  strings.TrimSpace(req.Latitude),
		Longitude: strings.TrimSpace(req.Longitude),
		Time:      strings.TrimSpace(req.Time),
	}

	if fetchErr != nil {
		entry.Error = fetchErr.Error()
		var httpErr *forecastio.HTTPError
		if errors.As(fetchErr, &httpErr) {
			entry.StatusCode = httpErr.StatusCode
		}
	} else {
		metadata, _ := client.Metadata()
		doc, _ := client.Document()
		entry.StatusCode = metadata.StatusCode
		entry.APICalls = metadata.APICalls
		entry.ResponseTime = metadata.ResponseTime
		entry.CacheControl = metadata.CacheControl
		entry.Expires = metadata.Expires
		entry.Sections = strings.Join(doc.Present(), ",")
	}

	if err := s.fetchRepo.LogFetch(entry); err != nil {
		log.Error().Err(err).Str("latitude", entry.Latitude).Str("longitude", entry.Longitude).Msg("Failed to log forecast fetch")
	}
}
