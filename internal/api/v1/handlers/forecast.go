package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/forecastio/internal/service"
)

type ForecastHandler struct {
	forecastService service.ForecastService
	timeout         time.Duration
}

// NewForecastHandler returns a handler that bounds each request by timeout.
// A timeout of zero or less leaves the request context unbounded.
func NewForecastHandler(forecastService service.ForecastService, timeout time.Duration) *ForecastHandler {
	return &ForecastHandler{
		forecastService: forecastService,
		timeout:         timeout,
	}
}

func (h *ForecastHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/forecast":
		h.GetForecast(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

// GetForecast serves GET /forecast?lat=&lon=[&time=][&exclude=][&section=a,b].
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if r.URL.Path != "/forecast" {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}

	query := r.URL.Query()
	latitude := query.Get("lat")
	longitude := query.Get("lon")
	if latitude == "" || longitude == "" {
		respondWithError(w, http.StatusBadRequest, "parameters 'lat' and 'lon' are required")
		return
	}

	req := service.ForecastRequest{
		Latitude:  latitude,
		Longitude: longitude,
		Time:      query.Get("time"),
		Exclude:   query.Get("exclude"),
		Sections:  splitList(query.Get("section")),
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	response, err := h.forecastService.GetForecast(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("latitude", latitude).Str("longitude", longitude).Msg("failed to get forecast")
		respondWithError(w, statusForError(err), "failed to get forecast: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, response)
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
