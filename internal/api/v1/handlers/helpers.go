package handlers

import (
	"encoding/json"
	"errors"
	"github.com/rs/zerolog/log"
	"net/http"
	"ulascansenturk/forecastio/internal/forecastio"
	"ulascansenturk/forecastio/internal/service"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusBadGateway:
		errorCode = "BAD_GATEWAY"
		title = "Bad Gateway"
	case http.StatusGatewayTimeout:
		errorCode = "GATEWAY_TIMEOUT"
		title = "Gateway Timeout"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// statusForError maps forecast errors onto the status returned to callers.
func statusForError(err error) int {
	switch {
	case errors.Is(err, forecastio.ErrInvalidCoordinate), errors.Is(err, service.ErrUnknownSection):
		return http.StatusBadRequest
	case errors.Is(err, forecastio.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, forecastio.ErrBadResponse),
		errors.Is(err, forecastio.ErrTooManyRedirects),
		errors.Is(err, forecastio.ErrDecode),
		errors.Is(err, forecastio.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
