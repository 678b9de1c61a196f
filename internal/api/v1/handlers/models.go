package handlers

import (
	"ulascansenturk/forecastio/internal/service"
)

type ForecastResponse = service.ForecastResponse

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
